package httputil

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "incubator/pkg/domain-errors"
)

type titleRequest struct {
	Title string `json:"title"`
}

func (r *titleRequest) Validate() error {
	r.Title = strings.TrimSpace(r.Title)
	if r.Title == "" {
		return dErrors.New(dErrors.CodeValidation, "title is required")
	}
	return nil
}

func decode(body string) (*titleRequest, *httptest.ResponseRecorder, bool) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	req, ok := DecodeAndPrepare[titleRequest](w, r, logger, context.Background(), "req-1")
	return req, w, ok
}

func TestDecodeAndPrepare(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		req, _, ok := decode(`{"title":" Wp/nl/Foo "}`)
		require.True(t, ok)
		assert.Equal(t, "Wp/nl/Foo", req.Title)
	})
	t.Run("malformed json", func(t *testing.T) {
		_, w, ok := decode(`{"title":`)
		assert.False(t, ok)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
	t.Run("unknown field", func(t *testing.T) {
		_, w, ok := decode(`{"title":"Wp/nl","extra":1}`)
		assert.False(t, ok)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
	t.Run("validation failure", func(t *testing.T) {
		_, w, ok := decode(`{"title":"  "}`)
		assert.False(t, ok)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "validation_error")
	})
}
