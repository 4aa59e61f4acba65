package handler

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"incubator/internal/incubator"
	"incubator/internal/incubator/handler/mocks"
	"incubator/internal/platform/middleware"
	"incubator/internal/prefix"
	"incubator/internal/wikistate"
	dErrors "incubator/pkg/domain-errors"
	"incubator/pkg/testutil"
)

const testAdminToken = "s3cret"

type HandlerSuite struct {
	suite.Suite
	service *mocks.MockService
	router  chi.Router
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(HandlerSuite))
}

func (s *HandlerSuite) SetupTest() {
	ctrl := gomock.NewController(s.T())
	s.T().Cleanup(ctrl.Finish)
	s.service = mocks.NewMockService(ctrl)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s.router = chi.NewRouter()
	New(s.service, logger, testAdminToken).Register(s.router)
}

func (s *HandlerSuite) do(req *http.Request) *httptest.ResponseRecorder {
	return testutil.DoRequest(s.router, req)
}

func (s *HandlerSuite) decode(w *httptest.ResponseRecorder) map[string]any {
	return testutil.DecodeJSON(s.T(), w)
}

func (s *HandlerSuite) TestParse() {
	s.Run("valid title", func() {
		s.service.EXPECT().ParseText("Wp/nl/Hoofdpagina", prefix.FullTitle, false).Return(prefix.Parsed{
			Project: "p", Lang: "nl", Prefix: "Wp/nl",
			Remainder: "Hoofdpagina", HasRemainder: true,
		})

		w := s.do(httptest.NewRequest(http.MethodGet, "/prefix?title=Wp/nl/Hoofdpagina", nil))
		s.Equal(http.StatusOK, w.Code)
		body := s.decode(w)
		s.Equal(true, body["valid"])
		s.Equal("Wp/nl", body["prefix"])
		s.Equal("Hoofdpagina", body["remainder"])
		s.Equal("full", body["mode"])
	})

	s.Run("parse failures are reported in the body", func() {
		title := prefix.Title{Namespace: 1, Text: "Wp/nl"}
		s.service.EXPECT().Parse(title, prefix.InfoPageOnly, true).Return(prefix.Parsed{Error: prefix.NotMainNamespace})

		w := s.do(httptest.NewRequest(http.MethodGet, "/prefix?title=Wp/nl&ns=1&mode=info&sister=true", nil))
		s.Equal(http.StatusOK, w.Code)
		body := s.decode(w)
		s.Equal(false, body["valid"])
		s.Equal("nomainnamespace", body["error"])
	})

	s.Run("an explicit namespace applies the namespace checks", func() {
		s.service.EXPECT().Parse(prefix.Title{Namespace: 0, Text: "Wp/fr"}, prefix.FullTitle, false).
			Return(prefix.Parsed{Error: prefix.NotTestWikiNamespace})

		w := s.do(httptest.NewRequest(http.MethodGet, "/prefix?title=Wp/fr&ns=0", nil))
		s.Equal(http.StatusOK, w.Code)
		body := s.decode(w)
		s.Equal(false, body["valid"])
		s.Equal("notestwikinamespace", body["error"])
	})

	s.Run("without a namespace only the text is parsed", func() {
		s.service.EXPECT().ParseText("Wp/fr", prefix.FullTitle, false).
			Return(prefix.Parsed{Project: "p", Lang: "fr", Prefix: "Wp/fr"})

		w := s.do(httptest.NewRequest(http.MethodGet, "/prefix?title=Wp/fr", nil))
		s.Equal(http.StatusOK, w.Code)
		s.Equal(true, s.decode(w)["valid"])
	})

	s.Run("bad query parameters", func() {
		for _, target := range []string{
			"/prefix",
			"/prefix?title=Wp/nl&ns=talk",
			"/prefix?title=Wp/nl&mode=partial",
			"/prefix?title=Wp/nl&sister=maybe",
		} {
			w := s.do(httptest.NewRequest(http.MethodGet, target, nil))
			testutil.AssertStatusAndError(s.T(), w, http.StatusBadRequest, string(dErrors.CodeValidation))
		}
	})
}

func (s *HandlerSuite) TestLanguage() {
	s.service.EXPECT().ValidLanguageCode("be-x-old").Return(true)

	w := s.do(httptest.NewRequest(http.MethodGet, "/languages/be-x-old", nil))
	s.Equal(http.StatusOK, w.Code)
	body := s.decode(w)
	s.Equal("be-x-old", body["code"])
	s.Equal(true, body["valid"])
}

func (s *HandlerSuite) TestStatus() {
	parsed := prefix.Parsed{Project: "p", Lang: "nl", Prefix: "Wp/nl"}

	s.Run("resolved", func() {
		s.service.EXPECT().ParseText("Wp/nl", prefix.FullTitle, false).Return(parsed)
		s.service.EXPECT().Status(gomock.Any(), parsed).Return(&incubator.WikiStatus{
			Prefix: "Wp/nl", Project: "p", Lang: "nl", Database: "nlwiki",
			State: wikistate.ExistingOpen, SubStatus: incubator.SubStatusBeforeIncubator,
			View: incubator.ViewExisting, URL: "https://nl.wikipedia.org",
		}, nil)

		w := s.do(httptest.NewRequest(http.MethodGet, "/wikis/status?title=Wp/nl", nil))
		s.Equal(http.StatusOK, w.Code)
		body := s.decode(w)
		s.Equal("existing", body["state"])
		s.Equal("nlwiki", body["database"])
	})

	s.Run("page index unavailable", func() {
		s.service.EXPECT().ParseText("Wp/nl", prefix.FullTitle, false).Return(parsed)
		s.service.EXPECT().Status(gomock.Any(), parsed).
			Return(nil, dErrors.New(dErrors.CodeUnavailable, "page index unavailable"))

		w := s.do(httptest.NewRequest(http.MethodGet, "/wikis/status?title=Wp/nl", nil))
		s.Equal(http.StatusServiceUnavailable, w.Code)
	})

	s.Run("invalid prefix", func() {
		bad := prefix.Parsed{Error: prefix.NoSlash}
		s.service.EXPECT().ParseText("Foo", prefix.FullTitle, false).Return(bad)
		s.service.EXPECT().Status(gomock.Any(), bad).
			Return(nil, dErrors.New(dErrors.CodeValidation, bad.Error.Error()))

		w := s.do(httptest.NewRequest(http.MethodGet, "/wikis/status?title=Foo", nil))
		s.Equal(http.StatusBadRequest, w.Code)
	})
}

func (s *HandlerSuite) TestURLAndLogo() {
	s.Run("url", func() {
		s.service.EXPECT().SubdomainURL("nl", "p", "Hoofdpagina").Return("https://nl.wikipedia.org/wiki/Hoofdpagina", nil)

		w := s.do(httptest.NewRequest(http.MethodGet, "/wikis/url?lang=nl&project=p&page=Hoofdpagina", nil))
		s.Equal(http.StatusOK, w.Code)
		body := s.decode(w)
		s.Equal("https://nl.wikipedia.org/wiki/Hoofdpagina", body["url"])
		s.NotEmpty(body["link_text"])
	})

	s.Run("missing setting", func() {
		s.service.EXPECT().LogoURL("nl", "p").Return("", dErrors.New(dErrors.CodeNotFound, "no logo configured"))

		w := s.do(httptest.NewRequest(http.MethodGet, "/wikis/logo?lang=nl&project=p", nil))
		s.Equal(http.StatusNotFound, w.Code)
	})

	s.Run("lang and project are required", func() {
		w := s.do(httptest.NewRequest(http.MethodGet, "/wikis/url?project=p", nil))
		s.Equal(http.StatusBadRequest, w.Code)
		w = s.do(httptest.NewRequest(http.MethodGet, "/wikis/logo?lang=nl", nil))
		s.Equal(http.StatusBadRequest, w.Code)
	})
}

func (s *HandlerSuite) TestTestWiki() {
	s.service.EXPECT().DisplayPrefix(gomock.Any()).DoAndReturn(func(v incubator.Viewer) string {
		project, _ := v.Prefs.Preference(incubator.PreferenceProject)
		code, _ := v.Prefs.Preference(incubator.PreferenceCode)
		assert.Equal(s.T(), "p", project)
		assert.Equal(s.T(), "fy", code)
		return "Wp/fy"
	})
	s.service.EXPECT().TestWikiParam("wt/nl").Return(prefix.Parsed{Project: "t", Lang: "nl", Prefix: "wt/nl"}, true)

	req := httptest.NewRequest(http.MethodGet, "/testwiki?testwiki=wt/nl", nil)
	req.Header.Set(HeaderTestWikiProject, "p")
	req.Header.Set(HeaderTestWikiCode, "fy")
	w := s.do(req)

	s.Equal(http.StatusOK, w.Code)
	body := s.decode(w)
	s.Equal("Wp/fy", body["display_prefix"])
	s.Equal(true, body["param_valid"])
	s.Equal("wt/nl", body["param_prefix"])
}

func (s *HandlerSuite) TestMainPage() {
	s.Run("found", func() {
		parsed := prefix.Parsed{Project: "p", Lang: "nl", Prefix: "Wp/nl", Remainder: "Foo", HasRemainder: true}
		s.service.EXPECT().ParseText("Wp/nl/Foo", prefix.FullTitle, false).Return(parsed)
		s.service.EXPECT().MainPage(gomock.Any(), "nl", "Wp/nl").
			Return(incubator.MainPage{Title: "Wp/nl/Hoofdpagina", Exists: true}, nil)

		w := s.do(httptest.NewRequest(http.MethodGet, "/pages/main?title=Wp/nl/Foo", nil))
		s.Equal(http.StatusOK, w.Code)
		body := s.decode(w)
		s.Equal("Wp/nl/Hoofdpagina", body["title"])
		s.Equal(true, body["exists"])
	})

	s.Run("invalid prefix skips the lookup", func() {
		s.service.EXPECT().ParseText("Wx/nl", prefix.FullTitle, false).
			Return(prefix.Parsed{Error: prefix.InvalidPrefix})

		w := s.do(httptest.NewRequest(http.MethodGet, "/pages/main?title=Wx/nl", nil))
		s.Equal(http.StatusBadRequest, w.Code)
	})
}

func (s *HandlerSuite) TestMyMainPage() {
	s.service.EXPECT().MyMainPage(gomock.Any(), "mainpage").Return(incubator.Redirect{Location: "/wiki/Wp/fy/Haadside"})

	w := s.do(httptest.NewRequest(http.MethodGet, "/pages/mine?goto=mainpage", nil))
	s.Equal(http.StatusFound, w.Code)
	s.Equal("/wiki/Wp/fy/Haadside", w.Header().Get("Location"))
}

func (s *HandlerSuite) TestRedirect() {
	title := prefix.Title{Text: "Wp/nl"}

	s.Run("redirects", func() {
		s.service.EXPECT().MainPageRedirect(gomock.Any(), title, "mainpage", "nl").
			Return(&incubator.Redirect{Location: "https://nl.wikipedia.org"}, nil)

		w := s.do(httptest.NewRequest(http.MethodGet, "/pages/redirect?title=Wp/nl&goto=mainpage&uselang=nl", nil))
		s.Equal(http.StatusFound, w.Code)
		s.Equal("https://nl.wikipedia.org", w.Header().Get("Location"))
	})

	s.Run("info page is shown", func() {
		s.service.EXPECT().MainPageRedirect(gomock.Any(), title, "", "").Return(nil, nil)

		w := s.do(httptest.NewRequest(http.MethodGet, "/pages/redirect?title=Wp/nl", nil))
		s.Equal(http.StatusNoContent, w.Code)
		s.Empty(w.Body.String())
	})

	s.Run("lookup failure", func() {
		s.service.EXPECT().MainPageRedirect(gomock.Any(), title, "", "").
			Return(nil, dErrors.New(dErrors.CodeInternal, "boom"))

		w := s.do(httptest.NewRequest(http.MethodGet, "/pages/redirect?title=Wp/nl", nil))
		s.Equal(http.StatusInternalServerError, w.Code)
		s.NotContains(w.Body.String(), "boom")
	})
}

func (s *HandlerSuite) TestContentLanguage() {
	s.service.EXPECT().ContentLanguage(prefix.Title{Text: "Wp/nl/Foo"}, "de").Return("nl", true)

	w := s.do(httptest.NewRequest(http.MethodGet, "/pages/language?title=Wp/nl/Foo&uselang=de", nil))
	s.Equal(http.StatusOK, w.Code)
	body := s.decode(w)
	s.Equal("nl", body["language"])
	s.Equal(true, body["in_test_wiki"])
}

func (s *HandlerSuite) TestInfoPage() {
	s.Run("options are forwarded", func() {
		s.service.EXPECT().InfoPage(gomock.Any(), "Wp/nl", gomock.Any(), "status=eligible", "mainpage=Wp/nl/Start").
			Return(&incubator.InfoPage{Prefix: "Wp/nl", SubStatus: incubator.SubStatusEligible}, nil)

		w := s.do(httptest.NewRequest(http.MethodGet, "/pages/info?title=Wp/nl&option=status%3Deligible&option=mainpage%3DWp/nl/Start", nil))
		s.Equal(http.StatusOK, w.Code)
	})

	s.Run("title is required", func() {
		w := s.do(httptest.NewRequest(http.MethodGet, "/pages/info", nil))
		s.Equal(http.StatusBadRequest, w.Code)
	})
}

func (s *HandlerSuite) TestEditCheck() {
	s.Run("decodes and defaults the action", func() {
		s.service.EXPECT().CheckEdit(gomock.Any(), prefix.Title{Namespace: 10, Text: "Foo"}, gomock.Any(), incubator.ActionEdit, false).
			Return(incubator.EditDecision{Message: incubator.MsgUnprefixed, Text: "Please use a prefix"}, nil)

		w := s.do(testutil.NewJSONRequest(s.T(), http.MethodPost, "/pages/edit-check", EditCheckRequest{Title: " Foo ", Namespace: 10}))

		s.Equal(http.StatusOK, w.Code)
		resp := s.decode(w)
		s.Equal(false, resp["allowed"])
		s.Equal(incubator.MsgUnprefixed, resp["message"])
	})

	s.Run("unknown fields are rejected", func() {
		w := s.do(httptest.NewRequest(http.MethodPost, "/pages/edit-check", bytes.NewBufferString(`{"title":"Foo","user":"x"}`)))
		s.Equal(http.StatusBadRequest, w.Code)
	})

	s.Run("title is required", func() {
		w := s.do(httptest.NewRequest(http.MethodPost, "/pages/edit-check", bytes.NewBufferString(`{"title":"  "}`)))
		testutil.AssertStatusAndError(s.T(), w, http.StatusBadRequest, string(dErrors.CodeValidation))
	})
}

func (s *HandlerSuite) TestMoveCheck() {
	s.service.EXPECT().CheckMove(prefix.Title{Text: "Wp/nl/Foo"}, gomock.Any()).Return(incubator.EditDecision{Allowed: true})

	w := s.do(httptest.NewRequest(http.MethodPost, "/pages/move-check", bytes.NewBufferString(`{"title":"Wp/nl/Foo"}`)))
	s.Equal(http.StatusOK, w.Code)
	s.Equal(true, s.decode(w)["allowed"])
}

func (s *HandlerSuite) TestReload() {
	s.Run("without token", func() {
		w := s.do(httptest.NewRequest(http.MethodPost, "/admin/registry/reload", nil))
		s.Equal(http.StatusUnauthorized, w.Code)
	})

	s.Run("with token", func() {
		s.service.EXPECT().Reload(gomock.Any()).Return(nil)

		req := httptest.NewRequest(http.MethodPost, "/admin/registry/reload", nil)
		req.Header.Set(middleware.AdminTokenHeader, testAdminToken)
		w := s.do(req)
		s.Equal(http.StatusNoContent, w.Code)
	})

	s.Run("rejected registry", func() {
		s.service.EXPECT().Reload(gomock.Any()).Return(dErrors.New(dErrors.CodeValidation, "registry file rejected"))

		req := httptest.NewRequest(http.MethodPost, "/admin/registry/reload", nil)
		req.Header.Set(middleware.AdminTokenHeader, testAdminToken)
		w := s.do(req)
		s.Equal(http.StatusBadRequest, w.Code)
	})
}

func TestViewerFrom(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/?testwiki=Wp/nl", nil)
	v := viewerFrom(req)
	assert.Equal(t, "Wp/nl", v.TestWiki)
	assert.Equal(t, "en", v.Lang)
	_, ok := v.Prefs.Preference(incubator.PreferenceProject)
	assert.False(t, ok)
}
