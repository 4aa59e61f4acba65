package messages

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMessage(t *testing.T) {
	c := New(map[string]map[string]string{
		"mainpage": {"en": "Main Page", "nl": "Hoofdpagina"},
		"wminc-error-wiki-exists": {
			"en": "This wiki already exists. You can find this page on $1.",
		},
		"many": {"en": "$1 $2 $3 $4 $5 $6 $7 $8 $9 $10"},
	})

	t.Run("requested language", func(t *testing.T) {
		assert.Equal(t, "Hoofdpagina", c.Message("mainpage", "nl"))
	})
	t.Run("language code is case insensitive", func(t *testing.T) {
		assert.Equal(t, "Hoofdpagina", c.Message("mainpage", "NL"))
	})
	t.Run("falls back to english", func(t *testing.T) {
		assert.Equal(t, "Main Page", c.Message("mainpage", "xyz"))
	})
	t.Run("parameters", func(t *testing.T) {
		assert.Equal(t,
			"This wiki already exists. You can find this page on fr.wikipedia.org.",
			c.Message("wminc-error-wiki-exists", "de", "fr.wikipedia.org"))
	})
	t.Run("ten parameters", func(t *testing.T) {
		assert.Equal(t, "a b c d e f g h i j",
			c.Message("many", "en", "a", "b", "c", "d", "e", "f", "g", "h", "i", "j"))
	})
	t.Run("unknown key", func(t *testing.T) {
		assert.Equal(t, "⧼nope⧽", c.Message("nope", "en"))
		_, ok := c.Lookup("nope", "en")
		assert.False(t, ok)
	})
}
