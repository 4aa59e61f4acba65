// Package messages is a static catalog of localized interface messages.
package messages

import (
	"maps"
	"strconv"
	"strings"
)

// FallbackLanguage is consulted when a message has no text in the requested language.
const FallbackLanguage = "en"

// Catalog maps message key -> language code -> text. Texts may reference
// parameters as $1, $2, ...
type Catalog struct {
	texts map[string]map[string]string
}

// New copies texts into a Catalog.
func New(texts map[string]map[string]string) *Catalog {
	c := &Catalog{texts: make(map[string]map[string]string, len(texts))}
	for key, byLang := range texts {
		c.texts[key] = maps.Clone(byLang)
	}
	return c
}

// Message renders key in lang, falling back to FallbackLanguage and then to
// the key itself between ⧼ and ⧽.
func (c *Catalog) Message(key, lang string, params ...string) string {
	text, ok := c.Lookup(key, lang)
	if !ok {
		return "⧼" + key + "⧽"
	}
	return expand(text, params)
}

// Lookup returns the raw text of key in lang or in the fallback language.
func (c *Catalog) Lookup(key, lang string) (string, bool) {
	byLang, ok := c.texts[key]
	if !ok {
		return "", false
	}
	if text, ok := byLang[strings.ToLower(lang)]; ok {
		return text, true
	}
	text, ok := byLang[FallbackLanguage]
	return text, ok
}

func expand(text string, params []string) string {
	if len(params) == 0 {
		return text
	}
	pairs := make([]string, 0, 2*len(params))
	// Higher numbers first so $1 does not match the start of $10.
	for i := len(params); i >= 1; i-- {
		pairs = append(pairs, "$"+strconv.Itoa(i), params[i-1])
	}
	return strings.NewReplacer(pairs...).Replace(text)
}
