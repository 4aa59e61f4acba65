package incubator

import (
	"context"

	"incubator/internal/prefix"
)

// Preference names holding a user's chosen test wiki.
const (
	PreferenceProject = "incubatortestwiki-project"
	PreferenceCode    = "incubatortestwiki-code"
)

//go:generate mockgen -source=ports.go -destination=mocks/ports-mocks.go -package=mocks PageIndex,Messages,Preferences

// PageIndex answers whether a page exists on the platform.
type PageIndex interface {
	Exists(ctx context.Context, title prefix.Title) (bool, error)
}

// Messages renders localized interface messages.
type Messages interface {
	Message(key, lang string, params ...string) string
}

// Preferences exposes the current user's saved options.
type Preferences interface {
	Preference(name string) (string, bool)
}

// PreferenceMap is a Preferences backed by a plain map.
type PreferenceMap map[string]string

func (p PreferenceMap) Preference(name string) (string, bool) {
	v, ok := p[name]
	return v, ok && v != ""
}

// Viewer is the request-scoped view of the current user: the raw testwiki
// URL parameter, saved preferences and interface language.
type Viewer struct {
	TestWiki string
	Prefs    Preferences
	Lang     string
}

func (v Viewer) preference(name string) string {
	if v.Prefs == nil {
		return ""
	}
	val, _ := v.Prefs.Preference(name)
	return val
}
