package incubator

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"incubator/internal/prefix"
	"incubator/internal/registry"
)

// TestWikiParam validates a testwiki URL parameter such as "wp/nl". The
// parameter must be a bare info page prefix naming a project and a
// language; the returned prefix is lowercased.
func (s *Service) TestWikiParam(raw string) (prefix.Parsed, bool) {
	return testWikiParam(s.Snapshot(), raw)
}

func testWikiParam(snap *Snapshot, raw string) (prefix.Parsed, bool) {
	if raw == "" {
		return prefix.Parsed{}, false
	}
	parsed := snap.Parser.Parse(upperFirst(raw), prefix.InfoPageOnly, false)
	if !parsed.OK() || parsed.Project == "" || parsed.Lang == "" {
		return prefix.Parsed{}, false
	}
	parsed.Prefix = strings.ToLower(parsed.Prefix)
	return parsed, true
}

func upperFirst(s string) string {
	r, n := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[n:]
}

// testWiki is the viewer's project and language: the URL parameter when
// valid, the saved preferences otherwise.
func testWiki(snap *Snapshot, viewer Viewer) (project, code string) {
	if p, ok := testWikiParam(snap, viewer.TestWiki); ok {
		return p.Project, p.Lang
	}
	return viewer.preference(PreferenceProject), viewer.preference(PreferenceCode)
}

// contentProject returns the code of the viewer's test wiki project when
// it is a prefixed project.
func contentProject(snap *Snapshot, viewer Viewer) (string, bool) {
	project, _ := testWiki(snap, viewer)
	p, ok := snap.Registry.Project(project, false)
	if !ok {
		return "", false
	}
	return p.Code, true
}

// HasContentProject reports whether the viewer works in a prefixed test wiki.
func (s *Service) HasContentProject(viewer Viewer) bool {
	_, ok := contentProject(s.Snapshot(), viewer)
	return ok
}

// DisplayPrefix is the viewer's test wiki prefix. Viewers without a
// prefixed project get their raw project value back, e.g. "inc" or "none".
func (s *Service) DisplayPrefix(viewer Viewer) string {
	return displayPrefix(s.Snapshot(), viewer)
}

func displayPrefix(snap *Snapshot, viewer Viewer) string {
	project, code := testWiki(snap, viewer)
	return prefixFor(snap, project, code, false)
}

// PrefixFor builds the prefix of project and code. project may be a code
// or a name. Unknown projects are returned unchanged.
func (s *Service) PrefixFor(project, code string, allowSister bool) string {
	return prefixFor(s.Snapshot(), project, code, allowSister)
}

func prefixFor(snap *Snapshot, project, code string, allowSister bool) string {
	if p, ok := snap.Registry.Project(project, allowSister); ok {
		return "W" + p.Code + "/" + code
	}
	return project
}

// ShouldShowUnprefixedError reports whether title is an unprefixed page in
// a test wiki namespace that the viewer should be warned about.
func (s *Service) ShouldShowUnprefixedError(title prefix.Title, viewer Viewer) bool {
	return shouldShowUnprefixedError(s.Snapshot(), title, viewer)
}

func shouldShowUnprefixedError(snap *Snapshot, title prefix.Title, viewer Viewer) bool {
	reg := snap.Registry
	switch {
	case snap.Parser.Parse(title.Text, prefix.FullTitle, false).OK():
		return false
	case displayPrefix(snap, viewer) == reg.ProjectSite().Short:
		return false
	case !reg.IsTestWikiNamespace(title.Namespace):
		return false
	case isCategory(title.Namespace) && isPseudoCategory(reg, title.Text):
		return false
	}
	return true
}

func isCategory(ns int) bool {
	return ns == registry.NamespaceCategory || ns == registry.NamespaceCategoryTalk
}

func isPseudoCategory(reg *registry.Registry, text string) bool {
	for _, name := range reg.PseudoCategoryNamespaces() {
		if rest, ok := strings.CutPrefix(text, name+":"); ok && rest != "" {
			return true
		}
	}
	return false
}

// prefixedTitle suggests where an unprefixed page belongs in the viewer's
// test wiki. Test wiki namespaces keep their namespace in front; others
// move it behind the prefix.
func prefixedTitle(snap *Snapshot, viewer Viewer, text string, ns int) string {
	p := displayPrefix(snap, viewer)
	name := snap.Registry.NamespaceName(ns)
	if snap.Registry.IsTestWikiNamespace(ns) {
		if name == "" {
			return p + "/" + text
		}
		return name + ":" + p + "/" + text
	}
	return p + "/" + name + ":" + text
}
