// Package prefix parses incubator page titles of the form "Wx/lang[/Page]".
//
// A prefix names a test wiki: "W", a one-character project code and a
// language code, e.g. "Wp/nl" for a Dutch Wikipedia in incubation. Parse
// results carry their error as data; nothing in this package logs or panics.
package prefix

// Mode selects which titles the grammar accepts.
type Mode int

const (
	// InfoPageOnly accepts the bare prefix ("Wp/nl").
	InfoPageOnly Mode = iota
	// FullTitle also accepts a trailing page ("Wp/nl/Hoofdpagina").
	FullTitle
)

func (m Mode) String() string {
	if m == FullTitle {
		return "full"
	}
	return "info"
}

// ParseError classifies why a title is not a valid prefixed title.
type ParseError int

const (
	NoError ParseError = iota
	NotTestWikiNamespace
	NotMainNamespace
	NoSlash
	InvalidLanguageCode
	InvalidPrefix
)

var parseErrorCodes = map[ParseError]string{
	NoError:              "",
	NotTestWikiNamespace: "notestwikinamespace",
	NotMainNamespace:     "nomainnamespace",
	NoSlash:              "noslash",
	InvalidLanguageCode:  "invalidlangcode",
	InvalidPrefix:        "invalidprefix",
}

// String returns the wire code of the error, or "" for NoError.
func (e ParseError) String() string {
	return parseErrorCodes[e]
}

// Error lets a ParseError travel as an error where callers want one.
func (e ParseError) Error() string {
	return "invalid prefix: " + e.String()
}

// Title is a platform title: a namespace and the title text without the
// namespace name.
type Title struct {
	Namespace int
	Text      string
}

// Parsed is the result of parsing a title.
//
// Project, Lang and Prefix are best-effort values and stay set when Error is
// InvalidLanguageCode or InvalidPrefix. They are empty when the title has no
// slash or failed a namespace check.
type Parsed struct {
	Project string
	Lang    string
	Prefix  string
	// Remainder is the page title after "Prefix/". It is only computed in
	// FullTitle mode when the grammar matched; HasRemainder reports that.
	Remainder    string
	HasRemainder bool
	Error        ParseError
}

// OK reports whether the title carries a valid prefix.
func (p Parsed) OK() bool { return p.Error == NoError }

// Err returns the parse error as an error value, or nil.
func (p Parsed) Err() error {
	if p.Error == NoError {
		return nil
	}
	return p.Error
}

// IsInfoPage reports whether the parsed title is the bare prefix itself.
func (p Parsed) IsInfoPage(title string) bool {
	return p.OK() && p.Prefix == title
}
