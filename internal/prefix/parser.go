package prefix

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"incubator/internal/registry"
)

// Parser validates titles against the prefix grammar of one registry. The
// grammars are compiled once; a Parser is safe for concurrent use.
type Parser struct {
	reg *registry.Registry
	// grammars[mode][allowSister]; nil when there is no project code to match.
	grammars [2][2]*regexp.Regexp
}

// NewParser compiles the prefix grammars for reg.
func NewParser(reg *registry.Registry) *Parser {
	p := &Parser{reg: reg}
	for _, mode := range []Mode{InfoPageOnly, FullTitle} {
		for i, sister := range []bool{false, true} {
			p.grammars[mode][i] = compileGrammar(reg.ProjectCodes(sister), mode)
		}
	}
	return p
}

func compileGrammar(codes []string, mode Mode) *regexp.Regexp {
	if len(codes) == 0 {
		return nil
	}
	var b strings.Builder
	b.WriteString(`^W[`)
	for _, code := range codes {
		b.WriteString(escapeClassMember(code))
	}
	b.WriteString(`]/[a-z-]+`)
	if mode == FullTitle {
		b.WriteString(`(/.+)?`)
	}
	b.WriteString(`$`)
	return regexp.MustCompile(b.String())
}

// escapeClassMember escapes code for use inside a character class. Every
// ASCII punctuation character is escaped so "-", "]", "^" and "\" stay literal.
func escapeClassMember(code string) string {
	var b strings.Builder
	for _, r := range code {
		if r < utf8.RuneSelf && (unicode.IsPunct(r) || unicode.IsSymbol(r)) {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Registry returns the registry the parser was built for.
func (p *Parser) Registry() *registry.Registry { return p.reg }

// ValidLanguageCode checks code against the registry's length bound.
func (p *Parser) ValidLanguageCode(code string) bool {
	return ValidLanguageCode(code, p.reg.MaxLanguageCodeLength())
}

// ParseTitle parses a platform title. Titles outside the test wiki
// namespaces fail immediately, as do non-main namespaces in InfoPageOnly mode.
func (p *Parser) ParseTitle(t Title, mode Mode, allowSister bool) Parsed {
	if !p.reg.IsTestWikiNamespace(t.Namespace) {
		return Parsed{Error: NotTestWikiNamespace}
	}
	if mode == InfoPageOnly && t.Namespace != registry.NamespaceMain {
		return Parsed{Error: NotMainNamespace}
	}
	return p.Parse(t.Text, mode, allowSister)
}

// Parse parses a raw title text whose namespace is not known.
//
// Checks are reported in a fixed order. A title without a slash is NoSlash.
// Otherwise a grammar mismatch (InvalidPrefix) wins over an invalid
// language code, since the grammar is the authoritative check.
func (p *Parser) Parse(title string, mode Mode, allowSister bool) Parsed {
	first, rest, hasSlash := strings.Cut(title, "/")
	if !hasSlash {
		return Parsed{Error: NoSlash}
	}

	lang, _, _ := strings.Cut(rest, "/")
	out := Parsed{Project: secondRune(first), Lang: lang}
	out.Prefix = "W" + out.Project + "/" + out.Lang

	grammarOK := p.matchGrammar(title, mode, allowSister)
	switch {
	case !grammarOK:
		out.Error = InvalidPrefix
	case !p.ValidLanguageCode(out.Lang):
		out.Error = InvalidLanguageCode
	}

	if mode == FullTitle && grammarOK {
		out.HasRemainder = true
		if n := len(out.Prefix) + 1; n <= len(title) {
			out.Remainder = title[n:]
		}
	}
	return out
}

func (p *Parser) matchGrammar(title string, mode Mode, allowSister bool) bool {
	i := 0
	if allowSister {
		i = 1
	}
	re := p.grammars[mode][i]
	return re != nil && re.MatchString(title)
}

func secondRune(s string) string {
	_, size := utf8.DecodeRuneInString(s)
	if size >= len(s) {
		return ""
	}
	r, n := utf8.DecodeRuneInString(s[size:])
	if r == utf8.RuneError && n <= 1 {
		return s[size : size+n]
	}
	return string(r)
}
