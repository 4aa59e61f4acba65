package prefix

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"incubator/internal/registry"
)

type ParserSuite struct {
	suite.Suite
	reg    *registry.Registry
	parser *Parser
}

func TestParserSuite(t *testing.T) {
	suite.Run(t, new(ParserSuite))
}

func (s *ParserSuite) SetupTest() {
	reg, err := registry.New(registry.Spec{
		Projects: []registry.Project{
			{Code: "p", Name: "Wikipedia"},
			{Code: "t", Name: "Wiktionary"},
			{Code: "b", Name: "Wikibooks"},
		},
		SisterProjects: []registry.Project{{Code: "s", Name: "Wikisource"}},
	})
	s.Require().NoError(err)
	s.reg = reg
	s.parser = NewParser(reg)
}

// =============================================================================
// Valid prefixes
// =============================================================================

func (s *ParserSuite) TestEveryConfiguredPairParses() {
	langs := []string{"en", "fr", "nds", "pt-br", "be-x-old"}
	for _, code := range s.reg.ProjectCodes(false) {
		for _, lang := range langs {
			title := "W" + code + "/" + lang
			got := s.parser.Parse(title, InfoPageOnly, false)
			s.Equal(NoError, got.Error, title)
			s.Equal(title, got.Prefix)
			s.Equal(code, got.Project)
			s.Equal(lang, got.Lang)
		}
	}
}

func (s *ParserSuite) TestFullTitleRemainder() {
	got := s.parser.Parse("Wp/fr/Some Page", FullTitle, false)
	s.True(got.OK())
	s.Equal("Wp/fr", got.Prefix)
	s.Equal("Some Page", got.Remainder)
	s.True(got.HasRemainder)

	s.Run("nested subpages stay in the remainder", func() {
		got := s.parser.Parse("Wt/nl/a/b/c", FullTitle, false)
		s.True(got.OK())
		s.Equal("a/b/c", got.Remainder)
	})
	s.Run("bare prefix in full mode", func() {
		got := s.parser.Parse("Wp/fr", FullTitle, false)
		s.True(got.OK())
		s.True(got.HasRemainder)
		s.Empty(got.Remainder)
	})
	s.Run("info mode never sets a remainder", func() {
		got := s.parser.Parse("Wp/fr", InfoPageOnly, false)
		s.False(got.HasRemainder)
	})
}

func (s *ParserSuite) TestInfoPageRejectsTrailingSegment() {
	s.Equal(NoError, s.parser.Parse("Wp/fr", InfoPageOnly, false).Error)

	got := s.parser.Parse("Wp/fr/Extra", InfoPageOnly, false)
	s.Equal(InvalidPrefix, got.Error)
	s.Equal("Wp/fr", got.Prefix, "prefix is kept as a diagnostic value")
}

func (s *ParserSuite) TestSisterProjects() {
	s.Equal(InvalidPrefix, s.parser.Parse("Ws/la", InfoPageOnly, false).Error)
	s.Equal(NoError, s.parser.Parse("Ws/la", InfoPageOnly, true).Error)
	s.Equal(NoError, s.parser.Parse("Ws/la/Pagina", FullTitle, true).Error)
}

// =============================================================================
// Error precedence
// =============================================================================

func (s *ParserSuite) TestErrors() {
	tests := []struct {
		name  string
		title string
		mode  Mode
		want  ParseError
	}{
		{"no slash", "NoSlashHere", FullTitle, NoSlash},
		{"no slash in info mode", "Wp", InfoPageOnly, NoSlash},
		{"unknown project", "Wx/fr", InfoPageOnly, InvalidPrefix},
		{"lowercase w", "wp/fr", InfoPageOnly, InvalidPrefix},
		{"uppercase language", "Wp/EN", InfoPageOnly, InvalidPrefix},
		{"underscore in language", "Wp/en_us", InfoPageOnly, InvalidPrefix},
		{"digit in language", "Wp/en1", FullTitle, InvalidPrefix},
		{"empty language", "Wp/", FullTitle, InvalidPrefix},
		{"empty remainder after slash", "Wp/fr/", FullTitle, InvalidPrefix},
		{"trailing newline", "Wp/fr\n", InfoPageOnly, InvalidPrefix},
		{"grammar ok but one letter language", "Wp/e", InfoPageOnly, InvalidLanguageCode},
		{"grammar ok but language too long", "Wp/abcdefghij", InfoPageOnly, InvalidLanguageCode},
		{"grammar ok but two subtags", "Wp/zh-min-nan", FullTitle, InvalidLanguageCode},
		{"grammar ok but leading hyphen", "Wp/-en", InfoPageOnly, InvalidLanguageCode},
	}
	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.Equal(tt.want, s.parser.Parse(tt.title, tt.mode, false).Error)
		})
	}
}

func (s *ParserSuite) TestNoSlashLeavesPrefixEmpty() {
	got := s.parser.Parse("Main Page", FullTitle, false)
	s.Equal(NoSlash, got.Error)
	s.Empty(got.Project)
	s.Empty(got.Lang)
	s.Empty(got.Prefix)
	s.False(got.HasRemainder)
}

func (s *ParserSuite) TestInvalidLanguageKeepsRemainder() {
	got := s.parser.Parse("Wp/abcdefghij/Page", FullTitle, false)
	s.Equal(InvalidLanguageCode, got.Error)
	s.True(got.HasRemainder)
	s.Equal("Page", got.Remainder)
}

func (s *ParserSuite) TestNamespaces() {
	s.Run("outside test wiki namespaces", func() {
		got := s.parser.ParseTitle(Title{Namespace: registry.NamespaceProject, Text: "Wp/fr"}, FullTitle, false)
		s.Equal(NotTestWikiNamespace, got.Error)
		s.Empty(got.Prefix)
	})
	s.Run("info page outside main namespace", func() {
		got := s.parser.ParseTitle(Title{Namespace: registry.NamespaceTalk, Text: "Wp/fr"}, InfoPageOnly, false)
		s.Equal(NotMainNamespace, got.Error)
	})
	s.Run("full title in talk namespace", func() {
		got := s.parser.ParseTitle(Title{Namespace: registry.NamespaceTalk, Text: "Wp/fr/Page"}, FullTitle, false)
		s.True(got.OK())
		s.Equal("Page", got.Remainder)
	})
	s.Run("namespace check precedes grammar", func() {
		got := s.parser.ParseTitle(Title{Namespace: registry.NamespaceProject, Text: "garbage"}, InfoPageOnly, false)
		s.Equal(NotTestWikiNamespace, got.Error)
	})
}

func (s *ParserSuite) TestIdempotent() {
	for _, title := range []string{"Wp/fr/Page", "Wx/fr", "Wp/e", "plain"} {
		s.Equal(s.parser.Parse(title, FullTitle, true), s.parser.Parse(title, FullTitle, true))
	}
}

func (s *ParserSuite) TestErrorCodes() {
	s.Equal("notestwikinamespace", NotTestWikiNamespace.String())
	s.Equal("nomainnamespace", NotMainNamespace.String())
	s.Equal("noslash", NoSlash.String())
	s.Equal("invalidlangcode", InvalidLanguageCode.String())
	s.Equal("invalidprefix", InvalidPrefix.String())
	s.Empty(NoError.String())

	s.NoError(Parsed{}.Err())
	s.ErrorIs(Parsed{Error: NoSlash}.Err(), NoSlash)
}

// =============================================================================
// Grammar construction
// =============================================================================

func (s *ParserSuite) TestNoProjectsNeverMatches() {
	reg, err := registry.New(registry.Spec{})
	s.Require().NoError(err)
	p := NewParser(reg)
	s.Equal(InvalidPrefix, p.Parse("Wp/fr", InfoPageOnly, true).Error)
}

func (s *ParserSuite) TestPunctuationCodesAreLiteral() {
	reg, err := registry.New(registry.Spec{
		Projects: []registry.Project{{Code: "a", Name: "A"}, {Code: "-", Name: "Dash"}, {Code: "z", Name: "Z"}},
	})
	s.Require().NoError(err)
	p := NewParser(reg)

	s.True(p.Parse("W-/fr", InfoPageOnly, false).OK())
	s.True(p.Parse("Wz/fr", InfoPageOnly, false).OK())
	s.Equal(InvalidPrefix, p.Parse("Wm/fr", InfoPageOnly, false).Error, "no a-z range is formed")
}

func (s *ParserSuite) TestMultibyteProjectCode() {
	reg, err := registry.New(registry.Spec{Projects: []registry.Project{{Code: "é", Name: "Accent"}}})
	s.Require().NoError(err)
	got := NewParser(reg).Parse("Wé/fr/Page", FullTitle, false)
	s.True(got.OK())
	s.Equal("é", got.Project)
	s.Equal("Page", got.Remainder)
}
