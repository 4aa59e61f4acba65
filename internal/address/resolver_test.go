package address

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"incubator/internal/registry"
	"incubator/internal/sitesettings"
)

type ResolverSuite struct {
	suite.Suite
	resolver *Resolver
}

func TestResolverSuite(t *testing.T) {
	suite.Run(t, new(ResolverSuite))
}

func (s *ResolverSuite) SetupTest() {
	reg, err := registry.New(registry.Spec{
		Projects: []registry.Project{
			{Code: "p", Name: "Wikipedia"},
			{Code: "t", Name: "Wiktionary"},
		},
		SisterProjects:       []registry.Project{{Code: "s", Name: "Wikisource"}},
		MultilingualProjects: []registry.Project{{Code: "meta", Name: "Meta-Wiki"}},
		ProjectDatabases:     map[string]string{"p": "wiki"},
	})
	s.Require().NoError(err)

	settings := sitesettings.New(map[string]map[string]string{
		SettingServer: {
			"default":      "//$lang.$site.org",
			"wiki":         "//$lang.wikipedia.org",
			"be_x_oldwiki": "//be-tarask.wikipedia.org",
		},
		SettingLogo: {
			"default": "$stdlogo",
			"frwiki":  "//upload.wikimedia.org/custom/fr.png",
		},
	})
	s.resolver = NewResolver(reg, settings)
}

// =============================================================================
// Subdomain URLs
// =============================================================================

func (s *ResolverSuite) TestSubdomainURL() {
	tests := []struct {
		name    string
		lang    string
		project string
		page    string
		want    string
	}{
		{"override suffix", "fr", "p", "", "//fr.wikipedia.org"},
		{"project name", "fr", "Wikipedia", "", "//fr.wikipedia.org"},
		{"lowercased name as suffix", "nl", "t", "", "//nl.wiktionary.org"},
		{"sister project", "la", "s", "", "//la.wikisource.org"},
		{"language case and underscore", "PT_BR", "t", "", "//pt-br.wiktionary.org"},
		{"wiki specific entry", "be-x-old", "p", "", "//be-tarask.wikipedia.org"},
		{"page through article path", "fr", "p", "Accueil", "//fr.wikipedia.org/wiki/Accueil"},
	}
	for _, tt := range tests {
		s.Run(tt.name, func() {
			got, ok := s.resolver.SubdomainURL(tt.lang, tt.project, tt.page)
			s.True(ok)
			s.Equal(tt.want, got)
		})
	}
}

func (s *ResolverSuite) TestMultilingualProject() {
	got, ok := s.resolver.SubdomainURL("meta", "Wikipedia", "")
	s.True(ok)
	s.Equal("//meta.wikipedia.org", got)

	got, ok = s.resolver.Setting(SettingServer, "xx", "Meta-Wiki")
	s.True(ok)
	s.Equal("//xx..org", got, "multilingual projects have no site name")
}

func (s *ResolverSuite) TestWithoutSettingsTable() {
	reg, err := registry.New(registry.Spec{Projects: []registry.Project{{Code: "p", Name: "Wikipedia"}}})
	s.Require().NoError(err)
	r := NewResolver(reg, nil)

	_, ok := r.SubdomainURL("fr", "p", "Page")
	s.False(ok)
	_, ok = r.LogoURL("fr", "p")
	s.False(ok)
}

func (s *ResolverSuite) TestCustomArticlePath() {
	reg, err := registry.New(registry.Spec{
		Projects:    []registry.Project{{Code: "p", Name: "Wikipedia"}},
		ArticlePath: "/w/index.php?title=$1",
	})
	s.Require().NoError(err)
	r := NewResolver(reg, sitesettings.New(map[string]map[string]string{
		SettingServer: {"default": "https://$lang.$site.org"},
	}))

	got, ok := r.SubdomainURL("de", "p", "Hauptseite")
	s.True(ok)
	s.Equal("https://de.wikipedia.org/w/index.php?title=Hauptseite", got)
}

// =============================================================================
// Logos and link text
// =============================================================================

func (s *ResolverSuite) TestLogoURL() {
	s.Run("standard logo template", func() {
		got, ok := s.resolver.LogoURL("nl", "t")
		s.True(ok)
		s.Equal("//upload.wikimedia.org/wiktionary/nl/b/bc/Wiki.png", got)
	})
	s.Run("wiki specific logo", func() {
		got, ok := s.resolver.LogoURL("fr", "p")
		s.True(ok)
		s.Equal("//upload.wikimedia.org/custom/fr.png", got)
	})
}

func (s *ResolverSuite) TestLinkText() {
	s.Equal("fr.wikipedia.org/wiki/Accueil", LinkText("//fr.wikipedia.org/wiki/Accueil"))
	s.Equal("https://fr.wikipedia.org", LinkText("https://fr.wikipedia.org"))
	s.Empty(LinkText(""))
}
