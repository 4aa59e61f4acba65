package registry

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type RegistrySuite struct {
	suite.Suite
	reg *Registry
}

func TestRegistrySuite(t *testing.T) {
	suite.Run(t, new(RegistrySuite))
}

func (s *RegistrySuite) SetupTest() {
	reg, err := New(Spec{
		Projects: []Project{
			{Code: "p", Name: "Wikipedia"},
			{Code: "t", Name: "Wiktionary"},
		},
		SisterProjects:       []Project{{Code: "s", Name: "Wikisource"}},
		MultilingualProjects: []Project{{Code: "meta", Name: "Meta-Wiki"}},
		ProjectDatabases:     map[string]string{"p": "wiki"},
		ExistingWikis:        []string{"enwiki", " NLWIKI "},
		ClosedWikis:          []string{"aawiki"},
	})
	s.Require().NoError(err)
	s.reg = reg
}

// =============================================================================
// Construction
// =============================================================================

func (s *RegistrySuite) TestDefaults() {
	s.Equal(DefaultMaxLanguageCodeLength, s.reg.MaxLanguageCodeLength())
	s.Equal(DefaultArticlePath, s.reg.ArticlePath())
	s.Equal(DefaultStandardLogo, s.reg.StandardLogo())
	s.Equal("inc", s.reg.ProjectSite().Short)
	for _, ns := range DefaultTestWikiNamespaces {
		s.True(s.reg.IsTestWikiNamespace(ns))
	}
	s.False(s.reg.IsTestWikiNamespace(NamespaceProject))
}

func (s *RegistrySuite) TestRejectsInvalidProjects() {
	s.Run("multi-character code", func() {
		_, err := New(Spec{Projects: []Project{{Code: "wp", Name: "Wikipedia"}}})
		s.Error(err)
	})
	s.Run("duplicate code", func() {
		_, err := New(Spec{Projects: []Project{{Code: "p", Name: "A"}, {Code: "p", Name: "B"}}})
		s.Error(err)
	})
	s.Run("sister code shadows project", func() {
		_, err := New(Spec{
			Projects:       []Project{{Code: "p", Name: "Wikipedia"}},
			SisterProjects: []Project{{Code: "p", Name: "Wikisource"}},
		})
		s.Error(err)
	})
	s.Run("negative code length", func() {
		_, err := New(Spec{MaxLanguageCodeLength: -1})
		s.Error(err)
	})
}

// =============================================================================
// Lookups
// =============================================================================

func (s *RegistrySuite) TestProjectCodes() {
	s.Equal([]string{"p", "t"}, s.reg.ProjectCodes(false))
	s.Equal([]string{"p", "t", "s"}, s.reg.ProjectCodes(true))
}

func (s *RegistrySuite) TestProjectLookup() {
	s.Run("by code", func() {
		p, ok := s.reg.Project("t", false)
		s.True(ok)
		s.Equal("Wiktionary", p.Name)
	})
	s.Run("by name", func() {
		p, ok := s.reg.Project("Wikipedia", false)
		s.True(ok)
		s.Equal("p", p.Code)
	})
	s.Run("sister only when allowed", func() {
		_, ok := s.reg.Project("s", false)
		s.False(ok)
		p, ok := s.reg.Project("Wikisource", true)
		s.True(ok)
		s.Equal("s", p.Code)
	})
	s.Run("unknown and empty", func() {
		_, ok := s.reg.Project("x", true)
		s.False(ok)
		_, ok = s.reg.Project("", true)
		s.False(ok)
	})
	s.Run("multilingual", func() {
		p, ok := s.reg.Multilingual("Meta-Wiki")
		s.True(ok)
		s.Equal("meta", p.Code)
	})
}

func (s *RegistrySuite) TestWikiTables() {
	s.True(s.reg.CanCheckDB())
	s.True(s.reg.IsExisting("enwiki"))
	s.True(s.reg.IsExisting("nlwiki"), "entries are trimmed and lowercased")
	s.False(s.reg.IsExisting("dewiki"))
	s.True(s.reg.IsClosed("aawiki"))

	suffix, ok := s.reg.DatabaseSuffix("p")
	s.True(ok)
	s.Equal("wiki", suffix)
	_, ok = s.reg.DatabaseSuffix("t")
	s.False(ok)
}

func (s *RegistrySuite) TestUnsetTables() {
	s.Run("existing unset", func() {
		reg, err := New(Spec{ProjectDatabases: map[string]string{}})
		s.Require().NoError(err)
		s.False(reg.CanCheckDB())
	})
	s.Run("databases unset", func() {
		reg, err := New(Spec{ExistingWikis: []string{}})
		s.Require().NoError(err)
		s.False(reg.CanCheckDB())
	})
	s.Run("both known but empty", func() {
		reg, err := New(Spec{ExistingWikis: []string{}, ProjectDatabases: map[string]string{}})
		s.Require().NoError(err)
		s.True(reg.CanCheckDB())
	})
}

func (s *RegistrySuite) TestAccessorsReturnCopies() {
	projects := s.reg.Projects()
	projects[0].Name = "changed"
	p, _ := s.reg.Project("p", false)
	s.Equal("Wikipedia", p.Name)
}

// =============================================================================
// Deployment file
// =============================================================================

const sampleFile = `
projects:
  - {code: p, name: Wikipedia}
  - {code: b, name: Wikibooks}
sister_projects:
  - {code: s, name: Wikisource}
project_databases:
  p: wiki
existing_wikis_file: all.dblist
closed_wikis: [aawiki]
legacy_database_codes:
  be-tarask: be-x-old
namespace_names:
  1: Talk
site_settings:
  wgServer:
    default: "//$lang.$site.org"
messages:
  mainpage:
    en: Main Page
`

func TestParseFile(t *testing.T) {
	dir := t.TempDir()
	dblist := "# all wikis\nenwiki\nNLWIKI\n\nenwiki\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "all.dblist"), []byte(dblist), 0o600))
	path := filepath.Join(dir, "incubator.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleFile), 0o600))

	bundle, err := LoadFile(path)
	require.NoError(t, err)

	reg := bundle.Registry
	assert.True(t, reg.CanCheckDB())
	assert.True(t, reg.IsExisting("enwiki"))
	assert.True(t, reg.IsExisting("nlwiki"))
	assert.True(t, reg.IsClosed("aawiki"))
	assert.Equal(t, "Talk", reg.NamespaceName(NamespaceTalk))

	legacy, ok := reg.LegacyDatabaseCode("be-tarask")
	assert.True(t, ok)
	assert.Equal(t, "be-x-old", legacy)

	assert.Equal(t, "//$lang.$site.org", bundle.SiteSettings["wgServer"]["default"])
	assert.Equal(t, "Main Page", bundle.Messages["mainpage"]["en"])
}

func TestParseFileUnsetExisting(t *testing.T) {
	bundle, err := Parse([]byte("projects: [{code: p, name: Wikipedia}]\nproject_databases: {}\n"), "")
	require.NoError(t, err)
	assert.False(t, bundle.Registry.CanCheckDB())
}

func TestParseFileEmptyDblist(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "empty.dblist"), nil, 0o600))

	bundle, err := Parse([]byte("project_databases: {}\nexisting_wikis_file: empty.dblist\n"), dir)
	require.NoError(t, err)
	assert.True(t, bundle.Registry.CanCheckDB(), "an empty dblist is known-empty, not unset")
}

func TestParseFileErrors(t *testing.T) {
	t.Run("unknown key", func(t *testing.T) {
		_, err := Parse([]byte("projectz: []\n"), "")
		assert.Error(t, err)
	})
	t.Run("missing dblist", func(t *testing.T) {
		_, err := Parse([]byte("existing_wikis_file: nope.dblist\n"), t.TempDir())
		assert.Error(t, err)
	})
	t.Run("invalid project", func(t *testing.T) {
		_, err := Parse([]byte("projects: [{code: pp, name: X}]\n"), "")
		assert.Error(t, err)
	})
	t.Run("missing file", func(t *testing.T) {
		_, err := LoadFile(filepath.Join(t.TempDir(), "absent.yaml"))
		assert.Error(t, err)
	})
}
