package registry

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	platformstrings "incubator/pkg/platform/strings"
)

// File is the YAML deployment document. Besides the registry tables it
// carries the per-wiki site settings and the message catalog, which are
// loaded and swapped together with the registry.
type File struct {
	Projects             []Project         `yaml:"projects"`
	SisterProjects       []Project         `yaml:"sister_projects"`
	MultilingualProjects []Project         `yaml:"multilingual_projects"`
	ProjectDatabases     map[string]string `yaml:"project_databases"`

	// Existing and closed wikis are given inline or as dblist files.
	// The inline list wins when both are set.
	ExistingWikis     []string `yaml:"existing_wikis"`
	ExistingWikisFile string   `yaml:"existing_wikis_file"`
	ClosedWikis       []string `yaml:"closed_wikis"`
	ClosedWikisFile   string   `yaml:"closed_wikis_file"`

	TestWikiNamespaces       []int             `yaml:"test_wiki_namespaces"`
	NamespaceNames           map[int]string    `yaml:"namespace_names"`
	PseudoCategoryNamespaces []string          `yaml:"pseudo_category_namespaces"`
	MaxLanguageCodeLength    int               `yaml:"max_language_code_length"`
	LegacyDatabaseCodes      map[string]string `yaml:"legacy_database_codes"`
	ProjectSite              Site              `yaml:"project_site"`
	ArticlePath              string            `yaml:"article_path"`
	StandardLogo             string            `yaml:"standard_logo"`

	// SiteSettings maps setting -> (wiki | suffix | "default") -> value.
	SiteSettings map[string]map[string]string `yaml:"site_settings"`
	// Messages maps message key -> language code -> text.
	Messages map[string]map[string]string `yaml:"messages"`
}

// Bundle is a loaded deployment file.
type Bundle struct {
	Registry     *Registry
	SiteSettings map[string]map[string]string
	Messages     map[string]map[string]string
}

// LoadFile reads the deployment file at path. Relative dblist paths are
// resolved against the directory of path.
func LoadFile(path string) (*Bundle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading registry file: %w", err)
	}
	return Parse(data, filepath.Dir(path))
}

// Parse decodes a deployment document. baseDir anchors relative dblist paths.
func Parse(data []byte, baseDir string) (*Bundle, error) {
	var f File
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("decoding registry file: %w", err)
	}

	existing, err := resolveList(f.ExistingWikis, f.ExistingWikisFile, baseDir)
	if err != nil {
		return nil, fmt.Errorf("existing wikis: %w", err)
	}
	closed, err := resolveList(f.ClosedWikis, f.ClosedWikisFile, baseDir)
	if err != nil {
		return nil, fmt.Errorf("closed wikis: %w", err)
	}

	reg, err := New(Spec{
		Projects:                 f.Projects,
		SisterProjects:           f.SisterProjects,
		MultilingualProjects:     f.MultilingualProjects,
		ProjectDatabases:         f.ProjectDatabases,
		ExistingWikis:            existing,
		ClosedWikis:              closed,
		TestWikiNamespaces:       f.TestWikiNamespaces,
		NamespaceNames:           f.NamespaceNames,
		MaxLanguageCodeLength:    f.MaxLanguageCodeLength,
		LegacyDatabaseCodes:      f.LegacyDatabaseCodes,
		PseudoCategoryNamespaces: f.PseudoCategoryNamespaces,
		ProjectSite:              f.ProjectSite,
		ArticlePath:              f.ArticlePath,
		StandardLogo:             f.StandardLogo,
	})
	if err != nil {
		return nil, err
	}
	return &Bundle{
		Registry:     reg,
		SiteSettings: f.SiteSettings,
		Messages:     f.Messages,
	}, nil
}

// resolveList returns the inline list, else the dblist file contents, else
// nil. An empty but present dblist yields an empty, non-nil list.
func resolveList(inline []string, file, baseDir string) ([]string, error) {
	if inline != nil {
		return inline, nil
	}
	if file == "" {
		return nil, nil
	}
	if !filepath.IsAbs(file) {
		file = filepath.Join(baseDir, file)
	}
	fh, err := os.Open(file)
	if err != nil {
		return nil, fmt.Errorf("opening dblist: %w", err)
	}
	defer fh.Close()

	lines, err := platformstrings.ReadLines(fh)
	if err != nil {
		return nil, fmt.Errorf("reading dblist %s: %w", file, err)
	}
	if lines == nil {
		lines = []string{}
	}
	return lines, nil
}
