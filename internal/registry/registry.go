// Package registry holds the process-wide configuration tables of the incubator:
// which project codes exist, which wikis are already provisioned elsewhere,
// which are closed, and the namespaces where test wiki prefixes are enforced.
//
// A Registry is built once by New and never mutated afterwards, so any number
// of goroutines may read it. Reconfiguration builds a new Registry and swaps
// the reference.
package registry

import (
	"fmt"
	"maps"
	"slices"
	"strings"
	"unicode/utf8"
)

// Namespace identifiers used by the incubator.
const (
	NamespaceMain         = 0
	NamespaceTalk         = 1
	NamespaceProject      = 4
	NamespaceTemplate     = 10
	NamespaceTemplateTalk = 11
	NamespaceCategory     = 14
	NamespaceCategoryTalk = 15
)

const (
	// DefaultMaxLanguageCodeLength bounds language codes such as "be-x-old".
	DefaultMaxLanguageCodeLength = 9
	DefaultArticlePath           = "/wiki/$1"
	DefaultStandardLogo          = "//upload.wikimedia.org/$site/$lang/b/bc/Wiki.png"
)

// DefaultTestWikiNamespaces are the namespaces where prefixes are enforced
// when the deployment does not list its own.
var DefaultTestWikiNamespaces = []int{
	NamespaceMain, NamespaceTalk,
	NamespaceTemplate, NamespaceTemplateTalk,
	NamespaceCategory, NamespaceCategoryTalk,
}

// Project is a project family such as {"p", "Wikipedia"}. For multilingual
// projects Code holds the language-independent key.
type Project struct {
	Code string `json:"code" yaml:"code"`
	Name string `json:"name" yaml:"name"`
}

// Site identifies the incubator itself as a pseudo test wiki ("inc").
type Site struct {
	Short string `json:"short" yaml:"short"`
	Name  string `json:"name" yaml:"name"`
}

// Spec is the plain description a Registry is built from.
//
// A nil ExistingWikis or ProjectDatabases means the deployment does not know
// its databases; state resolution is then impossible rather than defaulted.
type Spec struct {
	Projects              []Project
	SisterProjects        []Project
	MultilingualProjects  []Project
	ProjectDatabases      map[string]string
	ExistingWikis         []string
	ClosedWikis           []string
	TestWikiNamespaces    []int
	NamespaceNames        map[int]string
	MaxLanguageCodeLength int
	// LegacyDatabaseCodes maps a current language code to the historical code
	// its database is still named after, e.g. "be-tarask" -> "be-x-old".
	LegacyDatabaseCodes      map[string]string
	PseudoCategoryNamespaces []string
	ProjectSite              Site
	ArticlePath              string
	StandardLogo             string
}

// Registry is the immutable configuration registry.
type Registry struct {
	projects     []Project
	sisters      []Project
	multilingual []Project
	projectNames map[string]string
	sisterNames  map[string]string

	databases map[string]string
	existing  map[string]struct{}
	closed    map[string]struct{}

	namespaces     map[int]struct{}
	namespaceNames map[int]string
	maxCodeLength  int
	legacyCodes    map[string]string
	pseudoCats     []string
	site           Site
	articlePath    string
	standardLogo   string
}

// New validates spec and builds a Registry. Project codes must be a single
// character since the title grammar matches them as a character class.
func New(spec Spec) (*Registry, error) {
	r := &Registry{
		projectNames:   make(map[string]string, len(spec.Projects)),
		sisterNames:    make(map[string]string, len(spec.SisterProjects)),
		namespaces:     make(map[int]struct{}),
		namespaceNames: maps.Clone(spec.NamespaceNames),
		legacyCodes:    maps.Clone(spec.LegacyDatabaseCodes),
		pseudoCats:     slices.Clone(spec.PseudoCategoryNamespaces),
		site:           spec.ProjectSite,
		articlePath:    spec.ArticlePath,
		standardLogo:   spec.StandardLogo,
		maxCodeLength:  spec.MaxLanguageCodeLength,
	}

	for _, p := range spec.Projects {
		if err := validateCode(p.Code); err != nil {
			return nil, fmt.Errorf("project %q: %w", p.Name, err)
		}
		if _, dup := r.projectNames[p.Code]; dup {
			return nil, fmt.Errorf("duplicate project code %q", p.Code)
		}
		r.projectNames[p.Code] = p.Name
		r.projects = append(r.projects, p)
	}
	for _, p := range spec.SisterProjects {
		if err := validateCode(p.Code); err != nil {
			return nil, fmt.Errorf("sister project %q: %w", p.Name, err)
		}
		if _, dup := r.projectNames[p.Code]; dup {
			return nil, fmt.Errorf("sister project code %q is already a project", p.Code)
		}
		if _, dup := r.sisterNames[p.Code]; dup {
			return nil, fmt.Errorf("duplicate sister project code %q", p.Code)
		}
		r.sisterNames[p.Code] = p.Name
		r.sisters = append(r.sisters, p)
	}
	for _, p := range spec.MultilingualProjects {
		if p.Code == "" {
			return nil, fmt.Errorf("multilingual project %q: key is required", p.Name)
		}
		r.multilingual = append(r.multilingual, p)
	}

	if spec.ProjectDatabases != nil {
		r.databases = maps.Clone(spec.ProjectDatabases)
	}
	if spec.ExistingWikis != nil {
		r.existing = toSet(spec.ExistingWikis)
	}
	if spec.ClosedWikis != nil {
		r.closed = toSet(spec.ClosedWikis)
	}

	namespaces := spec.TestWikiNamespaces
	if namespaces == nil {
		namespaces = DefaultTestWikiNamespaces
	}
	for _, ns := range namespaces {
		r.namespaces[ns] = struct{}{}
	}

	if r.maxCodeLength == 0 {
		r.maxCodeLength = DefaultMaxLanguageCodeLength
	}
	if r.maxCodeLength < 0 {
		return nil, fmt.Errorf("max language code length must be positive, got %d", r.maxCodeLength)
	}
	if r.site.Short == "" {
		r.site = Site{Short: "inc", Name: "Incubator"}
	}
	if r.articlePath == "" {
		r.articlePath = DefaultArticlePath
	}
	if r.standardLogo == "" {
		r.standardLogo = DefaultStandardLogo
	}
	return r, nil
}

func validateCode(code string) error {
	if utf8.RuneCountInString(code) != 1 {
		return fmt.Errorf("project code %q must be a single character", code)
	}
	return nil
}

func toSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		v = strings.ToLower(strings.TrimSpace(v))
		if v != "" {
			set[v] = struct{}{}
		}
	}
	return set
}

// Projects returns the primary projects in configuration order.
func (r *Registry) Projects() []Project { return slices.Clone(r.projects) }

// SisterProjects returns the sister projects in configuration order.
func (r *Registry) SisterProjects() []Project { return slices.Clone(r.sisters) }

// MultilingualProjects returns the multilingual projects in configuration order.
func (r *Registry) MultilingualProjects() []Project { return slices.Clone(r.multilingual) }

// ProjectCodes returns the codes legal in a prefix, optionally with sister codes.
func (r *Registry) ProjectCodes(includeSister bool) []string {
	codes := make([]string, 0, len(r.projects)+len(r.sisters))
	for _, p := range r.projects {
		codes = append(codes, p.Code)
	}
	if includeSister {
		for _, p := range r.sisters {
			codes = append(codes, p.Code)
		}
	}
	return codes
}

// IsProject reports whether code is a primary project code.
func (r *Registry) IsProject(code string) bool {
	_, ok := r.projectNames[code]
	return ok
}

// IsSister reports whether code is a sister project code.
func (r *Registry) IsSister(code string) bool {
	_, ok := r.sisterNames[code]
	return ok
}

// Project resolves a project code or display name. Primary projects take
// precedence over sister projects; sister projects are only searched when
// includeSister is set.
func (r *Registry) Project(codeOrName string, includeSister bool) (Project, bool) {
	if codeOrName == "" {
		return Project{}, false
	}
	lists := [][]Project{r.projects}
	if includeSister {
		lists = append(lists, r.sisters)
	}
	for _, list := range lists {
		for _, p := range list {
			if p.Code == codeOrName {
				return p, true
			}
		}
	}
	for _, list := range lists {
		for _, p := range list {
			if p.Name == codeOrName {
				return p, true
			}
		}
	}
	return Project{}, false
}

// Multilingual resolves a multilingual project by key or display name.
func (r *Registry) Multilingual(keyOrName string) (Project, bool) {
	for _, p := range r.multilingual {
		if p.Code == keyOrName || p.Name == keyOrName {
			return p, true
		}
	}
	return Project{}, false
}

// CanCheckDB reports whether both the existing wiki list and the project
// database table are known.
func (r *Registry) CanCheckDB() bool {
	return r.existing != nil && r.databases != nil
}

// DatabaseSuffix returns the database override for a project code.
func (r *Registry) DatabaseSuffix(code string) (string, bool) {
	suffix, ok := r.databases[code]
	return suffix, ok
}

// IsExisting reports whether db is provisioned outside the incubator.
func (r *Registry) IsExisting(db string) bool {
	_, ok := r.existing[db]
	return ok
}

// IsClosed reports whether db is a closed wiki.
func (r *Registry) IsClosed(db string) bool {
	_, ok := r.closed[db]
	return ok
}

// IsTestWikiNamespace reports whether prefixes are enforced in ns.
func (r *Registry) IsTestWikiNamespace(ns int) bool {
	_, ok := r.namespaces[ns]
	return ok
}

// NamespaceName returns the display name of ns; the main namespace has none.
func (r *Registry) NamespaceName(ns int) string {
	return r.namespaceNames[ns]
}

// MaxLanguageCodeLength is the byte length bound for language codes.
func (r *Registry) MaxLanguageCodeLength() int { return r.maxCodeLength }

// LegacyDatabaseCode returns the historical code a language's database uses.
func (r *Registry) LegacyDatabaseCode(lang string) (string, bool) {
	code, ok := r.legacyCodes[lang]
	return code, ok
}

// PseudoCategoryNamespaces are category name prefixes allowed without a test wiki prefix.
func (r *Registry) PseudoCategoryNamespaces() []string { return slices.Clone(r.pseudoCats) }

// ProjectSite describes the incubator itself.
func (r *Registry) ProjectSite() Site { return r.site }

// ArticlePath is the URL path template with a "$1" placeholder.
func (r *Registry) ArticlePath() string { return r.articlePath }

// StandardLogo is the logo URL template with "$site" and "$lang" placeholders.
func (r *Registry) StandardLogo() string { return r.standardLogo }
