// Package address derives the canonical addresses of the real wikis that
// test wikis graduate to, by looking up per-wiki site settings.
package address

import (
	"strings"

	"incubator/internal/registry"
)

// Site setting names.
const (
	SettingServer = "wgServer"
	SettingLogo   = "wgLogo"
)

// Settings is the per-wiki configuration table of the hosting platform.
type Settings interface {
	// Get resolves setting for the wiki database name, falling back to the
	// suffix and then the default entry. "$name" placeholders in the value
	// are substituted from params.
	Get(setting, wiki, suffix string, params map[string]string) (string, bool)
}

// Resolver builds wiki addresses. It does not need to know which wikis
// exist, so it also addresses wikis that are still incubating.
type Resolver struct {
	reg      *registry.Registry
	settings Settings
}

// NewResolver returns a Resolver. settings may be nil when the platform has
// no settings table loaded; every lookup then fails.
func NewResolver(reg *registry.Registry, settings Settings) *Resolver {
	return &Resolver{reg: reg, settings: settings}
}

// Setting looks up a site setting for the wiki of lang and project. project
// is a project code or name, or the name of a multilingual project.
func (r *Resolver) Setting(setting, lang, project string) (string, bool) {
	if r.settings == nil {
		return "", false
	}
	lang = strings.ToLower(lang)
	langHyphen := strings.ReplaceAll(lang, "_", "-")
	langUnderscore := strings.ReplaceAll(lang, "-", "_")

	var code, site string
	if p, ok := r.reg.Project(project, true); ok {
		code = p.Code
		site = strings.ToLower(p.Name)
	} else if m, ok := r.reg.Multilingual(project); ok {
		code = m.Code
	}

	params := map[string]string{
		"lang":    langHyphen,
		"site":    site,
		"stdlogo": r.standardLogo(site, langHyphen),
	}
	suffix, ok := r.reg.DatabaseSuffix(code)
	if !ok {
		suffix = site
	}
	return r.settings.Get(setting, langUnderscore+suffix, suffix, params)
}

func (r *Resolver) standardLogo(site, lang string) string {
	return strings.NewReplacer("$site", site, "$lang", lang).Replace(r.reg.StandardLogo())
}

// SubdomainURL returns the server of the wiki, with page appended through
// the article path when page is not empty.
func (r *Resolver) SubdomainURL(lang, project, page string) (string, bool) {
	server, ok := r.Setting(SettingServer, lang, project)
	if !ok {
		return "", false
	}
	if page == "" {
		return server, true
	}
	return server + strings.ReplaceAll(r.reg.ArticlePath(), "$1", page), true
}

// LogoURL returns the logo of the wiki.
func (r *Resolver) LogoURL(lang, project string) (string, bool) {
	return r.Setting(SettingLogo, lang, project)
}

// LinkText is the display text of a wiki link: protocol-relative URLs lose
// their leading slashes.
func LinkText(url string) string {
	return strings.TrimLeft(url, "/")
}
