// Package sitesettings is an in-memory per-wiki settings table. A value is
// looked up for a wiki database name first, then for its suffix (the project
// family, e.g. "wiki" or "wiktionary"), then the "default" entry.
package sitesettings

import (
	"cmp"
	"maps"
	"slices"
	"strings"
)

// DefaultKey is the fallback entry of a setting.
const DefaultKey = "default"

// Table maps setting -> wiki | suffix | "default" -> value.
type Table struct {
	settings map[string]map[string]string
}

// New copies settings into a Table.
func New(settings map[string]map[string]string) *Table {
	t := &Table{settings: make(map[string]map[string]string, len(settings))}
	for name, values := range settings {
		t.settings[name] = maps.Clone(values)
	}
	return t
}

// Get returns the value of setting for wiki. "$name" placeholders are
// replaced from params, longest names first so "$site" does not clobber
// "$sitename".
func (t *Table) Get(setting, wiki, suffix string, params map[string]string) (string, bool) {
	values, ok := t.settings[setting]
	if !ok {
		return "", false
	}
	value, ok := values[wiki]
	if !ok {
		value, ok = values[suffix]
	}
	if !ok {
		value, ok = values[DefaultKey]
	}
	if !ok {
		return "", false
	}
	return substitute(value, params), true
}

// Settings lists the configured setting names in sorted order.
func (t *Table) Settings() []string {
	return slices.Sorted(maps.Keys(t.settings))
}

func substitute(value string, params map[string]string) string {
	if len(params) == 0 || !strings.Contains(value, "$") {
		return value
	}
	names := slices.SortedFunc(maps.Keys(params), func(a, b string) int {
		return cmp.Or(cmp.Compare(len(b), len(a)), strings.Compare(a, b))
	})
	pairs := make([]string, 0, 2*len(names))
	for _, name := range names {
		pairs = append(pairs, "$"+name, params[name])
	}
	return strings.NewReplacer(pairs...).Replace(value)
}
