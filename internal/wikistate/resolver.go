// Package wikistate decides whether the wiki behind a prefix already exists.
package wikistate

import (
	"strings"

	"incubator/internal/prefix"
	"incubator/internal/registry"
)

// Resolver maps parsed prefixes to database names and lifecycle states.
// It only knows what the registry knows; Incubating is never returned here.
type Resolver struct {
	reg *registry.Registry
}

func NewResolver(reg *registry.Registry) *Resolver {
	return &Resolver{reg: reg}
}

// DatabaseID returns the database name of the wiki a prefix addresses,
// whether or not that wiki exists. ok is false when the registry does not
// know its databases or parsed carries an error.
func (r *Resolver) DatabaseID(parsed prefix.Parsed) (string, bool) {
	if !r.reg.CanCheckDB() || !parsed.OK() {
		return "", false
	}
	lang := parsed.Lang
	if legacy, ok := r.reg.LegacyDatabaseCode(lang); ok {
		lang = legacy
	}
	suffix, ok := r.reg.DatabaseSuffix(parsed.Project)
	if !ok {
		suffix = parsed.Project
	}
	return strings.ToLower(strings.ReplaceAll(lang, "-", "_") + suffix), true
}

// State classifies the wiki as Missing, ExistingClosed or ExistingOpen.
// ok is false whenever DatabaseID cannot be computed.
func (r *Resolver) State(parsed prefix.Parsed) (State, bool) {
	db, ok := r.DatabaseID(parsed)
	if !ok {
		return Missing, false
	}
	switch {
	case !r.reg.IsExisting(db):
		return Missing, true
	case r.reg.IsClosed(db):
		return ExistingClosed, true
	default:
		return ExistingOpen, true
	}
}
