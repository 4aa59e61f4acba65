package incubator

import (
	"incubator/internal/address"
	"incubator/internal/messages"
	"incubator/internal/prefix"
	"incubator/internal/registry"
	"incubator/internal/sitesettings"
	"incubator/internal/wikistate"
)

// Snapshot is an immutable view of one registry load. Every request reads a
// single snapshot so a concurrent reload never mixes two registries.
type Snapshot struct {
	Registry  *registry.Registry
	Parser    *prefix.Parser
	States    *wikistate.Resolver
	Addresses *address.Resolver
	Messages  Messages
}

// NewSnapshot wires the core resolvers around a loaded bundle.
func NewSnapshot(bundle *registry.Bundle) *Snapshot {
	var settings address.Settings
	if bundle.SiteSettings != nil {
		settings = sitesettings.New(bundle.SiteSettings)
	}
	return &Snapshot{
		Registry:  bundle.Registry,
		Parser:    prefix.NewParser(bundle.Registry),
		States:    wikistate.NewResolver(bundle.Registry),
		Addresses: address.NewResolver(bundle.Registry, settings),
		Messages:  messages.New(bundle.Messages),
	}
}
