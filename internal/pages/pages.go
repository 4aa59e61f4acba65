// Package pages answers whether incubator pages exist. The incubator only
// needs existence (is there a main page, is this an info page with content),
// so every backend implements the same one-method Index.
//
// Backends compose: a Postgres index over the wiki's page table, a circuit
// breaker around it, and Redis and in-process caches in front.
package pages

import (
	"context"
	"strings"

	"incubator/internal/prefix"
)

// Index reports page existence.
type Index interface {
	Exists(ctx context.Context, page prefix.Title) (bool, error)
}

// BatchIndex is implemented by backends that can check many main namespace
// pages in one round trip.
type BatchIndex interface {
	Index
	ExistingAmong(ctx context.Context, namespace int, titles []string) (map[string]bool, error)
}

// DBKey converts title text to the stored form: spaces become underscores.
func DBKey(text string) string {
	return strings.ReplaceAll(strings.TrimSpace(text), " ", "_")
}

// ExistingAmong checks titles in namespace through idx, in one round trip
// when idx supports it. The result is keyed by DBKey.
func ExistingAmong(ctx context.Context, idx Index, namespace int, titles []string) (map[string]bool, error) {
	if batch, ok := idx.(BatchIndex); ok {
		return batch.ExistingAmong(ctx, namespace, titles)
	}
	found := make(map[string]bool, len(titles))
	for _, t := range titles {
		ok, err := idx.Exists(ctx, prefix.Title{Namespace: namespace, Text: t})
		if err != nil {
			return nil, err
		}
		if ok {
			found[DBKey(t)] = true
		}
	}
	return found, nil
}

// FirstExisting returns the first of titles that exists in namespace, or ""
// when none does.
func FirstExisting(ctx context.Context, idx Index, namespace int, titles ...string) (string, error) {
	found, err := ExistingAmong(ctx, idx, namespace, titles)
	if err != nil {
		return "", err
	}
	for _, t := range titles {
		if found[DBKey(t)] {
			return t, nil
		}
	}
	return "", nil
}
