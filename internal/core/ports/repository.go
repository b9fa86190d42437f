// Package ports defines the narrow interfaces the core consumes.
package ports

import (
	"context"

	"go.trai.ch/porter/internal/core/domain"
)

// LookupResult is the outcome of one repository lookup: the request split
// into the names the provider could not resolve and the packages it did.
// A name never appears in both halves.
type LookupResult struct {
	Unresolved domain.NameSet
	Resolved   []domain.Package
}

// Repository is a named, orderable batched lookup capability over a
// package source. A source that simply has no match for a name returns it
// in Unresolved; an error is reserved for provider-level failure (an
// unreachable or malformed backing source) and aborts the whole lookup.
//
// Repositories compose associatively, see the resolve engine.
//
//go:generate go run go.uber.org/mock/mockgen -source=repository.go -destination=mocks/mock_repository.go -package=mocks
type Repository interface {
	// Lookup queries the source for the given non-empty name set in one
	// batch. Each provider call may be an expensive round trip, so callers
	// must not degrade to per-name queries.
	Lookup(ctx context.Context, s *domain.Settings, names domain.NameSet) (*LookupResult, error)
}
