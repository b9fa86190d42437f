// Package resolve implements the repository composition algebra: any two
// lookup capabilities combine into a third, so a priority-ordered provider
// chain folds into a single repository queried once per batch.
package resolve

import (
	"context"

	"go.trai.ch/porter/internal/core/domain"
	"go.trai.ch/porter/internal/core/ports"
)

// Compose combines two repositories into one. The combined lookup queries a
// first; if a fails, the combined lookup fails. If a fully resolves the
// request, b is never queried. Otherwise b is queried only for the names a
// left unresolved, and the results merge: resolved sets union, b's
// unresolved set remains. The combinator is associative, so fallback chains
// can be built by repeated folding in any grouping.
func Compose(a, b ports.Repository) ports.Repository {
	return &composite{a: a, b: b}
}

// Fold folds a priority-ordered list of repositories into one. Folding no
// repositories yields the empty repository, which resolves nothing.
func Fold(repos ...ports.Repository) ports.Repository {
	if len(repos) == 0 {
		return Empty()
	}
	combined := repos[0]
	for _, r := range repos[1:] {
		combined = Compose(combined, r)
	}
	return combined
}

// Empty returns the identity of the composition: a repository that leaves
// every requested name unresolved.
func Empty() ports.Repository {
	return emptyRepo{}
}

type composite struct {
	a, b ports.Repository
}

func (c *composite) Lookup(ctx context.Context, s *domain.Settings, names domain.NameSet) (*ports.LookupResult, error) {
	first, err := c.a.Lookup(ctx, s, names)
	if err != nil {
		return nil, err
	}
	if len(first.Unresolved) == 0 {
		return first, nil
	}

	second, err := c.b.Lookup(ctx, s, first.Unresolved)
	if err != nil {
		return nil, err
	}

	merged := make([]domain.Package, 0, len(first.Resolved)+len(second.Resolved))
	merged = append(merged, first.Resolved...)
	merged = append(merged, second.Resolved...)

	return &ports.LookupResult{
		Unresolved: second.Unresolved,
		Resolved:   merged,
	}, nil
}

type emptyRepo struct{}

func (emptyRepo) Lookup(_ context.Context, _ *domain.Settings, names domain.NameSet) (*ports.LookupResult, error) {
	unresolved := make(domain.NameSet, len(names))
	for n := range names {
		unresolved.Add(n)
	}
	return &ports.LookupResult{Unresolved: unresolved}, nil
}
