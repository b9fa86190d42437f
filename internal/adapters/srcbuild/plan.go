package srcbuild

import (
	"context"
	"slices"
	"strings"

	"go.trai.ch/porter/internal/core/domain"
	"go.trai.ch/zerr"
)

// Plan orders a resolved package set into dependency tiers. Each returned
// group holds packages whose in-set dependencies all live in earlier
// groups, so groups can be built and installed front to back. Prebuilt
// packages carry no recipe dependency metadata and always land in the
// first tier; the system installer batches them before any build starts.
// Dependencies outside the set are satisfied externally and impose no
// ordering.
func (b *Builder) Plan(_ context.Context, pkgs []domain.Package) ([]domain.Group, error) {
	if len(pkgs) == 0 {
		return nil, nil
	}

	byName := make(map[domain.PkgName]domain.Package, len(pkgs))
	for _, p := range pkgs {
		byName[p.PkgName()] = p
	}

	tiers := make(map[domain.PkgName]int, len(pkgs))
	visited := make(map[domain.PkgName]int, len(pkgs)) // 0: unvisited, 1: visiting, 2: visited
	var path []domain.PkgName

	var visit func(n domain.PkgName) (int, error)
	visit = func(n domain.PkgName) (int, error) {
		visited[n] = 1
		path = append(path, n)

		tier := 0
		for _, dep := range inSetDeps(byName[n], byName) {
			switch visited[dep] {
			case 1:
				return 0, cycleError(path, dep)
			case 0:
				if _, err := visit(dep); err != nil {
					return 0, err
				}
			}
			if t := tiers[dep] + 1; t > tier {
				tier = t
			}
		}

		visited[n] = 2
		path = path[:len(path)-1]
		tiers[n] = tier
		return tier, nil
	}

	maxTier := 0
	for _, p := range pkgs {
		if visited[p.PkgName()] != 0 {
			continue
		}
		t, err := visit(p.PkgName())
		if err != nil {
			return nil, err
		}
		if t > maxTier {
			maxTier = t
		}
	}

	groups := make([]domain.Group, maxTier+1)
	for _, p := range pkgs {
		t := tiers[p.PkgName()]
		groups[t] = append(groups[t], p)
	}
	for _, g := range groups {
		slices.SortFunc(g, func(a, b domain.Package) int {
			return strings.Compare(a.PkgName().String(), b.PkgName().String())
		})
	}
	return groups, nil
}

// inSetDeps returns the dependencies of p that resolve to buildable members
// of the planned set. Edges onto prebuilt members are dropped: prebuilt
// artifacts are installed in one batch before building begins.
func inSetDeps(p domain.Package, byName map[domain.PkgName]domain.Package) []domain.PkgName {
	buildable, ok := p.(domain.Buildable)
	if !ok {
		return nil
	}

	var deps []domain.PkgName
	seen := make(map[domain.PkgName]struct{})
	for _, d := range slices.Concat(buildable.Depends, buildable.MakeDepends) {
		if _, dup := seen[d.Name]; dup {
			continue
		}
		seen[d.Name] = struct{}{}
		if _, ok := byName[d.Name].(domain.Buildable); ok {
			deps = append(deps, d.Name)
		}
	}
	return deps
}

// cycleError constructs an error carrying the cycle path as metadata.
func cycleError(path []domain.PkgName, dep domain.PkgName) error {
	start := 0
	for i, n := range path {
		if n == dep {
			start = i
			break
		}
	}
	cycle := ""
	for _, n := range path[start:] {
		cycle += n.String() + " -> "
	}
	cycle += dep.String()
	return zerr.With(domain.ErrDependencyCycle, "cycle", cycle)
}
