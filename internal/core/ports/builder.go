package ports

import (
	"context"

	"go.trai.ch/porter/internal/core/domain"
)

// Builder is the boundary to the source-build toolchain.
//
//go:generate go run go.uber.org/mock/mockgen -source=builder.go -destination=mocks/mock_builder.go -package=mocks
type Builder interface {
	// Plan groups a resolved package set into ordered build/install units.
	// Packages within one group depend on each other and require atomic,
	// ordered handling; groups are ordered so that every group's
	// dependencies live in earlier groups.
	Plan(ctx context.Context, pkgs []domain.Package) ([]domain.Group, error)

	// Customize applies the one-shot recipe customization step ("hot edit")
	// to a buildable package before it is built.
	Customize(ctx context.Context, b domain.Buildable) (domain.Buildable, error)

	// Build compiles one group of buildable recipes in order and returns
	// the paths of the installable artifacts it produced.
	Build(ctx context.Context, group []domain.Buildable) ([]string, error)
}
