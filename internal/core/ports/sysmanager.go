package ports

import (
	"context"

	"go.trai.ch/porter/internal/core/domain"
)

// SystemManager is the boundary to the underlying system package manager.
// All queries are read-only projections with no core-side caching; the
// mutating calls wrap the manager's own transaction engine.
//
//go:generate go run go.uber.org/mock/mockgen -source=sysmanager.go -destination=mocks/mock_sysmanager.go -package=mocks
type SystemManager interface {
	// Foreign lists installed packages not supplied by the configured
	// official sources.
	Foreign(ctx context.Context) ([]domain.PkgName, error)

	// Orphans lists packages installed only as a dependency and now
	// required by no installed package.
	Orphans(ctx context.Context) ([]domain.PkgName, error)

	// DepSatisfied reports whether the installed state satisfies the
	// dependency. The version comparison is delegated to the manager; one
	// query is issued per call.
	DepSatisfied(ctx context.Context, dep domain.Dep) (bool, error)

	// Installed reports whether a package with the given name is installed.
	Installed(ctx context.Context, name domain.PkgName) (bool, error)

	// InstallRepo installs the named prebuilt packages from the official
	// repositories in one batch.
	InstallRepo(ctx context.Context, names []domain.PkgName) error

	// Upgrade installs locally built artifact files.
	Upgrade(ctx context.Context, artifactPaths []string) error

	// Remove removes the named package set. When recursive is set,
	// dependencies not required elsewhere are removed too.
	Remove(ctx context.Context, names []domain.PkgName, recursive bool) error

	// DBLockPresent reports whether the manager's exclusive-operation lock
	// marker exists.
	DBLockPresent() (bool, error)
}
