package domain

// Package is the closed sum over package origin. A resolved package either
// comes from an official repository as a ready-to-install artifact
// (Prebuilt) or from the source repository as a recipe that must be built
// locally (Buildable). Only repository lookups produce Packages; they are
// immutable once produced.
type Package interface {
	// PkgName returns the unique package name.
	PkgName() PkgName

	// sealed prevents implementations outside this package, keeping the
	// sum closed so the partition boundary can match exhaustively.
	sealed()
}

// Prebuilt is artifact metadata for a package obtainable as a
// ready-to-install binary from an official repository.
type Prebuilt struct {
	// Name is the unique package name.
	Name PkgName

	// Version is the version offered by the repository.
	Version string

	// Repository is the official repository the artifact comes from
	// (e.g. "core", "extra").
	Repository string

	// DownloadSize is the artifact size in bytes, zero when unknown.
	DownloadSize int64
}

// PkgName returns the unique package name.
func (p Prebuilt) PkgName() PkgName { return p.Name }

func (Prebuilt) sealed() {}

// Buildable is recipe metadata for a package that must be compiled locally
// before installation.
type Buildable struct {
	// Name is the unique package name.
	Name PkgName

	// Base is the recipe base the package is built from. Several packages
	// may share one base; cloning and building happens per base.
	Base PkgName

	// Version is the version the recipe currently produces.
	Version string

	// CloneURL is the git URL the recipe is fetched from.
	CloneURL string

	// Depends are the runtime dependencies declared by the recipe.
	Depends []Dep

	// MakeDepends are the build-time dependencies declared by the recipe.
	MakeDepends []Dep

	// OutOfDate reports whether the recipe is flagged out of date upstream.
	OutOfDate bool

	// Votes is the upstream popularity count.
	Votes int
}

// PkgName returns the unique package name.
func (b Buildable) PkgName() PkgName { return b.Name }

func (Buildable) sealed() {}
