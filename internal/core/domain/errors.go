package domain

import "go.trai.ch/zerr"

var (
	// ErrProviderFailure is returned when a repository's backing source is
	// unreachable or returns a malformed payload. A provider failure aborts
	// the whole composed lookup; the core never retries it.
	ErrProviderFailure = zerr.New("repository provider failure")

	// ErrMustBeRoot is returned when an action requiring elevated
	// privileges is attempted without them.
	ErrMustBeRoot = zerr.New("operation requires root privileges")

	// ErrTrueRootForbidden is returned when a build is attempted as the
	// unconditional root identity.
	ErrTrueRootForbidden = zerr.New("building as true root is forbidden")

	// ErrRemovalFailed is returned when the underlying removal command
	// reported failure.
	ErrRemovalFailed = zerr.New("package removal failed")

	// ErrNoPackages is returned when an operation is requested with an
	// empty package set.
	ErrNoPackages = zerr.New("no packages specified")

	// ErrBuildFailed is returned when the build toolchain could not produce
	// an installable artifact.
	ErrBuildFailed = zerr.New("package build failed")

	// ErrDependencyCycle is returned when ordering buildable recipes finds a
	// dependency cycle among them.
	ErrDependencyCycle = zerr.New("dependency cycle detected")
)
