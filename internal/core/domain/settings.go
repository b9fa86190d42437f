package domain

// Settings is the immutable configuration snapshot threaded through every
// operation. It is read-only for the lifetime of an operation: no component
// mutates it, so no locking is needed around it.
type Settings struct {
	// UserID is the real uid of the process.
	UserID int

	// EffectiveUserID is the effective uid of the process.
	EffectiveUserID int

	// SudoUser is the invoking user when the process was elevated via
	// sudo, empty otherwise.
	SudoUser string

	// BuildUser is the configured identity packages are built as. The
	// literal value "root" is an explicit override of the true-root check.
	BuildUser string

	// Language is the configured locale, e.g. "en_US.UTF-8".
	Language string

	// Environment is a snapshot of the process environment.
	Environment map[string]string

	// PacmanBin is the system manager executable.
	PacmanBin string

	// RootDir is the installation root the system manager operates on.
	RootDir string

	// DBPath is the system manager's database directory, which also holds
	// the exclusive-operation lock marker.
	DBPath string

	// AURURL is the base URL of the source-package RPC endpoint.
	AURURL string

	// CacheDir is the directory used for adapter-level caches and build
	// workspaces.
	CacheDir string

	// HotEdit opens each build recipe in the configured editor before it
	// is built.
	HotEdit bool
}

// Elevated reports whether the process holds root privilege, directly or
// via an elevation mechanism such as sudo.
func (s *Settings) Elevated() bool {
	return s.EffectiveUserID == 0
}

// TrueRoot reports whether the process runs as the unconditional root
// identity, as opposed to privilege obtained through sudo.
func (s *Settings) TrueRoot() bool {
	return s.EffectiveUserID == 0 && s.UserID == 0 && s.SudoUser == ""
}
