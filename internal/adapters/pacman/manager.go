// Package pacman adapts the system package manager CLI to the ports the
// core consumes.
package pacman

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"go.trai.ch/porter/internal/core/domain"
	"go.trai.ch/zerr"
)

const (
	// DefaultRoot is the default installation root the manager operates on.
	DefaultRoot = "/"

	// DefaultDBPath is the default package database directory.
	DefaultDBPath = "/var/lib/pacman/"

	// lockFile is the exclusive-operation marker inside the database
	// directory. It belongs to the system manager; we only ever test for
	// its presence.
	lockFile = "db.lck"
)

// depMissingExit is the pacman -T exit code for an unsatisfied dependency.
const depMissingExit = 127

// Manager implements ports.SystemManager by shelling out to pacman.
type Manager struct {
	bin    string
	root   string
	dbPath string
}

// NewManager creates a SystemManager backed by the pacman CLI configured in
// the settings snapshot.
func NewManager(s *domain.Settings) *Manager {
	bin := s.PacmanBin
	if bin == "" {
		bin = "pacman"
	}
	root := s.RootDir
	if root == "" {
		root = DefaultRoot
	}
	dbPath := s.DBPath
	if dbPath == "" {
		dbPath = DefaultDBPath
	}
	return &Manager{bin: bin, root: root, dbPath: dbPath}
}

// query runs a read-only pacman query and returns its stdout.
func (m *Manager) query(ctx context.Context, args ...string) ([]byte, error) {
	//nolint:gosec // bin comes from the settings snapshot, args are fixed flags plus validated names
	cmd := exec.CommandContext(ctx, m.bin, args...)
	return cmd.Output()
}

// Foreign lists installed packages not supplied by the sync repositories.
func (m *Manager) Foreign(ctx context.Context) ([]domain.PkgName, error) {
	out, err := m.query(ctx, "-Qm")
	if err != nil {
		return nil, wrapQueryError(err, "failed to list foreign packages")
	}
	return parseNameColumn(out), nil
}

// Orphans lists packages installed as a dependency and required by nothing.
func (m *Manager) Orphans(ctx context.Context) ([]domain.PkgName, error) {
	out, err := m.query(ctx, "-Qdtq")
	if err != nil {
		// pacman exits 1 with empty output when there are no orphans.
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && len(strings.TrimSpace(string(out))) == 0 {
			return nil, nil
		}
		return nil, wrapQueryError(err, "failed to list orphans")
	}
	return parseNameColumn(out), nil
}

// DepSatisfied delegates the version comparison to pacman: the dependency
// is rendered into pacman's own constraint syntax and a successful query
// exit means satisfaction. Exactly one query is issued per call.
func (m *Manager) DepSatisfied(ctx context.Context, dep domain.Dep) (bool, error) {
	_, err := m.query(ctx, "-T", "--", dep.Render())
	if err == nil {
		return true, nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && exitErr.ExitCode() == depMissingExit {
		return false, nil
	}
	return false, wrapQueryError(err, "dependency check failed")
}

// Installed reports whether a package with the given name is installed.
func (m *Manager) Installed(ctx context.Context, name domain.PkgName) (bool, error) {
	_, err := m.query(ctx, "-Qq", "--", name.String())
	if err == nil {
		return true, nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return false, nil
	}
	return false, wrapQueryError(err, "installed-state query failed")
}

// InstallRepo installs the named packages from the sync repositories in one
// batch, passing pacman's interactive prompts through to the terminal.
func (m *Manager) InstallRepo(ctx context.Context, names []domain.PkgName) error {
	args := append([]string{"-S", "--needed", "--"}, nameStrings(names)...)
	if err := m.runInteractive(ctx, args...); err != nil {
		return zerr.With(zerr.Wrap(err, "repository install failed"), "packages", strings.Join(nameStrings(names), " "))
	}
	return nil
}

// Upgrade installs locally built artifact files.
func (m *Manager) Upgrade(ctx context.Context, artifactPaths []string) error {
	args := append([]string{"-U", "--"}, artifactPaths...)
	if err := m.runInteractive(ctx, args...); err != nil {
		return zerr.Wrap(err, "artifact install failed")
	}
	return nil
}

// Remove removes the named package set. Failure surfaces the raw manager
// exit state under ErrRemovalFailed.
func (m *Manager) Remove(ctx context.Context, names []domain.PkgName, recursive bool) error {
	args := []string{"-R"}
	if recursive {
		args = append(args, "-s", "-u")
	}
	args = append(args, "--")
	args = append(args, nameStrings(names)...)

	if err := m.runInteractive(ctx, args...); err != nil {
		removalErr := zerr.With(domain.ErrRemovalFailed, "packages", strings.Join(nameStrings(names), " "))
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return zerr.With(removalErr, "exit_code", exitErr.ExitCode())
		}
		return zerr.With(removalErr, "cause", err.Error())
	}
	return nil
}

// DBLockPresent reports whether the exclusive-operation marker exists.
func (m *Manager) DBLockPresent() (bool, error) {
	_, err := os.Stat(filepath.Join(m.dbPath, lockFile))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, zerr.Wrap(err, "failed to stat database lock")
}

// runInteractive runs a mutating pacman command with the terminal attached
// so pacman's own prompts and progress reach the user.
func (m *Manager) runInteractive(ctx context.Context, args ...string) error {
	//nolint:gosec // bin comes from the settings snapshot
	cmd := exec.CommandContext(ctx, m.bin, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

// wrapQueryError attaches captured stderr to failed read-only queries.
func wrapQueryError(err error, msg string) error {
	wrapped := zerr.Wrap(err, msg)
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		wrapped = zerr.With(wrapped, "stderr", strings.TrimSpace(string(exitErr.Stderr)))
	}
	return wrapped
}

// parseNameColumn extracts the first column of line-oriented pacman output.
func parseNameColumn(out []byte) []domain.PkgName {
	var names []domain.PkgName
	for line := range strings.Lines(string(out)) {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		names = append(names, domain.NewPkgName(fields[0]))
	}
	return names
}

func nameStrings(names []domain.PkgName) []string {
	res := make([]string, len(names))
	for i, n := range names {
		res[i] = n.String()
	}
	return res
}
