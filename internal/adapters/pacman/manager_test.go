package pacman_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/porter/internal/adapters/pacman"
	"go.trai.ch/porter/internal/core/domain"
)

// fakePacman writes a shell script standing in for the pacman binary and
// returns its path.
func fakePacman(t *testing.T, script string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pacman")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+script), 0o700)) //nolint:gosec // test binary must be executable
	return path
}

func TestManager_DBLockPresent(t *testing.T) {
	tmpDir := t.TempDir()
	m := pacman.NewManager(&domain.Settings{DBPath: tmpDir})

	locked, err := m.DBLockPresent()
	require.NoError(t, err)
	assert.False(t, locked)

	lockPath := filepath.Join(tmpDir, "db.lck")
	require.NoError(t, os.WriteFile(lockPath, nil, 0o600))

	locked, err = m.DBLockPresent()
	require.NoError(t, err)
	assert.True(t, locked)

	// The monitor never removes the lock; only the presence test exists.
	require.NoError(t, os.Remove(lockPath))
	locked, err = m.DBLockPresent()
	require.NoError(t, err)
	assert.False(t, locked)
}

func TestManager_DepSatisfied(t *testing.T) {
	argsFile := filepath.Join(t.TempDir(), "args")
	bin := fakePacman(t, `echo "$@" > `+argsFile+`
exit 0`)
	m := pacman.NewManager(&domain.Settings{PacmanBin: bin})

	ok, err := m.DepSatisfied(context.Background(), domain.ParseDep("gcc>=13.2"))
	require.NoError(t, err)
	assert.True(t, ok)

	// The version comparison is delegated wholesale: pacman receives the
	// dependency in its own constraint syntax.
	args, readErr := os.ReadFile(argsFile)
	require.NoError(t, readErr)
	assert.Equal(t, "-T -- gcc>=13.2\n", string(args))
}

func TestManager_DepSatisfied_Missing(t *testing.T) {
	bin := fakePacman(t, "exit 127")
	m := pacman.NewManager(&domain.Settings{PacmanBin: bin})

	ok, err := m.DepSatisfied(context.Background(), domain.ParseDep("gcc"))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestManager_DepSatisfied_QueryFailure(t *testing.T) {
	// Any exit code other than 0 (satisfied) and 127 (missing) is a query
	// failure, not an answer.
	bin := fakePacman(t, `echo "error: could not open database" >&2
exit 1`)
	m := pacman.NewManager(&domain.Settings{PacmanBin: bin})

	_, err := m.DepSatisfied(context.Background(), domain.ParseDep("gcc"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dependency check failed")
}
