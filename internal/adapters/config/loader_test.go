package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/porter/internal/adapters/config"
)

func TestLoad_Success(t *testing.T) {
	content := `
buildUser: builder
pacmanBin: /usr/bin/pacman
dbPath: /var/lib/pacman/
aurUrl: https://aur.example.org
cacheDir: /tmp/porter-cache
language: de_CH.UTF-8
`
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "porter.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	s, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "builder", s.BuildUser)
	assert.Equal(t, "/usr/bin/pacman", s.PacmanBin)
	assert.Equal(t, "/var/lib/pacman/", s.DBPath)
	assert.Equal(t, "https://aur.example.org", s.AURURL)
	assert.Equal(t, "/tmp/porter-cache", s.CacheDir)
	assert.Equal(t, "de_CH.UTF-8", s.Language)
	assert.Equal(t, os.Getuid(), s.UserID)
	assert.Equal(t, os.Geteuid(), s.EffectiveUserID)
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	s, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "https://aur.archlinux.org", s.AURURL)
	assert.NotEmpty(t, s.CacheDir)
	assert.Empty(t, s.BuildUser)
}

func TestLoad_MalformedFile(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "porter.yaml")
	require.NoError(t, os.WriteFile(path, []byte("buildUser: [unclosed"), 0o600))

	_, err := config.Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config file")
}

func TestPath_EnvOverride(t *testing.T) {
	t.Setenv(config.EnvConfigPath, "/custom/porter.yaml")
	assert.Equal(t, "/custom/porter.yaml", config.Path())
}
