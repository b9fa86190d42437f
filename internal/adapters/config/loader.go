// Package config loads the immutable settings snapshot for porter.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/porter/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// EnvConfigPath overrides the configuration file location when set.
const EnvConfigPath = "PORTER_CONFIG"

// defaultAURURL is the source-repository RPC endpoint queried for
// buildable packages.
const defaultAURURL = "https://aur.archlinux.org"

// File represents the structure of the porter.yaml configuration file.
type File struct {
	BuildUser string `yaml:"buildUser"`
	PacmanBin string `yaml:"pacmanBin"`
	RootDir   string `yaml:"rootDir"`
	DBPath    string `yaml:"dbPath"`
	AURURL    string `yaml:"aurUrl"`
	CacheDir  string `yaml:"cacheDir"`
	Language  string `yaml:"language"`
	HotEdit   bool   `yaml:"hotEdit"`
}

// Path resolves the configuration file location: the PORTER_CONFIG
// environment variable when set, otherwise porter.yaml in the working
// directory, otherwise /etc/porter.yaml.
func Path() string {
	if p := os.Getenv(EnvConfigPath); p != "" {
		return p
	}
	if _, err := os.Stat("porter.yaml"); err == nil {
		return "porter.yaml"
	}
	return "/etc/porter.yaml"
}

// Load builds the settings snapshot from the configuration file at path
// merged with a snapshot of the process environment. A missing file yields
// the defaults; a malformed file is an error.
func Load(path string) (*domain.Settings, error) {
	var file File
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by the user
	switch {
	case errors.Is(err, fs.ErrNotExist):
		// Defaults apply.
	case err != nil:
		return nil, zerr.Wrap(err, "failed to read config file")
	default:
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, zerr.Wrap(err, "failed to parse config file")
		}
	}

	return fromEnvironment(file), nil
}

// fromEnvironment completes the snapshot with process identity and
// environment. The result is read-only for the lifetime of an operation.
func fromEnvironment(file File) *domain.Settings {
	env := make(map[string]string)
	for _, kv := range os.Environ() {
		if k, v, ok := strings.Cut(kv, "="); ok {
			env[k] = v
		}
	}

	s := &domain.Settings{
		UserID:          os.Getuid(),
		EffectiveUserID: os.Geteuid(),
		SudoUser:        env["SUDO_USER"],
		BuildUser:       file.BuildUser,
		Language:        file.Language,
		Environment:     env,
		PacmanBin:       file.PacmanBin,
		RootDir:         file.RootDir,
		DBPath:          file.DBPath,
		AURURL:          file.AURURL,
		CacheDir:        file.CacheDir,
		HotEdit:         file.HotEdit,
	}

	if s.Language == "" {
		s.Language = env["LANG"]
	}
	if s.AURURL == "" {
		s.AURURL = defaultAURURL
	}
	if s.CacheDir == "" {
		if base, err := os.UserCacheDir(); err == nil {
			s.CacheDir = filepath.Join(base, "porter")
		}
	}
	return s
}
