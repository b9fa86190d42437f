// Package srcbuild adapts the source-build toolchain: it fetches build
// recipes by git and compiles them with makepkg.
package srcbuild

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"go.trai.ch/porter/internal/core/domain"
	"go.trai.ch/zerr"
)

const (
	gitBin     = "git"
	makepkgBin = "makepkg"

	// recipeFile is the build recipe opened for hot edits.
	recipeFile = "PKGBUILD"
)

// Builder implements ports.Builder by shelling out to git and makepkg.
type Builder struct {
	settings *domain.Settings
}

// NewBuilder creates a Builder operating under the configured cache
// directory.
func NewBuilder(s *domain.Settings) *Builder {
	return &Builder{settings: s}
}

// cloneDir is the working tree a recipe base is fetched into.
func (b *Builder) cloneDir(base domain.PkgName) string {
	return filepath.Join(b.settings.CacheDir, "builds", base.String())
}

// Customize fetches the recipe of a buildable package and, when hot
// editing is enabled, opens it in the configured editor before it is
// built. Recipes are fetched once per package base.
func (b *Builder) Customize(ctx context.Context, pkg domain.Buildable) (domain.Buildable, error) {
	dir := b.cloneDir(pkg.Base)
	if err := b.fetchRecipe(ctx, pkg, dir); err != nil {
		return domain.Buildable{}, err
	}

	if b.settings.HotEdit {
		if err := b.editRecipe(ctx, filepath.Join(dir, recipeFile)); err != nil {
			return domain.Buildable{}, err
		}
	}
	return pkg, nil
}

// fetchRecipe clones the recipe repository, or fast-forwards an existing
// clone.
func (b *Builder) fetchRecipe(ctx context.Context, pkg domain.Buildable, dir string) error {
	if _, err := os.Stat(filepath.Join(dir, ".git")); err == nil {
		if err := run(ctx, "", gitBin, "-C", dir, "pull", "--ff-only"); err != nil {
			return wrapToolError(err, "failed to update recipe", pkg.Name)
		}
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(dir), 0o755); err != nil {
		return zerr.Wrap(err, "failed to create build directory")
	}
	if err := run(ctx, "", gitBin, "clone", "--", pkg.CloneURL, dir); err != nil {
		return wrapToolError(err, "failed to clone recipe", pkg.Name)
	}
	return nil
}

// editRecipe opens the recipe in the user's editor with the terminal
// attached.
func (b *Builder) editRecipe(ctx context.Context, path string) error {
	editor := b.settings.Environment["VISUAL"]
	if editor == "" {
		editor = b.settings.Environment["EDITOR"]
	}
	if editor == "" {
		editor = "vi"
	}

	//nolint:gosec // editor comes from the user's own environment
	cmd := exec.CommandContext(ctx, editor, path)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return zerr.With(zerr.Wrap(err, "recipe edit failed"), "editor", editor)
	}
	return nil
}

// Build compiles one group of recipes in order and returns the artifact
// paths makepkg produced. Recipes sharing a package base are built once.
func (b *Builder) Build(ctx context.Context, group []domain.Buildable) ([]string, error) {
	var artifacts []string
	built := make(map[domain.PkgName]struct{}, len(group))
	for _, pkg := range group {
		if _, done := built[pkg.Base]; done {
			continue
		}
		built[pkg.Base] = struct{}{}

		paths, err := b.buildOne(ctx, pkg)
		if err != nil {
			return nil, err
		}
		artifacts = append(artifacts, paths...)
	}
	return artifacts, nil
}

// buildOne compiles a single recipe base and resolves the artifact paths
// it produced.
func (b *Builder) buildOne(ctx context.Context, pkg domain.Buildable) ([]string, error) {
	dir := b.cloneDir(pkg.Base)

	//nolint:gosec // fixed tool, fixed flags
	listCmd := exec.CommandContext(ctx, makepkgBin, "--packagelist")
	listCmd.Dir = dir
	listOut, err := listCmd.Output()
	if err != nil {
		return nil, wrapToolError(err, "failed to list recipe artifacts", pkg.Name)
	}

	// makepkg drives the compile interactively: dependency installs and
	// signature prompts go straight to the terminal.
	//nolint:gosec // fixed tool, fixed flags
	buildCmd := exec.CommandContext(ctx, makepkgBin, "-s", "-f", "--noconfirm")
	buildCmd.Dir = dir
	buildCmd.Stdin = os.Stdin
	buildCmd.Stdout = os.Stdout
	buildCmd.Stderr = os.Stderr
	if err := buildCmd.Run(); err != nil {
		buildErr := zerr.With(domain.ErrBuildFailed, "package", pkg.Name.String())
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return nil, zerr.With(buildErr, "exit_code", exitErr.ExitCode())
		}
		return nil, zerr.With(buildErr, "cause", err.Error())
	}

	var artifacts []string
	for line := range strings.Lines(string(listOut)) {
		if path := strings.TrimSpace(line); path != "" {
			artifacts = append(artifacts, path)
		}
	}
	return artifacts, nil
}

// run executes a tool, capturing stderr into the returned error.
func run(ctx context.Context, dir, bin string, args ...string) error {
	//nolint:gosec // bin is a fixed tool name, args are validated inputs
	cmd := exec.CommandContext(ctx, bin, args...)
	cmd.Dir = dir
	_, err := cmd.Output()
	return err
}

// wrapToolError attaches the package and captured stderr to a failed tool
// invocation.
func wrapToolError(err error, msg string, name domain.PkgName) error {
	wrapped := zerr.With(zerr.Wrap(err, msg), "package", name.String())
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		wrapped = zerr.With(wrapped, "stderr", strings.TrimSpace(string(exitErr.Stderr)))
	}
	return wrapped
}
