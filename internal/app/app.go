// Package app implements the application layer for porter.
package app

import (
	"context"
	"fmt"
	"strings"

	"go.trai.ch/porter/internal/core/domain"
	"go.trai.ch/porter/internal/core/ports"
	"go.trai.ch/porter/internal/engine/dblock"
	"go.trai.ch/zerr"
)

// App orchestrates the install and maintenance flows over the core ports.
type App struct {
	settings *domain.Settings
	repo     ports.Repository
	manager  ports.SystemManager
	builder  ports.Builder
	notifier ports.Notifier
	lock     *dblock.Monitor
	logger   ports.Logger
	reporter ports.BuildReporter
}

// New creates a new App instance.
func New(
	settings *domain.Settings,
	repo ports.Repository,
	manager ports.SystemManager,
	builder ports.Builder,
	notifier ports.Notifier,
	lock *dblock.Monitor,
	logger ports.Logger,
	reporter ports.BuildReporter,
) *App {
	return &App{
		settings: settings,
		repo:     repo,
		manager:  manager,
		builder:  builder,
		notifier: notifier,
		lock:     lock,
		logger:   logger,
		reporter: reporter,
	}
}

// Install resolves the requested dependency tokens, builds what has to be
// built and installs everything that is missing. Already-satisfied
// requests are skipped. Tokens may carry version constraints
// ("name>=1.2").
func (a *App) Install(ctx context.Context, tokens []string) error {
	if len(tokens) == 0 {
		return domain.ErrNoPackages
	}

	if err := a.lock.Wait(); err != nil {
		return err
	}

	deps, err := a.missingDeps(ctx, tokens)
	if err != nil {
		return err
	}
	if len(deps) == 0 {
		a.notifier.Info("everything is already satisfied, nothing to do")
		return nil
	}

	names := domain.NewNameSet()
	for _, d := range deps {
		names.Add(d.Name)
	}

	result, err := a.repo.Lookup(ctx, a.settings, names)
	if err != nil {
		return zerr.Wrap(err, "package lookup failed")
	}
	if len(result.Unresolved) > 0 {
		a.notifier.PackageList("not found", result.Unresolved.Sorted())
	}
	if len(result.Resolved) == 0 {
		return zerr.With(domain.ErrNoPackages, "requested", len(names))
	}

	groups, err := a.builder.Plan(ctx, result.Resolved)
	if err != nil {
		return err
	}
	prebuilt, buildGroups := domain.PartitionGroups(groups)

	artifacts, err := a.buildAll(ctx, buildGroups)
	if err != nil {
		return err
	}

	return domain.RequireElevated(a.settings, func() error {
		if len(prebuilt) > 0 {
			names := make([]domain.PkgName, len(prebuilt))
			for i, p := range prebuilt {
				names[i] = p.Name
			}
			if err := a.manager.InstallRepo(ctx, names); err != nil {
				return err
			}
		}
		if len(artifacts) > 0 {
			if err := a.manager.Upgrade(ctx, artifacts); err != nil {
				return err
			}
		}
		return nil
	})
}

// missingDeps parses the requested tokens and drops every dependency the
// installed state already satisfies, one manager query per token.
func (a *App) missingDeps(ctx context.Context, tokens []string) ([]domain.Dep, error) {
	var missing []domain.Dep
	for _, token := range tokens {
		dep := domain.ParseDep(token)
		satisfied, err := a.manager.DepSatisfied(ctx, dep)
		if err != nil {
			return nil, err
		}
		if satisfied {
			a.notifier.Info(fmt.Sprintf("%s is already satisfied, skipping", dep.Render()))
			continue
		}
		missing = append(missing, dep)
	}
	return missing, nil
}

// buildAll customizes and builds each buildable group in order and returns
// the produced artifact paths. Building is refused for the unconditional
// root identity.
func (a *App) buildAll(ctx context.Context, groups [][]domain.Buildable) ([]string, error) {
	if len(groups) == 0 {
		return nil, nil
	}

	var artifacts []string
	err := domain.ForbidTrueRoot(a.settings, func() error {
		defer func() {
			if err := a.reporter.Close(); err != nil {
				a.logger.Error(err)
			}
		}()

		for _, group := range groups {
			customized := make([]domain.Buildable, len(group))
			for i, pkg := range group {
				c, err := a.builder.Customize(ctx, pkg)
				if err != nil {
					return err
				}
				customized[i] = c
			}

			vertex := a.reporter.Vertex("build " + groupLabel(customized))
			paths, err := a.builder.Build(ctx, customized)
			for _, p := range paths {
				_, _ = fmt.Fprintln(vertex, p)
			}
			vertex.Done(err)
			if err != nil {
				return err
			}
			artifacts = append(artifacts, paths...)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return artifacts, nil
}

func groupLabel(group []domain.Buildable) string {
	names := make([]string, len(group))
	for i, p := range group {
		names[i] = p.Name.String()
	}
	return strings.Join(names, " ")
}

// RemoveOrphans removes every package installed only as a dependency and
// now required by nothing. When recursive is set, the removal cascades
// through dependencies not required elsewhere.
func (a *App) RemoveOrphans(ctx context.Context, recursive bool) error {
	orphans, err := a.manager.Orphans(ctx)
	if err != nil {
		return err
	}
	if len(orphans) == 0 {
		a.notifier.Info("no orphaned packages")
		return nil
	}

	a.notifier.PackageList("orphans", orphans)
	if err := a.lock.Wait(); err != nil {
		return err
	}
	return domain.RequireElevated(a.settings, func() error {
		return a.manager.Remove(ctx, orphans, recursive)
	})
}

// ListForeign reports the installed packages not supplied by the official
// repositories.
func (a *App) ListForeign(ctx context.Context) error {
	foreign, err := a.manager.Foreign(ctx)
	if err != nil {
		return err
	}
	a.notifier.PackageList("foreign", foreign)
	return nil
}

// ListOrphans reports the orphaned packages without removing anything.
func (a *App) ListOrphans(ctx context.Context) error {
	orphans, err := a.manager.Orphans(ctx)
	if err != nil {
		return err
	}
	a.notifier.PackageList("orphans", orphans)
	return nil
}

// ListDevel reports the foreign packages that track a moving upstream
// (development suffixes such as -git).
func (a *App) ListDevel(ctx context.Context) error {
	foreign, err := a.manager.Foreign(ctx)
	if err != nil {
		return err
	}
	a.notifier.PackageList("devel", domain.Devel(foreign))
	return nil
}
