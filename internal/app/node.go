package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/porter/internal/adapters/config"   //nolint:depguard // Wired in app layer
	"go.trai.ch/porter/internal/adapters/logger"   //nolint:depguard // Wired in app layer
	"go.trai.ch/porter/internal/adapters/progress" //nolint:depguard // Wired in app layer
	"go.trai.ch/porter/internal/adapters/srcbuild" //nolint:depguard // Wired in app layer
	"go.trai.ch/porter/internal/core/domain"
	"go.trai.ch/porter/internal/core/ports"
	"go.trai.ch/porter/internal/engine/dblock"
	"go.trai.ch/porter/internal/engine/resolve"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components bundles the application with the collaborators the CLI layer
// needs access to.
type Components struct {
	App      *App
	Settings *domain.Settings
	Logger   ports.Logger
	Notifier ports.Notifier
}

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			resolve.NodeID,
			dblock.NodeID,
			srcbuild.NodeID,
			progress.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	settings, err := graft.Dep[*domain.Settings](ctx)
	if err != nil {
		return nil, err
	}
	repo, err := graft.Dep[ports.Repository](ctx)
	if err != nil {
		return nil, err
	}
	manager, err := graft.Dep[ports.SystemManager](ctx)
	if err != nil {
		return nil, err
	}
	builder, err := graft.Dep[ports.Builder](ctx)
	if err != nil {
		return nil, err
	}
	notifier, err := graft.Dep[ports.Notifier](ctx)
	if err != nil {
		return nil, err
	}
	lock, err := graft.Dep[*dblock.Monitor](ctx)
	if err != nil {
		return nil, err
	}
	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}
	reporter, err := graft.Dep[ports.BuildReporter](ctx)
	if err != nil {
		return nil, err
	}

	return New(settings, repo, manager, builder, notifier, lock, log, reporter), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	application, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}
	settings, err := graft.Dep[*domain.Settings](ctx)
	if err != nil {
		return nil, err
	}
	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}
	notifier, err := graft.Dep[ports.Notifier](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:      application,
		Settings: settings,
		Logger:   log,
		Notifier: notifier,
	}, nil
}
