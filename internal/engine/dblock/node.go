package dblock

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/porter/internal/adapters/pacman" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/porter/internal/adapters/term"   //nolint:depguard // Wired in engine wiring
	"go.trai.ch/porter/internal/core/ports"
)

// NodeID is the unique identifier for the database lock monitor node.
const NodeID graft.ID = "engine.dblock"

func init() {
	graft.Register(graft.Node[*Monitor]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			pacman.ManagerNodeID,
			term.NotifierNodeID,
			term.PrompterNodeID,
		},
		Run: func(ctx context.Context) (*Monitor, error) {
			manager, err := graft.Dep[ports.SystemManager](ctx)
			if err != nil {
				return nil, err
			}
			notifier, err := graft.Dep[ports.Notifier](ctx)
			if err != nil {
				return nil, err
			}
			prompter, err := graft.Dep[ports.Prompter](ctx)
			if err != nil {
				return nil, err
			}
			return New(manager, notifier, prompter), nil
		},
	})
}
