package resolve

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/porter/internal/adapters/aur"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/porter/internal/adapters/pacman" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/porter/internal/core/ports"
)

// NodeID is the unique identifier for the folded repository chain node.
const NodeID graft.ID = "engine.repository"

func init() {
	graft.Register(graft.Node[ports.Repository]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			pacman.SyncRepoNodeID,
			aur.NodeID,
		},
		Run: func(ctx context.Context) (ports.Repository, error) {
			syncRepo, err := graft.Dep[*pacman.SyncRepo](ctx)
			if err != nil {
				return nil, err
			}
			aurRepo, err := graft.Dep[*aur.Repo](ctx)
			if err != nil {
				return nil, err
			}
			// Official repositories win; the AUR only sees the misses.
			return Fold(syncRepo, aurRepo), nil
		},
	})
}
