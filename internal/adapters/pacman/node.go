package pacman

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/porter/internal/adapters/config"
	"go.trai.ch/porter/internal/core/domain"
	"go.trai.ch/porter/internal/core/ports"
)

const (
	// ManagerNodeID is the unique identifier for the system manager node.
	ManagerNodeID graft.ID = "adapter.system_manager"
	// SyncRepoNodeID is the unique identifier for the sync repository node.
	SyncRepoNodeID graft.ID = "adapter.sync_repo"
)

func init() {
	graft.Register(graft.Node[ports.SystemManager]{
		ID:        ManagerNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID},
		Run: func(ctx context.Context) (ports.SystemManager, error) {
			settings, err := graft.Dep[*domain.Settings](ctx)
			if err != nil {
				return nil, err
			}
			return NewManager(settings), nil
		},
	})

	graft.Register(graft.Node[*SyncRepo]{
		ID:        SyncRepoNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID},
		Run: func(ctx context.Context) (*SyncRepo, error) {
			settings, err := graft.Dep[*domain.Settings](ctx)
			if err != nil {
				return nil, err
			}
			return NewSyncRepo(settings), nil
		},
	})
}
