package aur

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/porter/internal/adapters/config"
	"go.trai.ch/porter/internal/core/domain"
)

// NodeID is the unique identifier for the AUR repository node.
const NodeID graft.ID = "adapter.aur_repo"

func init() {
	graft.Register(graft.Node[*Repo]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID},
		Run: func(ctx context.Context) (*Repo, error) {
			settings, err := graft.Dep[*domain.Settings](ctx)
			if err != nil {
				return nil, err
			}
			return New(settings), nil
		},
	})
}
