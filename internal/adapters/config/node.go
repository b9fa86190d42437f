package config

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/porter/internal/core/domain"
)

// NodeID is the unique identifier for the settings Graft node.
const NodeID graft.ID = "adapter.settings"

func init() {
	graft.Register(graft.Node[*domain.Settings]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (*domain.Settings, error) {
			return Load(Path())
		},
	})
}
