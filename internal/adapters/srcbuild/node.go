package srcbuild

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/porter/internal/adapters/config"
	"go.trai.ch/porter/internal/core/domain"
	"go.trai.ch/porter/internal/core/ports"
)

const (
	// NodeID is the unique identifier for the source builder node.
	NodeID graft.ID = "adapter.builder"
)

func init() {
	graft.Register(graft.Node[ports.Builder]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID},
		Run: func(ctx context.Context) (ports.Builder, error) {
			settings, err := graft.Dep[*domain.Settings](ctx)
			if err != nil {
				return nil, err
			}
			return NewBuilder(settings), nil
		},
	})
}
