package progress

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/porter/internal/core/ports"
)

const (
	// NodeID is the unique identifier for the build reporter node.
	NodeID graft.ID = "adapter.build_reporter"
)

func init() {
	graft.Register(graft.Node[ports.BuildReporter]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.BuildReporter, error) {
			return New(), nil
		},
	})
}
