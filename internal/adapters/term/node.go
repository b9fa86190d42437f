package term

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/porter/internal/core/ports"
)

const (
	// NotifierNodeID is the unique identifier for the terminal notifier node.
	NotifierNodeID graft.ID = "adapter.notifier"
	// PrompterNodeID is the unique identifier for the terminal prompter node.
	PrompterNodeID graft.ID = "adapter.prompter"
)

func init() {
	graft.Register(graft.Node[ports.Notifier]{
		ID:        NotifierNodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.Notifier, error) {
			return NewNotifier(), nil
		},
	})

	graft.Register(graft.Node[ports.Prompter]{
		ID:        PrompterNodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.Prompter, error) {
			return NewPrompter(), nil
		},
	})
}
