// Package dblock implements the wait loop guarding the system package
// database during concurrent external mutation.
package dblock

import (
	"go.trai.ch/porter/internal/core/ports"
	"go.trai.ch/zerr"
)

// Monitor polls the system manager's exclusive-operation lock marker. While
// the marker is present it warns and blocks on one line of human
// acknowledgment, then re-checks. There is no timeout and no retry cap: the
// lock belongs to another process and only a human can decide it is stale.
// The monitor never removes the marker itself.
type Monitor struct {
	manager  ports.SystemManager
	notifier ports.Notifier
	prompter ports.Prompter
}

// New creates a Monitor over the given lock check, warning sink and
// acknowledgment source.
func New(manager ports.SystemManager, notifier ports.Notifier, prompter ports.Prompter) *Monitor {
	return &Monitor{
		manager:  manager,
		notifier: notifier,
		prompter: prompter,
	}
}

// Wait blocks until the lock marker is absent. Each time the marker is
// observed it emits exactly one warning and waits for acknowledgment before
// re-checking. Interrupting the acknowledgment read is the only way out of
// the loop while the lock persists.
func (m *Monitor) Wait() error {
	for {
		locked, err := m.manager.DBLockPresent()
		if err != nil {
			return zerr.Wrap(err, "failed to check database lock")
		}
		if !locked {
			return nil
		}

		m.notifier.Warn("the package database is locked by another process; press enter to re-check once it has finished")
		if err := m.prompter.Acknowledge(); err != nil {
			return zerr.Wrap(err, "lock acknowledgment interrupted")
		}
	}
}
