package dblock_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"go.trai.ch/porter/internal/core/ports/mocks"
	"go.trai.ch/porter/internal/engine/dblock"
)

func TestMonitor_UnlockedProceedsImmediately(t *testing.T) {
	ctrl := gomock.NewController(t)
	manager := mocks.NewMockSystemManager(ctrl)
	notifier := mocks.NewMockNotifier(ctrl)
	prompter := mocks.NewMockPrompter(ctrl)

	manager.EXPECT().DBLockPresent().Return(false, nil)

	m := dblock.New(manager, notifier, prompter)
	require.NoError(t, m.Wait())
}

func TestMonitor_OnePollOneWarning(t *testing.T) {
	// Lock removed after exactly one poll: exactly one warning, one
	// acknowledgment, then unlocked.
	ctrl := gomock.NewController(t)
	manager := mocks.NewMockSystemManager(ctrl)
	notifier := mocks.NewMockNotifier(ctrl)
	prompter := mocks.NewMockPrompter(ctrl)

	gomock.InOrder(
		manager.EXPECT().DBLockPresent().Return(true, nil),
		notifier.EXPECT().Warn(gomock.Any()),
		prompter.EXPECT().Acknowledge().Return(nil),
		manager.EXPECT().DBLockPresent().Return(false, nil),
	)

	m := dblock.New(manager, notifier, prompter)
	require.NoError(t, m.Wait())
}

func TestMonitor_LoopsWhileLocked(t *testing.T) {
	ctrl := gomock.NewController(t)
	manager := mocks.NewMockSystemManager(ctrl)
	notifier := mocks.NewMockNotifier(ctrl)
	prompter := mocks.NewMockPrompter(ctrl)

	manager.EXPECT().DBLockPresent().Return(true, nil).Times(3)
	manager.EXPECT().DBLockPresent().Return(false, nil)
	notifier.EXPECT().Warn(gomock.Any()).Times(3)
	prompter.EXPECT().Acknowledge().Return(nil).Times(3)

	m := dblock.New(manager, notifier, prompter)
	require.NoError(t, m.Wait())
}

func TestMonitor_InterruptedAcknowledgment(t *testing.T) {
	ctrl := gomock.NewController(t)
	manager := mocks.NewMockSystemManager(ctrl)
	notifier := mocks.NewMockNotifier(ctrl)
	prompter := mocks.NewMockPrompter(ctrl)

	interrupted := errors.New("stdin closed")
	manager.EXPECT().DBLockPresent().Return(true, nil)
	notifier.EXPECT().Warn(gomock.Any())
	prompter.EXPECT().Acknowledge().Return(interrupted)

	m := dblock.New(manager, notifier, prompter)
	err := m.Wait()
	require.Error(t, err)
	assert.ErrorIs(t, err, interrupted)
}

func TestMonitor_CheckFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	manager := mocks.NewMockSystemManager(ctrl)
	notifier := mocks.NewMockNotifier(ctrl)
	prompter := mocks.NewMockPrompter(ctrl)

	boom := errors.New("permission denied")
	manager.EXPECT().DBLockPresent().Return(false, boom)

	m := dblock.New(manager, notifier, prompter)
	require.ErrorIs(t, m.Wait(), boom)
}
