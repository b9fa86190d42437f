package commands_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/porter/cmd/porter/commands"
	"go.trai.ch/porter/internal/app"
	"go.trai.ch/porter/internal/core/domain"
	"go.trai.ch/porter/internal/core/ports/mocks"
	"go.trai.ch/porter/internal/engine/dblock"
	"go.uber.org/mock/gomock"
)

// newCLI builds a CLI over a fully mocked application. The returned mocks
// are expectation-free; commands that should not touch a collaborator fail
// the test when they do.
func newCLI(t *testing.T) (*commands.CLI, *mocks.MockSystemManager, *mocks.MockNotifier) {
	t.Helper()
	ctrl := gomock.NewController(t)

	repo := mocks.NewMockRepository(ctrl)
	manager := mocks.NewMockSystemManager(ctrl)
	builder := mocks.NewMockBuilder(ctrl)
	notifier := mocks.NewMockNotifier(ctrl)
	prompter := mocks.NewMockPrompter(ctrl)
	logger := mocks.NewMockLogger(ctrl)
	reporter := mocks.NewMockBuildReporter(ctrl)

	settings := &domain.Settings{UserID: 0, EffectiveUserID: 0, SudoUser: "alice"}
	lock := dblock.New(manager, notifier, prompter)
	a := app.New(settings, repo, manager, builder, notifier, lock, logger, reporter)
	return commands.New(a), manager, notifier
}

func TestVersionCommand(t *testing.T) {
	cli, _, _ := newCLI(t)
	cli.SetArgs([]string{"version"})

	require.NoError(t, cli.Execute(context.Background()))
}

func TestInstallWithoutArgsShowsHelp(t *testing.T) {
	cli, _, _ := newCLI(t)
	cli.SetArgs([]string{"install"})

	require.NoError(t, cli.Execute(context.Background()))
}

func TestForeignCommand(t *testing.T) {
	cli, manager, notifier := newCLI(t)

	foreign := []domain.PkgName{domain.NewPkgName("yay")}
	manager.EXPECT().Foreign(gomock.Any()).Return(foreign, nil)
	notifier.EXPECT().PackageList("foreign", foreign)

	cli.SetArgs([]string{"foreign"})
	require.NoError(t, cli.Execute(context.Background()))
}

func TestForeignDevelCommand(t *testing.T) {
	cli, manager, notifier := newCLI(t)

	manager.EXPECT().Foreign(gomock.Any()).Return([]domain.PkgName{
		domain.NewPkgName("yay"),
		domain.NewPkgName("neovim-git"),
	}, nil)
	notifier.EXPECT().PackageList("devel", []domain.PkgName{domain.NewPkgName("neovim-git")})

	cli.SetArgs([]string{"foreign", "--devel"})
	require.NoError(t, cli.Execute(context.Background()))
}

func TestUnknownCommand(t *testing.T) {
	cli, _, _ := newCLI(t)
	cli.SetArgs([]string{"frobnicate"})

	err := cli.Execute(context.Background())
	assert.Error(t, err)
}
