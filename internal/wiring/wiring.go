// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/porter/internal/adapters/aur"
	_ "go.trai.ch/porter/internal/adapters/config"
	_ "go.trai.ch/porter/internal/adapters/logger"
	_ "go.trai.ch/porter/internal/adapters/pacman"
	_ "go.trai.ch/porter/internal/adapters/progress"
	_ "go.trai.ch/porter/internal/adapters/srcbuild"
	_ "go.trai.ch/porter/internal/adapters/term"
	// Register app and engine nodes.
	_ "go.trai.ch/porter/internal/app"
	_ "go.trai.ch/porter/internal/engine/dblock"
	_ "go.trai.ch/porter/internal/engine/resolve"
)
