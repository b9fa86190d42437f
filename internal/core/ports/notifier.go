package ports

import "go.trai.ch/porter/internal/core/domain"

// Notifier is the sink for user-facing messages. Rendering, colour and
// localization are entirely the sink's concern.
//
//go:generate go run go.uber.org/mock/mockgen -source=notifier.go -destination=mocks/mock_notifier.go -package=mocks
type Notifier interface {
	Info(msg string)
	Warn(msg string)
	Error(msg string)

	// PackageList reports a labeled list of package names.
	PackageList(label string, names []domain.PkgName)
}

// Prompter blocks for a single line of human acknowledgment input.
type Prompter interface {
	// Acknowledge waits for one line of input and returns once received.
	Acknowledge() error
}
