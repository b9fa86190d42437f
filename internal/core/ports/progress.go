package ports

import "io"

// BuildReporter records per-unit progress of the build phase.
//
//go:generate go run go.uber.org/mock/mockgen -source=progress.go -destination=mocks/mock_progress.go -package=mocks
type BuildReporter interface {
	// Vertex starts recording one build unit.
	Vertex(name string) BuildVertex

	// Close flushes and closes the recording session.
	Close() error
}

// BuildVertex is one recorded build unit. Writes carry the unit's output.
type BuildVertex interface {
	io.Writer

	// Done marks the unit finished, successfully or with an error.
	Done(err error)
}
