// Package progress provides the Progrock implementation of the build reporter.
package progress

import (
	"github.com/opencontainers/go-digest"
	"github.com/vito/progrock"
	"go.trai.ch/porter/internal/core/ports"
)

// Recorder implements ports.BuildReporter using the progrock library.
type Recorder struct {
	w   progrock.Writer
	rec *progrock.Recorder
}

// New creates a new Recorder with a default tape.
func New() *Recorder {
	return NewRecorder(progrock.NewTape())
}

// NewRecorder creates a new Recorder with the given writer.
func NewRecorder(w progrock.Writer) *Recorder {
	return &Recorder{
		w:   w,
		rec: progrock.NewRecorder(w),
	}
}

// Vertex starts recording one build unit.
func (r *Recorder) Vertex(name string) ports.BuildVertex {
	d := digest.FromString(name)
	return &Vertex{vertex: r.rec.Vertex(d, name)}
}

// Close flushes and closes the recording session.
func (r *Recorder) Close() error {
	if c, ok := r.w.(interface{ Close() error }); ok {
		return c.Close()
	}
	return nil
}

// Vertex is one recorded build unit wrapping *progrock.VertexRecorder.
type Vertex struct {
	vertex *progrock.VertexRecorder
}

// Write forwards build output to the vertex's stdout stream.
func (v *Vertex) Write(p []byte) (int, error) {
	return v.vertex.Stdout().Write(p)
}

// Done marks the unit finished, successfully or with an error.
func (v *Vertex) Done(err error) {
	v.vertex.Done(err)
}

var _ ports.BuildReporter = (*Recorder)(nil)
