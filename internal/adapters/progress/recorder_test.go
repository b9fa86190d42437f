package progress_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/porter/internal/adapters/progress"
)

func TestNew(t *testing.T) {
	recorder := progress.New()
	assert.NotNil(t, recorder)
}

func TestVertexWrite(t *testing.T) {
	recorder := progress.New()
	defer func() { _ = recorder.Close() }()

	v := recorder.Vertex("build foo")
	n, err := v.Write([]byte("compiling\n"))
	require.NoError(t, err)
	assert.Equal(t, len("compiling\n"), n)
	v.Done(nil)
}
