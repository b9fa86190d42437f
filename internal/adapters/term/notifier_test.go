package term

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/porter/internal/core/domain"
)

func TestNotifierInfo(t *testing.T) {
	var buf bytes.Buffer
	n := NewNotifierTo(&buf)

	n.Info("synchronizing package databases")

	assert.Contains(t, buf.String(), "synchronizing package databases")
	assert.True(t, strings.HasSuffix(buf.String(), "\n"))
}

func TestNotifierWarn(t *testing.T) {
	var buf bytes.Buffer
	n := NewNotifierTo(&buf)

	n.Warn("database is locked")

	assert.Contains(t, buf.String(), "database is locked")
}

func TestNotifierPackageList(t *testing.T) {
	var buf bytes.Buffer
	n := NewNotifierTo(&buf)

	n.PackageList("not found", []domain.PkgName{
		domain.NewPkgName("foo"),
		domain.NewPkgName("bar"),
	})

	out := buf.String()
	assert.Contains(t, out, "not found")
	assert.Contains(t, out, "foo")
	assert.Contains(t, out, "bar")
}

func TestPrompterAcknowledge(t *testing.T) {
	p := NewPrompterFrom(strings.NewReader("\n"))
	require.NoError(t, p.Acknowledge())
}

func TestPrompterAcknowledgeDiscardsInput(t *testing.T) {
	p := NewPrompterFrom(strings.NewReader("anything at all\n"))
	require.NoError(t, p.Acknowledge())
}

func TestPrompterAcknowledgeClosedInput(t *testing.T) {
	p := NewPrompterFrom(strings.NewReader(""))
	require.Error(t, p.Acknowledge())
}
