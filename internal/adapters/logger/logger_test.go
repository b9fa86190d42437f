package logger_test

import (
	"bytes"
	"strings"
	"testing"

	"go.trai.ch/porter/internal/adapters/logger"
	"go.trai.ch/zerr"
)

func TestLogger_Info(t *testing.T) {
	l := logger.New().(*logger.Logger)
	var buf bytes.Buffer
	l.SetOutput(&buf)

	l.Info("resolving packages")

	out := buf.String()
	if !strings.Contains(out, "resolving packages") {
		t.Errorf("expected message in output, got %q", out)
	}
	if !strings.Contains(out, "level=INFO") {
		t.Errorf("expected INFO level, got %q", out)
	}
}

func TestLogger_ErrorCarriesMetadata(t *testing.T) {
	l := logger.New().(*logger.Logger)
	var buf bytes.Buffer
	l.SetOutput(&buf)

	err := zerr.With(zerr.New("lookup failed"), "package", "yay")
	l.Error(err)

	out := buf.String()
	if !strings.Contains(out, "lookup failed") {
		t.Errorf("expected error message in output, got %q", out)
	}
	if !strings.Contains(out, "package=yay") {
		t.Errorf("expected metadata attribute in output, got %q", out)
	}
}
