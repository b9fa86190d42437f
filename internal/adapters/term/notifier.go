// Package term implements the notification sink and acknowledgment prompt
// on a terminal.
package term

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/porter/internal/core/domain"
)

var (
	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")). // Blue
			Bold(true)

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")). // Amber
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")). // Red
			Bold(true)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")). // Green
			Bold(true)
)

// Notifier implements ports.Notifier writing styled messages to a terminal.
type Notifier struct {
	out io.Writer
}

// NewNotifier creates a Notifier writing to stderr.
func NewNotifier() *Notifier {
	return &Notifier{out: os.Stderr}
}

// NewNotifierTo creates a Notifier writing to the given writer.
func NewNotifierTo(w io.Writer) *Notifier {
	return &Notifier{out: w}
}

// Info reports an informational message.
func (n *Notifier) Info(msg string) {
	_, _ = fmt.Fprintf(n.out, "%s %s\n", infoStyle.Render("::"), msg)
}

// Warn reports a warning.
func (n *Notifier) Warn(msg string) {
	_, _ = fmt.Fprintf(n.out, "%s %s\n", warnStyle.Render("warning:"), msg)
}

// Error reports an error message.
func (n *Notifier) Error(msg string) {
	_, _ = fmt.Fprintf(n.out, "%s %s\n", errorStyle.Render("error:"), msg)
}

// PackageList reports a labeled list of package names on one line.
func (n *Notifier) PackageList(label string, names []domain.PkgName) {
	strs := make([]string, len(names))
	for i, name := range names {
		strs[i] = name.String()
	}
	_, _ = fmt.Fprintf(n.out, "%s %s\n", labelStyle.Render(label+":"), strings.Join(strs, "  "))
}
