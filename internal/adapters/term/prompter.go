package term

import (
	"bufio"
	"io"
	"os"

	"go.trai.ch/zerr"
)

// Prompter implements ports.Prompter reading from a terminal.
type Prompter struct {
	in *bufio.Reader
}

// NewPrompter creates a Prompter reading from stdin.
func NewPrompter() *Prompter {
	return &Prompter{in: bufio.NewReader(os.Stdin)}
}

// NewPrompterFrom creates a Prompter reading from the given reader.
func NewPrompterFrom(r io.Reader) *Prompter {
	return &Prompter{in: bufio.NewReader(r)}
}

// Acknowledge blocks until the user presses enter. Any input up to the
// newline is discarded.
func (p *Prompter) Acknowledge() error {
	if _, err := p.in.ReadString('\n'); err != nil {
		if err == io.EOF {
			return zerr.Wrap(err, "input closed before acknowledgment")
		}
		return zerr.Wrap(err, "failed to read acknowledgment")
	}
	return nil
}
