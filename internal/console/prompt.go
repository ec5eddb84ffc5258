package console

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
)

// Prompter reads operator input from stdin, one answer per line. Once the
// input is exhausted it stops blocking: every prompt returns empty and EOF
// reports true, so the menu loop can shut down instead of spinning.
type Prompter struct {
	in  *bufio.Reader
	eof bool
}

func NewPrompter() *Prompter {
	return &Prompter{in: bufio.NewReader(os.Stdin)}
}

func newPrompterFrom(r io.Reader) *Prompter {
	return &Prompter{in: bufio.NewReader(r)}
}

// EOF reports whether the input source is exhausted.
func (p *Prompter) EOF() bool { return p.eof }

func (p *Prompter) Line(label string) string {
	fmt.Print(label)
	line, err := p.in.ReadString('\n')
	if err != nil && line == "" {
		p.eof = true
	}
	return strings.TrimSpace(line)
}

func (p *Prompter) Int64(label string) (int64, error) {
	raw := p.Line(label)
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("not a number: %q", raw)
	}
	return v, nil
}

// Secret reads a line without echo when stdin is a terminal, falling back to
// a plain read for piped input.
func (p *Prompter) Secret(label string) string {
	fmt.Print(label)
	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		b, err := term.ReadPassword(fd)
		fmt.Println()
		if err == nil {
			return strings.TrimSpace(string(b))
		}
	}
	line, err := p.in.ReadString('\n')
	if err != nil && line == "" {
		p.eof = true
	}
	return strings.TrimSpace(line)
}

func (p *Prompter) YesNo(label string) bool {
	answer := strings.ToLower(p.Line(label))
	return answer == "yes" || answer == "y"
}
