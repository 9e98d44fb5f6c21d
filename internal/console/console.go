package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	"golang.org/x/term"
)

// DefaultPrompt is shown before each command on an interactive terminal
const DefaultPrompt = "> "

type line struct {
	text string
	err  error
}

// Console reads input lines on a background goroutine so a caller can stop
// waiting when its context ends
type Console struct {
	scanner     *bufio.Scanner
	out         io.Writer
	interactive bool
	prompt      string

	lines     chan line
	done      chan struct{}
	once      sync.Once
	closeOnce sync.Once
}

// New creates a console. The prompt is only printed when in is a terminal.
func New(in io.Reader, out io.Writer) *Console {
	return &Console{
		scanner:     bufio.NewScanner(in),
		out:         out,
		interactive: isTerminal(in),
		prompt:      DefaultPrompt,
		lines:       make(chan line),
		done:        make(chan struct{}),
	}
}

// Interactive reports whether input comes from a terminal
func (c *Console) Interactive() bool {
	return c.interactive
}

// Prompt prints the command prompt on interactive terminals
func (c *Console) Prompt() {
	if c.interactive {
		fmt.Fprint(c.out, c.prompt)
	}
}

// ReadLine returns the next line, io.EOF at the end of input, or the
// context error if ctx ends first.
func (c *Console) ReadLine(ctx context.Context) (string, error) {
	c.once.Do(func() {
		go c.scan()
	})

	select {
	case <-c.done:
		return "", io.EOF
	default:
	}

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case <-c.done:
		return "", io.EOF
	case l, ok := <-c.lines:
		if !ok {
			return "", io.EOF
		}
		return l.text, l.err
	}
}

// Close stops delivering lines. The reader goroutine exits once its
// pending read returns; ReadLine reports io.EOF afterwards.
func (c *Console) Close() {
	c.closeOnce.Do(func() {
		close(c.done)
	})
}

func (c *Console) scan() {
	defer close(c.lines)

	for c.scanner.Scan() {
		if !c.send(line{text: c.scanner.Text()}) {
			return
		}
	}

	if err := c.scanner.Err(); err != nil {
		c.send(line{err: fmt.Errorf("error reading input: %w", err)})
	}
}

func (c *Console) send(l line) bool {
	select {
	case c.lines <- l:
		return true
	case <-c.done:
		return false
	}
}

func isTerminal(in io.Reader) bool {
	f, ok := in.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
