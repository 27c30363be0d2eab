// Package console is the operator-facing surface: every message is framed by
// two 96-dash rules and the console window is brought forward before it.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// RuleWidth is the width of the separator lines around each message.
const RuleWidth = 96

var rule = strings.Repeat("-", RuleWidth)

// Focuser brings the program's own window to the foreground.
// Implementations must not fail; platforms without a window do nothing.
type Focuser interface {
	Focus()
}

// Console prints framed messages and reads operator input
type Console struct {
	out   io.Writer
	in    *bufio.Reader
	inFd  int
	isTTY bool
	focus Focuser
}

// New creates a console over the given streams
func New(in io.Reader, out io.Writer, focus Focuser) *Console {
	c := &Console{
		out:   out,
		in:    bufio.NewReader(in),
		inFd:  -1,
		focus: focus,
	}
	if f, ok := in.(*os.File); ok {
		c.inFd = int(f.Fd())
		c.isTTY = term.IsTerminal(c.inFd)
	}
	if c.focus == nil {
		c.focus = NopFocuser{}
	}
	return c
}

// Stdio returns a console bound to the process's standard streams
func Stdio() *Console {
	return New(os.Stdin, os.Stdout, NewFocuser())
}

// Print writes message between two rule lines
func (c *Console) Print(message string) {
	c.focus.Focus()
	fmt.Fprintln(c.out, rule)
	fmt.Fprintln(c.out, message)
	fmt.Fprintln(c.out, rule)
}

// Printf formats and prints a framed message
func (c *Console) Printf(format string, args ...interface{}) {
	c.Print(fmt.Sprintf(format, args...))
}

// Println writes an unframed line
func (c *Console) Println(line string) {
	fmt.Fprintln(c.out, line)
}

// ReadLine reads one line without its terminator.
// A closed input yields the empty string.
func (c *Console) ReadLine() (string, error) {
	line, err := c.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read line: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// ReadKey blocks until a single key event. On a terminal the input is put in
// raw mode so the key does not need to be followed by Enter.
func (c *Console) ReadKey() error {
	if c.isTTY {
		state, err := term.MakeRaw(c.inFd)
		if err != nil {
			return fmt.Errorf("failed to enter raw mode: %w", err)
		}
		defer term.Restore(c.inFd, state)
	}
	if _, err := c.in.ReadByte(); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("failed to read key: %w", err)
	}
	return nil
}
