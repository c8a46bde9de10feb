package prompt

import (
	"bufio"
	"errors"
	"io"
	"strings"
)

// Console is the line-oriented terminal a Prompter talks to.
// Implementations are not required to be safe for concurrent usage.
type Console interface {
	// Write appends text to the output verbatim, without adding a newline.
	Write(text string) error
	// ReadLine blocks until one line is available and returns it without its
	// terminator. It returns io.EOF once the input is exhausted.
	ReadLine() (string, error)
}

type lineConsole struct {
	in  *bufio.Reader
	out io.Writer
}

// NewConsole returns a Console reading lines from in and writing to out.
// A final line without a terminator is still delivered before io.EOF.
func NewConsole(in io.Reader, out io.Writer) Console {
	if in == nil {
		in = strings.NewReader("")
	}
	if out == nil {
		out = io.Discard
	}
	return &lineConsole{
		in:  bufio.NewReader(in),
		out: out,
	}
}

func (c *lineConsole) Write(text string) error {
	_, err := io.WriteString(c.out, text)
	return err
}

func (c *lineConsole) ReadLine() (string, error) {
	line, err := c.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", err
		}
		if line == "" {
			return "", io.EOF
		}
	}

	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return line, nil
}
