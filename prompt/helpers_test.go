package prompt

import (
	"bytes"
	"io"
	"strings"
)

type scriptedConsole struct {
	lines    []string
	writes   []string
	reads    int
	writeErr error
	readErr  error
}

func newScriptedConsole(lines ...string) *scriptedConsole {
	return &scriptedConsole{lines: lines}
}

func (c *scriptedConsole) Write(text string) error {
	if c.writeErr != nil {
		return c.writeErr
	}
	c.writes = append(c.writes, text)
	return nil
}

func (c *scriptedConsole) ReadLine() (string, error) {
	if c.readErr != nil {
		return "", c.readErr
	}
	if c.reads >= len(c.lines) {
		return "", io.EOF
	}
	line := c.lines[c.reads]
	c.reads++
	return line, nil
}

func (c *scriptedConsole) output() string {
	return strings.Join(c.writes, "")
}

// newBufferedPrompter feeds lines through the default console, one per row.
func newBufferedPrompter(lines ...string) (*Prompter, *bytes.Buffer) {
	var out bytes.Buffer
	var in strings.Builder
	for _, line := range lines {
		in.WriteString(line)
		in.WriteString("\n")
	}
	return New(NewConsole(strings.NewReader(in.String()), &out)), &out
}
