package prompt

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConsoleReadLineStripsTerminators(t *testing.T) {
	t.Parallel()

	console := NewConsole(strings.NewReader("first\nsecond\r\n\nlast"), nil)

	for _, want := range []string{"first", "second", "", "last"} {
		got, err := console.ReadLine()
		require.NoError(t, err)
		require.Equal(t, want, got)
	}

	_, err := console.ReadLine()
	require.ErrorIs(t, err, io.EOF)
}

func TestConsoleReadLineEmptyInput(t *testing.T) {
	t.Parallel()

	console := NewConsole(nil, nil)
	_, err := console.ReadLine()
	require.ErrorIs(t, err, io.EOF)
}

type failingReader struct{ err error }

func (r failingReader) Read([]byte) (int, error) { return 0, r.err }

func TestConsoleReadLinePropagatesReaderError(t *testing.T) {
	t.Parallel()

	readErr := errors.New("tty detached")
	console := NewConsole(failingReader{err: readErr}, nil)

	_, err := console.ReadLine()
	require.ErrorIs(t, err, readErr)
}

func TestConsoleWriteIsVerbatim(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	console := NewConsole(nil, &out)

	require.NoError(t, console.Write("Height? "))
	require.NoError(t, console.Write("line\n"))
	require.Equal(t, "Height? line\n", out.String())
}
