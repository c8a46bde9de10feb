package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/Gurpartap/numprompt/guard"
	"github.com/Gurpartap/numprompt/internal/config"
	"github.com/Gurpartap/numprompt/prompt"
)

func run(t *testing.T, cfg config.Config, input string, args ...string) (string, error) {
	t.Helper()

	cfg.NoColor = true
	var out, errOut bytes.Buffer
	err := Execute(context.Background(), args, Options{
		Config: cfg,
		In:     strings.NewReader(input),
		Out:    &out,
		Err:    &errOut,
	})
	return out.String(), err
}

func TestIntegerCommandPrintsAcceptedValue(t *testing.T) {
	t.Parallel()

	out, err := run(t, config.Default(), "15\n", "integer", "Height?")
	require.NoError(t, err)
	require.Equal(t, "Height? 15\n", out)
}

func TestIntegerCommandRangeAndQuiet(t *testing.T) {
	t.Parallel()

	out, err := run(t, config.Default(), "0\n11\n7\n", "integer", "--min", "1", "--max", "10", "--quiet", "Pick?")
	require.NoError(t, err)
	require.Equal(t, "Pick? Pick? Pick? 7\n", out)
}

func TestIntegerCommandVerboseFromConfig(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	cfg.Verbose = false
	out, err := run(t, cfg, "x\n3\n", "integer", "--min", "1", "--max", "5", "Pick?")
	require.NoError(t, err)
	require.Equal(t, "Pick? Pick? 3\n", out)
}

func TestIntegerCommandRepeat(t *testing.T) {
	t.Parallel()

	out, err := run(t, config.Default(), "1\nnope\n2\n", "integer", "-n", "2", "--min", "1", "--max", "9", "N?")
	require.NoError(t, err)

	want := "N? 1\nN? Please supply a whole number between 1 and 9.\nN? 2\n"
	if diff := cmp.Diff(want, out); diff != "" {
		t.Fatalf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestIntegerCommandRejectsInvalidRepeat(t *testing.T) {
	t.Parallel()

	_, err := run(t, config.Default(), "1\n", "integer", "--repeat", "0")
	require.ErrorIs(t, err, guard.ErrOutOfRange)
	require.EqualError(t, err, "The repeat parameter must be greater than or equal to 1.")
}

func TestIntegerCommandInputClosed(t *testing.T) {
	t.Parallel()

	out, err := run(t, config.Default(), "", "integer", "Height?")
	require.ErrorIs(t, err, prompt.ErrInputClosed)
	require.Equal(t, "Height? ", out)
}

func TestDecimalCommandRange(t *testing.T) {
	t.Parallel()

	out, err := run(t, config.Default(), "5\n-23\n", "decimal", "--min", "-100", "--max", "0")
	require.NoError(t, err)
	require.Equal(t, "Decimal value? Please supply a decimal value between -100 and 0.\nDecimal value? -23\n", out)
}

func TestDecimalCommandRejectsInvalidBound(t *testing.T) {
	t.Parallel()

	_, err := run(t, config.Default(), "1\n", "decimal", "--max", "ten")
	require.ErrorIs(t, err, prompt.ErrInvalidNumber)
	require.ErrorContains(t, err, "--max")
}

func TestDemoCommandTranscript(t *testing.T) {
	t.Parallel()

	input := strings.Join([]string{"x", "12.5", "bad", "3", "0", "5"}, "\n") + "\n"
	out, err := run(t, config.Default(), input, "demo")
	require.NoError(t, err)

	want := strings.Join([]string{
		"Decimal prompt with defaults",
		"Angle? Please supply a decimal value between -79228162514264337593543950335 and 79228162514264337593543950335.",
		"Angle? 12.5",
		"***********",
		"Decimal prompt with verbosity turned off",
		"Length? Length? 3",
		"***********",
		"Integer prompt with min value set",
		"Height? Please supply a whole number between 1 and 2147483647.",
		"Height? 5",
	}, "\n") + "\n"
	if diff := cmp.Diff(want, out); diff != "" {
		t.Fatalf("demo transcript mismatch (-want +got):\n%s", diff)
	}
}
