package cli

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/Gurpartap/numprompt/internal/config"
	"github.com/Gurpartap/numprompt/prompt"
)

// Options carries the process-level collaborators of the command tree.
type Options struct {
	Config config.Config
	In     io.Reader
	Out    io.Writer
	Err    io.Writer
	Logger *slog.Logger
}

type runtime struct {
	cfg    config.Config
	in     io.Reader
	out    io.Writer
	logger *slog.Logger
	header *color.Color
	value  *color.Color
}

// NewRootCommand builds the numprompt command tree.
func NewRootCommand(opts Options) *cobra.Command {
	rt := newRuntime(opts)

	root := &cobra.Command{
		Use:   "numprompt",
		Short: "Ask for bounded numbers on the console",
		Long: `numprompt keeps asking until the response is a number inside the requested
range, then prints it. Invalid responses are answered with a reminder of the
accepted range unless --quiet is set.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetIn(rt.in)
	root.SetOut(rt.out)
	if opts.Err != nil {
		root.SetErr(opts.Err)
	}

	root.AddCommand(
		newIntegerCommand(rt),
		newDecimalCommand(rt),
		newDemoCommand(rt),
	)
	return root
}

// Execute runs the command tree against args.
func Execute(ctx context.Context, args []string, opts Options) error {
	root := NewRootCommand(opts)
	root.SetArgs(args)
	return root.ExecuteContext(ctx)
}

func newRuntime(opts Options) *runtime {
	in := opts.In
	if in == nil {
		in = strings.NewReader("")
	}
	out := opts.Out
	if out == nil {
		out = io.Discard
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	header := color.New(color.FgCyan, color.Bold)
	value := color.New(color.FgGreen)
	if opts.Config.NoColor {
		header.DisableColor()
		value.DisableColor()
	}

	return &runtime{
		cfg:    opts.Config,
		in:     in,
		out:    out,
		logger: logger,
		header: header,
		value:  value,
	}
}

// prompter binds a fresh console to the command streams. One prompter must
// serve every prompt of a command so buffered input is not lost.
func (rt *runtime) prompter() *prompt.Prompter {
	return prompt.New(prompt.NewConsole(rt.in, rt.out), prompt.WithLogger(rt.logger))
}

func promptText(args []string, fallback string) string {
	if len(args) == 0 {
		return fallback
	}
	return strings.Join(args, " ")
}
