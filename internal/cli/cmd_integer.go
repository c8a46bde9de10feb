package cli

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"github.com/Gurpartap/numprompt/guard"
	"github.com/Gurpartap/numprompt/prompt"
)

type numberFlags struct {
	quiet  bool
	repeat int32
}

func (f *numberFlags) bind(cmd *cobra.Command) {
	cmd.Flags().BoolVarP(&f.quiet, "quiet", "q", false, "do not remind the accepted range after an invalid response")
	cmd.Flags().Int32VarP(&f.repeat, "repeat", "n", 1, "number of values to ask for")
}

func (f *numberFlags) validate() error {
	return guard.ValidateRange(f.repeat, "repeat", guard.DefaultRange())
}

func newIntegerCommand(rt *runtime) *cobra.Command {
	var (
		flags    numberFlags
		minValue int32
		maxValue int32
	)

	cmd := &cobra.Command{
		Use:   "integer [prompt]",
		Short: "Ask for a whole number",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := flags.validate(); err != nil {
				return err
			}

			cfg := prompt.IntegerConfig{
				Min:     minValue,
				Max:     maxValue,
				Verbose: rt.cfg.Verbose && !flags.quiet,
			}
			text := promptText(args, "Whole number?")
			p := rt.prompter()

			for i := int32(0); i < flags.repeat; i++ {
				value, err := p.Integer(cmd.Context(), text, cfg)
				if err != nil {
					return fmt.Errorf("integer prompt: %w", err)
				}
				rt.logger.Debug("integer accepted", "value", value, "index", i)
				if _, err := rt.value.Fprintln(rt.out, value); err != nil {
					return err
				}
			}
			return nil
		},
	}

	flags.bind(cmd)
	cmd.Flags().Int32Var(&minValue, "min", math.MinInt32, "smallest accepted value (inclusive)")
	cmd.Flags().Int32Var(&maxValue, "max", math.MaxInt32, "largest accepted value (inclusive)")
	return cmd
}
