package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Gurpartap/numprompt/prompt"
)

const demoSeparator = "***********"

func newDemoCommand(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Walk through the prompt variants",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			p := rt.prompter()

			if err := rt.printHeader("Decimal prompt with defaults"); err != nil {
				return err
			}
			angle, err := p.Decimal(ctx, "Angle?", prompt.DefaultDecimalConfig())
			if err != nil {
				return fmt.Errorf("angle: %w", err)
			}
			if _, err := rt.value.Fprintln(rt.out, angle.String()); err != nil {
				return err
			}
			if err := rt.printHeader(demoSeparator); err != nil {
				return err
			}

			if err := rt.printHeader("Decimal prompt with verbosity turned off"); err != nil {
				return err
			}
			quiet := prompt.DefaultDecimalConfig()
			quiet.Verbose = false
			length, err := p.Decimal(ctx, "Length?", quiet)
			if err != nil {
				return fmt.Errorf("length: %w", err)
			}
			if _, err := rt.value.Fprintln(rt.out, length.String()); err != nil {
				return err
			}
			if err := rt.printHeader(demoSeparator); err != nil {
				return err
			}

			if err := rt.printHeader("Integer prompt with min value set"); err != nil {
				return err
			}
			heightCfg := prompt.DefaultIntegerConfig()
			heightCfg.Min = 1
			height, err := p.Integer(ctx, "Height?", heightCfg)
			if err != nil {
				return fmt.Errorf("height: %w", err)
			}
			_, err = rt.value.Fprintln(rt.out, height)
			return err
		},
	}
}

func (rt *runtime) printHeader(line string) error {
	_, err := rt.header.Fprintln(rt.out, line)
	return err
}
