package cli

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/Gurpartap/numprompt/prompt"
)

func newDecimalCommand(rt *runtime) *cobra.Command {
	var (
		flags          numberFlags
		rawMin, rawMax string
	)

	cmd := &cobra.Command{
		Use:   "decimal [prompt]",
		Short: "Ask for a decimal value",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := flags.validate(); err != nil {
				return err
			}

			cfg := prompt.DefaultDecimalConfig()
			cfg.Verbose = rt.cfg.Verbose && !flags.quiet
			var err error
			if cfg.Min, err = decimalFlag("min", rawMin, cfg.Min); err != nil {
				return err
			}
			if cfg.Max, err = decimalFlag("max", rawMax, cfg.Max); err != nil {
				return err
			}

			text := promptText(args, "Decimal value?")
			p := rt.prompter()

			for i := int32(0); i < flags.repeat; i++ {
				value, err := p.Decimal(cmd.Context(), text, cfg)
				if err != nil {
					return fmt.Errorf("decimal prompt: %w", err)
				}
				rt.logger.Debug("decimal accepted", "value", value.String(), "index", i)
				if _, err := rt.value.Fprintln(rt.out, value.String()); err != nil {
					return err
				}
			}
			return nil
		},
	}

	flags.bind(cmd)
	cmd.Flags().StringVar(&rawMin, "min", "", "smallest accepted value (inclusive, default "+prompt.DecimalMin.String()+")")
	cmd.Flags().StringVar(&rawMax, "max", "", "largest accepted value (inclusive, default "+prompt.DecimalMax.String()+")")
	return cmd
}

func decimalFlag(name, raw string, fallback decimal.Decimal) (decimal.Decimal, error) {
	if strings.TrimSpace(raw) == "" {
		return fallback, nil
	}
	value, err := prompt.ParseDecimal(raw)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("--%s: %w", name, err)
	}
	return value, nil
}
