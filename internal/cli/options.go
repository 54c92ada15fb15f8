package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"pacer/internal/pace"
)

func newOptionsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "options <unit>",
		Short: "Print the wheel options for a unit",
		Long: `Print every option of a unit's wheel as label and value, using the
ranges from the config file.`,
		Example: `  pacer options min/mi
  pacer options kmh -v`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			unit, err := pace.ParseUnit(args[0])
			if err != nil {
				return err
			}

			options := pace.NewOptionSet(a.cfg.Ranges()).For(unit)
			if dups := pace.DuplicateValues(options); len(dups) > 0 {
				a.logger.Debug("duplicate option values",
					zap.String("unit", string(unit)),
					zap.Strings("values", dups),
				)
			}
			a.logger.Debug("generated options",
				zap.String("unit", string(unit)),
				zap.Int("count", len(options)),
			)

			w := cmd.OutOrStdout()
			for _, o := range options {
				fmt.Fprintf(w, "%-6s %s\n", o.Label, o.Value)
			}
			return nil
		},
	}

	return cmd
}
