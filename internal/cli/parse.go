package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"pacer/internal/pace"
)

type parseFlags struct {
	json bool
}

func newParseCmd(a *app) *cobra.Command {
	flags := &parseFlags{}

	cmd := &cobra.Command{
		Use:   "parse <text...>",
		Short: "Parse a free-text pace, speed or race time",
		Example: `  pacer parse 22:15 5k
  pacer parse 1:45:30 half marathon
  pacer parse 25:00 for 4 miles
  pacer parse 13.7 km/h`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := strings.Join(args, " ")
			parsed, err := pace.ParseCommandInput(input)
			if err != nil {
				a.logger.Debug("command rejected", zap.String("input", input), zap.Error(err))
				return err
			}
			values, err := pace.ValuesFrom(parsed.Value, parsed.Unit)
			if err != nil {
				return err
			}

			c := conversion{
				Input:  input,
				Unit:   parsed.Unit,
				Values: values,
				Races:  pace.RaceTimes(values.MinPerMile),
			}
			if flags.json {
				return writeJSON(cmd.OutOrStdout(), struct {
					Kind pace.CommandKind `json:"kind"`
					conversion
				}{parsed.Kind, c})
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Parsed %q as %s (%s)\n\n", input, parsed.Kind, parsed.Unit.Label())
			writeConversion(w, c)
			return nil
		},
	}

	cmd.Flags().BoolVar(&flags.json, "json", false, "Print JSON")

	return cmd
}
