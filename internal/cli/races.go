package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"pacer/internal/pace"
)

func newRacesCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "races <pace> [unit]",
		Short: "Project finish times for the standard races",
		Example: `  pacer races 8:00
  pacer races 4:45 min/km
  pacer races 10 mph`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			unit := pace.MinPerMile
			if len(args) == 2 {
				u, err := pace.ParseUnit(args[1])
				if err != nil {
					return err
				}
				unit = u
			}

			value, err := parseValue(args[0], unit)
			if err != nil {
				return err
			}
			minPerMile, err := pace.Convert(value, unit, pace.MinPerMile)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "At %s/mi (%s/km)\n\n",
				pace.FormatExactPace(minPerMile),
				pace.FormatExactPace(minPerMile/pace.KmPerMile),
			)
			for _, rt := range pace.RaceTimes(minPerMile) {
				fmt.Fprintf(w, "%-15s %10s   %s\n", rt.Name, rt.Time, pace.RaceTooltip(rt.Race.Miles))
			}
			return nil
		},
	}

	return cmd
}
