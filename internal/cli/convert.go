package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"pacer/internal/pace"
)

// conversion is the machine-readable output of convert and parse
type conversion struct {
	Input  string          `json:"input"`
	Unit   pace.Unit       `json:"unit"`
	Values pace.Values     `json:"values"`
	Races  []pace.RaceTime `json:"races"`
}

type convertFlags struct {
	json bool
}

func newConvertCmd(a *app) *cobra.Command {
	flags := &convertFlags{}

	cmd := &cobra.Command{
		Use:   "convert <value> <unit>",
		Short: "Convert a pace or speed to every unit",
		Long: `Convert one pace or speed into min/mi, min/km, mph and km/h, with
finish times for the standard races. Paces may be written as M:SS.`,
		Example: `  pacer convert 7:30 min/mi
  pacer convert 5:00 /km
  pacer convert 8.5 mph --json`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			unit, err := pace.ParseUnit(args[1])
			if err != nil {
				return err
			}
			value, err := parseValue(args[0], unit)
			if err != nil {
				return err
			}
			values, err := pace.ValuesFrom(value, unit)
			if err != nil {
				return err
			}

			c := conversion{
				Input:  args[0],
				Unit:   unit,
				Values: values,
				Races:  pace.RaceTimes(values.MinPerMile),
			}
			if flags.json {
				return writeJSON(cmd.OutOrStdout(), c)
			}
			writeConversion(cmd.OutOrStdout(), c)
			return nil
		},
	}

	cmd.Flags().BoolVar(&flags.json, "json", false, "Print JSON")

	return cmd
}

// parseValue reads a command-line value in unit. Paces accept M:SS or
// H:MM:SS as well as decimal minutes.
func parseValue(text string, unit pace.Unit) (float64, error) {
	if unit.IsPace() && strings.Contains(text, ":") {
		v, err := pace.ParseTimeInput(text)
		if err != nil {
			return 0, err
		}
		if v <= 0 {
			return 0, fmt.Errorf("%w: %q must be positive", pace.ErrInvalidInput, text)
		}
		return v, nil
	}

	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", pace.ErrInvalidInput, text)
	}
	return v, nil
}

func writeConversion(w io.Writer, c conversion) {
	writeValues(w, c.Values)
	fmt.Fprintln(w)
	writeRaces(w, c.Races)
}

func writeValues(w io.Writer, v pace.Values) {
	for _, u := range pace.Units {
		fmt.Fprintf(w, "%-8s %s\n", u.Label(), pace.FormatPreciseValue(v.Get(u), u))
	}
}

func writeRaces(w io.Writer, races []pace.RaceTime) {
	for _, rt := range races {
		fmt.Fprintf(w, "%-15s %10s\n", rt.Name, rt.Time)
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
