package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"pacer/internal/pace"
)

// paceRow is one line of the pace chart
type paceRow struct {
	Option string          `json:"option" yaml:"option"`
	Values pace.Values     `json:"values" yaml:"values"`
	Races  []pace.RaceTime `json:"races" yaml:"races"`
}

type tableFlags struct {
	unit   string
	format string
	from   float64
	to     float64
}

func newTableCmd(a *app) *cobra.Command {
	flags := &tableFlags{}

	cmd := &cobra.Command{
		Use:   "table",
		Short: "Print a pace chart across a wheel",
		Long: `Print one row per wheel option with every unit and the standard race
finish times. --from and --to narrow the configured range.`,
		Example: `  pacer table
  pacer table --unit min/km --from 4 --to 5
  pacer table --unit mph --format yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			unit, err := pace.ParseUnit(flags.unit)
			if err != nil {
				return err
			}

			r := a.cfg.Ranges()[unit]
			if r == (pace.Range{}) {
				r = pace.DefaultRanges[unit]
			}
			if flags.from > 0 {
				r.Start = flags.from
			}
			if flags.to > 0 {
				r.End = flags.to
			}

			rows, err := buildPaceRows(unit, r)
			if err != nil {
				return err
			}
			return writeRows(cmd.OutOrStdout(), unit, rows, flags.format)
		},
	}

	cmd.Flags().StringVar(&flags.unit, "unit", string(pace.MinPerMile), "Wheel to chart (min/mi, min/km, mph, kmh)")
	cmd.Flags().StringVar(&flags.format, "format", "text", "Output format (text, json, yaml)")
	cmd.Flags().Float64Var(&flags.from, "from", 0, "First value (default: configured range start)")
	cmd.Flags().Float64Var(&flags.to, "to", 0, "Last value (default: configured range end)")

	return cmd
}

func buildPaceRows(unit pace.Unit, r pace.Range) ([]paceRow, error) {
	options := pace.GenerateOptions(unit, r)
	if len(options) == 0 {
		return nil, fmt.Errorf("%w: empty range %v to %v", pace.ErrInvalidInput, r.Start, r.End)
	}

	rows := make([]paceRow, 0, len(options))
	for _, o := range options {
		v, err := o.Float()
		if err != nil {
			return nil, err
		}
		values, err := pace.ValuesFrom(v, unit)
		if err != nil {
			return nil, err
		}
		rows = append(rows, paceRow{
			Option: o.Label,
			Values: values,
			Races:  pace.RaceTimes(values.MinPerMile),
		})
	}
	return rows, nil
}

func writeRows(w io.Writer, unit pace.Unit, rows []paceRow, format string) error {
	switch format {
	case "json":
		return writeJSON(w, rows)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(rows); err != nil {
			return err
		}
		return enc.Close()
	case "text", "":
		fmt.Fprintln(w, renderTable(unit, rows))
		return nil
	}
	return fmt.Errorf("unknown format %q (want text, json or yaml)", format)
}

func renderTable(unit pace.Unit, rows []paceRow) string {
	headers := []string{unit.Label()}
	for _, u := range pace.Units {
		if u != unit {
			headers = append(headers, u.Label())
		}
	}
	for _, r := range pace.RaceDistances {
		headers = append(headers, r.Name)
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...)

	for _, row := range rows {
		cells := []string{row.Option}
		for _, u := range pace.Units {
			if u != unit {
				cells = append(cells, pace.FormatPreciseValue(row.Values.Get(u), u))
			}
		}
		for _, rt := range row.Races {
			cells = append(cells, rt.Time)
		}
		t.Row(cells...)
	}

	return t.Render()
}
