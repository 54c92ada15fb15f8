package cli

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"pacer/internal/config"
	"pacer/internal/pace"
)

type initFlags struct {
	defaults bool
	force    bool
}

func newInitCmd(a *app) *cobra.Command {
	flags := &initFlags{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create the config file",
		Long: `Create ~/.pacer/config.json through a short form, or with the defaults
when --defaults is given. An existing config is kept unless --force is set.`,
		Args: cobra.NoArgs,
		// A broken config must not stop init from replacing it.
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			a.logger = zap.NewNop()
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(cmd, flags)
		},
	}

	cmd.Flags().BoolVar(&flags.defaults, "defaults", false, "Write the default config without prompting")
	cmd.Flags().BoolVar(&flags.force, "force", false, "Overwrite an existing config")

	return cmd
}

func runInit(cmd *cobra.Command, flags *initFlags) error {
	dir, err := config.GetConfigDir()
	if err != nil {
		return err
	}

	_, err = config.Load()
	switch {
	case err == nil && !flags.force:
		return fmt.Errorf("config already exists at %s/config.json (use --force to overwrite)", dir)
	case err != nil && !errors.Is(err, config.ErrNoConfig) && !flags.force:
		return fmt.Errorf("existing config is unreadable (use --force to overwrite): %w", err)
	}

	cfg := config.DefaultConfig()
	if !flags.defaults {
		if err := runInitForm(&cfg); err != nil {
			return err
		}
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if err := config.Save(&cfg); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s/config.json\n", dir)
	return nil
}

func runInitForm(cfg *config.Config) error {
	theme := cfg.Display.Theme
	unit := cfg.Display.InitialUnit
	start := pace.FormatPreciseValue(cfg.Display.InitialPace, pace.Unit(unit))
	logFile := cfg.Log.File

	unitOptions := make([]huh.Option[string], 0, len(pace.Units))
	for _, u := range pace.Units {
		unitOptions = append(unitOptions, huh.NewOption(u.Label(), string(u)))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Theme").
				Description("system follows the terminal background.").
				Options(huh.NewOptions(config.Themes...)...).
				Value(&theme),
			huh.NewSelect[string]().
				Title("Starting unit").
				Description("The wheel that is active at startup.").
				Options(unitOptions...).
				Value(&unit),
			huh.NewInput().
				Title("Starting value").
				Description("M:SS for paces, a decimal for speeds.").
				Value(&start).
				Validate(func(s string) error {
					_, err := parseValue(s, pace.Unit(unit))
					return err
				}),
			huh.NewInput().
				Title("Log file (optional)").
				Description("Leave empty to disable logging.").
				Value(&logFile),
		),
	)
	if err := form.Run(); err != nil {
		return fmt.Errorf("running form: %w", err)
	}

	value, err := parseValue(start, pace.Unit(unit))
	if err != nil {
		return err
	}

	cfg.Display.Theme = theme
	cfg.Display.InitialUnit = unit
	cfg.Display.InitialPace = value
	cfg.Log.File = logFile
	return nil
}
