package cli

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"pacer/internal/config"
	"pacer/internal/logging"
	"pacer/internal/service"
	"pacer/internal/store"
	"pacer/internal/tui"
)

// app carries what every command needs once the root has loaded it
type app struct {
	cfg     *config.Config
	logger  *zap.Logger
	verbose bool
}

// NewRootCmd builds the pacer command tree
func NewRootCmd() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:   "pacer",
		Short: "Running pace and speed converter",
		Long: `Pacer converts between min/mi, min/km, mph and km/h and projects
finish times for the 5K, 10K, half marathon and marathon.

Run without a command to open the interactive converter.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Only the interactive converter writes a starter config.
			return a.load(cmd == cmd.Root())
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runTUI()
		},
	}

	cmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Log at debug level")

	cmd.AddCommand(newConvertCmd(a))
	cmd.AddCommand(newRacesCmd(a))
	cmd.AddCommand(newParseCmd(a))
	cmd.AddCommand(newOptionsCmd(a))
	cmd.AddCommand(newTableCmd(a))
	cmd.AddCommand(newInitCmd(a))

	return cmd
}

// Execute runs the root command
func Execute() error {
	return NewRootCmd().Execute()
}

func (a *app) load(createExample bool) error {
	load := config.LoadOrDefault
	if createExample {
		load = loadOrCreate
	}
	cfg, err := load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		dir, _ := config.GetConfigDir()
		return fmt.Errorf("config validation failed: %w (edit %s/config.json or run pacer init)", err, dir)
	}

	logger, err := logging.New(cfg.Log, a.verbose)
	if err != nil {
		return fmt.Errorf("creating logger: %w", err)
	}

	a.cfg = cfg
	a.logger = logger
	return nil
}

// loadOrCreate writes the example config on first run, then loads it
func loadOrCreate() (*config.Config, error) {
	cfg, err := config.Load()
	if !errors.Is(err, config.ErrNoConfig) {
		return cfg, err
	}
	if err := config.CreateExample(); err != nil {
		return nil, fmt.Errorf("creating example config: %w", err)
	}
	return config.Load()
}

func (a *app) runTUI() error {
	db, err := store.Open()
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	session, err := service.NewSession(a.cfg, db, a.logger)
	if err != nil {
		return fmt.Errorf("starting session: %w", err)
	}
	a.logger.Info("session started", zap.String("session_id", db.SessionID()))

	p := tea.NewProgram(tui.NewApp(session, a.cfg.Display), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}
	return nil
}
