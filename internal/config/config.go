package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"pacer/internal/pace"
)

// Config represents the application configuration
type Config struct {
	Display DisplayConfig `json:"display"`
	Wheels  WheelsConfig  `json:"wheels"`
	Log     LogConfig     `json:"log"`
}

// DisplayConfig holds display preferences
type DisplayConfig struct {
	Theme       string  `json:"theme"`        // "system", "light" or "dark"
	InitialPace float64 `json:"initial_pace"` // value shown at startup, in InitialUnit
	InitialUnit string  `json:"initial_unit"`
}

// WheelsConfig holds the option ranges of each converter wheel
type WheelsConfig struct {
	MinPerMile pace.Range `json:"min_per_mile"`
	MinPerKm   pace.Range `json:"min_per_km"`
	MPH        pace.Range `json:"mph"`
	KMH        pace.Range `json:"kmh"`
}

// LogConfig holds logging settings. An empty File disables logging.
type LogConfig struct {
	Level string `json:"level"`
	File  string `json:"file"`
}

// ErrNoConfig is returned when the config file doesn't exist
var ErrNoConfig = errors.New("config file not found")

// Themes lists the accepted display.theme values
var Themes = []string{"system", "light", "dark"}

// DefaultConfig returns the default configuration
func DefaultConfig() Config {
	return Config{
		Display: DisplayConfig{
			Theme:       "system",
			InitialPace: 8.0,
			InitialUnit: string(pace.MinPerMile),
		},
		Wheels: WheelsConfig{
			MinPerMile: pace.DefaultRanges[pace.MinPerMile],
			MinPerKm:   pace.DefaultRanges[pace.MinPerKm],
			MPH:        pace.DefaultRanges[pace.MPH],
			KMH:        pace.DefaultRanges[pace.KMH],
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load reads the configuration from ~/.pacer/config.json
func Load() (*Config, error) {
	path, err := getConfigPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, ErrNoConfig
	}
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	cfg.applyDefaults()
	return &cfg, nil
}

// LoadOrDefault loads the config file, falling back to defaults when none exists
func LoadOrDefault() (*Config, error) {
	cfg, err := Load()
	if errors.Is(err, ErrNoConfig) {
		defaults := DefaultConfig()
		return &defaults, nil
	}
	return cfg, err
}

// applyDefaults fills zero values from DefaultConfig
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.Display.Theme == "" {
		c.Display.Theme = defaults.Display.Theme
	}
	if c.Display.InitialPace == 0 {
		c.Display.InitialPace = defaults.Display.InitialPace
	}
	if c.Display.InitialUnit == "" {
		c.Display.InitialUnit = defaults.Display.InitialUnit
	}
	if c.Wheels.MinPerMile == (pace.Range{}) {
		c.Wheels.MinPerMile = defaults.Wheels.MinPerMile
	}
	if c.Wheels.MinPerKm == (pace.Range{}) {
		c.Wheels.MinPerKm = defaults.Wheels.MinPerKm
	}
	if c.Wheels.MPH == (pace.Range{}) {
		c.Wheels.MPH = defaults.Wheels.MPH
	}
	if c.Wheels.KMH == (pace.Range{}) {
		c.Wheels.KMH = defaults.Wheels.KMH
	}
	if c.Log.Level == "" {
		c.Log.Level = defaults.Log.Level
	}
}

// Save writes the configuration to ~/.pacer/config.json
func Save(cfg *Config) error {
	path, err := getConfigPath()
	if err != nil {
		return err
	}

	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// CreateExample creates an example config file if none exists
func CreateExample() error {
	path, err := getConfigPath()
	if err != nil {
		return err
	}

	// Check if config already exists
	if _, err := os.Stat(path); err == nil {
		return nil // Config exists, don't overwrite
	}

	example := DefaultConfig()
	dir, err := GetConfigDir()
	if err != nil {
		return err
	}
	example.Log.File = filepath.Join(dir, "pacer.log")

	return Save(&example)
}

// Validate checks that the config values are usable
func (c *Config) Validate() error {
	if c.Display.Theme != "" && !validTheme(c.Display.Theme) {
		return fmt.Errorf("display.theme must be one of %q, got %q", Themes, c.Display.Theme)
	}

	if c.Display.InitialUnit != "" {
		if _, err := pace.ParseUnit(c.Display.InitialUnit); err != nil {
			return fmt.Errorf("display.initial_unit: %w", err)
		}
	}
	if c.Display.InitialPace < 0 {
		return fmt.Errorf("display.initial_pace must be positive, got %v", c.Display.InitialPace)
	}

	for _, w := range []struct {
		name string
		unit pace.Unit
		r    pace.Range
	}{
		{"wheels.min_per_mile", pace.MinPerMile, c.Wheels.MinPerMile},
		{"wheels.min_per_km", pace.MinPerKm, c.Wheels.MinPerKm},
		{"wheels.mph", pace.MPH, c.Wheels.MPH},
		{"wheels.kmh", pace.KMH, c.Wheels.KMH},
	} {
		if w.r == (pace.Range{}) {
			continue
		}
		if err := validateRange(w.unit, w.r); err != nil {
			return fmt.Errorf("%s: %w", w.name, err)
		}
	}

	return nil
}

// MaxWheelOptions caps how many options one configured wheel may generate
const MaxWheelOptions = 2000

func validateRange(u pace.Unit, r pace.Range) error {
	if r.Start <= 0 || r.End <= r.Start {
		return fmt.Errorf("start (%v) must be positive and below end (%v)", r.Start, r.End)
	}
	if r.Step < 0 {
		return fmt.Errorf("step must not be negative, got %v", r.Step)
	}

	// Span in step units; a zero step falls back to the default spacing.
	step, span := r.Step, r.End-r.Start
	if u.IsPace() {
		if step != math.Trunc(step) {
			return fmt.Errorf("step must be whole seconds, got %v", r.Step)
		}
		if step == 0 {
			step = pace.DefaultPaceStepSeconds
		}
		span *= 60
	} else if step == 0 {
		step = pace.DefaultSpeedStep
	}
	if n := span / step; n > MaxWheelOptions {
		return fmt.Errorf("range yields %.0f options, more than %d", n, MaxWheelOptions)
	}
	return nil
}

// Ranges returns the configured wheel ranges keyed by unit. Unset ranges
// are left out so callers fall back to pace.DefaultRanges.
func (c *Config) Ranges() map[pace.Unit]pace.Range {
	ranges := make(map[pace.Unit]pace.Range, len(pace.Units))
	for u, r := range map[pace.Unit]pace.Range{
		pace.MinPerMile: c.Wheels.MinPerMile,
		pace.MinPerKm:   c.Wheels.MinPerKm,
		pace.MPH:        c.Wheels.MPH,
		pace.KMH:        c.Wheels.KMH,
	} {
		if r != (pace.Range{}) {
			ranges[u] = r
		}
	}
	return ranges
}

func validTheme(theme string) bool {
	for _, t := range Themes {
		if theme == t {
			return true
		}
	}
	return false
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// GetConfigDir returns the path to the config directory.
// PACER_CONFIG_DIR overrides the default of ~/.pacer.
func GetConfigDir() (string, error) {
	if dir := os.Getenv("PACER_CONFIG_DIR"); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, ".pacer"), nil
}
