package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"pacer/internal/config"
	"pacer/internal/pace"
)

// execute runs the root command with args in an isolated config dir
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("PACER_CONFIG_DIR", dir)
	return dir
}

func TestConvert(t *testing.T) {
	isolate(t)

	out, err := execute(t, "convert", "7:30", "min/mi")
	if err != nil {
		t.Fatalf("convert error = %v", err)
	}

	for _, want := range []string{
		"MIN/MI   7:30",
		"MIN/KM   4:40",
		"MPH      8.0",
		"KM/H     12.9",
		"5K",
		"23:15",
		"3:16:30",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestConvert_JSON(t *testing.T) {
	isolate(t)

	out, err := execute(t, "convert", "8.5", "mph", "--json")
	if err != nil {
		t.Fatalf("convert error = %v", err)
	}

	var got conversion
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, out)
	}
	if got.Unit != pace.MPH || got.Values.MPH != 8.5 {
		t.Errorf("got %+v, want 8.5 mph", got)
	}
	if len(got.Races) != len(pace.RaceDistances) {
		t.Errorf("got %d races, want %d", len(got.Races), len(pace.RaceDistances))
	}
}

func TestConvert_Errors(t *testing.T) {
	isolate(t)

	tests := []struct {
		name string
		args []string
		want error
	}{
		{"unknown unit", []string{"convert", "8", "furlongs"}, pace.ErrUnknownUnit},
		{"not a number", []string{"convert", "fast", "mph"}, pace.ErrInvalidInput},
		{"zero speed", []string{"convert", "0", "mph"}, pace.ErrInvalidInput},
		{"zero pace", []string{"convert", "0:00", "min/km"}, pace.ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			if !errors.Is(err, tt.want) {
				t.Errorf("error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestRaces(t *testing.T) {
	isolate(t)

	out, err := execute(t, "races", "10", "mph")
	if err != nil {
		t.Fatalf("races error = %v", err)
	}

	for _, want := range []string{"At 6:00/mi (3:44/km)", "18:36", "37:12", "1:18:36", "2:37:12", "26.2 miles / 42.2 km"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestParse(t *testing.T) {
	isolate(t)

	out, err := execute(t, "parse", "22:15", "5k")
	if err != nil {
		t.Fatalf("parse error = %v", err)
	}
	if !strings.Contains(out, `Parsed "22:15 5k" as race`) {
		t.Errorf("unexpected header:\n%s", out)
	}
	if !strings.Contains(out, "MIN/MI   7:11") {
		t.Errorf("output missing derived pace:\n%s", out)
	}

	_, err = execute(t, "parse", "hello")
	if !errors.Is(err, pace.ErrNotRecognized) {
		t.Errorf("parse hello error = %v, want ErrNotRecognized", err)
	}
}

func TestParse_JSON(t *testing.T) {
	isolate(t)

	out, err := execute(t, "parse", "--json", "25:00", "for", "4", "miles")
	if err != nil {
		t.Fatalf("parse error = %v", err)
	}

	var got struct {
		Kind   string      `json:"kind"`
		Values pace.Values `json:"values"`
	}
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, out)
	}
	if got.Kind != string(pace.CommandCustomDistance) || got.Values.MinPerMile != 6.25 {
		t.Errorf("got %+v, want custom 6.25 min/mi", got)
	}
}

func TestOptions(t *testing.T) {
	isolate(t)

	out, err := execute(t, "options", "mph")
	if err != nil {
		t.Fatalf("options error = %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 171 {
		t.Errorf("got %d options, want 171", len(lines))
	}
	if lines[0] != "3.0    3.0" {
		t.Errorf("first line = %q", lines[0])
	}
}

func TestOptions_LogsAtDebug(t *testing.T) {
	dir := isolate(t)

	cfg := config.DefaultConfig()
	cfg.Log.File = filepath.Join(dir, "pacer.log")
	if err := config.Save(&cfg); err != nil {
		t.Fatal(err)
	}

	if _, err := execute(t, "options", "min/km", "-v"); err != nil {
		t.Fatalf("options error = %v", err)
	}

	data, err := os.ReadFile(cfg.Log.File)
	if err != nil {
		t.Fatalf("reading log: %v", err)
	}
	if !strings.Contains(string(data), "generated options") {
		t.Errorf("log missing debug entry:\n%s", data)
	}
}

func TestTable_YAML(t *testing.T) {
	isolate(t)

	out, err := execute(t, "table", "--unit", "min/km", "--from", "4", "--to", "4.5", "--format", "yaml")
	if err != nil {
		t.Fatalf("table error = %v", err)
	}

	var rows []paceRow
	if err := yaml.Unmarshal([]byte(out), &rows); err != nil {
		t.Fatalf("invalid YAML: %v\n%s", err, out)
	}
	if len(rows) != 7 {
		t.Fatalf("got %d rows, want 7", len(rows))
	}
	if rows[0].Option != "4:00" || rows[6].Option != "4:30" {
		t.Errorf("rows span %s to %s, want 4:00 to 4:30", rows[0].Option, rows[6].Option)
	}
	if rows[0].Values.MinPerKm != 4 {
		t.Errorf("rows[0] min/km = %v, want 4", rows[0].Values.MinPerKm)
	}
}

func TestTable_Formats(t *testing.T) {
	isolate(t)

	out, err := execute(t, "table", "--format", "json")
	if err != nil {
		t.Fatalf("table error = %v", err)
	}
	var rows []paceRow
	if err := json.Unmarshal([]byte(out), &rows); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if len(rows) != 133 {
		t.Errorf("got %d rows, want 133", len(rows))
	}

	out, err = execute(t, "table", "--unit", "mph", "--from", "6", "--to", "6.2")
	if err != nil {
		t.Fatalf("table error = %v", err)
	}
	for _, want := range []string{"MPH", "MIN/MI", "Marathon", "10:00", "4:22:00"} {
		if !strings.Contains(out, want) {
			t.Errorf("text table missing %q:\n%s", want, out)
		}
	}

	if _, err := execute(t, "table", "--format", "xml"); err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestInit(t *testing.T) {
	dir := isolate(t)

	out, err := execute(t, "init", "--defaults")
	if err != nil {
		t.Fatalf("init error = %v", err)
	}
	if !strings.Contains(out, "Wrote "+dir) {
		t.Errorf("unexpected output: %q", out)
	}

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Display.Theme != "system" {
		t.Errorf("theme = %q, want system", cfg.Display.Theme)
	}

	if _, err := execute(t, "init", "--defaults"); err == nil {
		t.Error("expected error when config exists")
	}
	if _, err := execute(t, "init", "--defaults", "--force"); err != nil {
		t.Errorf("init --force error = %v", err)
	}
}

func TestInvalidConfig(t *testing.T) {
	dir := isolate(t)

	if err := os.WriteFile(filepath.Join(dir, "config.json"), []byte(`{"display":{"theme":"neon"}}`), 0600); err != nil {
		t.Fatal(err)
	}

	_, err := execute(t, "convert", "8", "mph")
	if err == nil || !strings.Contains(err.Error(), "config validation failed") {
		t.Errorf("error = %v, want validation failure", err)
	}

	// init can still replace a broken config.
	if _, err := execute(t, "init", "--defaults", "--force"); err != nil {
		t.Errorf("init --force error = %v", err)
	}
}
