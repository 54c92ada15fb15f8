package pace

import (
	"errors"
	"math"
	"testing"
)

func TestParseCommandInput(t *testing.T) {
	tests := []struct {
		in    string
		kind  CommandKind
		value float64
		unit  Unit
	}{
		{"7:30 min/mi", CommandPace, 7.5, MinPerMile},
		{"7:30", CommandPace, 7.5, MinPerMile},
		{"4:40 min/km", CommandPace, 4 + 40.0/60, MinPerKm},
		{"4:40/km", CommandPace, 4 + 40.0/60, MinPerKm},
		{"  6:05   /mi ", CommandPace, 6 + 5.0/60, MinPerMile},
		{"8.5 mph", CommandSpeed, 8.5, MPH},
		{"13.7 kmh", CommandSpeed, 13.7, KMH},
		{"12 km/h", CommandSpeed, 12, KMH},
		{"10KPH", CommandSpeed, 10, KMH},
		{"20:00 5k", CommandRaceTime, 20.0 / 3.1, MinPerMile},
		{"42:30 10K", CommandRaceTime, 42.5 / 6.2, MinPerMile},
		{"1:45:30 half marathon", CommandRaceTime, 105.5 / 13.1, MinPerMile},
		{"1:45:30 half", CommandRaceTime, 105.5 / 13.1, MinPerMile},
		{"3:15:45 Marathon", CommandRaceTime, 195.75 / 26.2, MinPerMile},
		{"25:00 for 4 miles", CommandCustomDistance, 6.25, MinPerMile},
		{"30:00 for 8k", CommandCustomDistance, 30 / (8 / KmPerMile), MinPerMile},
		{"1:00:00 for 10 km", CommandCustomDistance, 60 / (10 / KmPerMile), MinPerMile},
		{"16:00 for 2.5 mi", CommandCustomDistance, 6.4, MinPerMile},
		{"7:30 min/mile", CommandPace, 7.5, MinPerMile},
		{"7:30 /mile", CommandPace, 7.5, MinPerMile},
		{"6:00 per km", CommandPace, 6, MinPerKm},
		{"7:30 min/mi easy", CommandPace, 7.5, MinPerMile},
		{"8.5 mph tempo", CommandSpeed, 8.5, MPH},
		{"22:15 5k race", CommandRaceTime, 22.25 / 3.1, MinPerMile},
		{"25:00 for 4 miles today", CommandCustomDistance, 6.25, MinPerMile},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseCommandInput(tt.in)
			if err != nil {
				t.Fatalf("ParseCommandInput(%q) error = %v", tt.in, err)
			}
			if got.Kind != tt.kind {
				t.Errorf("Kind = %v, want %v", got.Kind, tt.kind)
			}
			if got.Unit != tt.unit {
				t.Errorf("Unit = %v, want %v", got.Unit, tt.unit)
			}
			if math.Abs(got.Value-tt.value) > 1e-9 {
				t.Errorf("Value = %v, want %v", got.Value, tt.value)
			}
			if got.Input != tt.in {
				t.Errorf("Input = %q, want %q", got.Input, tt.in)
			}
		})
	}
}

func TestParseCommandInput_NotRecognized(t *testing.T) {
	inputs := []string{"garbage", "", "   ", "8.5", "fast", "22:15 ultra", "7:30 mph", "5 furlongs", "7:75 min/mi", "7:30 km/h", "7:30 please", "7:30 milestone"}
	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			_, err := ParseCommandInput(in)
			if !errors.Is(err, ErrNotRecognized) {
				t.Errorf("ParseCommandInput(%q) error = %v, want ErrNotRecognized", in, err)
			}
		})
	}
}

func TestParseCommandInput_InvalidValues(t *testing.T) {
	inputs := []string{"0 mph", "0:00 min/km", "0:00 5k", "25:00 for 0 miles"}
	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			_, err := ParseCommandInput(in)
			if !errors.Is(err, ErrInvalidInput) {
				t.Errorf("ParseCommandInput(%q) error = %v, want ErrInvalidInput", in, err)
			}
		})
	}
}
