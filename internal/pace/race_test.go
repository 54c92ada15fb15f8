package pace

import (
	"errors"
	"math"
	"testing"
)

func TestCalculateRaceTime(t *testing.T) {
	tests := []struct {
		name  string
		pace  float64
		miles float64
		want  string
	}{
		{"marathon at 8:00", 8.0, 26.2, "3:29:36"},
		{"5K at 8:00", 8.0, 3.1, "24:48"},
		{"10K at 7:00", 7.0, 6.2, "43:24"},
		{"half at 9:00", 9.0, 13.1, "1:57:54"},
		{"exactly one hour", 6.0, 10, "1:00:00"},
		{"seconds carry into minute", 59.999 / 60, 60, "1:00:00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CalculateRaceTime(tt.pace, tt.miles); got != tt.want {
				t.Errorf("CalculateRaceTime(%v, %v) = %q, want %q", tt.pace, tt.miles, got, tt.want)
			}
		})
	}
}

func TestFormatRaceTime(t *testing.T) {
	tests := []struct {
		minutes float64
		want    string
	}{
		{0, "0:00"},
		{7.5, "7:30"},
		{9.9999, "10:00"},
		{59.995, "1:00:00"},
		{209.6, "3:29:36"},
		{-1, "-"},
		{math.NaN(), "-"},
		{math.Inf(1), "-"},
	}
	for _, tt := range tests {
		if got := FormatRaceTime(tt.minutes); got != tt.want {
			t.Errorf("FormatRaceTime(%v) = %q, want %q", tt.minutes, got, tt.want)
		}
	}
}

func TestCalculatePaceFromRaceTime(t *testing.T) {
	got, err := CalculatePaceFromRaceTime(20.0, 3.1)
	if err != nil {
		t.Fatalf("CalculatePaceFromRaceTime() error = %v", err)
	}
	if math.Abs(got-6.4516) > 1e-4 {
		t.Errorf("CalculatePaceFromRaceTime(20, 3.1) = %v, want ~6.4516", got)
	}

	if _, err := CalculatePaceFromRaceTime(20, 0); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("zero distance error = %v, want ErrInvalidInput", err)
	}
	if _, err := CalculatePaceFromRaceTime(0, 3.1); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("zero time error = %v, want ErrInvalidInput", err)
	}
}

func TestLookupRace(t *testing.T) {
	tests := []struct {
		in      string
		wantKey string
	}{
		{"5k", "5k"},
		{"5K", "5k"},
		{"10k", "10k"},
		{"half", "half"},
		{"Half Marathon", "half"},
		{"half-marathon", "half"},
		{"halfmarathon", "half"},
		{"MARATHON", "marathon"},
	}
	for _, tt := range tests {
		r, ok := LookupRace(tt.in)
		if !ok {
			t.Errorf("LookupRace(%q) not found", tt.in)
			continue
		}
		if r.Key != tt.wantKey {
			t.Errorf("LookupRace(%q) = %q, want %q", tt.in, r.Key, tt.wantKey)
		}
	}
	if _, ok := LookupRace("ultra"); ok {
		t.Error("LookupRace(ultra) should not be found")
	}
}

func TestRaceTimes(t *testing.T) {
	times := RaceTimes(8.0)
	if len(times) != len(RaceDistances) {
		t.Fatalf("len(RaceTimes) = %d, want %d", len(times), len(RaceDistances))
	}
	want := []string{"24:48", "49:36", "1:44:48", "3:29:36"}
	for i, rt := range times {
		if rt.Time != want[i] {
			t.Errorf("%s = %q, want %q", rt.Name, rt.Time, want[i])
		}
	}
}

func TestRaceTooltip(t *testing.T) {
	if got := RaceTooltip(3.1); got != "3.1 miles / 5.0 km" {
		t.Errorf("RaceTooltip(3.1) = %q", got)
	}
	if got := RaceTooltip(26.2); got != "26.2 miles / 42.2 km" {
		t.Errorf("RaceTooltip(26.2) = %q", got)
	}
}
