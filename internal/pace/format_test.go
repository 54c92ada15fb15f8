package pace

import "testing"

func TestFormatPreciseValue(t *testing.T) {
	tests := []struct {
		value float64
		unit  Unit
		want  string
	}{
		{7.1, MinPerMile, "7:06"},
		{4.97097, MinPerKm, "4:58"},
		{7.9999, MinPerMile, "8:00"},
		{7.5, MPH, "7.5"},
		{12.07008, KMH, "12.1"},
		{3.14159, Unit("other"), "3.14"},
	}
	for _, tt := range tests {
		if got := FormatPreciseValue(tt.value, tt.unit); got != tt.want {
			t.Errorf("FormatPreciseValue(%v, %s) = %q, want %q", tt.value, tt.unit, got, tt.want)
		}
	}
}

func TestFormatExactPace_NoHourRollover(t *testing.T) {
	if got := FormatExactPace(75.5); got != "75:30" {
		t.Errorf("FormatExactPace(75.5) = %q, want 75:30", got)
	}
	if got := FormatExactPace(-2); got != "-" {
		t.Errorf("FormatExactPace(-2) = %q, want -", got)
	}
}
