package pace

import (
	"errors"
	"math"
	"testing"
)

func TestConvert(t *testing.T) {
	tests := []struct {
		name      string
		value     float64
		from, to  Unit
		want      float64
		tolerance float64
	}{
		{"8:00 min/mi to min/km", 8.0, MinPerMile, MinPerKm, 4.97, 0.001},
		{"8:00 min/mi to mph", 8.0, MinPerMile, MPH, 7.5, 1e-9},
		{"8:00 min/mi to kmh", 8.0, MinPerMile, KMH, 12.07008, 1e-6},
		{"identity", 7.25, MinPerMile, MinPerMile, 7.25, 1e-12},
		{"5:00 min/km to min/mi", 5.0, MinPerKm, MinPerMile, 8.04672, 1e-9},
		{"10 mph to min/mi", 10, MPH, MinPerMile, 6.0, 1e-9},
		{"12 kmh to min/km", 12, KMH, MinPerKm, 5.0, 1e-9},
		{"6 mph to kmh", 6, MPH, KMH, 9.656064, 1e-9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Convert(tt.value, tt.from, tt.to)
			if err != nil {
				t.Fatalf("Convert() error = %v", err)
			}
			if math.Abs(got-tt.want) > tt.tolerance {
				t.Errorf("Convert(%v, %s, %s) = %v, want %v (±%v)", tt.value, tt.from, tt.to, got, tt.want, tt.tolerance)
			}
		})
	}
}

func TestConvert_RoundTrip(t *testing.T) {
	values := []float64{0.5, 3.3, 7.5, 8.0, 12.07, 25, 99.9}
	for _, from := range Units {
		for _, to := range Units {
			for _, v := range values {
				there, err := Convert(v, from, to)
				if err != nil {
					t.Fatalf("Convert(%v, %s, %s) error = %v", v, from, to, err)
				}
				back, err := Convert(there, to, from)
				if err != nil {
					t.Fatalf("Convert(%v, %s, %s) error = %v", there, to, from, err)
				}
				if math.Abs(back-v) > 1e-6 {
					t.Errorf("round trip %s->%s->%s of %v = %v", from, to, from, v, back)
				}
			}
		}
	}
}

func TestConvert_Errors(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		from, to Unit
		wantErr  error
	}{
		{"zero speed", 0, MPH, MinPerMile, ErrInvalidInput},
		{"zero pace", 0, MinPerMile, KMH, ErrInvalidInput},
		{"negative", -4, MinPerKm, MPH, ErrInvalidInput},
		{"NaN", math.NaN(), KMH, MPH, ErrInvalidInput},
		{"infinite", math.Inf(1), MPH, KMH, ErrInvalidInput},
		{"unknown from", 8, Unit("furlongs"), MPH, ErrUnknownUnit},
		{"unknown to", 8, MPH, Unit("knots"), ErrUnknownUnit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Convert(tt.value, tt.from, tt.to)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Convert() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestParseUnit(t *testing.T) {
	tests := []struct {
		in   string
		want Unit
	}{
		{"min/mi", MinPerMile},
		{"/mi", MinPerMile},
		{"min/mile", MinPerMile},
		{"per mile", MinPerMile},
		{"per km", MinPerKm},
		{"MIN/KM", MinPerKm},
		{" mph ", MPH},
		{"km/h", KMH},
		{"KPH", KMH},
		{"kmh", KMH},
	}
	for _, tt := range tests {
		got, err := ParseUnit(tt.in)
		if err != nil {
			t.Errorf("ParseUnit(%q) error = %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseUnit(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	if _, err := ParseUnit("parsecs"); !errors.Is(err, ErrUnknownUnit) {
		t.Errorf("ParseUnit(parsecs) error = %v, want ErrUnknownUnit", err)
	}
}

func TestUnitLabels(t *testing.T) {
	want := map[Unit]string{MinPerMile: "MIN/MI", MinPerKm: "MIN/KM", MPH: "MPH", KMH: "KM/H"}
	for u, label := range want {
		if got := u.Label(); got != label {
			t.Errorf("%s.Label() = %q, want %q", u, got, label)
		}
		if !u.Valid() {
			t.Errorf("%s.Valid() = false", u)
		}
	}
	if !MinPerKm.IsPace() || MPH.IsPace() {
		t.Error("IsPace() misclassifies units")
	}
}

func TestValuesFrom(t *testing.T) {
	v, err := ValuesFrom(7.5, MPH)
	if err != nil {
		t.Fatalf("ValuesFrom() error = %v", err)
	}
	if v.MPH != 7.5 {
		t.Errorf("MPH = %v, want exact input 7.5", v.MPH)
	}
	if math.Abs(v.MinPerMile-8.0) > 1e-9 {
		t.Errorf("MinPerMile = %v, want 8.0", v.MinPerMile)
	}
	if math.Abs(v.MinPerKm-8.0/KmPerMile) > 1e-9 {
		t.Errorf("MinPerKm = %v, want %v", v.MinPerKm, 8.0/KmPerMile)
	}
	if math.Abs(v.KMH-7.5*KmPerMile) > 1e-9 {
		t.Errorf("KMH = %v, want %v", v.KMH, 7.5*KmPerMile)
	}
	for _, u := range Units {
		if v.Get(u) <= 0 {
			t.Errorf("Get(%s) = %v, want positive", u, v.Get(u))
		}
	}

	if _, err := ValuesFrom(0, MPH); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("ValuesFrom(0) error = %v, want ErrInvalidInput", err)
	}
}
