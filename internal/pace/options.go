package pace

import (
	"fmt"
	"math"
	"strconv"
)

const (
	// DefaultPaceStepSeconds is the spacing of pace wheel options
	DefaultPaceStepSeconds = 5
	// DefaultSpeedStep is the spacing of speed wheel options
	DefaultSpeedStep = 0.1

	// rangeEpsilon absorbs float error when deciding whether an end bound is reached
	rangeEpsilon = 1e-9
)

// PickerOption is one entry of a scroll-wheel option list.
// Value is the canonical decimal string; options compare equal on Value.
type PickerOption struct {
	Label string `json:"label" yaml:"label"`
	Value string `json:"value" yaml:"value"`
}

// Float returns the numeric value of the option
func (o PickerOption) Float() (float64, error) {
	return strconv.ParseFloat(o.Value, 64)
}

// GeneratePaceOptions builds M:SS options from startMinutes to endMinutes
// inclusive, spaced stepSeconds apart. Values are decimal minutes rounded
// to two places. A non-positive step uses DefaultPaceStepSeconds.
func GeneratePaceOptions(startMinutes, endMinutes float64, stepSeconds int) []PickerOption {
	if stepSeconds <= 0 {
		stepSeconds = DefaultPaceStepSeconds
	}

	start := int(math.Round(startMinutes * 60))
	end := int(math.Floor(endMinutes*60 + rangeEpsilon))
	if start < 0 || end < start {
		return nil
	}

	options := make([]PickerOption, 0, (end-start)/stepSeconds+1)
	for total := start; total <= end; total += stepSeconds {
		options = append(options, PickerOption{
			Label: fmt.Sprintf("%d:%02d", total/60, total%60),
			Value: strconv.FormatFloat(float64(total)/60, 'f', 2, 64),
		})
	}
	return options
}

// GenerateSpeedOptions builds one-decimal options from start to end
// inclusive. Samples are computed by index rather than by accumulating the
// step, and a sample that rounds onto the previous one is dropped.
// A non-positive step uses DefaultSpeedStep.
func GenerateSpeedOptions(start, end, step float64) []PickerOption {
	if step <= 0 || math.IsNaN(step) {
		step = DefaultSpeedStep
	}
	if math.IsNaN(start) || math.IsNaN(end) || end < start {
		return nil
	}

	count := int(math.Floor((end-start)/step + rangeEpsilon))
	options := make([]PickerOption, 0, count+1)
	last := math.NaN()
	for i := 0; i <= count; i++ {
		rounded := math.Round((start+float64(i)*step)*10) / 10
		if rounded == last {
			continue
		}
		last = rounded
		s := strconv.FormatFloat(rounded, 'f', 1, 64)
		options = append(options, PickerOption{Label: s, Value: s})
	}
	return options
}

// DuplicateValues returns every option value that appears more than once,
// in order of its second appearance
func DuplicateValues(options []PickerOption) []string {
	seen := make(map[string]int, len(options))
	var dups []string
	for _, o := range options {
		seen[o.Value]++
		if seen[o.Value] == 2 {
			dups = append(dups, o.Value)
		}
	}
	return dups
}

// Range describes the bounds and spacing of one wheel
type Range struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Step  float64 `json:"step"` // seconds for pace units, unit value for speed units
}

// DefaultRanges are the wheel bounds used when nothing is configured
var DefaultRanges = map[Unit]Range{
	MinPerMile: {Start: 4, End: 15, Step: DefaultPaceStepSeconds},
	MinPerKm:   {Start: 2.5, End: 9, Step: DefaultPaceStepSeconds},
	MPH:        {Start: 3, End: 20, Step: DefaultSpeedStep},
	KMH:        {Start: 5, End: 32, Step: DefaultSpeedStep},
}

// OptionSet holds the generated option list for each unit
type OptionSet struct {
	lists map[Unit][]PickerOption
}

// NewOptionSet generates all four option lists. Units missing from ranges
// fall back to DefaultRanges.
func NewOptionSet(ranges map[Unit]Range) OptionSet {
	set := OptionSet{lists: make(map[Unit][]PickerOption, len(Units))}
	for _, u := range Units {
		r, ok := ranges[u]
		if !ok {
			r = DefaultRanges[u]
		}
		set.lists[u] = GenerateOptions(u, r)
	}
	return set
}

// DefaultOptionSet generates the option lists for DefaultRanges
func DefaultOptionSet() OptionSet {
	return NewOptionSet(DefaultRanges)
}

// GenerateOptions builds the option list for a unit over a range
func GenerateOptions(u Unit, r Range) []PickerOption {
	if u.IsPace() {
		return GeneratePaceOptions(r.Start, r.End, int(math.Round(r.Step)))
	}
	return GenerateSpeedOptions(r.Start, r.End, r.Step)
}

// For returns the option list of a unit
func (s OptionSet) For(u Unit) []PickerOption {
	return s.lists[u]
}
