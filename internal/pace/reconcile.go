package pace

import (
	"math"
	"strconv"
)

// tickTolerance is half the two-decimal rounding of option values. A pace
// tick like 6:40 is stored as "6.67", above its true 6.6667.
const tickTolerance = 0.005

// FindClosestValue returns the value of the option nearest to target.
// Ties go to the earliest option. Options whose value does not parse are
// skipped; ok is false when no option is usable.
func FindClosestValue(target float64, options []PickerOption) (value string, ok bool) {
	minDiff := math.Inf(1)
	for _, o := range options {
		v, err := strconv.ParseFloat(o.Value, 64)
		if err != nil {
			continue
		}
		diff := math.Abs(v - target)
		if !ok || diff < minDiff {
			minDiff = diff
			value = o.Value
			ok = true
		}
	}
	return value, ok
}

// FindBoundingPosition returns the floor of target within an ascending
// option list: the last option whose value is <= target. A target below
// every option yields the first option, one above every option the last.
// A value within tickTolerance of a tick counts as on it.
func FindBoundingPosition(target float64, options []PickerOption) (value string, ok bool) {
	if len(options) == 0 {
		return "", false
	}

	value = options[0].Value
	if math.IsNaN(target) {
		return value, true
	}
	for _, o := range options {
		v, err := strconv.ParseFloat(o.Value, 64)
		if err != nil {
			continue
		}
		if v > target+tickTolerance {
			break
		}
		value = o.Value
	}
	return value, true
}

// IsExactMatch reports whether value sits on one of the options, within the
// rounding of their stored values
func IsExactMatch(value float64, options []PickerOption) bool {
	for _, o := range options {
		v, err := strconv.ParseFloat(o.Value, 64)
		if err != nil {
			continue
		}
		if math.Abs(v-value) < tickTolerance {
			return true
		}
	}
	return false
}

// Mode selects how a precise value is placed on a wheel
type Mode int

const (
	Nearest Mode = iota // closest option, used for the wheel being edited
	Floor               // bounding option below the value, paired with a precise overlay
)

// Position places target on the option list using mode
func Position(target float64, options []PickerOption, mode Mode) (string, bool) {
	if mode == Floor {
		return FindBoundingPosition(target, options)
	}
	return FindClosestValue(target, options)
}

// Wheel is the display state of one unit's wheel
type Wheel struct {
	Unit    Unit    `json:"unit"`
	Value   string  `json:"value"`
	Label   string  `json:"label"`
	Precise float64 `json:"precise"`
	Active  bool    `json:"active"`
	Exact   bool    `json:"exact"`
	Overlay string  `json:"overlay,omitempty"`
}

// Reconcile maps the precise state onto each unit's option list. The active
// unit shows its nearest option; the others show their floor option with
// the precise value as an overlay.
func Reconcile(state State, set OptionSet) []Wheel {
	wheels := make([]Wheel, 0, len(Units))
	for _, u := range Units {
		options := set.For(u)
		precise := state.Precise.Get(u)
		active := u == state.Active

		mode := Floor
		if active {
			mode = Nearest
		}

		w := Wheel{
			Unit:    u,
			Precise: precise,
			Active:  active,
			Exact:   IsExactMatch(precise, options),
		}
		if value, ok := Position(precise, options, mode); ok {
			w.Value = value
			w.Label = labelFor(value, options)
		}
		if !active {
			w.Overlay = FormatPreciseValue(precise, u)
		}
		wheels = append(wheels, w)
	}
	return wheels
}

// IndexOf returns the position of value in options, or -1
func IndexOf(value string, options []PickerOption) int {
	for i, o := range options {
		if o.Value == value {
			return i
		}
	}
	return -1
}

func labelFor(value string, options []PickerOption) string {
	if i := IndexOf(value, options); i >= 0 {
		return options[i].Label
	}
	return value
}
