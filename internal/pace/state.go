package pace

import (
	"fmt"
	"math"
	"strconv"
)

// State is the converter's precise values plus the unit last edited.
// All four values are derived from the active unit's input.
type State struct {
	Precise Values `json:"precise"`
	Active  Unit   `json:"active"`
}

// NewState builds a state with value as the authoritative input in unit
func NewState(value float64, unit Unit) (State, error) {
	return Update(State{}, value, unit)
}

// Update sets one unit authoritatively, derives the others and makes it the
// active unit. On error the input state is returned unchanged.
func Update(state State, value float64, unit Unit) (State, error) {
	values, err := ValuesFrom(value, unit)
	if err != nil {
		return state, err
	}
	return State{Precise: values, Active: unit}, nil
}

// SetFromOption applies a wheel selection, given as the option's value string.
// Pace options sit on whole seconds, so their rounded value is snapped back
// onto the second it stands for: "8.33" is 8:20.
func SetFromOption(state State, optionValue string, unit Unit) (State, error) {
	v, err := strconv.ParseFloat(optionValue, 64)
	if err != nil {
		return state, fmt.Errorf("%w: option value %q", ErrInvalidInput, optionValue)
	}
	if unit.IsPace() {
		v = math.Round(v*60) / 60
	}
	return Update(state, v, unit)
}

// ApplyCommand applies a parsed free-text command
func ApplyCommand(state State, cmd Command) (State, error) {
	return Update(state, cmd.Value, cmd.Unit)
}
