package tui

import (
	"fmt"
	"strings"

	"pacer/internal/pace"
)

// wheelWidth is the rendered width of one wheel column
const wheelWidth = 12

// neighbors returns the labels either side of value in the option list
func neighbors(value string, options []pace.PickerOption) (prev, next string) {
	i := pace.IndexOf(value, options)
	if i < 0 {
		return "", ""
	}
	if i > 0 {
		prev = options[i-1].Label
	}
	if i < len(options)-1 {
		next = options[i+1].Label
	}
	return prev, next
}

// overlayText is the precise value shown under an inactive wheel
func overlayText(w pace.Wheel) string {
	if w.Active || w.Overlay == "" {
		return ""
	}
	if w.Exact {
		return w.Overlay
	}
	return "≈ " + w.Overlay
}

// unitSuffix is the short unit written after a value ("/mi", " mph")
func unitSuffix(u pace.Unit) string {
	switch u {
	case pace.MinPerMile:
		return "/mi"
	case pace.MinPerKm:
		return "/km"
	case pace.MPH:
		return " mph"
	case pace.KMH:
		return " km/h"
	}
	return ""
}

// formatWithUnit formats a precise value with its unit suffix
func formatWithUnit(v float64, u pace.Unit) string {
	return pace.FormatPreciseValue(v, u) + unitSuffix(u)
}

// summaryLine renders all four precise values on one line
func summaryLine(v pace.Values) string {
	parts := make([]string, 0, len(pace.Units))
	for _, u := range pace.Units {
		parts = append(parts, formatWithUnit(v.Get(u), u))
	}
	return strings.Join(parts, "  ·  ")
}

// raceClipboardText renders finish times for pasting elsewhere
func raceClipboardText(paceMinPerMile float64, times []pace.RaceTime) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Pace %s\n", formatWithUnit(paceMinPerMile, pace.MinPerMile))
	for _, rt := range times {
		fmt.Fprintf(&b, "%s: %s\n", rt.Name, rt.Time)
	}
	return b.String()
}
