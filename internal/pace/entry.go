package pace

import (
	"fmt"
	"strconv"
	"strings"
)

// QuickEntry is one command of the quick-entry palette
type QuickEntry struct {
	ID          string
	Label       string
	Group       string // "Pace", "Speed" or "Race Times"
	SearchTerms []string
	Unit        Unit   // unit of the entered value; empty for race entries
	Race        string // race key for race entries
	Placeholder string
}

// QuickEntries lists the palette commands in display order
var QuickEntries = []QuickEntry{
	{
		ID: "min-mile", Label: "Min/Mile", Group: "Pace",
		SearchTerms: []string{"min", "mile", "pace", "minute", "mi"},
		Unit:        MinPerMile,
		Placeholder: "Enter min/mi (e.g., 7:30 or 730)",
	},
	{
		ID: "min-km", Label: "Min/KM", Group: "Pace",
		SearchTerms: []string{"min", "km", "kilometer", "pace", "minute"},
		Unit:        MinPerKm,
		Placeholder: "Enter min/km (e.g., 4:30 or 430)",
	},
	{
		ID: "mph", Label: "MPH", Group: "Speed",
		SearchTerms: []string{"mph", "speed", "miles", "hour"},
		Unit:        MPH,
		Placeholder: "Enter MPH (e.g., 8.5)",
	},
	{
		ID: "kmh", Label: "KM/H", Group: "Speed",
		SearchTerms: []string{"kmh", "kph", "speed", "kilometer", "hour"},
		Unit:        KMH,
		Placeholder: "Enter KM/H (e.g., 12.5)",
	},
	{
		ID: "5k", Label: "5K", Group: "Race Times",
		SearchTerms: []string{"5k", "5", "race", "time", "five"},
		Race:        "5k",
		Placeholder: "Enter 5K time (e.g., 20:15 or 1:25:30)",
	},
	{
		ID: "10k", Label: "10K", Group: "Race Times",
		SearchTerms: []string{"10k", "10", "race", "time", "ten"},
		Race:        "10k",
		Placeholder: "Enter 10K time (e.g., 42:30)",
	},
	{
		ID: "half-marathon", Label: "Half Marathon", Group: "Race Times",
		SearchTerms: []string{"half", "marathon", "race", "time", "21k", "13.1"},
		Race:        "half",
		Placeholder: "Enter Half Marathon time (e.g., 1:30:00)",
	},
	{
		ID: "marathon", Label: "Marathon", Group: "Race Times",
		SearchTerms: []string{"marathon", "race", "time", "42k", "26.2"},
		Race:        "marathon",
		Placeholder: "Enter Marathon time (e.g., 3:15:45)",
	},
}

// LookupQuickEntry finds a palette entry by ID
func LookupQuickEntry(id string) (QuickEntry, bool) {
	for _, e := range QuickEntries {
		if e.ID == id {
			return e, true
		}
	}
	return QuickEntry{}, false
}

// FilterQuickEntries returns the entries whose label or a search term
// contains query, ignoring case. An empty query returns every entry.
func FilterQuickEntries(query string) []QuickEntry {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return QuickEntries
	}

	var out []QuickEntry
	for _, e := range QuickEntries {
		if strings.Contains(strings.ToLower(e.Label), q) {
			out = append(out, e)
			continue
		}
		for _, term := range e.SearchTerms {
			if strings.Contains(term, q) {
				out = append(out, e)
				break
			}
		}
	}
	return out
}

// ResolveQuickEntry turns a palette submission into a precise min/mi pace.
// Pace entries take a time ("7:30", "730"), speed entries a decimal and
// race entries a finish time.
func ResolveQuickEntry(id, text string) (float64, error) {
	e, ok := LookupQuickEntry(id)
	if !ok {
		return 0, fmt.Errorf("%w: quick entry %q", ErrNotRecognized, id)
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return 0, fmt.Errorf("%w: empty value", ErrInvalidInput)
	}

	if e.Race != "" {
		race, ok := LookupRace(e.Race)
		if !ok {
			return 0, fmt.Errorf("%w: race %q", ErrNotRecognized, e.Race)
		}
		minutes, err := ParseTimeInput(text)
		if err != nil {
			return 0, err
		}
		return CalculatePaceFromRaceTime(minutes, race.Miles)
	}

	var value float64
	if e.Unit.IsPace() {
		v, err := ParseTimeInput(text)
		if err != nil {
			return 0, err
		}
		value = v
	} else {
		v, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: speed %q", ErrInvalidInput, text)
		}
		value = v
	}
	return Convert(value, e.Unit, MinPerMile)
}
