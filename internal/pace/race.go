package pace

import (
	"fmt"
	"strconv"
	"strings"
)

// RaceDistance is a standard race and its length in miles
type RaceDistance struct {
	Key   string  // "5k", "10k", "half", "marathon"
	Name  string  // display name
	Miles float64
}

// RaceDistances lists the standard races in ascending distance
var RaceDistances = []RaceDistance{
	{"5k", "5K", 3.1},
	{"10k", "10K", 6.2},
	{"half", "Half Marathon", 13.1},
	{"marathon", "Marathon", 26.2},
}

// LookupRace finds a race by key or display name, ignoring case and
// treating spaces and dashes alike ("half marathon", "Half-Marathon")
func LookupRace(name string) (RaceDistance, bool) {
	n := strings.Join(strings.FieldsFunc(strings.ToLower(name), func(r rune) bool {
		return r == ' ' || r == '-' || r == '_'
	}), " ")
	if n == "half marathon" || n == "halfmarathon" {
		n = "half"
	}
	for _, r := range RaceDistances {
		if n == r.Key || n == strings.ToLower(r.Name) {
			return r, true
		}
	}
	return RaceDistance{}, false
}

// RaceTooltip describes a distance in both miles and kilometers
func RaceTooltip(miles float64) string {
	return fmt.Sprintf("%s miles / %.1f km", strconv.FormatFloat(miles, 'f', -1, 64), miles*KmPerMile)
}

// CalculateRaceTime projects the finish time for a race at a steady pace
func CalculateRaceTime(paceMinPerMile, raceMiles float64) string {
	return FormatRaceTime(paceMinPerMile * raceMiles)
}

// CalculatePaceFromRaceTime returns the min/mi pace that covers raceMiles
// in raceMinutes
func CalculatePaceFromRaceTime(raceMinutes, raceMiles float64) (float64, error) {
	if raceMiles <= 0 {
		return 0, fmt.Errorf("%w: race distance %v mi", ErrInvalidInput, raceMiles)
	}
	if raceMinutes <= 0 {
		return 0, fmt.Errorf("%w: race time %v min", ErrInvalidInput, raceMinutes)
	}
	return raceMinutes / raceMiles, nil
}

// RaceTime is a projected finish for one standard race
type RaceTime struct {
	Race    RaceDistance `json:"-" yaml:"-"`
	Name    string       `json:"race" yaml:"race"`
	Time    string       `json:"time" yaml:"time"`
	Minutes float64      `json:"minutes" yaml:"minutes"`
}

// RaceTimes projects finish times for every standard race
func RaceTimes(paceMinPerMile float64) []RaceTime {
	times := make([]RaceTime, 0, len(RaceDistances))
	for _, r := range RaceDistances {
		total := paceMinPerMile * r.Miles
		times = append(times, RaceTime{
			Race:    r,
			Name:    r.Name,
			Time:    FormatRaceTime(total),
			Minutes: total,
		})
	}
	return times
}
