package pace

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// CommandKind identifies which input shape a command matched
type CommandKind string

const (
	CommandPace           CommandKind = "pace"
	CommandSpeed          CommandKind = "speed"
	CommandRaceTime       CommandKind = "race"
	CommandCustomDistance CommandKind = "custom"
)

// Command is the result of parsing free-text input
type Command struct {
	Kind  CommandKind `json:"kind"`
	Value float64     `json:"value"`
	Unit  Unit        `json:"unit"`
	Input string      `json:"input"`
}

// Race times are matched before the bare pace shape; "22:15 5k" is a 5K
// finish, not a 22:15 pace. A recognized shape may be followed by more
// words ("22:15 5k race").
var (
	customDistanceRe = regexp.MustCompile(`^(\d+):([0-5]?\d)(?::([0-5]?\d))?\s*for\s*(\d+(?:\.\d+)?)\s*(miles|mile|mi|kilometers|kilometres|kilometer|kilometre|km|k)` + trailingWords)
	raceTimeRe       = regexp.MustCompile(`^(\d+):([0-5]?\d)(?::([0-5]?\d))?\s*(5k|10k|half[\s-]*marathon|half|marathon)` + trailingWords)
	paceRe           = regexp.MustCompile(`^(\d+):([0-5]?\d)(?:\s*(` + paceUnits + `)` + trailingWords + `|$)`)
	speedRe          = regexp.MustCompile(`^(\d+(?:\.\d+)?)\s*(mph|kmh|km/h|kph)` + trailingWords)
)

const (
	// paceUnits are the ParseUnit spellings of min/mi and min/km
	paceUnits     = `min/mile|min/mi|min/km|/mile|/mi|/km|per mile|per mi|per km|mi|km`
	trailingWords = `(?:\s.*)?$`
)

// ParseCommandInput recognizes four shapes of free-text entry:
//
//	7:30 min/mi, 4:40 /km       pace with optional unit (default min/mi)
//	7:30 min/mile, 6:00 per km
//	8.5 mph, 13.7 km/h          speed with unit
//	22:15 5k, 1:45:30 half      race time for a standard distance
//	25:00 for 4 miles, 30:00 for 8k
//
// Race shapes resolve to a min/mi pace. Input matching no shape returns
// ErrNotRecognized; a matched shape with a non-positive value returns
// ErrInvalidInput.
func ParseCommandInput(input string) (Command, error) {
	s := strings.Join(strings.Fields(strings.ToLower(input)), " ")

	if m := customDistanceRe.FindStringSubmatch(s); m != nil {
		minutes := clockMinutes(m[1], m[2], m[3])
		distance, _ := strconv.ParseFloat(m[4], 64)
		if strings.HasPrefix(m[5], "k") {
			distance /= KmPerMile
		}
		return raceCommand(CommandCustomDistance, minutes, distance, input)
	}

	if m := raceTimeRe.FindStringSubmatch(s); m != nil {
		race, ok := LookupRace(m[4])
		if !ok {
			return Command{}, fmt.Errorf("%w: %q", ErrNotRecognized, input)
		}
		return raceCommand(CommandRaceTime, clockMinutes(m[1], m[2], m[3]), race.Miles, input)
	}

	if m := paceRe.FindStringSubmatch(s); m != nil {
		value := clockMinutes(m[1], m[2], "")
		unit := MinPerMile
		if m[3] != "" {
			u, err := ParseUnit(m[3])
			if err != nil {
				return Command{}, fmt.Errorf("%w: %q", ErrNotRecognized, input)
			}
			unit = u
		}
		if value <= 0 {
			return Command{}, fmt.Errorf("%w: pace %q", ErrInvalidInput, input)
		}
		return Command{Kind: CommandPace, Value: value, Unit: unit, Input: input}, nil
	}

	if m := speedRe.FindStringSubmatch(s); m != nil {
		value, _ := strconv.ParseFloat(m[1], 64)
		unit := KMH
		if m[2] == "mph" {
			unit = MPH
		}
		if value <= 0 {
			return Command{}, fmt.Errorf("%w: speed %q", ErrInvalidInput, input)
		}
		return Command{Kind: CommandSpeed, Value: value, Unit: unit, Input: input}, nil
	}

	return Command{}, fmt.Errorf("%w: %q", ErrNotRecognized, input)
}

func raceCommand(kind CommandKind, minutes, miles float64, input string) (Command, error) {
	pace, err := CalculatePaceFromRaceTime(minutes, miles)
	if err != nil {
		return Command{}, err
	}
	return Command{Kind: kind, Value: pace, Unit: MinPerMile, Input: input}, nil
}

// clockMinutes joins regexp groups into decimal minutes. With a third group
// the fields are H:MM:SS, otherwise M:SS. Groups are digit-only by pattern.
func clockMinutes(a, b, c string) float64 {
	x, _ := strconv.Atoi(a)
	y, _ := strconv.Atoi(b)
	if c == "" {
		return float64(x) + float64(y)/60
	}
	z, _ := strconv.Atoi(c)
	return float64(x)*60 + float64(y) + float64(z)/60
}
