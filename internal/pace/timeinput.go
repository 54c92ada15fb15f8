package pace

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseTimeInput parses a duration typed by hand into decimal minutes.
//
// Accepted shapes:
//
//	M:SS or H:MM:SS
//	MSS     444    -> 4:44
//	MMSS    1044   -> 10:44
//	HMMSS   10344  -> 1:03:44
//	HHMMSS  100344 -> 10:03:44
//
// Any other shape returns ErrInvalidInput. A well-formed zero such as "0:00"
// returns 0 with a nil error; rejecting zero durations is up to the caller.
func ParseTimeInput(text string) (float64, error) {
	s := strings.TrimSpace(text)

	var parts []string
	if strings.Contains(s, ":") {
		parts = strings.Split(s, ":")
		if len(parts) != 2 && len(parts) != 3 {
			return 0, fmt.Errorf("%w: time %q", ErrInvalidInput, text)
		}
	} else {
		switch len(s) {
		case 3:
			parts = []string{s[:1], s[1:]}
		case 4:
			parts = []string{s[:2], s[2:]}
		case 5:
			parts = []string{s[:1], s[1:3], s[3:]}
		case 6:
			parts = []string{s[:2], s[2:4], s[4:]}
		default:
			return 0, fmt.Errorf("%w: time %q", ErrInvalidInput, text)
		}
	}

	nums := make([]int, len(parts))
	for i, p := range parts {
		n, ok := parseDigits(p)
		if !ok {
			return 0, fmt.Errorf("%w: time %q", ErrInvalidInput, text)
		}
		// Everything after the leading field is a clock field.
		if i > 0 && n > 59 {
			return 0, fmt.Errorf("%w: time %q has a field over 59", ErrInvalidInput, text)
		}
		nums[i] = n
	}

	if len(nums) == 2 {
		return float64(nums[0]) + float64(nums[1])/60, nil
	}
	return float64(nums[0])*60 + float64(nums[1]) + float64(nums[2])/60, nil
}

// parseDigits accepts a non-empty run of ASCII digits
func parseDigits(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}
