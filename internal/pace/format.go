package pace

import (
	"fmt"
	"math"
	"strconv"
)

// FormatRaceTime formats decimal minutes as H:MM:SS, or M:SS under an hour.
// Seconds are rounded before splitting so 59.6s carries into the minute.
// Negative or non-finite input renders as "-".
func FormatRaceTime(totalMinutes float64) string {
	if math.IsNaN(totalMinutes) || math.IsInf(totalMinutes, 0) || totalMinutes < 0 {
		return "-"
	}

	totalSeconds := int(math.Round(totalMinutes * 60))
	hours := totalSeconds / 3600
	minutes := (totalSeconds % 3600) / 60
	seconds := totalSeconds % 60

	if hours > 0 {
		return fmt.Sprintf("%d:%02d:%02d", hours, minutes, seconds)
	}
	return fmt.Sprintf("%d:%02d", minutes, seconds)
}

// FormatExactPace formats decimal minutes as M:SS without rolling into hours
func FormatExactPace(decimalMinutes float64) string {
	if math.IsNaN(decimalMinutes) || math.IsInf(decimalMinutes, 0) || decimalMinutes < 0 {
		return "-"
	}
	totalSeconds := int(math.Round(decimalMinutes * 60))
	return fmt.Sprintf("%d:%02d", totalSeconds/60, totalSeconds%60)
}

// FormatExactSpeed formats a speed to one decimal place
func FormatExactSpeed(speed float64) string {
	return strconv.FormatFloat(speed, 'f', 1, 64)
}

// FormatPreciseValue formats a precise value the way its unit is read:
// M:SS for paces, one decimal for speeds
func FormatPreciseValue(value float64, u Unit) string {
	switch u {
	case MinPerMile, MinPerKm:
		return FormatExactPace(value)
	case MPH, KMH:
		return FormatExactSpeed(value)
	}
	return strconv.FormatFloat(value, 'f', 2, 64)
}
