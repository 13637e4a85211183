package metrics

import (
	"fmt"
	"math"
	"time"
)

const clockLayout = "15:04"

// DurationHours returns the elapsed hours between two HH:MM clock times. A
// negative delta is treated as a single overnight wraparound, so
// ("22:00", "06:00") yields 8; shifts are assumed shorter than 24 hours.
func DurationHours(start, end string) (float64, error) {
	startAt, err := time.Parse(clockLayout, start)
	if err != nil {
		return 0, fmt.Errorf("parse start time %q: %w", start, err)
	}
	endAt, err := time.Parse(clockLayout, end)
	if err != nil {
		return 0, fmt.Errorf("parse end time %q: %w", end, err)
	}

	hours := endAt.Sub(startAt).Hours()
	if hours < 0 {
		hours += 24
	}
	return hours, nil
}

// round1 and round2 produce display-ready values; callers are not expected
// to re-round.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
