package attendance

import (
	"math"
	"time"
)

// ComputeWorkHours returns the hours between check-in and check-out rounded
// to two decimals. Missing timestamps or a check-out earlier than the
// check-in yield zero.
func ComputeWorkHours(checkIn, checkOut *time.Time) float64 {
	if checkIn == nil || checkOut == nil {
		return 0
	}

	hours := checkOut.Sub(*checkIn).Hours()
	if hours < 0 {
		return 0
	}

	return math.Round(hours*100) / 100
}
