package leave

import "time"

// CountDays returns the inclusive number of days between start and end, so a
// single-day request counts as 1. Returns 0 when start is after end.
func CountDays(start, end time.Time) int {
	start = start.UTC().Truncate(24 * time.Hour)
	end = end.UTC().Truncate(24 * time.Hour)
	if start.After(end) {
		return 0
	}
	return int(end.Sub(start).Hours()/24) + 1
}
