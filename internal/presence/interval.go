package presence

import "pad/internal/models"

// SecondsSinceMidnight converts a time of day into elapsed seconds since
// midnight.
func SecondsSinceMidnight(c models.Clock) int {
	return c.Hour*3600 + c.Minute*60 + c.Second
}

// Interval returns the elapsed seconds between start and end. The result
// is negative when end precedes start (overnight shifts, reversed data
// entry) and is propagated unchanged; callers must tolerate that.
func Interval(start, end models.Clock) int {
	return SecondsSinceMidnight(end) - SecondsSinceMidnight(start)
}

// Mean returns the arithmetic mean, or 0 for an empty input.
func Mean(values []int) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0
	for _, v := range values {
		sum += v
	}
	return float64(sum) / float64(len(values))
}
