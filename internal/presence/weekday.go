package presence

import "pad/internal/models"

// DayLabels are three-letter weekday abbreviations, Monday first. All
// weekday aggregations use this ordering.
var DayLabels = [7]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// GroupByWeekday collects a user's interval seconds per weekday, one value
// per presence entry, index 0 = Monday.
func GroupByWeekday(items models.UserPresence) [7][]int {
	var result [7][]int
	for _, date := range items.Dates() {
		e := items[date]
		day := date.Weekday()
		result[day] = append(result[day], Interval(e.Start, e.End))
	}
	return result
}

// TotalsByWeekday sums a user's interval seconds per weekday.
func TotalsByWeekday(items models.UserPresence) [7]int {
	var totals [7]int
	for day, intervals := range GroupByWeekday(items) {
		for _, v := range intervals {
			totals[day] += v
		}
	}
	return totals
}

// MeansByWeekday averages a user's interval seconds per weekday. Days
// without entries report 0.
func MeansByWeekday(items models.UserPresence) [7]float64 {
	var means [7]float64
	for day, intervals := range GroupByWeekday(items) {
		means[day] = Mean(intervals)
	}
	return means
}

// StartEnd holds mean start and end seconds since midnight for one weekday.
type StartEnd struct {
	Start float64
	End   float64
}

// DayStartEnd computes the mean start and end seconds per weekday. Days
// without entries report a literal (0, 0).
func DayStartEnd(items models.UserPresence) [7]StartEnd {
	var starts, ends [7][]int
	for _, date := range items.Dates() {
		e := items[date]
		day := date.Weekday()
		starts[day] = append(starts[day], SecondsSinceMidnight(e.Start))
		ends[day] = append(ends[day], SecondsSinceMidnight(e.End))
	}

	var result [7]StartEnd
	for day := range result {
		result[day] = StartEnd{Start: Mean(starts[day]), End: Mean(ends[day])}
	}
	return result
}
