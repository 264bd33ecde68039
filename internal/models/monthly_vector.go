package models

import "time"

// MonthlyVector holds summed presence seconds per calendar month for one
// user in one year. Slot 0 is unused; slots 1..12 are January..December.
// Set distinguishes a month with no entries from a genuine zero sum.
type MonthlyVector struct {
	Sums [13]int
	Set  [13]bool
}

func (v *MonthlyVector) Add(month time.Month, seconds int) {
	v.Sums[month] += seconds
	v.Set[month] = true
}

// Score returns the summed seconds for a month and whether the month has
// any entries at all.
func (v MonthlyVector) Score(month int) (int, bool) {
	if month < 1 || month > 12 {
		return 0, false
	}
	return v.Sums[month], v.Set[month]
}

// Empty reports whether no month has any entries.
func (v MonthlyVector) Empty() bool {
	for m := 1; m <= 12; m++ {
		if v.Set[m] {
			return false
		}
	}
	return true
}
