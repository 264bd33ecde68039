package presence

import (
	"sort"
	"time"

	"pad/internal/models"
)

// MonthlyTotals sums a user's interval seconds into a per-month vector for
// the given year. Records from other years are ignored; a user without
// matching records yields a vector with every slot unset.
func MonthlyTotals(items models.UserPresence, year int) models.MonthlyVector {
	var vec models.MonthlyVector
	for _, date := range items.Dates() {
		if date.Year != year {
			continue
		}
		e := items[date]
		vec.Add(date.Month, Interval(e.Start, e.End))
	}
	return vec
}

// ValidateForRanking reports whether a user may enter ranking: the user
// must exist in the profile directory and have at least one presence
// record in the data set at all.
func ValidateForRanking(items models.UserPresence, userID int, profiles models.UserDirectory) bool {
	if _, ok := profiles[userID]; !ok {
		return false
	}
	return len(items) > 0
}

// PodiumRow is one month's floored presence hours for the podium listing.
type PodiumRow struct {
	Month string
	Hours int
}

// Podium totals a user's presence per calendar month across all years and
// returns one row per month, ascending by hours. Months without entries
// report "no data" and 0.
func Podium(items models.UserPresence) []PodiumRow {
	var vec models.MonthlyVector
	for _, date := range items.Dates() {
		e := items[date]
		vec.Add(date.Month, Interval(e.Start, e.End))
	}

	rows := make([]PodiumRow, 0, 12)
	for m := 1; m <= 12; m++ {
		if sum, ok := vec.Score(m); ok {
			rows = append(rows, PodiumRow{Month: time.Month(m).String(), Hours: floorDiv(sum, 3600)})
		} else {
			rows = append(rows, PodiumRow{Month: "no data", Hours: 0})
		}
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Hours < rows[j].Hours
	})
	return rows
}
