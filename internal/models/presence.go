package models

import (
	"sort"
	"time"
)

// Date is a calendar day. Comparable, used as a map key.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{Year: year, Month: month, Day: day}
}

// Weekday returns the day of week with Monday as 0 and Sunday as 6.
func (d Date) Weekday() int {
	wd := time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC).Weekday()
	return (int(wd) + 6) % 7
}

// Clock is a time of day.
type Clock struct {
	Hour   int
	Minute int
	Second int
}

// Entry is one day's presence record for a user.
type Entry struct {
	Start Clock
	End   Clock
}

// UserPresence holds one entry per date for a single user. A later record
// for the same date overwrites the earlier one at load time.
type UserPresence map[Date]Entry

// PresenceData maps user id to that user's presence entries.
type PresenceData map[int]UserPresence

// UserIDs returns all user ids in ascending order.
func (p PresenceData) UserIDs() []int {
	ids := make([]int, 0, len(p))
	for id := range p {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// Dates returns a user's dates in ascending order.
func (u UserPresence) Dates() []Date {
	dates := make([]Date, 0, len(u))
	for d := range u {
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool {
		if dates[i].Year != dates[j].Year {
			return dates[i].Year < dates[j].Year
		}
		if dates[i].Month != dates[j].Month {
			return dates[i].Month < dates[j].Month
		}
		return dates[i].Day < dates[j].Day
	})
	return dates
}
