package models

import "sort"

// UserProfile is one user from the metadata export. Avatar is an absolute
// URL built from the export's server block and the user's avatar path.
type UserProfile struct {
	ID     int
	Name   string
	Avatar string
}

// UserDirectory maps user id to profile. It is not guaranteed to contain
// every id present in the presence data.
type UserDirectory map[int]UserProfile

func (d UserDirectory) IDs() []int {
	ids := make([]int, 0, len(d))
	for id := range d {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

type UserInfo struct {
	UserID int    `json:"user_id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

type LeaderboardEntry struct {
	UserID int    `json:"user_id"`
	Hours  int    `json:"hours"`
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

type MonthOption struct {
	Number int    `json:"number"`
	Name   string `json:"name"`
	Year   int    `json:"year"`
}
