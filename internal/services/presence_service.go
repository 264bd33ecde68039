package services

import (
	"errors"
	"sort"
	"time"

	"pad/internal/models"
	"pad/internal/presence"
	"pad/internal/store"
)

// ErrUnknownUser marks a per-user request for a user id absent from the
// presence data. Controllers map it to 404.
var ErrUnknownUser = errors.New("unknown user")

type PresenceServiceInterface interface {
	Users() ([]models.UserInfo, error)
	Months() ([]models.MonthOption, error)
	MeanTimeWeekday(userID int) ([][]interface{}, error)
	PresenceWeekday(userID int) ([][]interface{}, error)
	PresenceStartEnd(userID int) ([][]interface{}, error)
	Podium(userID int) ([][]interface{}, error)
	FiveTop(month, year int) ([]models.LeaderboardEntry, error)
	WarmUp() error
}

// PresenceService turns the store's raw data into API payloads. The
// tabular endpoints return rows of mixed label/number cells, so rows are
// []interface{} slices that marshal to the documented JSON arrays.
type PresenceService struct {
	store store.DataStoreInterface
}

func NewPresenceService(store store.DataStoreInterface) PresenceServiceInterface {
	return &PresenceService{store: store}
}

func (ps *PresenceService) Users() ([]models.UserInfo, error) {
	dir, err := ps.store.Users()
	if err != nil {
		return nil, err
	}

	result := make([]models.UserInfo, 0, len(dir))
	for _, id := range dir.IDs() {
		profile := dir[id]
		result = append(result, models.UserInfo{
			UserID: profile.ID,
			Name:   profile.Name,
			Avatar: profile.Avatar,
		})
	}
	return result, nil
}

// Months lists every (month, year) combination for the years present in
// the data set, feeding the range dropdown. Month numbers are zero-based
// to match the selector values.
func (ps *PresenceService) Months() ([]models.MonthOption, error) {
	data, err := ps.store.Presence()
	if err != nil {
		return nil, err
	}

	seen := make(map[int]bool)
	years := make([]int, 0)
	for _, items := range data {
		for date := range items {
			if !seen[date.Year] {
				seen[date.Year] = true
				years = append(years, date.Year)
			}
		}
	}
	sort.Ints(years)

	result := make([]models.MonthOption, 0, len(years)*12)
	for _, year := range years {
		for m := time.January; m <= time.December; m++ {
			result = append(result, models.MonthOption{
				Number: int(m) - 1,
				Name:   m.String()[:3],
				Year:   year,
			})
		}
	}
	return result, nil
}

func (ps *PresenceService) MeanTimeWeekday(userID int) ([][]interface{}, error) {
	items, err := ps.userPresence(userID)
	if err != nil {
		return nil, err
	}

	means := presence.MeansByWeekday(items)
	rows := make([][]interface{}, 0, len(means))
	for day, m := range means {
		rows = append(rows, []interface{}{presence.DayLabels[day], m})
	}
	return rows, nil
}

func (ps *PresenceService) PresenceWeekday(userID int) ([][]interface{}, error) {
	items, err := ps.userPresence(userID)
	if err != nil {
		return nil, err
	}

	totals := presence.TotalsByWeekday(items)
	rows := make([][]interface{}, 0, len(totals)+1)
	rows = append(rows, []interface{}{"Weekday", "Presence (s)"})
	for day, total := range totals {
		rows = append(rows, []interface{}{presence.DayLabels[day], total})
	}
	return rows, nil
}

func (ps *PresenceService) PresenceStartEnd(userID int) ([][]interface{}, error) {
	items, err := ps.userPresence(userID)
	if err != nil {
		return nil, err
	}

	rows := make([][]interface{}, 0, 7)
	for day, se := range presence.DayStartEnd(items) {
		rows = append(rows, []interface{}{presence.DayLabels[day], se.Start, se.End})
	}
	return rows, nil
}

func (ps *PresenceService) Podium(userID int) ([][]interface{}, error) {
	items, err := ps.userPresence(userID)
	if err != nil {
		return nil, err
	}

	rows := make([][]interface{}, 0, 12)
	for _, row := range presence.Podium(items) {
		rows = append(rows, []interface{}{row.Month, row.Hours})
	}
	return rows, nil
}

func (ps *PresenceService) FiveTop(month, year int) ([]models.LeaderboardEntry, error) {
	data, err := ps.store.Presence()
	if err != nil {
		return nil, err
	}
	profiles, err := ps.store.Users()
	if err != nil {
		return nil, err
	}
	return presence.FiveTop(data, profiles, month, year), nil
}

// WarmUp loads both sources so the first request does not pay the parse
// cost. Called once at startup.
func (ps *PresenceService) WarmUp() error {
	if _, err := ps.store.Presence(); err != nil {
		return err
	}
	_, err := ps.store.Users()
	return err
}

func (ps *PresenceService) userPresence(userID int) (models.UserPresence, error) {
	data, err := ps.store.Presence()
	if err != nil {
		return nil, err
	}
	items, ok := data[userID]
	if !ok {
		return nil, ErrUnknownUser
	}
	return items, nil
}
