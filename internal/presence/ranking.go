package presence

import (
	"sort"

	"pad/internal/models"
)

// TopSize caps the leaderboard length.
const TopSize = 5

type candidate struct {
	userID int
	score  int
	scored bool
}

// FiveTop ranks users by presence seconds in the given month and year and
// joins the top five with their profiles.
//
// Candidates are every validated user, zero-activity ones included;
// candidate order is ascending user id and the sort is stable, so ties
// resolve to the lower id. The scan over the sorted slice stops at the
// first empty or zero score instead of filtering first, and fewer than
// five candidates in total yields an empty leaderboard. A qualifying user
// placed after a non-viable one is therefore dropped; callers depend on
// this exact truncation behavior.
func FiveTop(data models.PresenceData, profiles models.UserDirectory, month, year int) []models.LeaderboardEntry {
	candidates := make([]candidate, 0, len(data))
	for _, id := range data.UserIDs() {
		items := data[id]
		if !ValidateForRanking(items, id, profiles) {
			continue
		}
		vec := MonthlyTotals(items, year)
		score, scored := vec.Score(month)
		candidates = append(candidates, candidate{userID: id, score: score, scored: scored})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].scored != candidates[j].scored {
			return candidates[i].scored
		}
		return candidates[i].score > candidates[j].score
	})

	results := make([]models.LeaderboardEntry, 0, TopSize)
	if len(candidates) < TopSize {
		return results
	}
	for _, c := range candidates[:TopSize] {
		if !c.scored || c.score == 0 {
			break
		}
		profile, ok := profiles[c.userID]
		if !ok {
			break
		}
		results = append(results, models.LeaderboardEntry{
			UserID: c.userID,
			Hours:  floorDiv(c.score, 3600),
			Name:   profile.Name,
			Avatar: profile.Avatar,
		})
	}
	return results
}

// floorDiv rounds toward minus infinity so a negative total keeps the
// floored-hours convention.
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
