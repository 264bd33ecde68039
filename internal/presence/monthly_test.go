package presence

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"pad/internal/models"
)

func TestMonthlyTotals(t *testing.T) {
	vec := MonthlyTotals(fixtureData()[10], 2013)

	score, ok := vec.Score(9)
	assert.True(t, ok)
	assert.Equal(t, 78217, score)

	for m := 1; m <= 12; m++ {
		if m == 9 {
			continue
		}
		_, ok := vec.Score(m)
		assert.False(t, ok, "month %d should have no entries", m)
	}
}

func TestMonthlyTotals_OtherYearIgnored(t *testing.T) {
	vec := MonthlyTotals(fixtureData()[10], 2011)

	assert.True(t, vec.Empty())
}

func TestMonthlyTotals_SumsWithinMonth(t *testing.T) {
	items := models.UserPresence{
		models.NewDate(2013, time.September, 9):  entry(11, 43, 50, 17, 14, 42), // 19852s
		models.NewDate(2013, time.September, 12): entry(16, 55, 24, 18, 5, 24),  // 4200s
	}

	vec := MonthlyTotals(items, 2013)

	score, ok := vec.Score(9)
	assert.True(t, ok)
	assert.Equal(t, 24052, score)
}

func TestValidateForRanking(t *testing.T) {
	data := fixtureData()
	profiles := fixtureProfiles()

	assert.True(t, ValidateForRanking(data[10], 10, profiles))
	assert.False(t, ValidateForRanking(data[10], 34654, profiles), "user without profile")
	assert.False(t, ValidateForRanking(models.UserPresence{}, 10, profiles), "user without records")
}

func TestPodium(t *testing.T) {
	rows := Podium(fixtureData()[10])

	assert.Len(t, rows, 12)
	// September (21h) sorts last, everything else reports no data.
	assert.Equal(t, PodiumRow{Month: "September", Hours: 21}, rows[11])
	for _, row := range rows[:11] {
		assert.Equal(t, PodiumRow{Month: "no data", Hours: 0}, row)
	}
}

func TestPodium_SpansYears(t *testing.T) {
	items := models.UserPresence{
		models.NewDate(2013, time.March, 4): entry(9, 0, 0, 17, 0, 0), // 8h
		models.NewDate(2014, time.March, 3): entry(9, 0, 0, 17, 0, 0), // 8h
		models.NewDate(2014, time.May, 5):   entry(9, 0, 0, 13, 0, 0), // 4h
	}

	rows := Podium(items)

	assert.Equal(t, PodiumRow{Month: "May", Hours: 4}, rows[10])
	assert.Equal(t, PodiumRow{Month: "March", Hours: 16}, rows[11])
}
