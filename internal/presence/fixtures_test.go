package presence

import (
	"strconv"
	"time"

	"pad/internal/models"
)

// Fixture data set: eight users mirroring the sample exports. Users 10 and
// 11 worked in September 2013, users 49/62/68/141/176 in September 2015,
// user 26 in March 2011.
func fixtureData() models.PresenceData {
	return models.PresenceData{
		10: {
			models.NewDate(2013, time.September, 10): entry(9, 39, 5, 17, 59, 52),  // Tue, 30047s
			models.NewDate(2013, time.September, 11): entry(9, 19, 52, 16, 7, 37),  // Wed, 24465s
			models.NewDate(2013, time.September, 12): entry(10, 48, 46, 17, 23, 51), // Thu, 23705s
		},
		11: {
			models.NewDate(2013, time.September, 9):  entry(9, 0, 0, 15, 42, 3),  // Mon, 24123s
			models.NewDate(2013, time.September, 10): entry(9, 0, 0, 13, 36, 4),  // Tue, 16564s
			models.NewDate(2013, time.September, 11): entry(9, 0, 0, 16, 2, 1),   // Wed, 25321s
			models.NewDate(2013, time.September, 5):  entry(9, 0, 0, 15, 23, 20), // Thu, 23000s
			models.NewDate(2013, time.September, 12): entry(9, 0, 0, 15, 22, 48), // Thu, 22968s
			models.NewDate(2013, time.September, 13): entry(9, 0, 0, 10, 47, 6),  // Fri, 6426s
		},
		26: {
			models.NewDate(2011, time.March, 2): entry(9, 0, 0, 17, 0, 0),
		},
		49: {
			models.NewDate(2015, time.September, 7): entry(8, 0, 0, 19, 6, 40), // 40000s
		},
		62: {
			models.NewDate(2015, time.September, 7): entry(8, 0, 0, 23, 16, 40), // 55000s
		},
		68: {
			models.NewDate(2015, time.September, 7): entry(8, 0, 0, 16, 20, 0), // 30000s
		},
		141: {
			models.NewDate(2015, time.September, 7): entry(8, 0, 0, 20, 13, 20), // 44000s
		},
		176: {
			models.NewDate(2015, time.September, 7): entry(8, 0, 0, 19, 31, 40), // 41500s
		},
	}
}

func fixtureProfiles() models.UserDirectory {
	const prefix = "https://intranet.example.com:443"
	names := map[int]string{
		10:  "Maciej Z.",
		11:  "Maciej D.",
		26:  "Anna W.",
		49:  "Dariusz S.",
		62:  "Damian G.",
		68:  "Damian K.",
		141: "Adam P.",
		176: "Adrian K.",
	}
	dir := make(models.UserDirectory, len(names))
	for id, name := range names {
		dir[id] = models.UserProfile{
			ID:     id,
			Name:   name,
			Avatar: prefix + "/api/images/users/" + strconv.Itoa(id),
		}
	}
	return dir
}

func entry(sh, sm, ss, eh, em, es int) models.Entry {
	return models.Entry{
		Start: models.Clock{Hour: sh, Minute: sm, Second: ss},
		End:   models.Clock{Hour: eh, Minute: em, Second: es},
	}
}
