package fixture

import (
	"context"
	"fmt"
	"time"
)

// Football serves football-data.org shaped fixtures.
type Football struct {
	clock clock
}

func NewFootball(opts ...Option) *Football {
	return &Football{clock: newClock(opts)}
}

var (
	premierLeague = object{"id": 2021, "name": "Premier League", "code": "PL", "type": "LEAGUE"}
	laLiga        = object{"id": 2014, "name": "La Liga", "code": "PD", "type": "LEAGUE"}
)

func (f *Football) matches() []object {
	score := func() object {
		return object{
			"fullTime": object{"homeTeam": nil, "awayTeam": nil},
			"halfTime": object{"homeTeam": nil, "awayTeam": nil},
		}
	}
	match := func(id any, home, away object, offset time.Duration, competition object, venue string) object {
		return object{
			"id":          id,
			"homeTeam":    home,
			"awayTeam":    away,
			"utcDate":     f.clock.at(offset),
			"competition": clone(competition),
			"status":      "SCHEDULED",
			"venue":       venue,
			"score":       score(),
			"matchday":    1,
			"group":       nil,
			"lastUpdated": f.clock.at(0),
		}
	}

	return []object{
		match(1,
			object{"id": 1, "name": "Manchester United", "crest": "https://crests.football-data.org/66.svg"},
			object{"id": 2, "name": "Liverpool", "crest": "https://crests.football-data.org/64.svg"},
			0, premierLeague, "Old Trafford"),
		match(2,
			object{"id": 3, "name": "Arsenal", "crest": "https://crests.football-data.org/57.svg"},
			object{"id": 4, "name": "Chelsea", "crest": "https://crests.football-data.org/61.svg"},
			day, premierLeague, "Emirates Stadium"),
		match("featured",
			object{"id": 5, "name": "Barcelona", "crest": "https://crests.football-data.org/81.svg"},
			object{"id": 6, "name": "Real Madrid", "crest": "https://crests.football-data.org/86.svg"},
			2*day, laLiga, "Camp Nou"),
	}
}

func (f *Football) list() ([]byte, error) {
	return encode(object{"matches": f.matches()})
}

func (f *Football) UpcomingMatches(context.Context, string) ([]byte, error) {
	return f.list()
}

func (f *Football) TodayMatches(context.Context, time.Time, string) ([]byte, error) {
	return f.list()
}

func (f *Football) CompetitionMatches(context.Context, string, string) ([]byte, error) {
	return f.list()
}

// finalScores are fixed so repeated fallbacks return the same body.
var finalScores = [][2]int{{2, 1}, {0, 0}, {3, 2}}

func (f *Football) PreviousMatches(context.Context, time.Time, time.Time, string) ([]byte, error) {
	matches := f.matches()
	for i, m := range matches {
		final := finalScores[i%len(finalScores)]
		m["status"] = "FINISHED"
		m["utcDate"] = f.clock.at(-time.Duration(i+1) * day)
		m["score"] = object{
			"fullTime": object{"homeTeam": final[0], "awayTeam": final[1]},
			"halfTime": object{"homeTeam": nil, "awayTeam": nil},
		}
	}
	return encode(object{"matches": matches})
}

func (f *Football) Standings(context.Context, string, string) ([]byte, error) {
	row := func(pos, teamID int, name string, played, won, draw, lost, points, gf, ga int) object {
		return object{
			"position":       pos,
			"team":           object{"id": teamID, "name": name, "crest": fmt.Sprintf("https://crests.football-data.org/%d.png", teamID)},
			"playedGames":    played,
			"won":            won,
			"draw":           draw,
			"lost":           lost,
			"points":         points,
			"goalsFor":       gf,
			"goalsAgainst":   ga,
			"goalDifference": gf - ga,
		}
	}

	return encode(object{
		"competition": object{
			"id":     2021,
			"name":   "Premier League",
			"code":   "PL",
			"emblem": "https://crests.football-data.org/PL.png",
		},
		"standings": []object{{
			"table": []object{
				row(1, 64, "Liverpool FC", 15, 12, 2, 1, 38, 35, 12),
				row(2, 65, "Manchester City FC", 15, 11, 3, 1, 36, 33, 10),
				row(3, 66, "Manchester United FC", 15, 10, 3, 2, 33, 28, 15),
				row(4, 61, "Chelsea FC", 15, 9, 4, 2, 31, 25, 14),
				row(5, 57, "Arsenal FC", 15, 8, 5, 2, 29, 24, 16),
			},
		}},
	})
}

func (f *Football) Scorers(context.Context, string, string) ([]byte, error) {
	return encode(object{
		"scorers": []object{
			{
				"player":    object{"id": 1, "name": "Erling Haaland", "nationality": "Norway"},
				"team":      object{"name": "Manchester City"},
				"goals":     15,
				"assists":   3,
				"penalties": 2,
			},
			{
				"player":    object{"id": 2, "name": "Mohamed Salah", "nationality": "Egypt"},
				"team":      object{"name": "Liverpool"},
				"goals":     12,
				"assists":   5,
				"penalties": 3,
			},
		},
		"competition": object{
			"name":   "Premier League",
			"code":   "PL",
			"emblem": "https://crests.football-data.org/PL.png",
		},
	})
}

// Match wraps the fixture with the requested id, or the first one.
func (f *Football) Match(_ context.Context, matchID string) ([]byte, error) {
	matches := f.matches()
	found := matches[0]
	for _, m := range matches {
		if fmt.Sprint(m["id"]) == matchID {
			found = m
			break
		}
	}
	return encode(object{"match": found})
}

func (f *Football) Team(_ context.Context, teamID string) ([]byte, error) {
	return encode(object{
		"id":    teamID,
		"name":  "Team " + teamID,
		"crest": placeholderImage,
	})
}

// HeadToHead is the mock-mode message. The failure message is built by the
// caller with Message(FootballHeadToHeadUnavailable).
func (f *Football) HeadToHead(context.Context, string, string) ([]byte, error) {
	return encode(object{"message": FootballHeadToHeadMock})
}
