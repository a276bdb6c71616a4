package fixture

import (
	"context"
	"fmt"
	"time"
)

// Basketball serves api-sports basketball shaped fixtures.
type Basketball struct {
	clock clock
}

func NewBasketball(opts ...Option) *Basketball {
	return &Basketball{clock: newClock(opts)}
}

func nbaLeague() object {
	return object{
		"id":     12,
		"name":   "NBA",
		"type":   "League",
		"season": "2023-2024",
		"logo":   "https://media.api-sports.io/basketball/leagues/12.png",
	}
}

func basketballTeam(id int, name string) object {
	return object{"id": id, "name": name, "logo": fmt.Sprintf("https://media.api-sports.io/basketball/teams/%d.png", id)}
}

func (b *Basketball) games() []object {
	game := func(id int, tipOff string, home, away object) object {
		return object{
			"id":     id,
			"date":   b.clock.at(0),
			"time":   tipOff,
			"league": nbaLeague(),
			"status": object{"long": "Scheduled", "short": "NS"},
			"teams":  object{"home": home, "away": away},
			"scores": object{"home": object{"total": nil}, "away": object{"total": nil}},
		}
	}

	return []object{
		game(8213, "20:00", basketballTeam(139, "Boston Celtics"), basketballTeam(134, "Los Angeles Lakers")),
		game(8214, "19:30", basketballTeam(141, "Milwaukee Bucks"), basketballTeam(133, "Brooklyn Nets")),
	}
}

func (b *Basketball) list() ([]byte, error) {
	return encode(object{"response": b.games()})
}

func (b *Basketball) UpcomingMatches(context.Context, string) ([]byte, error) {
	return b.list()
}

func (b *Basketball) TodayMatches(context.Context, time.Time, string) ([]byte, error) {
	return b.list()
}

func (b *Basketball) CompetitionMatches(context.Context, string, string) ([]byte, error) {
	return b.list()
}

var finalTotals = [][2]int{{112, 104}, {98, 101}}

func (b *Basketball) PreviousMatches(context.Context, time.Time, time.Time, string) ([]byte, error) {
	games := b.games()
	for i, g := range games {
		final := finalTotals[i%len(finalTotals)]
		g["date"] = b.clock.at(-time.Duration(i+1) * day)
		g["status"] = object{"long": "Game Finished", "short": "FT"}
		g["scores"] = object{
			"home": object{"total": final[0]},
			"away": object{"total": final[1]},
		}
	}
	return encode(object{"response": games})
}

func (b *Basketball) Standings(context.Context, string, string) ([]byte, error) {
	row := func(pos int, conference string, team object, won, lost int, pct string) object {
		return object{
			"position": pos,
			"stage":    "Regular Season",
			"group":    object{"name": conference, "points": nil},
			"team":     team,
			"games": object{
				"played": won + lost,
				"win":    object{"total": won, "percentage": pct},
				"lose":   object{"total": lost},
			},
		}
	}

	league := nbaLeague()
	league["standings"] = [][]object{
		{
			row(1, "Eastern Conference", basketballTeam(139, "Boston Celtics"), 32, 8, "0.800"),
			row(2, "Eastern Conference", basketballTeam(141, "Milwaukee Bucks"), 28, 12, "0.700"),
			row(3, "Eastern Conference", basketballTeam(146, "Philadelphia 76ers"), 26, 14, "0.650"),
		},
		{
			row(1, "Western Conference", basketballTeam(149, "Los Angeles Lakers"), 29, 11, "0.725"),
			row(2, "Western Conference", basketballTeam(140, "Golden State Warriors"), 27, 13, "0.675"),
			row(3, "Western Conference", basketballTeam(138, "Denver Nuggets"), 25, 15, "0.625"),
		},
	}
	return encode(object{"response": []object{{"league": league}}})
}

func (b *Basketball) Scorers(context.Context, string, string) ([]byte, error) {
	return encode(object{"response": []object{}})
}

func (b *Basketball) Match(_ context.Context, gameID string) ([]byte, error) {
	games := b.games()
	found := games[0]
	for _, g := range games {
		if fmt.Sprint(g["id"]) == gameID {
			found = g
			break
		}
	}
	return encode(object{"response": []object{found}})
}

func (b *Basketball) Team(_ context.Context, teamID string) ([]byte, error) {
	return encode(object{"response": []object{{
		"id":   teamID,
		"name": "Basketball Team " + teamID,
		"logo": placeholderImage,
	}}})
}

// HeadToHead returns the first fixture game, used both in mock mode and
// when the provider fails.
func (b *Basketball) HeadToHead(context.Context, string, string) ([]byte, error) {
	return encode(object{"response": b.games()[:1]})
}
