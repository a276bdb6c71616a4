package standing

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/riskibarqy/match-tracker/internal/domain/feed"
	"github.com/riskibarqy/match-tracker/internal/domain/sport"
)

var ErrUnsupportedSport = errors.New("standings are not available for this sport")

var numericCompetition = regexp.MustCompile(`^\d+$`)

// Parse reads a standings body for an explicit sport. Malformed bodies give
// an empty table rather than an error.
func Parse(s sport.Sport, body []byte) (Table, error) {
	switch s {
	case sport.Football:
		return parseFootball(body), nil
	case sport.Basketball:
		return parseBasketball(body), nil
	default:
		return Table{}, fmt.Errorf("%w: %s", ErrUnsupportedSport, s)
	}
}

// SportForCompetition guesses the sport from a competition identifier:
// numeric ids are api-sports leagues, anything else a football-data code.
// Callers that know the sport should use Parse directly.
func SportForCompetition(code string) sport.Sport {
	if numericCompetition.MatchString(strings.TrimSpace(code)) {
		return sport.Basketball
	}
	return sport.Football
}

func ParseByCompetition(code string, body []byte) (Table, error) {
	return Parse(SportForCompetition(code), body)
}

func parseFootball(body []byte) Table {
	table := Table{Kind: KindFootball}
	root, ok := feed.Decode(body)
	if !ok {
		return table
	}
	table.Competition = feed.String(root, "competition", "name")

	standings, _ := root["standings"].([]any)
	if len(standings) == 0 {
		return table
	}
	first, _ := standings[0].(map[string]any)
	items, _ := first["table"].([]any)

	group := Group{Name: table.Competition, Rows: make([]Row, 0, len(items))}
	for _, item := range items {
		rec, ok := item.(map[string]any)
		if !ok {
			continue
		}
		group.Rows = append(group.Rows, Row{
			Position:       intAt(rec, "position"),
			TeamID:         feed.String(rec, "team", "id"),
			Team:           feed.String(rec, "team", "name"),
			Crest:          feed.String(rec, "team", "crest"),
			Played:         intAt(rec, "playedGames"),
			Won:            intAt(rec, "won"),
			Draw:           intAt(rec, "draw"),
			Lost:           intAt(rec, "lost"),
			Points:         intAt(rec, "points"),
			GoalsFor:       intAt(rec, "goalsFor"),
			GoalsAgainst:   intAt(rec, "goalsAgainst"),
			GoalDifference: intAt(rec, "goalDifference"),
		})
	}
	table.Groups = []Group{group}
	return table
}

func parseBasketball(body []byte) Table {
	table := Table{Kind: KindBasketball}
	root, ok := feed.Decode(body)
	if !ok {
		return table
	}
	response, _ := root["response"].([]any)
	if len(response) == 0 {
		return table
	}
	first, _ := response[0].(map[string]any)
	table.Competition = feed.String(first, "league", "name")

	v, _ := feed.Lookup(first, "league", "standings")
	groups, _ := v.([]any)
	for i, g := range groups {
		items, _ := g.([]any)
		group := Group{Rows: make([]Row, 0, len(items))}
		for _, item := range items {
			rec, ok := item.(map[string]any)
			if !ok {
				continue
			}
			if group.Name == "" {
				group.Name = feed.String(rec, "group", "name")
			}
			group.Rows = append(group.Rows, Row{
				Position:      intAt(rec, "position"),
				TeamID:        feed.String(rec, "team", "id"),
				Team:          feed.String(rec, "team", "name"),
				Crest:         feed.String(rec, "team", "logo"),
				Played:        intAt(rec, "games", "played"),
				Won:           intAt(rec, "games", "win", "total"),
				Lost:          intAt(rec, "games", "lose", "total"),
				WinPercentage: feed.String(rec, "games", "win", "percentage"),
			})
		}
		if group.Name == "" {
			group.Name = fmt.Sprintf("Group %d", i+1)
		}
		table.Groups = append(table.Groups, group)
	}
	return table
}

func intAt(rec feed.Record, path ...string) int {
	n, _ := feed.Int(rec, path...)
	return n
}
