package match

import (
	"time"

	"github.com/riskibarqy/match-tracker/internal/domain/feed"
)

// Normalize maps one provider record. The first matching shape wins:
// api-sports basketball, football-data, legacy balldontlie, placeholder.
func Normalize(rec feed.Record) Match {
	switch {
	case feed.Has(rec, "league", "teams", "scores"):
		return fromBasketball(rec)
	case feed.Has(rec, "homeTeam", "awayTeam", "competition"):
		return fromFootball(rec)
	case feed.Has(rec, "home_team", "visitor_team"):
		return fromLegacyBasketball(rec)
	default:
		return placeholder(rec)
	}
}

// NormalizeAll extracts and maps every record of p.
func NormalizeAll(p feed.Payload) []Match {
	recs := feed.Records(p)
	out := make([]Match, 0, len(recs))
	for _, rec := range recs {
		m := Normalize(rec)
		m.Source = p.Shape
		out = append(out, m)
	}
	return out
}

// Detail unwraps a match-by-id body: api-sports wraps it in response[0],
// football-data may wrap it in "match" or return it bare.
func Detail(p feed.Payload) (feed.Record, bool) {
	root, ok := feed.Decode(p.Body)
	if !ok {
		return nil, false
	}
	shape := p.Shape
	if shape == feed.ShapeUnknown {
		if _, isList := root["response"].([]any); isList {
			shape = feed.ShapeBasketball
		} else {
			shape = feed.ShapeFootball
		}
	}

	switch shape {
	case feed.ShapeBasketball:
		items, _ := root["response"].([]any)
		if len(items) == 0 {
			return nil, false
		}
		rec, ok := items[0].(map[string]any)
		return rec, ok
	case feed.ShapeFootball:
		if inner := feed.Object(root, "match"); inner != nil {
			return inner, true
		}
		return root, true
	default:
		return nil, false
	}
}

func fromBasketball(rec feed.Record) Match {
	return Match{
		ID:          idOf(rec),
		HomeTeam:    or(feed.String(rec, "teams", "home", "name"), PlaceholderHomeTeam),
		AwayTeam:    or(feed.String(rec, "teams", "away", "name"), PlaceholderAwayTeam),
		Date:        or(feed.String(rec, "date"), PlaceholderDate),
		Competition: or(feed.String(rec, "league", "name"), "Unknown League"),
		Status:      or(feed.String(rec, "status", "long"), "Scheduled"),
		Score: Score{
			Home: intPtr(rec, "scores", "home", "total"),
			Away: intPtr(rec, "scores", "away", "total"),
		},
	}
}

func fromFootball(rec feed.Record) Match {
	home := intPtr(rec, "score", "fullTime", "homeTeam")
	if home == nil {
		home = intPtr(rec, "score", "fullTime", "home")
	}
	away := intPtr(rec, "score", "fullTime", "awayTeam")
	if away == nil {
		away = intPtr(rec, "score", "fullTime", "away")
	}

	return Match{
		ID:          idOf(rec),
		HomeTeam:    or(feed.String(rec, "homeTeam", "name"), PlaceholderHomeTeam),
		AwayTeam:    or(feed.String(rec, "awayTeam", "name"), PlaceholderAwayTeam),
		Date:        or(feed.String(rec, "utcDate"), PlaceholderDate),
		Competition: or(feed.String(rec, "competition", "name"), PlaceholderCompetition),
		Status:      or(feed.String(rec, "status"), "SCHEDULED"),
		Score:       Score{Home: home, Away: away},
	}
}

func fromLegacyBasketball(rec feed.Record) Match {
	competition := PlaceholderCompetition
	if season := feed.String(rec, "season"); season != "" {
		competition = season + " NBA Season"
	}

	return Match{
		ID:          idOf(rec),
		HomeTeam:    or(feed.String(rec, "home_team", "full_name"), PlaceholderHomeTeam),
		AwayTeam:    or(feed.String(rec, "visitor_team", "full_name"), PlaceholderAwayTeam),
		Date:        or(feed.String(rec, "date"), PlaceholderDate),
		Competition: competition,
		Status:      or(feed.String(rec, "status"), "Scheduled"),
		Score: Score{
			Home: intPtr(rec, "home_team_score"),
			Away: intPtr(rec, "visitor_team_score"),
		},
	}
}

func placeholder(rec feed.Record) Match {
	return Match{
		ID:          idOf(rec),
		HomeTeam:    PlaceholderHomeTeam,
		AwayTeam:    PlaceholderAwayTeam,
		Date:        PlaceholderDate,
		Competition: PlaceholderCompetition,
		Status:      PlaceholderStatus,
	}
}

// FormatDate renders an ISO timestamp as "January 2, 2006 3:04 PM" in loc.
// Unparseable input is returned as-is.
func FormatDate(raw string, loc *time.Location) string {
	if raw == "" || raw == PlaceholderDate {
		return PlaceholderDate
	}
	ts, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return raw
	}
	if loc != nil {
		ts = ts.In(loc)
	}
	return ts.Format("January 2, 2006 3:04 PM")
}

func idOf(rec feed.Record) string {
	return or(feed.String(rec, "id"), PlaceholderID)
}

func intPtr(rec feed.Record, path ...string) *int {
	n, ok := feed.Int(rec, path...)
	if !ok {
		return nil
	}
	return &n
}

func or(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
