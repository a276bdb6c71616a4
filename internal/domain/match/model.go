package match

import "github.com/riskibarqy/match-tracker/internal/domain/feed"

const (
	PlaceholderID          = "unknown"
	PlaceholderHomeTeam    = "Home Team"
	PlaceholderAwayTeam    = "Away Team"
	PlaceholderCompetition = "Unknown Competition"
	PlaceholderDate        = "Date not available"
	PlaceholderStatus      = "Unknown Status"
)

// Score holds final or running totals; nil means not yet available.
type Score struct {
	Home *int `json:"home"`
	Away *int `json:"away"`
}

// Match is the provider-independent view of one fixture or game.
type Match struct {
	ID          string     `json:"id"`
	HomeTeam    string     `json:"homeTeam"`
	AwayTeam    string     `json:"awayTeam"`
	Date        string     `json:"date"`
	Competition string     `json:"competition"`
	Status      string     `json:"status"`
	Score       Score      `json:"score"`
	Source      feed.Shape `json:"source,omitempty"`
}

func (m Match) Badge() Badge {
	return ClassifyStatus(m.Status)
}
