package cricket

import (
	"fmt"
	"strings"
)

type Team struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	ShortName string `json:"shortName"`
}

type Venue struct {
	Ground string `json:"ground"`
	City   string `json:"city"`
}

// Innings is one batting innings line, e.g. 156/4 (15.2).
type Innings struct {
	Runs    int    `json:"runs"`
	Wickets int    `json:"wickets"`
	Overs   string `json:"overs"`
}

func (i Innings) String() string {
	if i.Overs == "" {
		return fmt.Sprintf("%d/%d", i.Runs, i.Wickets)
	}
	return fmt.Sprintf("%d/%d (%s)", i.Runs, i.Wickets, i.Overs)
}

// Summary is the list and header view of one cricket match.
type Summary struct {
	ID          string    `json:"id"`
	Series      string    `json:"series"`
	Description string    `json:"description"`
	Format      string    `json:"format"`
	StartDate   string    `json:"startDate"`
	State       string    `json:"state"`
	Status      string    `json:"status"`
	Team1       Team      `json:"team1"`
	Team2       Team      `json:"team2"`
	Venue       Venue     `json:"venue"`
	Team1Score  []Innings `json:"team1Score,omitempty"`
	Team2Score  []Innings `json:"team2Score,omitempty"`
}

// Live reports whether the match should be polled.
func (s Summary) Live() bool {
	return IsLive(s.State)
}

func (s Summary) Title() string {
	return fmt.Sprintf("%s vs %s", nonEmpty(s.Team1.Name, "Team 1"), nonEmpty(s.Team2.Name, "Team 2"))
}

// IsLive is a case-insensitive substring match on "progress" or "live".
func IsLive(state string) bool {
	lower := strings.ToLower(state)
	return strings.Contains(lower, "progress") || strings.Contains(lower, "live")
}

func nonEmpty(v, fallback string) string {
	if strings.TrimSpace(v) == "" {
		return fallback
	}
	return v
}

// NewsItem and SeriesItem are the rows of the news and series lists.
type NewsItem struct {
	ID          string `json:"id"`
	Headline    string `json:"headline"`
	Description string `json:"description"`
}

type SeriesItem struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}
