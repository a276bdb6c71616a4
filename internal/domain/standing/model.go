package standing

type Kind string

const (
	KindFootball   Kind = "football"
	KindBasketball Kind = "basketball"
)

// Row keeps the provider's reported position; rows are never re-sorted.
type Row struct {
	Position       int    `json:"position"`
	TeamID         string `json:"teamId"`
	Team           string `json:"team"`
	Crest          string `json:"crest,omitempty"`
	Played         int    `json:"played"`
	Won            int    `json:"won"`
	Draw           int    `json:"draw,omitempty"`
	Lost           int    `json:"lost"`
	Points         int    `json:"points,omitempty"`
	GoalsFor       int    `json:"goalsFor,omitempty"`
	GoalsAgainst   int    `json:"goalsAgainst,omitempty"`
	GoalDifference int    `json:"goalDifference,omitempty"`
	WinPercentage  string `json:"winPercentage,omitempty"`
}

// Group is a single table: the whole league for football, one conference
// for basketball.
type Group struct {
	Name string `json:"name"`
	Rows []Row  `json:"rows"`
}

type Table struct {
	Kind        Kind    `json:"kind"`
	Competition string  `json:"competition"`
	Groups      []Group `json:"groups"`
}

// Default returns the group shown first, or an empty group.
func (t Table) Default() Group {
	if len(t.Groups) == 0 {
		return Group{}
	}
	return t.Groups[0]
}

func (t Table) Empty() bool {
	for _, g := range t.Groups {
		if len(g.Rows) > 0 {
			return false
		}
	}
	return true
}
