package fixture

import (
	"context"
	"strconv"
	"strings"
	"time"
)

// Cricket serves Cricbuzz shaped fixtures.
type Cricket struct {
	clock clock
}

func NewCricket(opts ...Option) *Cricket {
	return &Cricket{clock: newClock(opts)}
}

type cricketSide struct {
	id      int
	name    string
	short   string
	imageID int
}

type cricketVenue struct {
	id       int
	ground   string
	city     string
	timezone string
}

type cricketMatch struct {
	id       string
	series   string
	desc     string
	format   string
	start    time.Duration
	length   time.Duration
	state    string
	status   string
	team1    cricketSide
	team2    cricketSide
	venue    *cricketVenue
	team1Inn []inningsLine
	team2Inn []inningsLine
}

type inningsLine struct {
	runs    int
	wickets int
	overs   float64
}

var (
	csk = cricketSide{5, "Chennai Super Kings", "CSK", 225373}
	mi  = cricketSide{6, "Mumbai Indians", "MI", 225378}
)

var liveAndUpcoming = []cricketMatch{
	{
		id: "cricket-match-ipl-1", series: "IPL 2024", desc: "Match 42", format: "T20",
		length: 4 * time.Hour, state: "In Progress", status: "Chennai Super Kings batting",
		team1: csk, team2: mi,
		venue:    &cricketVenue{56, "MA Chidambaram Stadium", "Chennai", "+05:30"},
		team1Inn: []inningsLine{{156, 4, 15.2}}, team2Inn: []inningsLine{{0, 0, 0}},
	},
	{
		id: "cricket-match-ipl-2", series: "IPL 2024", desc: "Match 43", format: "T20",
		start: day, length: 4 * time.Hour, state: "Upcoming", status: "Match starts tomorrow",
		team1: cricketSide{7, "Royal Challengers Bangalore", "RCB", 225374},
		team2: cricketSide{8, "Kolkata Knight Riders", "KKR", 225379},
		venue: &cricketVenue{57, "M. Chinnaswamy Stadium", "Bangalore", "+05:30"},
	},
	{
		id: "cricket-match-ipl-3", series: "IPL 2024", desc: "Match 41", format: "T20",
		start: -day, length: 4 * time.Hour, state: "Complete", status: "Rajasthan Royals won by 6 wickets",
		team1:    cricketSide{9, "Delhi Capitals", "DC", 225375},
		team2:    cricketSide{10, "Rajasthan Royals", "RR", 225380},
		venue:    &cricketVenue{58, "Arun Jaitley Stadium", "Delhi", "+05:30"},
		team1Inn: []inningsLine{{175, 10, 19.5}}, team2Inn: []inningsLine{{176, 4, 18.2}},
	},
	{
		id: "cricket-match-1", series: "ICC World Cup", desc: "1st Test", format: "TEST",
		length: day, state: "In Progress", status: "Day 1: Session 1",
		team1:    cricketSide{2, "India", "IND", 172115},
		team2:    cricketSide{3, "Australia", "AUS", 172127},
		venue:    &cricketVenue{14, "Melbourne Cricket Ground", "Melbourne", "+11:00"},
		team1Inn: []inningsLine{{245, 8, 65.4}}, team2Inn: []inningsLine{{0, 0, 0}},
	},
	{
		id: "cricket-match-2", series: "IPL 2023", desc: "Match 42", format: "T20",
		start: 2 * day, length: 4 * time.Hour, state: "Upcoming", status: "Match starts at 19:30",
		team1: csk, team2: mi,
	},
	{
		id: "cricket-match-3", series: "The Ashes", desc: "3rd Test", format: "TEST",
		start: -day, length: 4 * day, state: "In Progress", status: "Day 2: Session 2",
		team1:    cricketSide{3, "England", "ENG", 172142},
		team2:    cricketSide{4, "Australia", "AUS", 172127},
		venue:    &cricketVenue{23, "Lords", "London", "+01:00"},
		team1Inn: []inningsLine{{356, 10, 112.2}}, team2Inn: []inningsLine{{124, 4, 35.2}},
	},
}

var completed = []cricketMatch{
	{
		id: "cricket-prev-1", series: "IPL 2024", desc: "Match 37", format: "T20",
		start: -2 * day, length: 4 * time.Hour, state: "Complete", status: "Chennai Super Kings won by 8 wickets",
		team1:    cricketSide{5, "Mumbai Indians", "MI", 225378},
		team2:    cricketSide{6, "Chennai Super Kings", "CSK", 225373},
		venue:    &cricketVenue{56, "Wankhede Stadium", "Mumbai", "+05:30"},
		team1Inn: []inningsLine{{155, 10, 19.2}}, team2Inn: []inningsLine{{156, 2, 17.4}},
	},
	{
		id: "cricket-prev-2", series: "Test Series: India vs England", desc: "3rd Test", format: "TEST",
		start: -7 * day, length: 3 * day, state: "Complete", status: "India won by an innings and 64 runs",
		team1:    cricketSide{7, "India", "IND", 225374},
		team2:    cricketSide{8, "England", "ENG", 225379},
		venue:    &cricketVenue{57, "Narendra Modi Stadium", "Ahmedabad", "+05:30"},
		team1Inn: []inningsLine{{436, 10, 121.3}},
		team2Inn: []inningsLine{{152, 10, 53.2}, {220, 10, 67.4}},
	},
	{
		id: "cricket-prev-3", series: "IPL 2024", desc: "Match 36", format: "T20",
		start: -3 * day, length: 4 * time.Hour, state: "Complete", status: "Royal Challengers Bangalore won by 5 wickets",
		team1:    cricketSide{9, "Delhi Capitals", "DC", 225375},
		team2:    cricketSide{10, "Royal Challengers Bangalore", "RCB", 225374},
		venue:    &cricketVenue{57, "M. Chinnaswamy Stadium", "Bangalore", "+05:30"},
		team1Inn: []inningsLine{{175, 9, 20.0}}, team2Inn: []inningsLine{{177, 5, 19.1}},
	},
}

func (c *Cricket) render(m cricketMatch) object {
	side := func(s cricketSide) object {
		return object{"teamId": s.id, "teamName": s.name, "teamSName": s.short, "imageId": s.imageID}
	}
	info := object{
		"matchId":     m.id,
		"seriesName":  m.series,
		"matchDesc":   m.desc,
		"matchFormat": m.format,
		"startDate":   c.clock.at(m.start),
		"endDate":     c.clock.at(m.start + m.length),
		"state":       m.state,
		"status":      m.status,
		"team1":       side(m.team1),
		"team2":       side(m.team2),
	}
	if m.venue != nil {
		info["venueInfo"] = object{
			"id":       m.venue.id,
			"ground":   m.venue.ground,
			"city":     m.venue.city,
			"timezone": m.venue.timezone,
		}
	}

	out := object{"id": m.id, "matchInfo": info}
	if score := renderScore(m); score != nil {
		out["matchScore"] = score
	}
	return out
}

func renderScore(m cricketMatch) object {
	if len(m.team1Inn) == 0 && len(m.team2Inn) == 0 {
		return nil
	}
	innings := func(lines []inningsLine) object {
		out := object{}
		for i, line := range lines {
			out["inngs"+strconv.Itoa(i+1)] = object{
				"runs":    line.runs,
				"wickets": line.wickets,
				"overs":   line.overs,
			}
		}
		return out
	}
	return object{
		"team1Score": innings(m.team1Inn),
		"team2Score": innings(m.team2Inn),
	}
}

func (c *Cricket) renderAll(items []cricketMatch) []object {
	out := make([]object, 0, len(items))
	for _, m := range items {
		out = append(out, c.render(m))
	}
	return out
}

func (c *Cricket) Matches(context.Context) ([]byte, error) {
	return encode(object{"matches": c.renderAll(liveAndUpcoming)})
}

func (c *Cricket) RecentMatches(context.Context) ([]byte, error) {
	return encode(object{"matches": c.renderAll(completed)})
}

// IPLMatches keeps the fixtures whose series name mentions IPL.
func (c *Cricket) IPLMatches(context.Context) ([]byte, error) {
	ipl := make([]cricketMatch, 0, len(liveAndUpcoming))
	for _, m := range liveAndUpcoming {
		if strings.Contains(m.series, "IPL") {
			ipl = append(ipl, m)
		}
	}
	return encode(object{"matches": c.renderAll(ipl)})
}

func (c *Cricket) find(matchID string) cricketMatch {
	for _, m := range liveAndUpcoming {
		if m.id == matchID {
			return m
		}
	}
	return liveAndUpcoming[0]
}

func (c *Cricket) MatchInfo(_ context.Context, matchID string) ([]byte, error) {
	return encode(c.render(c.find(matchID)))
}

// Scorecard is the match's score block, or an empty object.
func (c *Cricket) Scorecard(_ context.Context, matchID string) ([]byte, error) {
	score := renderScore(c.find(matchID))
	if score == nil {
		score = object{}
	}
	return encode(score)
}

// Commentary is the mock-mode body; failures use CommentaryUnavailable.
func (c *Cricket) Commentary(context.Context, string) ([]byte, error) {
	return CommentaryBody(CommentaryMock)
}

func CommentaryBody(text string) ([]byte, error) {
	return encode(object{"commentary": text})
}

func (c *Cricket) Overs(context.Context, string) ([]byte, error) {
	return encode(object{"overs": []object{}})
}

func (c *Cricket) Series(context.Context) ([]byte, error) {
	return encode(object{"seriesList": []object{
		{"id": "s1", "name": "ICC World Cup 2023", "startDate": "2023-10-05", "endDate": "2023-11-19"},
		{"id": "s2", "name": "The Ashes", "startDate": "2023-06-16", "endDate": "2023-07-31"},
		{"id": "s3", "name": "IPL 2023", "startDate": "2023-03-31", "endDate": "2023-05-28"},
	}})
}

func (c *Cricket) News(context.Context) ([]byte, error) {
	return encode(object{"newsList": []object{
		{"id": "n1", "headline": "India wins World Cup", "description": "India defeats Australia in the final"},
		{"id": "n2", "headline": "England announces squad for the Ashes", "description": "Root to lead the team"},
		{"id": "n3", "headline": "IPL auction results", "description": "Full list of players bought by teams"},
	}})
}
