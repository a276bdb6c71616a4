package cricket

import (
	"sort"
	"strings"

	"github.com/riskibarqy/match-tracker/internal/domain/feed"
)

// ParseMatches reads a match list body. Both the flat {"matches": [...]}
// list and Cricbuzz's typeMatches/seriesMatches nesting are accepted.
func ParseMatches(body []byte) []Summary {
	root, ok := feed.Decode(body)
	if !ok {
		return nil
	}

	if items, ok := root["matches"].([]any); ok {
		return summaries(items)
	}

	out := make([]Summary, 0)
	types, _ := root["typeMatches"].([]any)
	for _, rawType := range types {
		typ, _ := rawType.(map[string]any)
		seriesMatches, _ := typ["seriesMatches"].([]any)
		for _, rawSeries := range seriesMatches {
			series, _ := rawSeries.(map[string]any)
			wrapper := feed.Object(series, "seriesAdWrapper")
			if wrapper == nil {
				continue
			}
			items, _ := wrapper["matches"].([]any)
			out = append(out, summaries(items)...)
		}
	}
	return out
}

// ParseInfo reads a single match body, either a list item or a bare
// matchInfo document.
func ParseInfo(body []byte) (Summary, bool) {
	root, ok := feed.Decode(body)
	if !ok {
		return Summary{}, false
	}
	s := summary(root)
	return s, s.ID != ""
}

// StateOf returns matchInfo.state, falling back to a top-level state.
func StateOf(body []byte) string {
	root, ok := feed.Decode(body)
	if !ok {
		return ""
	}
	if state := feed.String(root, "matchInfo", "state"); state != "" {
		return state
	}
	return feed.String(root, "state")
}

func ParseSeries(body []byte) []SeriesItem {
	root, ok := feed.Decode(body)
	if !ok {
		return nil
	}
	items, _ := root["seriesList"].([]any)
	out := make([]SeriesItem, 0, len(items))
	for _, item := range items {
		rec, ok := item.(map[string]any)
		if !ok {
			continue
		}
		out = append(out, SeriesItem{
			ID:        feed.String(rec, "id"),
			Name:      feed.String(rec, "name"),
			StartDate: feed.String(rec, "startDate"),
			EndDate:   feed.String(rec, "endDate"),
		})
	}
	return out
}

func ParseNews(body []byte) []NewsItem {
	root, ok := feed.Decode(body)
	if !ok {
		return nil
	}
	items, _ := root["newsList"].([]any)
	out := make([]NewsItem, 0, len(items))
	for _, item := range items {
		rec, ok := item.(map[string]any)
		if !ok {
			continue
		}
		out = append(out, NewsItem{
			ID:          feed.String(rec, "id"),
			Headline:    feed.String(rec, "headline"),
			Description: feed.String(rec, "description"),
		})
	}
	return out
}

// ParseOvers returns the "overs" array; anything else is an empty list.
func ParseOvers(body []byte) []feed.Record {
	root, ok := feed.Decode(body)
	if !ok {
		return []feed.Record{}
	}
	items, _ := root["overs"].([]any)
	out := make([]feed.Record, 0, len(items))
	for _, item := range items {
		if rec, ok := item.(map[string]any); ok {
			out = append(out, rec)
		}
	}
	return out
}

func summaries(items []any) []Summary {
	out := make([]Summary, 0, len(items))
	for _, item := range items {
		rec, ok := item.(map[string]any)
		if !ok {
			continue
		}
		out = append(out, summary(rec))
	}
	return out
}

func summary(rec feed.Record) Summary {
	info := feed.Object(rec, "matchInfo")
	if info == nil {
		info = rec
	}

	id := feed.String(rec, "id")
	if id == "" {
		id = feed.String(info, "matchId")
	}

	s := Summary{
		ID:          id,
		Series:      feed.String(info, "seriesName"),
		Description: feed.String(info, "matchDesc"),
		Format:      feed.String(info, "matchFormat"),
		StartDate:   feed.String(info, "startDate"),
		State:       feed.String(info, "state"),
		Status:      feed.String(info, "status"),
		Team1:       team(feed.Object(info, "team1")),
		Team2:       team(feed.Object(info, "team2")),
		Venue: Venue{
			Ground: feed.String(info, "venueInfo", "ground"),
			City:   feed.String(info, "venueInfo", "city"),
		},
	}
	if s.State == "" {
		s.State = feed.String(rec, "state")
	}

	score := feed.Object(rec, "matchScore")
	s.Team1Score = innings(feed.Object(score, "team1Score"))
	s.Team2Score = innings(feed.Object(score, "team2Score"))
	return s
}

func team(rec feed.Record) Team {
	return Team{
		ID:        feed.String(rec, "teamId"),
		Name:      feed.String(rec, "teamName"),
		ShortName: feed.String(rec, "teamSName"),
	}
}

// innings orders inngs1, inngs2, ... by key.
func innings(rec feed.Record) []Innings {
	if len(rec) == 0 {
		return nil
	}
	keys := make([]string, 0, len(rec))
	for key := range rec {
		if strings.HasPrefix(key, "inngs") {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)

	out := make([]Innings, 0, len(keys))
	for _, key := range keys {
		inn := feed.Object(rec, key)
		if inn == nil {
			continue
		}
		runs, _ := feed.Int(inn, "runs")
		wickets, _ := feed.Int(inn, "wickets")
		out = append(out, Innings{
			Runs:    runs,
			Wickets: wickets,
			Overs:   feed.String(inn, "overs"),
		})
	}
	return out
}
