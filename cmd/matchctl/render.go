package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/riskibarqy/match-tracker/internal/domain/cricket"
	"github.com/riskibarqy/match-tracker/internal/domain/feed"
	"github.com/riskibarqy/match-tracker/internal/domain/match"
	"github.com/riskibarqy/match-tracker/internal/domain/standing"
	"github.com/riskibarqy/match-tracker/internal/store"
)

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

// renderBanner prints the store's error and offline flags above a listing.
func renderBanner(w io.Writer, errMsg string, offline bool) {
	if errMsg != "" {
		fmt.Fprintf(w, "! %s\n", errMsg)
	}
	if offline {
		fmt.Fprintln(w, "! showing offline data")
	}
}

func renderMatches(w io.Writer, matches []match.Match, loc *time.Location) {
	if len(matches) == 0 {
		fmt.Fprintln(w, "No matches found.")
		return
	}
	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tDATE\tCOMPETITION\tHOME\tSCORE\tAWAY\tSTATUS")
	for _, m := range matches {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			m.ID, match.FormatDate(m.Date, loc), m.Competition,
			m.HomeTeam, scoreLine(m.Score), m.AwayTeam, m.Badge())
	}
	tw.Flush()
}

func renderMatch(w io.Writer, m match.Match, loc *time.Location) {
	fmt.Fprintf(w, "%s vs %s\n", m.HomeTeam, m.AwayTeam)
	fmt.Fprintf(w, "  Competition: %s\n", m.Competition)
	fmt.Fprintf(w, "  Date:        %s\n", match.FormatDate(m.Date, loc))
	fmt.Fprintf(w, "  Status:      %s [%s]\n", m.Status, m.Badge())
	fmt.Fprintf(w, "  Score:       %s\n", scoreLine(m.Score))
}

func scoreLine(s match.Score) string {
	if s.Home == nil && s.Away == nil {
		return "-"
	}
	return side(s.Home) + " - " + side(s.Away)
}

func side(n *int) string {
	if n == nil {
		return "?"
	}
	return strconv.Itoa(*n)
}

func renderStandings(w io.Writer, table standing.Table) {
	if table.Empty() {
		fmt.Fprintln(w, "No standings available.")
		return
	}
	for i, g := range table.Groups {
		if i > 0 {
			fmt.Fprintln(w)
		}
		if g.Name != "" {
			fmt.Fprintln(w, g.Name)
		}
		tw := newTable(w)
		switch table.Kind {
		case standing.KindBasketball:
			fmt.Fprintln(tw, "#\tTEAM\tP\tW\tL\tPCT")
			for _, r := range g.Rows {
				fmt.Fprintf(tw, "%d\t%s\t%d\t%d\t%d\t%s\n", r.Position, r.Team, r.Played, r.Won, r.Lost, r.WinPercentage)
			}
		default:
			fmt.Fprintln(tw, "#\tTEAM\tP\tW\tD\tL\tGD\tPTS")
			for _, r := range g.Rows {
				fmt.Fprintf(tw, "%d\t%s\t%d\t%d\t%d\t%d\t%d\t%d\n",
					r.Position, r.Team, r.Played, r.Won, r.Draw, r.Lost, r.GoalDifference, r.Points)
			}
		}
		tw.Flush()
	}
}

func renderScorers(w io.Writer, scorers []store.Scorer) {
	if len(scorers) == 0 {
		fmt.Fprintln(w, "No scorers available.")
		return
	}
	tw := newTable(w)
	fmt.Fprintln(tw, "#\tPLAYER\tTEAM\tGOALS")
	for i, s := range scorers {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%d\n", i+1, s.Player, s.Team, s.Goals)
	}
	tw.Flush()
}

func renderCricketMatches(w io.Writer, matches []cricket.Summary) {
	if len(matches) == 0 {
		fmt.Fprintln(w, "No matches found.")
		return
	}
	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tSERIES\tMATCH\tSTATE\tSTATUS")
	for _, m := range matches {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", m.ID, m.Series, m.Title(), m.State, m.Status)
	}
	tw.Flush()
}

func renderCricketDetail(w io.Writer, st store.CricketState) {
	if st.CurrentMatch == nil {
		fmt.Fprintln(w, "Match not found.")
		return
	}
	m := st.CurrentMatch
	fmt.Fprintln(w, m.Title())
	fmt.Fprintf(w, "  %s, %s (%s)\n", m.Series, m.Description, m.Format)
	if m.Venue.Ground != "" {
		fmt.Fprintf(w, "  Venue:  %s, %s\n", m.Venue.Ground, m.Venue.City)
	}
	fmt.Fprintf(w, "  State:  %s\n", st.CurrentState)
	fmt.Fprintf(w, "  Status: %s\n", m.Status)
	fmt.Fprintf(w, "  %s: %s\n", teamLabel(m.Team1), inningsLine(m.Team1Score))
	fmt.Fprintf(w, "  %s: %s\n", teamLabel(m.Team2), inningsLine(m.Team2Score))
	if text := feed.String(st.Commentary, "commentary"); text != "" {
		fmt.Fprintf(w, "  Commentary: %s\n", text)
	}
	fmt.Fprintf(w, "  Overs tracked: %d\n", len(st.Overs))
}

func teamLabel(t cricket.Team) string {
	if t.ShortName != "" {
		return t.ShortName
	}
	if t.Name != "" {
		return t.Name
	}
	return "TBD"
}

func inningsLine(innings []cricket.Innings) string {
	if len(innings) == 0 {
		return "yet to bat"
	}
	parts := make([]string, 0, len(innings))
	for _, inn := range innings {
		parts = append(parts, inn.String())
	}
	return strings.Join(parts, " & ")
}

func renderSeries(w io.Writer, series []cricket.SeriesItem) {
	if len(series) == 0 {
		fmt.Fprintln(w, "No series found.")
		return
	}
	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tNAME\tSTART\tEND")
	for _, s := range series {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", s.ID, s.Name, s.StartDate, s.EndDate)
	}
	tw.Flush()
}

func renderNews(w io.Writer, news []cricket.NewsItem) {
	if len(news) == 0 {
		fmt.Fprintln(w, "No news found.")
		return
	}
	for _, n := range news {
		fmt.Fprintf(w, "* %s\n", n.Headline)
		if n.Description != "" {
			fmt.Fprintf(w, "  %s\n", n.Description)
		}
	}
}
