package httpapi

import (
	"net/http"

	"github.com/riskibarqy/match-tracker/internal/platform/metrics"
)

func registerSystemRoutes(mux *http.ServeMux, handler *Handler, recorder *metrics.Recorder, metricsEnabled bool) {
	mux.HandleFunc("GET /{$}", handler.Root)
	mux.HandleFunc("GET /healthz", handler.Healthz)
	if metricsEnabled && recorder != nil {
		mux.Handle("GET /metrics", recorder.Handler())
	}
}

func registerMatchRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /api/matches", handler.ListMatches)
	mux.HandleFunc("GET /api/matches/today/all", handler.ListTodayMatches)
	mux.HandleFunc("GET /api/matches/previous", handler.ListPreviousMatches)
	mux.HandleFunc("GET /api/matches/head-to-head/{team1ID}/{team2ID}", handler.GetHeadToHead)
	mux.HandleFunc("GET /api/matches/competitions/{code}/all", handler.ListCompetitionMatches)
	mux.HandleFunc("GET /api/matches/competitions/{code}/standings", handler.GetCompetitionStandings)
	mux.HandleFunc("GET /api/matches/competitions/{code}/scorers", handler.GetCompetitionScorers)
	mux.HandleFunc("GET /api/matches/{matchID}", handler.GetMatch)
}

func registerTeamRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /api/teams/{teamID}", handler.GetTeam)
}

func registerCricketRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /api/cricket/matches", handler.ListCricketMatches)
	mux.HandleFunc("GET /api/cricket/matches/list", handler.ListCricketMatches)
	mux.HandleFunc("GET /api/cricket/matches/previous", handler.ListPreviousCricketMatches)
	mux.HandleFunc("GET /api/cricket/matches/ipl", handler.ListIPLMatches)
	mux.HandleFunc("GET /api/cricket/matches/get-overs", handler.GetCricketOvers)
	mux.HandleFunc("GET /api/cricket/matches/{matchID}", handler.GetCricketMatch)
	mux.HandleFunc("GET /api/cricket/matches/{matchID}/scorecard", handler.GetCricketScorecard)
	mux.HandleFunc("GET /api/cricket/matches/{matchID}/commentary", handler.GetCricketCommentary)
	mux.HandleFunc("GET /api/cricket/series", handler.ListCricketSeries)
	mux.HandleFunc("GET /api/cricket/news", handler.ListCricketNews)
}

func registerAdminRoutes(mux *http.ServeMux, handler *Handler, adminToken string) {
	mux.Handle("DELETE /api/cache", RequireAdminToken(adminToken, http.HandlerFunc(handler.ClearCache)))
}
