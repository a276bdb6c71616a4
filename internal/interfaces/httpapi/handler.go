package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/match-tracker/internal/domain/feed"
	"github.com/riskibarqy/match-tracker/internal/domain/sport"
	"github.com/riskibarqy/match-tracker/internal/platform/logging"
	"github.com/riskibarqy/match-tracker/internal/usecase"
)

const rootBanner = "Sports Match Tracker API is running"

type Handler struct {
	matchService   *usecase.MatchService
	cricketService *usecase.CricketService
	cacheService   *usecase.CacheService
	defaultSport   sport.Sport
	logger         *logging.Logger
	validator      *validator.Validate
}

func NewHandler(
	matchService *usecase.MatchService,
	cricketService *usecase.CricketService,
	cacheService *usecase.CacheService,
	defaultSport sport.Sport,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	if !defaultSport.Valid() {
		defaultSport = sport.Football
	}

	v := validator.New()
	_ = v.RegisterValidation("season", func(fl validator.FieldLevel) bool {
		return sport.ValidSeason(fl.Field().String())
	})

	return &Handler{
		matchService:   matchService,
		cricketService: cricketService,
		cacheService:   cacheService,
		defaultSport:   defaultSport,
		logger:         logger,
		validator:      v,
	}
}

type matchQuery struct {
	SportType string `validate:"omitempty,oneof=football basketball cricket"`
	Season    string
}

func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Root")
	defer span.End()

	writeText(ctx, w, http.StatusOK, rootBanner)
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeJSON(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) ListMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMatches")
	defer span.End()

	q, err := h.parseMatchQuery(ctx, r)
	if err != nil {
		writeError(ctx, w, "Failed to fetch matches", err)
		return
	}
	result, err := h.matchService.UpcomingMatches(ctx, q.sport)
	h.respond(ctx, w, result, err, "Failed to fetch matches")
}

func (h *Handler) GetMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMatch")
	defer span.End()

	q, err := h.parseMatchQuery(ctx, r)
	if err != nil {
		writeError(ctx, w, "Failed to fetch match details", err)
		return
	}
	result, err := h.matchService.Match(ctx, q.sport, r.PathValue("matchID"))
	h.respond(ctx, w, result, err, "Failed to fetch match details")
}

func (h *Handler) GetHeadToHead(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetHeadToHead")
	defer span.End()

	q, err := h.parseMatchQuery(ctx, r)
	if err != nil {
		writeError(ctx, w, "Failed to fetch head-to-head statistics", err)
		return
	}
	result, err := h.matchService.HeadToHead(ctx, q.sport, r.PathValue("team1ID"), r.PathValue("team2ID"))
	h.respond(ctx, w, result, err, "Failed to fetch head-to-head statistics")
}

func (h *Handler) ListTodayMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTodayMatches")
	defer span.End()

	q, err := h.parseMatchQuery(ctx, r)
	if err != nil {
		writeError(ctx, w, "Failed to fetch today's matches", err)
		return
	}
	result, err := h.matchService.TodayMatches(ctx, q.sport)
	h.respond(ctx, w, result, err, "Failed to fetch today's matches")
}

func (h *Handler) ListPreviousMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPreviousMatches")
	defer span.End()

	q, err := h.parseMatchQuery(ctx, r)
	if err != nil {
		writeError(ctx, w, "Failed to fetch previous matches", err)
		return
	}
	result, err := h.matchService.PreviousMatches(ctx, q.sport)
	h.respond(ctx, w, result, err, "Failed to fetch previous matches")
}

func (h *Handler) ListCompetitionMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListCompetitionMatches")
	defer span.End()

	q, err := h.parseMatchQuery(ctx, r)
	if err != nil {
		writeError(ctx, w, "Failed to fetch competition matches", err)
		return
	}
	result, err := h.matchService.CompetitionMatches(ctx, q.sport, competitionCode(r), q.season)
	h.respond(ctx, w, result, err, "Failed to fetch competition matches")
}

func (h *Handler) GetCompetitionStandings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetCompetitionStandings")
	defer span.End()

	q, err := h.parseMatchQuery(ctx, r)
	if err != nil {
		writeError(ctx, w, "Failed to fetch competition standings", err)
		return
	}
	result, err := h.matchService.Standings(ctx, q.sport, competitionCode(r), q.season)
	h.respond(ctx, w, result, err, "Failed to fetch competition standings")
}

func (h *Handler) GetCompetitionScorers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetCompetitionScorers")
	defer span.End()

	q, err := h.parseMatchQuery(ctx, r)
	if err != nil {
		writeError(ctx, w, "Failed to fetch competition scorers", err)
		return
	}
	result, err := h.matchService.Scorers(ctx, q.sport, competitionCode(r), q.season)
	h.respond(ctx, w, result, err, "Failed to fetch competition scorers")
}

func (h *Handler) GetTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeam")
	defer span.End()

	q, err := h.parseMatchQuery(ctx, r)
	if err != nil {
		writeError(ctx, w, "Failed to fetch team details", err)
		return
	}
	result, err := h.matchService.Team(ctx, q.sport, r.PathValue("teamID"))
	h.respond(ctx, w, result, err, "Failed to fetch team details")
}

func (h *Handler) ListCricketMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListCricketMatches")
	defer span.End()

	result, err := h.cricketService.Matches(ctx)
	h.respond(ctx, w, result, err, "Failed to fetch cricket matches")
}

func (h *Handler) ListPreviousCricketMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPreviousCricketMatches")
	defer span.End()

	result, err := h.cricketService.RecentMatches(ctx)
	h.respond(ctx, w, result, err, "Failed to fetch previous cricket matches")
}

func (h *Handler) ListIPLMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListIPLMatches")
	defer span.End()

	result, err := h.cricketService.IPLMatches(ctx)
	h.respond(ctx, w, result, err, "Failed to fetch IPL cricket matches")
}

func (h *Handler) GetCricketMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetCricketMatch")
	defer span.End()

	result, err := h.cricketService.MatchInfo(ctx, r.PathValue("matchID"))
	h.respond(ctx, w, result, err, "Failed to fetch cricket match details")
}

func (h *Handler) GetCricketScorecard(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetCricketScorecard")
	defer span.End()

	result, err := h.cricketService.Scorecard(ctx, r.PathValue("matchID"))
	h.respond(ctx, w, result, err, "Failed to fetch cricket scorecard")
}

func (h *Handler) GetCricketCommentary(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetCricketCommentary")
	defer span.End()

	result, err := h.cricketService.Commentary(ctx, r.PathValue("matchID"))
	h.respond(ctx, w, result, err, "Failed to fetch cricket commentary")
}

// GetCricketOvers takes the match id as a query parameter.
func (h *Handler) GetCricketOvers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetCricketOvers")
	defer span.End()

	result, err := h.cricketService.Overs(ctx, r.URL.Query().Get("matchId"))
	h.respond(ctx, w, result, err, "Failed to fetch cricket overs")
}

func (h *Handler) ListCricketSeries(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListCricketSeries")
	defer span.End()

	result, err := h.cricketService.Series(ctx)
	h.respond(ctx, w, result, err, "Failed to fetch cricket series")
}

func (h *Handler) ListCricketNews(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListCricketNews")
	defer span.End()

	result, err := h.cricketService.News(ctx)
	h.respond(ctx, w, result, err, "Failed to fetch cricket news")
}

func (h *Handler) ClearCache(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ClearCache")
	defer span.End()

	if err := h.cacheService.Clear(ctx); err != nil {
		h.logger.ErrorContext(ctx, "clear cache failed", "error", err)
		writeError(ctx, w, "Failed to clear cache", err)
		return
	}
	writeJSON(ctx, w, http.StatusOK, map[string]string{"message": "Cache cleared"})
}

type resolvedQuery struct {
	sport  sport.Sport
	season string
}

func (h *Handler) parseMatchQuery(ctx context.Context, r *http.Request) (resolvedQuery, error) {
	values := r.URL.Query()
	raw := matchQuery{
		SportType: strings.ToLower(strings.TrimSpace(values.Get("sportType"))),
		Season:    strings.TrimSpace(values.Get("season")),
	}
	if err := h.validator.StructCtx(ctx, raw); err != nil {
		return resolvedQuery{}, fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	sp, err := sport.Parse(raw.SportType, h.defaultSport)
	if err != nil {
		return resolvedQuery{}, fmt.Errorf("%w: %v", usecase.ErrInvalidInput, err)
	}
	// Only api-basketball takes a season; football ignores it.
	if sp == sport.Basketball {
		if err := h.validator.VarCtx(ctx, raw.Season, "omitempty,season"); err != nil {
			return resolvedQuery{}, fmt.Errorf("%w: season must look like 2023-2024", usecase.ErrInvalidInput)
		}
	}
	return resolvedQuery{sport: sp, season: raw.Season}, nil
}

func (h *Handler) respond(ctx context.Context, w http.ResponseWriter, result feed.Result, err error, message string) {
	if err != nil {
		if usecase.IsCallerError(err) {
			h.logger.WarnContext(ctx, strings.ToLower(message), "error", err)
		} else {
			h.logger.ErrorContext(ctx, strings.ToLower(message), "error", err)
		}
		writeError(ctx, w, message, err)
		return
	}
	writeResult(ctx, w, result)
}

func competitionCode(r *http.Request) string {
	return strings.ToUpper(strings.TrimSpace(r.PathValue("code")))
}
