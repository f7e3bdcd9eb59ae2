package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/riskibarqy/afcon-dashboard/internal/domain/team"
	"github.com/riskibarqy/afcon-dashboard/internal/usecase"
)

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) GetOverview(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetOverview")
	defer span.End()

	overview, err := h.overviewService.Get(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "get overview failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, overview)
}

func (h *Handler) GetChampions(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetChampions")
	defer span.End()

	champions, err := h.historyService.Champions(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, champions)
}

func (h *Handler) ListTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeams")
	defer span.End()

	teams, err := h.tournamentService.Teams(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list teams failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	if raw := strings.TrimSpace(r.URL.Query().Get("group")); raw != "" {
		label, ok := usecase.NormalizeGroup(raw)
		if !ok {
			writeError(ctx, w, fmt.Errorf("%w: group=%s", usecase.ErrNotFound, raw))
			return
		}
		teams = team.ByGroup(teams)[label]
	}

	writeSuccess(ctx, w, http.StatusOK, teams)
}

func (h *Handler) GetTeamSquad(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeamSquad")
	defer span.End()

	teamName := strings.TrimSpace(r.PathValue("team"))
	squad, err := h.tournamentService.Squad(ctx, teamName)
	if err != nil {
		h.logger.WarnContext(ctx, "get squad failed", "team", teamName, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, squad)
}

func (h *Handler) ListTeamStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeamStats")
	defer span.End()

	rows, err := h.aggregationService.AggregateTeamStats(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "aggregate team stats failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, rows)
}

func (h *Handler) ListStandings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListStandings")
	defer span.End()

	items := make([]groupStandingsDTO, 0, len(team.Groups))
	for _, group := range team.Groups {
		item, err := h.groupStandings(ctx, group)
		if err != nil {
			h.logger.ErrorContext(ctx, "list standings failed", "group", group, "error", err)
			writeError(ctx, w, err)
			return
		}
		items = append(items, item)
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetGroupStandings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetGroupStandings")
	defer span.End()

	group := strings.TrimSpace(r.PathValue("group"))
	item, err := h.groupStandings(ctx, group)
	if err != nil {
		h.logger.WarnContext(ctx, "get group standings failed", "group", group, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, item)
}

func (h *Handler) groupStandings(ctx context.Context, group string) (groupStandingsDTO, error) {
	rows, err := h.aggregationService.GetGroupStandings(ctx, group)
	if err != nil {
		return groupStandingsDTO{}, err
	}
	summary, err := h.aggregationService.GroupSummary(ctx, group)
	if err != nil {
		return groupStandingsDTO{}, err
	}
	return groupStandingsDTO{
		Group:   summary.Group,
		Summary: summary,
		Rows:    standingsToDTO(rows),
	}, nil
}

func (h *Handler) ListPlayerStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPlayerStats")
	defer span.End()

	q, err := h.parsePlayerQuery(ctx, r.URL.Query())
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	page, err := h.playerService.ListStatistics(ctx, q.filter(), q.pageRequest())
	if err != nil {
		h.logger.WarnContext(ctx, "list player stats failed", "position", q.Position, "team", q.Team, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, pageToDTO(page))
}

func (h *Handler) ListTopScorers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTopScorers")
	defer span.End()

	q, err := h.parsePlayerQuery(ctx, r.URL.Query())
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	items, err := h.playerService.TopScorers(ctx, q.filter())
	if err != nil {
		h.logger.WarnContext(ctx, "list top scorers failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) ListTopAssists(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTopAssists")
	defer span.End()

	q, err := h.parsePlayerQuery(ctx, r.URL.Query())
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	items, err := h.playerService.TopAssists(ctx, q.filter())
	if err != nil {
		h.logger.WarnContext(ctx, "list top assists failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) ListMostValuable(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMostValuable")
	defer span.End()

	q, err := h.parsePlayerQuery(ctx, r.URL.Query())
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	items, err := h.playerService.MostValuable(ctx, q.filter())
	if err != nil {
		h.logger.WarnContext(ctx, "list most valuable players failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) ListMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMatches")
	defer span.End()

	q := matchQuery{Phase: strings.TrimSpace(r.URL.Query().Get("phase"))}
	if err := h.validateRequest(ctx, q); err != nil {
		writeError(ctx, w, err)
		return
	}

	matches, err := h.matchService.List(ctx, q.Phase)
	if err != nil {
		h.logger.WarnContext(ctx, "list matches failed", "phase", q.Phase, "error", err)
		writeError(ctx, w, err)
		return
	}
	phases, err := h.matchService.Phases(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	phase, _ := usecase.NormalizePhase(q.Phase)

	writeSuccess(ctx, w, http.StatusOK, matchListDTO{
		Phase:   phase,
		Phases:  phases,
		Stats:   usecase.ComputeMatchStats(matches),
		Matches: matches,
	})
}

func (h *Handler) GetMatchStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMatchStats")
	defer span.End()

	stats, err := h.matchService.Stats(ctx, r.URL.Query().Get("phase"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, stats)
}

func (h *Handler) GetMatchDetails(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMatchDetails")
	defer span.End()

	raw := strings.TrimSpace(r.PathValue("matchID"))
	matchID, err := strconv.Atoi(raw)
	if err != nil {
		writeError(ctx, w, fmt.Errorf("%w: match id must be an integer", usecase.ErrInvalidInput))
		return
	}

	details, err := h.matchService.Get(ctx, matchID)
	if err != nil {
		h.logger.WarnContext(ctx, "get match details failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, details)
}

func (h *Handler) ListCharts(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListCharts")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, usecase.ChartNames)
}

func (h *Handler) GetChart(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetChart")
	defer span.End()

	req, err := h.parseChartQuery(ctx, strings.TrimSpace(r.PathValue("chart")), r.URL.Query())
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	figure, err := h.chartService.Build(ctx, req)
	if err != nil {
		h.logger.WarnContext(ctx, "build chart failed", "chart", req.Name, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, figure)
}

func (h *Handler) ListDatasets(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListDatasets")
	defer span.End()

	items, err := h.tournamentService.Datasets(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list datasets failed", "error", err)
		writeError(ctx, w, fmt.Errorf("%w: %v", usecase.ErrDatasetUnavailable, err))
		return
	}

	out := make([]datasetInfoDTO, 0, len(items))
	for _, item := range items {
		out = append(out, datasetInfoToDTO(item))
	}
	writeSuccess(ctx, w, http.StatusOK, out)
}
