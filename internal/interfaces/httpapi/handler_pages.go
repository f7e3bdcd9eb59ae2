package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/riskibarqy/afcon-dashboard/internal/domain/fixture"
	"github.com/riskibarqy/afcon-dashboard/internal/domain/player"
	"github.com/riskibarqy/afcon-dashboard/internal/domain/playerstats"
	"github.com/riskibarqy/afcon-dashboard/internal/domain/standing"
	"github.com/riskibarqy/afcon-dashboard/internal/domain/team"
	"github.com/riskibarqy/afcon-dashboard/internal/domain/teamstats"
	"github.com/riskibarqy/afcon-dashboard/internal/usecase"
)

const overviewTopTeams = 10

type chartSpec struct {
	Title   string
	Request usecase.ChartRequest
}

type overviewBody struct {
	Overview usecase.Overview
}

type groupView struct {
	Label    string
	Summary  teamstats.GroupSummary
	Rows     []standing.Row
	Fixtures []fixture.Match
}

type groupsBody struct {
	Groups []groupView
}

type matchesBody struct {
	Phase    string
	Phases   []string
	Matches  []fixture.Match
	Stats    usecase.MatchStats
	Details  *fixture.Details
	Selected int
}

type playersBody struct {
	Position     string
	Team         string
	Top          int
	TopOptions   []int
	Positions    []string
	Teams        []string
	Summary      playerstats.Summary
	Page         usecase.Page[playerstats.Statistic]
	MostValuable []player.Player
	PrevURL      string
	NextURL      string
}

type analysisBody struct {
	Teams    []string
	Selected []string
	Team     string
	Profiles []teamstats.Aggregate
}

func (h *Handler) OverviewPage(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.OverviewPage")
	defer span.End()

	overview, err := h.overviewService.Get(ctx)
	if err != nil {
		h.renderPageError(ctx, w, err)
		return
	}
	charts, err := h.buildCharts(ctx,
		chartSpec{Title: "Squad values", Request: usecase.ChartRequest{Name: usecase.ChartTeamValues, TopN: overviewTopTeams}},
		chartSpec{Title: "Goals scored", Request: usecase.ChartRequest{Name: usecase.ChartGoalsByTeam}},
		chartSpec{Title: "Clubs", Request: usecase.ChartRequest{Name: usecase.ChartLeagueDistribution}},
		chartSpec{Title: "Positions", Request: usecase.ChartRequest{Name: usecase.ChartPositionDistribution}},
	)
	if err != nil {
		h.renderPageError(ctx, w, err)
		return
	}

	h.renderPage(ctx, w, pageOverview, "Overview", charts, overviewBody{Overview: overview})
}

func (h *Handler) ChampionsPage(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ChampionsPage")
	defer span.End()

	champions, err := h.historyService.Champions(ctx)
	if err != nil {
		h.renderPageError(ctx, w, err)
		return
	}

	h.renderPage(ctx, w, pageChampions, "Champions", nil, champions)
}

func (h *Handler) GroupsPage(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GroupsPage")
	defer span.End()

	matches, err := h.matchService.List(ctx, fixture.PhaseGroupStage)
	if err != nil {
		h.renderPageError(ctx, w, err)
		return
	}
	fixturesByGroup := make(map[string][]fixture.Match, len(team.Groups))
	for _, item := range usecase.ByGroup(matches) {
		fixturesByGroup[item.Group] = item.Matches
	}

	groups := make([]groupView, 0, len(team.Groups))
	for _, label := range team.Groups {
		rows, err := h.aggregationService.GetGroupStandings(ctx, label)
		if err != nil {
			h.renderPageError(ctx, w, err)
			return
		}
		summary, err := h.aggregationService.GroupSummary(ctx, label)
		if err != nil {
			h.renderPageError(ctx, w, err)
			return
		}
		groups = append(groups, groupView{
			Label:    label,
			Summary:  summary,
			Rows:     rows,
			Fixtures: fixturesByGroup[label],
		})
	}

	charts, err := h.buildCharts(ctx,
		chartSpec{Title: "Group comparison", Request: usecase.ChartRequest{Name: usecase.ChartGroupComparison}},
	)
	if err != nil {
		h.renderPageError(ctx, w, err)
		return
	}

	h.renderPage(ctx, w, pageGroups, "Groups", charts, groupsBody{Groups: groups})
}

func (h *Handler) MatchesPage(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.MatchesPage")
	defer span.End()

	values := r.URL.Query()
	q := matchQuery{Phase: strings.TrimSpace(values.Get("phase"))}
	if err := h.validateRequest(ctx, q); err != nil {
		h.renderPageError(ctx, w, err)
		return
	}
	selected, err := queryInt(values, "match")
	if err != nil {
		h.renderPageError(ctx, w, err)
		return
	}

	matches, err := h.matchService.List(ctx, q.Phase)
	if err != nil {
		h.renderPageError(ctx, w, err)
		return
	}
	phases, err := h.matchService.Phases(ctx)
	if err != nil {
		h.renderPageError(ctx, w, err)
		return
	}
	phase, _ := usecase.NormalizePhase(q.Phase)

	body := matchesBody{
		Phase:    phase,
		Phases:   phases,
		Matches:  matches,
		Stats:    usecase.ComputeMatchStats(matches),
		Selected: selected,
	}
	if selected != 0 {
		details, err := h.matchService.Get(ctx, selected)
		if err != nil {
			h.renderPageError(ctx, w, err)
			return
		}
		body.Details = &details
	}

	h.renderPage(ctx, w, pageMatches, "Matches", nil, body)
}

func (h *Handler) PlayersPage(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.PlayersPage")
	defer span.End()

	q, err := h.parsePlayerQuery(ctx, r.URL.Query())
	if err != nil {
		h.renderPageError(ctx, w, err)
		return
	}
	filter := q.filter()

	page, err := h.playerService.ListStatistics(ctx, filter, q.pageRequest())
	if err != nil {
		h.renderPageError(ctx, w, err)
		return
	}
	summary, err := h.playerService.Summary(ctx, filter)
	if err != nil {
		h.renderPageError(ctx, w, err)
		return
	}
	mostValuable, err := h.playerService.MostValuable(ctx, filter)
	if err != nil {
		h.renderPageError(ctx, w, err)
		return
	}
	positions, err := h.playerService.Positions(ctx)
	if err != nil {
		h.renderPageError(ctx, w, err)
		return
	}
	teams, err := h.teamNames(ctx)
	if err != nil {
		h.renderPageError(ctx, w, err)
		return
	}

	chartRequest := func(name string) usecase.ChartRequest {
		return usecase.ChartRequest{Name: name, TopN: q.Top, Position: q.Position, Team: q.Team}
	}
	charts, err := h.buildCharts(ctx,
		chartSpec{Title: "Top scorers", Request: chartRequest(usecase.ChartTopScorers)},
		chartSpec{Title: "Top assists", Request: chartRequest(usecase.ChartTopAssists)},
		chartSpec{Title: "Ages", Request: usecase.ChartRequest{Name: usecase.ChartAgeDistribution}},
		chartSpec{Title: "Market values", Request: usecase.ChartRequest{Name: usecase.ChartValueDistribution}},
	)
	if err != nil {
		h.renderPageError(ctx, w, err)
		return
	}

	top := q.Top
	if top == 0 {
		top = usecase.DefaultTopN
	}
	body := playersBody{
		Position:     q.Position,
		Team:         q.Team,
		Top:          top,
		TopOptions:   []int{usecase.MinTopN, 10, usecase.DefaultTopN, 20, 25, usecase.MaxTopN},
		Positions:    positions,
		Teams:        teams,
		Summary:      summary,
		Page:         page,
		MostValuable: mostValuable,
	}
	if page.HasPrev() {
		body.PrevURL = playersURL(q, page.PrevPage())
	}
	if page.HasNext() {
		body.NextURL = playersURL(q, page.NextPage())
	}

	h.renderPage(ctx, w, pagePlayers, "Players", charts, body)
}

func playersURL(q playerQuery, page int) string {
	values := url.Values{}
	if q.Position != "" {
		values.Set("position", q.Position)
	}
	if q.Team != "" {
		values.Set("team", q.Team)
	}
	if q.Top != 0 {
		values.Set("top", strconv.Itoa(q.Top))
	}
	values.Set("page", strconv.Itoa(page))
	return "/players?" + values.Encode()
}

func (h *Handler) AnalysisPage(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AnalysisPage")
	defer span.End()

	values := r.URL.Query()
	q := analysisQuery{
		Team:  strings.TrimSpace(values.Get("team")),
		Teams: queryList(values, "teams"),
	}
	if err := h.validateRequest(ctx, q); err != nil {
		h.renderPageError(ctx, w, err)
		return
	}

	selected, err := h.chartService.RadarSelection(ctx, q.Teams)
	if err != nil {
		h.renderPageError(ctx, w, err)
		return
	}
	if q.Team == "" && len(selected) > 0 {
		q.Team = selected[0]
	}
	teams, err := h.teamNames(ctx)
	if err != nil {
		h.renderPageError(ctx, w, err)
		return
	}
	rows, err := h.aggregationService.AggregateTeamStats(ctx)
	if err != nil {
		h.renderPageError(ctx, w, err)
		return
	}
	profiles := make([]teamstats.Aggregate, 0, len(selected))
	for _, name := range selected {
		if row, ok := teamstats.Find(rows, name); ok {
			profiles = append(profiles, row)
		}
	}

	charts, err := h.buildCharts(ctx,
		chartSpec{Title: "Team profiles", Request: usecase.ChartRequest{Name: usecase.ChartTeamRadar, Teams: selected}},
		chartSpec{Title: "Form", Request: usecase.ChartRequest{Name: usecase.ChartPerformanceEvolution, Team: q.Team}},
		chartSpec{Title: "Value and performance", Request: usecase.ChartRequest{Name: usecase.ChartValueVsPerformance}},
		chartSpec{Title: "Age and value", Request: usecase.ChartRequest{Name: usecase.ChartAgeVsValue}},
		chartSpec{Title: "Correlations", Request: usecase.ChartRequest{Name: usecase.ChartCorrelation}},
		chartSpec{Title: "Squad value spread", Request: usecase.ChartRequest{Name: usecase.ChartValueBoxplot}},
	)
	if err != nil {
		h.renderPageError(ctx, w, err)
		return
	}

	h.renderPage(ctx, w, pageAnalysis, "Analysis", charts, analysisBody{
		Teams:    teams,
		Selected: selected,
		Team:     q.Team,
		Profiles: profiles,
	})
}

func (h *Handler) teamNames(ctx context.Context) ([]string, error) {
	teams, err := h.tournamentService.Teams(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(teams))
	for _, t := range teams {
		out = append(out, t.Name)
	}
	return out, nil
}

func (h *Handler) buildCharts(ctx context.Context, specs ...chartSpec) ([]chartView, error) {
	out := make([]chartView, 0, len(specs))
	for _, spec := range specs {
		figure, err := h.chartService.Build(ctx, spec.Request)
		if err != nil {
			return nil, err
		}
		view, err := encodeFigure("chart-"+spec.Request.Name, spec.Title, figure)
		if err != nil {
			return nil, err
		}
		out = append(out, view)
	}
	return out, nil
}

func (h *Handler) renderPage(ctx context.Context, w http.ResponseWriter, page, title string, charts []chartView, body any) {
	if err := h.pages.render(ctx, w, http.StatusOK, page, title, charts, body); err != nil {
		h.logger.ErrorContext(ctx, "render page failed", "page", page, "error", err)
		h.renderPageError(ctx, w, err)
	}
}

// renderPageError replaces the whole page with an error message. Dataset failures surface
// here once, as a 503.
func (h *Handler) renderPageError(ctx context.Context, w http.ResponseWriter, err error) {
	mapped := mapError(ctx, err)
	body := errorBody{Status: mapped.HTTPStatus}
	switch {
	case errors.Is(err, usecase.ErrDatasetUnavailable):
		h.logger.ErrorContext(ctx, "dataset unavailable", "error", err)
		body.Heading = "Data unavailable"
		body.Message = "The tournament data could not be loaded. Try again once the dataset store is reachable."
	case mapped.HTTPStatus == http.StatusBadRequest:
		body.Heading = "Invalid request"
		body.Message = err.Error()
	case mapped.HTTPStatus == http.StatusNotFound:
		body.Heading = "Not found"
		body.Message = err.Error()
	default:
		h.logger.ErrorContext(ctx, "page failed", "error", err)
		body.Heading = "Something went wrong"
		body.Message = "The page could not be rendered."
	}

	if renderErr := h.pages.render(ctx, w, body.Status, pageError, body.Heading, nil, body); renderErr != nil {
		h.logger.ErrorContext(ctx, "render error page failed", "error", renderErr)
		http.Error(w, fmt.Sprintf("%d %s", body.Status, body.Heading), body.Status)
	}
}
