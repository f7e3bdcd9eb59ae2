package httpapi

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/afcon-dashboard/internal/domain/dataset"
	"github.com/riskibarqy/afcon-dashboard/internal/domain/fixture"
	"github.com/riskibarqy/afcon-dashboard/internal/domain/standing"
	"github.com/riskibarqy/afcon-dashboard/internal/domain/teamstats"
	"github.com/riskibarqy/afcon-dashboard/internal/platform/logging"
	"github.com/riskibarqy/afcon-dashboard/internal/usecase"
)

type Handler struct {
	tournamentService  *usecase.TournamentService
	aggregationService *usecase.AggregationService
	playerService      *usecase.PlayerService
	matchService       *usecase.MatchService
	overviewService    *usecase.OverviewService
	historyService     *usecase.HistoryService
	chartService       *usecase.ChartService
	pages              *pageRenderer
	pageSize           int
	logger             *logging.Logger
	validator          *validator.Validate
}

func NewHandler(
	tournamentService *usecase.TournamentService,
	aggregationService *usecase.AggregationService,
	playerService *usecase.PlayerService,
	matchService *usecase.MatchService,
	overviewService *usecase.OverviewService,
	historyService *usecase.HistoryService,
	chartService *usecase.ChartService,
	pageSize int,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	if pageSize <= 0 {
		pageSize = usecase.DefaultPageSize
	}

	return &Handler{
		tournamentService:  tournamentService,
		aggregationService: aggregationService,
		playerService:      playerService,
		matchService:       matchService,
		overviewService:    overviewService,
		historyService:     historyService,
		chartService:       chartService,
		pages:              newPageRenderer(chartService.Theme()),
		pageSize:           pageSize,
		logger:             logger,
		validator:          validator.New(),
	}
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

type playerQuery struct {
	Position string `validate:"omitempty,oneof=Goalkeeper Defender Midfielder Forward"`
	Team     string `validate:"omitempty,max=80"`
	Top      int    `validate:"omitempty,min=5,max=30"`
	Page     int    `validate:"omitempty,min=1"`
	Size     int    `validate:"omitempty,min=1,max=100"`
}

type matchQuery struct {
	Phase string `validate:"omitempty,max=40"`
}

type chartQuery struct {
	Top      int      `validate:"omitempty,min=1,max=30"`
	Group    string   `validate:"omitempty,max=20"`
	Position string   `validate:"omitempty,oneof=Goalkeeper Defender Midfielder Forward"`
	Team     string   `validate:"omitempty,max=80"`
	Teams    []string `validate:"max=4,dive,required,max=80"`
}

type analysisQuery struct {
	Team  string   `validate:"omitempty,max=80"`
	Teams []string `validate:"max=4,dive,required,max=80"`
}

// queryInt reads an optional integer parameter; absent or blank means 0.
func queryInt(values url.Values, key string) (int, error) {
	raw := strings.TrimSpace(values.Get(key))
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer", usecase.ErrInvalidInput, key)
	}
	return v, nil
}

// queryList accepts repeated parameters and comma separated values alike.
func queryList(values url.Values, key string) []string {
	out := make([]string, 0, len(values[key]))
	for _, raw := range values[key] {
		for _, part := range strings.Split(raw, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

func (h *Handler) parsePlayerQuery(ctx context.Context, values url.Values) (playerQuery, error) {
	q := playerQuery{
		Position: strings.TrimSpace(values.Get("position")),
		Team:     strings.TrimSpace(values.Get("team")),
	}
	var err error
	if q.Top, err = queryInt(values, "top"); err != nil {
		return playerQuery{}, err
	}
	if q.Page, err = queryInt(values, "page"); err != nil {
		return playerQuery{}, err
	}
	if q.Size, err = queryInt(values, "size"); err != nil {
		return playerQuery{}, err
	}
	if err := h.validateRequest(ctx, q); err != nil {
		return playerQuery{}, err
	}
	if q.Page == 0 {
		q.Page = 1
	}
	if q.Size == 0 {
		q.Size = h.pageSize
	}
	return q, nil
}

func (q playerQuery) filter() usecase.PlayerFilter {
	return usecase.PlayerFilter{Position: q.Position, Team: q.Team, TopN: q.Top}
}

func (q playerQuery) pageRequest() usecase.PageRequest {
	return usecase.PageRequest{Page: q.Page, Size: q.Size}
}

func (h *Handler) parseChartQuery(ctx context.Context, name string, values url.Values) (usecase.ChartRequest, error) {
	q := chartQuery{
		Group:    strings.TrimSpace(values.Get("group")),
		Position: strings.TrimSpace(values.Get("position")),
		Team:     strings.TrimSpace(values.Get("team")),
		Teams:    queryList(values, "teams"),
	}
	var err error
	if q.Top, err = queryInt(values, "top"); err != nil {
		return usecase.ChartRequest{}, err
	}
	if err := h.validateRequest(ctx, q); err != nil {
		return usecase.ChartRequest{}, err
	}
	return usecase.ChartRequest{
		Name:     name,
		TopN:     q.Top,
		Group:    q.Group,
		Position: q.Position,
		Team:     q.Team,
		Teams:    q.Teams,
	}, nil
}

type standingRowDTO struct {
	Position       int     `json:"position"`
	TeamName       string  `json:"team_name"`
	Group          string  `json:"group"`
	MatchesPlayed  int     `json:"matches_played"`
	Wins           int     `json:"wins"`
	Draws          int     `json:"draws"`
	Losses         int     `json:"losses"`
	GoalsScored    int     `json:"goals_scored"`
	GoalsConceded  int     `json:"goals_conceded"`
	GoalDifference int     `json:"goal_difference"`
	Points         int     `json:"points"`
	SquadValue     float64 `json:"squad_value"`
}

type groupStandingsDTO struct {
	Group   string                 `json:"group"`
	Summary teamstats.GroupSummary `json:"summary"`
	Rows    []standingRowDTO       `json:"rows"`
}

type matchListDTO struct {
	Phase   string             `json:"phase"`
	Phases  []string           `json:"phases"`
	Stats   usecase.MatchStats `json:"stats"`
	Matches []fixture.Match    `json:"matches"`
}

type datasetInfoDTO struct {
	Name          string `json:"name"`
	SchemaVersion int    `json:"schema_version"`
	SeedVersion   int    `json:"seed_version"`
	Rows          int    `json:"rows"`
	GeneratedAt   string `json:"generated_at"`
	SizeBytes     int64  `json:"size_bytes"`
}

// pageDTO follows the Google JSON style paging fields.
type pageDTO[T any] struct {
	Items            []T `json:"items"`
	CurrentItemCount int `json:"currentItemCount"`
	ItemsPerPage     int `json:"itemsPerPage"`
	StartIndex       int `json:"startIndex"`
	TotalItems       int `json:"totalItems"`
	PageIndex        int `json:"pageIndex"`
	TotalPages       int `json:"totalPages"`
}

func standingToDTO(row standing.Row) standingRowDTO {
	return standingRowDTO{
		Position:       row.Position,
		TeamName:       row.TeamName,
		Group:          row.Group,
		MatchesPlayed:  row.MatchesPlayed,
		Wins:           row.Wins,
		Draws:          row.Draws,
		Losses:         row.Losses,
		GoalsScored:    row.GoalsScored,
		GoalsConceded:  row.GoalsConceded,
		GoalDifference: row.GoalDifference,
		Points:         row.Points,
		SquadValue:     row.SquadValue,
	}
}

func standingsToDTO(rows []standing.Row) []standingRowDTO {
	out := make([]standingRowDTO, 0, len(rows))
	for _, row := range rows {
		out = append(out, standingToDTO(row))
	}
	return out
}

func datasetInfoToDTO(v dataset.Info) datasetInfoDTO {
	return datasetInfoDTO{
		Name:          v.Key.Name,
		SchemaVersion: v.Key.SchemaVersion,
		SeedVersion:   v.Key.SeedVersion,
		Rows:          v.Rows,
		GeneratedAt:   formatOptionalTime(v.GeneratedAt),
		SizeBytes:     v.SizeBytes,
	}
}

func pageToDTO[T any](p usecase.Page[T]) pageDTO[T] {
	items := p.Items
	if items == nil {
		items = []T{}
	}
	return pageDTO[T]{
		Items:            items,
		CurrentItemCount: len(items),
		ItemsPerPage:     p.Size,
		StartIndex:       p.Offset() + 1,
		TotalItems:       p.TotalItems,
		PageIndex:        p.Page,
		TotalPages:       p.TotalPages,
	}
}

func formatOptionalTime(v time.Time) string {
	if v.IsZero() {
		return ""
	}
	return v.UTC().Format(time.RFC3339)
}
