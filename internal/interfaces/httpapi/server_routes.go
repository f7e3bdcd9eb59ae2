package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler, swaggerEnabled bool) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
	if !swaggerEnabled {
		return
	}

	mux.HandleFunc("GET /openapi.yaml", handler.OpenAPI)
	mux.HandleFunc("GET /docs", handler.SwaggerUI)
	mux.HandleFunc("GET /docs/", handler.SwaggerUI)
}

// registerPageRoutes wires the six dashboard destinations.
func registerPageRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /{$}", handler.OverviewPage)
	mux.HandleFunc("GET /champions", handler.ChampionsPage)
	mux.HandleFunc("GET /groups", handler.GroupsPage)
	mux.HandleFunc("GET /matches", handler.MatchesPage)
	mux.HandleFunc("GET /players", handler.PlayersPage)
	mux.HandleFunc("GET /analysis", handler.AnalysisPage)
}

func registerAPIRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/overview", handler.GetOverview)
	mux.HandleFunc("GET /v1/champions", handler.GetChampions)
	mux.HandleFunc("GET /v1/teams", handler.ListTeams)
	mux.HandleFunc("GET /v1/teams/{team}/squad", handler.GetTeamSquad)
	mux.HandleFunc("GET /v1/team-stats", handler.ListTeamStats)
	mux.HandleFunc("GET /v1/standings", handler.ListStandings)
	mux.HandleFunc("GET /v1/standings/{group}", handler.GetGroupStandings)
	mux.HandleFunc("GET /v1/players/stats", handler.ListPlayerStats)
	mux.HandleFunc("GET /v1/players/top-scorers", handler.ListTopScorers)
	mux.HandleFunc("GET /v1/players/top-assists", handler.ListTopAssists)
	mux.HandleFunc("GET /v1/players/most-valuable", handler.ListMostValuable)
	mux.HandleFunc("GET /v1/matches", handler.ListMatches)
	mux.HandleFunc("GET /v1/matches/stats", handler.GetMatchStats)
	mux.HandleFunc("GET /v1/matches/{matchID}", handler.GetMatchDetails)
	mux.HandleFunc("GET /v1/charts", handler.ListCharts)
	mux.HandleFunc("GET /v1/charts/{chart}", handler.GetChart)
	mux.HandleFunc("GET /v1/datasets", handler.ListDatasets)
}
