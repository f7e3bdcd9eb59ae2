package visualization

import (
	"math"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/riskibarqy/afcon-dashboard/internal/domain/fixture"
	"github.com/riskibarqy/afcon-dashboard/internal/domain/player"
	"github.com/riskibarqy/afcon-dashboard/internal/domain/playerstats"
	"github.com/riskibarqy/afcon-dashboard/internal/domain/team"
	"github.com/riskibarqy/afcon-dashboard/internal/domain/teamstats"
	"github.com/stretchr/testify/require"
)

func sampleRows() []teamstats.Aggregate {
	return []teamstats.Aggregate{
		{TeamName: "Morocco", Group: "Group A", SquadValue: 487_200_000, AvgAge: 27.1, GoalsScored: 4, GoalsConceded: 0, Wins: 2, Points: 7},
		{TeamName: "Mali", Group: "Group A", SquadValue: 124_500_000, AvgAge: 26.4, GoalsScored: 2, GoalsConceded: 3, Wins: 1, Points: 4},
		{TeamName: "Zambia", Group: "Group A", SquadValue: 22_100_000, AvgAge: 25.2, GoalsScored: 1, GoalsConceded: 4, Wins: 0, Points: 1},
		{TeamName: "Tanzania", Group: "Group A", SquadValue: 8_400_000, AvgAge: 24.9, GoalsScored: 1, GoalsConceded: 1, Wins: 0, Points: 1},
	}
}

func TestThemeByName(t *testing.T) {
	t.Parallel()

	dark, err := ThemeByName("")
	require.NoError(t, err)
	require.Equal(t, ThemeDark, dark.Name)

	light, err := ThemeByName("LIGHT")
	require.NoError(t, err)
	require.Equal(t, ThemeLight, light.Name)
	require.NotEqual(t, dark.FontColor, light.FontColor)

	_, err = ThemeByName("neon")
	require.Error(t, err)

	require.Equal(t, dark.Series[0], dark.SeriesColor(len(dark.Series)))
}

func TestBuilderAppliesTheme(t *testing.T) {
	t.Parallel()

	theme := LightTheme()
	fig := NewBuilder(theme).GoalsByTeam(sampleRows())

	require.Equal(t, theme.PlotBackground, fig.Layout.PlotBGColor)
	require.Equal(t, theme.TitleColor, fig.Layout.Title.Font.Color)
	require.Equal(t, theme.GridColor, fig.Layout.XAxis.GridColor)
	require.Equal(t, theme.Palette.Success, fig.Data[0].Marker.Color)
}

func TestTeamValuesTopN(t *testing.T) {
	t.Parallel()

	fig := NewBuilder(DarkTheme()).TeamValues(sampleRows(), 2)
	require.Len(t, fig.Data, 1)

	names := fig.Data[0].Y.([]string)
	require.Equal(t, []string{"Mali", "Morocco"}, names)
	require.Equal(t, []string{"€124.5M", "€487.2M"}, fig.Data[0].Text.([]string))
	require.Equal(t, minHeight, fig.Layout.Height)

	all := NewBuilder(DarkTheme()).TeamValues(sampleRows(), 0)
	require.Len(t, all.Data[0].Y.([]string), 4)
}

func TestLeaderboardSkipsZeroAndSortsAscending(t *testing.T) {
	t.Parallel()

	stats := []playerstats.Statistic{
		{PlayerName: "A", Team: "Egypt", Goals: 3},
		{PlayerName: "B", Team: "Ghana", Goals: 0},
		{PlayerName: "C", Team: "Mali", Goals: 5},
		{PlayerName: "D", Team: "Egypt", Goals: 1},
	}

	fig := NewBuilder(DarkTheme()).TopScorers(stats, 2)
	require.Equal(t, []string{"A (Egypt)", "C (Mali)"}, fig.Data[0].Y.([]string))
	require.Equal(t, []int{3, 5}, fig.Data[0].X.([]int))
	require.Equal(t, "Top 2 scorers", fig.Layout.Title.Text)
}

func TestLeagueDistributionGroupsOther(t *testing.T) {
	t.Parallel()

	clubs := []string{"Al Ahly", "Al Ahly", "Al Ahly", "La Liga", "La Liga", "Serie A", "Ligue 1", "Bundesliga", "MLS", "Saudi Pro League"}
	players := make([]player.Player, 0, len(clubs))
	for _, c := range clubs {
		players = append(players, player.Player{Club: c})
	}

	fig := NewBuilder(DarkTheme()).LeagueDistribution(players)
	trace := fig.Data[0]
	require.Equal(t, []string{"Al Ahly", "La Liga", "Serie A", "Ligue 1", "Bundesliga", otherCategory}, trace.Labels)
	require.Equal(t, []float64{3, 2, 1, 1, 1, 2}, trace.Values)
	require.Len(t, trace.Marker.Colors, 6)
}

func TestPositionDistribution(t *testing.T) {
	t.Parallel()

	stats := []playerstats.Statistic{
		{Position: player.PositionDefender},
		{Position: player.PositionGoalkeeper},
		{Position: player.PositionDefender},
	}
	fig := NewBuilder(DarkTheme()).PositionDistribution(stats)
	require.Equal(t, []string{"Defender", "Goalkeeper"}, fig.Data[0].Labels)
	require.Equal(t, []float64{2, 1}, fig.Data[0].Values)
}

func TestValueDistributionDropsZeroValues(t *testing.T) {
	t.Parallel()

	players := []player.Player{{MarketValue: 0}, {MarketValue: 2_500_000}}
	fig := NewBuilder(DarkTheme()).ValueDistribution(players)
	require.Equal(t, []float64{2.5}, fig.Data[0].X.([]float64))
}

func TestValueBoxplotOneTracePerTeam(t *testing.T) {
	t.Parallel()

	teams := []team.Team{{Name: "Egypt"}, {Name: "Ghana"}}
	squads := map[string][]player.Player{
		"Egypt": {{MarketValue: 1_000_000}, {MarketValue: 3_000_000}},
	}
	fig := NewBuilder(DarkTheme()).ValueBoxplot(teams, squads)
	require.Len(t, fig.Data, 2)
	require.Equal(t, "Egypt", fig.Data[0].Name)
	require.Equal(t, []float64{1, 3}, fig.Data[0].Y.([]float64))
	require.Empty(t, fig.Data[1].Y.([]float64))
	require.False(t, fig.Layout.ShowLegend)
}

func TestRadarProfileStaysInRange(t *testing.T) {
	t.Parallel()

	rows := sampleRows()
	for _, row := range rows {
		profile := RadarProfile(rows, row)
		require.Len(t, profile, len(RadarCategories))
		for _, v := range profile {
			if v < 0 || v > 100 {
				t.Fatalf("profile of %s out of range: %v", row.TeamName, profile)
			}
		}
	}

	morocco := RadarProfile(rows, rows[0])
	require.Equal(t, []float64{100, 100, 100, 100, 100}, morocco)

	zambia := RadarProfile(rows, rows[2])
	require.Equal(t, 0.0, zambia[2])
}

func TestRadarProfileBeforeKickoff(t *testing.T) {
	t.Parallel()

	rows := []teamstats.Aggregate{{TeamName: "A", SquadValue: 10}, {TeamName: "B", SquadValue: 5}}
	require.Equal(t, []float64{50, 0, 100, 0, 0}, RadarProfile(rows, rows[1]))
}

func TestTeamRadarSelection(t *testing.T) {
	t.Parallel()

	b := NewBuilder(DarkTheme())

	fig := b.TeamRadar(sampleRows(), []string{"Mali", "Atlantis", "Zambia"})
	require.Len(t, fig.Data, 2)
	require.Equal(t, "Mali", fig.Data[0].Name)
	require.Equal(t, []float64{0, 100}, fig.Layout.Polar.RadialAxis.Range)

	defaults := b.TeamRadar(sampleRows(), nil)
	require.Len(t, defaults.Data, 3)
}

func TestCorrelationHeatmapConstantColumns(t *testing.T) {
	t.Parallel()

	rows := []teamstats.Aggregate{
		{SquadValue: 10, AvgAge: 25},
		{SquadValue: 20, AvgAge: 27},
		{SquadValue: 30, AvgAge: 29},
	}
	fig := NewBuilder(DarkTheme()).CorrelationHeatmap(rows)
	z := fig.Data[0].Z.([][]float64)
	require.Len(t, z, len(CorrelationLabels))

	require.InDelta(t, 1.0, z[0][0], 1e-9)
	require.InDelta(t, 1.0, z[0][3], 1e-9)
	require.Equal(t, 0.0, z[1][1])
	require.Equal(t, 0.0, z[0][5])

	raw, err := sonic.Marshal(fig)
	require.NoError(t, err)
	require.NotContains(t, string(raw), "NaN")
}

func TestPearson(t *testing.T) {
	t.Parallel()

	require.InDelta(t, -1.0, Pearson([]float64{1, 2, 3}, []float64{3, 2, 1}), 1e-9)
	require.True(t, math.IsNaN(Pearson([]float64{1, 1}, []float64{1, 2})))
	require.True(t, math.IsNaN(Pearson([]float64{1}, []float64{1, 2})))
}

func TestPerformanceSeriesFinishedOnly(t *testing.T) {
	t.Parallel()

	score := func(v int) *int { return &v }
	matches := []fixture.Match{
		{ID: 2, Date: "2025-12-26", HomeTeam: "Mali", AwayTeam: "Morocco", Status: fixture.StatusScheduled},
		{ID: 1, Date: "2025-12-22", HomeTeam: "Morocco", AwayTeam: "Zambia", HomeScore: score(2), AwayScore: score(0), Status: fixture.StatusFinished},
		{ID: 3, Date: "2025-12-30", HomeTeam: "Tanzania", AwayTeam: "Morocco", HomeScore: score(1), AwayScore: score(1), Status: fixture.StatusFinished},
		{ID: 4, Date: "2025-12-30", HomeTeam: "Mali", AwayTeam: "Zambia", HomeScore: score(3), AwayScore: score(0), Status: fixture.StatusFinished},
	}

	got := PerformanceSeries(matches, "Morocco")
	require.Equal(t, []int{1, 3}, got.MatchNumbers)
	require.Equal(t, []int{2, 3}, got.Goals)
	require.Equal(t, []int{3, 4}, got.Points)

	fig := NewBuilder(DarkTheme()).PerformanceEvolution(matches, "Morocco")
	require.Len(t, fig.Data, 2)
	require.Equal(t, "y2", fig.Data[1].YAxis)
	require.Equal(t, "y", fig.Layout.YAxis2.Overlaying)

	empty := PerformanceSeries(matches[:1], "Morocco")
	require.Empty(t, empty.MatchNumbers)
}

func TestGroupComparisonPanels(t *testing.T) {
	t.Parallel()

	groups := []teamstats.GroupSummary{
		{Group: "Group A", MeanValue: 160_550_000, GoalsScored: 8, AvgAge: 25.9},
		{Group: "Group B", MeanValue: 65_850_000, GoalsScored: 4, AvgAge: 26.7},
	}
	fig := NewBuilder(DarkTheme()).GroupComparison(groups)
	require.Len(t, fig.Data, 3)
	require.InDelta(t, 160.55, fig.Data[0].Y.([]float64)[0], 1e-9)
	require.Equal(t, "x3", fig.Data[2].XAxis)
	require.Equal(t, "y3", fig.Layout.XAxis3.Anchor)
	require.Equal(t, "x2", fig.Layout.YAxis2.Anchor)
	require.Len(t, fig.Layout.Annotations, 3)
	require.False(t, fig.Layout.ShowLegend)
}
