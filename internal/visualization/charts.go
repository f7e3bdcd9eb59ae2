package visualization

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/riskibarqy/afcon-dashboard/internal/domain/fixture"
	"github.com/riskibarqy/afcon-dashboard/internal/domain/player"
	"github.com/riskibarqy/afcon-dashboard/internal/domain/playerstats"
	"github.com/riskibarqy/afcon-dashboard/internal/domain/team"
	"github.com/riskibarqy/afcon-dashboard/internal/domain/teamstats"
)

const (
	million       = 1_000_000.0
	minHeight     = 400
	rowHeight     = 30
	otherCategory = "Other"
	topCategories = 5
)

// RadarCategories are the axes of the team profile radar, each scaled to 0..100.
var RadarCategories = []string{"Value", "Goals", "Defense", "Points", "Wins"}

// CorrelationLabels name the team metrics correlated by CorrelationHeatmap, in matrix order.
var CorrelationLabels = []string{"Value", "Goals for", "Goals against", "Avg. age", "Wins", "Points"}

// Builder turns typed records into Plotly figures styled with one theme.
type Builder struct {
	theme Theme
}

func NewBuilder(theme Theme) *Builder {
	return &Builder{theme: theme}
}

func (b *Builder) Theme() Theme {
	return b.theme
}

func (b *Builder) axis(title string) *Axis {
	a := &Axis{
		ShowGrid:  true,
		GridWidth: 1,
		GridColor: b.theme.GridColor,
		Color:     b.theme.FontColor,
	}
	if title != "" {
		a.Title = &Title{Text: title}
	}
	return a
}

func (b *Builder) layout(title string) Layout {
	t := b.theme
	return Layout{
		Title: &Title{
			Text: title,
			Font: &Font{Family: t.FontFamily, Size: t.TitleSize, Color: t.TitleColor, Weight: 600},
		},
		Font:         &Font{Family: t.FontFamily, Size: t.FontSize, Color: t.FontColor},
		PlotBGColor:  t.PlotBackground,
		PaperBGColor: t.PaperBackground,
		HoverMode:    "closest",
		ShowLegend:   true,
		Legend: &Legend{
			BGColor:     t.LegendBackground,
			BorderColor: t.LegendBorder,
			BorderWidth: 1,
			Font:        &Font{Color: t.FontColor},
		},
		XAxis: b.axis(""),
		YAxis: b.axis(""),
	}
}

func barHeight(rows int) int {
	return max(minHeight, rows*rowHeight)
}

func euros(v float64) string {
	return fmt.Sprintf("€%.1fM", v/million)
}

// TeamValues is a horizontal bar of squad values in millions. topN <= 0 keeps every team.
func (b *Builder) TeamValues(rows []teamstats.Aggregate, topN int) Figure {
	items := slices.Clone(rows)
	if topN > 0 {
		slices.SortStableFunc(items, func(a, c teamstats.Aggregate) int { return cmp.Compare(c.SquadValue, a.SquadValue) })
		if len(items) > topN {
			items = items[:topN]
		}
	}
	slices.SortStableFunc(items, func(a, c teamstats.Aggregate) int { return cmp.Compare(a.SquadValue, c.SquadValue) })

	names := make([]string, 0, len(items))
	values := make([]float64, 0, len(items))
	labels := make([]string, 0, len(items))
	for _, r := range items {
		names = append(names, r.TeamName)
		values = append(values, r.SquadValue/million)
		labels = append(labels, euros(r.SquadValue))
	}

	layout := b.layout("Squad values (€ millions)")
	layout.XAxis.Title = &Title{Text: "Value (€ millions)"}
	layout.YAxis.Title = &Title{Text: "Team"}
	layout.Height = barHeight(len(items))
	return Figure{
		Data: []Trace{{
			Type:          "bar",
			Y:             names,
			X:             values,
			Orientation:   "h",
			Marker:        &Marker{Color: b.theme.Palette.Primary},
			Text:          labels,
			TextPosition:  "outside",
			HoverTemplate: "<b>%{y}</b><br>Value: €%{x:.1f}M<extra></extra>",
		}},
		Layout: layout,
	}
}

// GoalsByTeam is a horizontal bar of goals scored, ascending.
func (b *Builder) GoalsByTeam(rows []teamstats.Aggregate) Figure {
	items := slices.Clone(rows)
	slices.SortStableFunc(items, func(a, c teamstats.Aggregate) int { return cmp.Compare(a.GoalsScored, c.GoalsScored) })

	names := make([]string, 0, len(items))
	goals := make([]int, 0, len(items))
	for _, r := range items {
		names = append(names, r.TeamName)
		goals = append(goals, r.GoalsScored)
	}

	layout := b.layout("Goals scored by team")
	layout.XAxis.Title = &Title{Text: "Goals"}
	layout.YAxis.Title = &Title{Text: "Team"}
	layout.Height = barHeight(len(items))
	return Figure{
		Data: []Trace{{
			Type:          "bar",
			Y:             names,
			X:             goals,
			Orientation:   "h",
			Marker:        &Marker{Color: b.theme.Palette.Success},
			Text:          goals,
			TextPosition:  "outside",
			HoverTemplate: "<b>%{y}</b><br>Goals: %{x}<extra></extra>",
		}},
		Layout: layout,
	}
}

func (b *Builder) TopScorers(stats []playerstats.Statistic, topN int) Figure {
	return b.leaderboard(stats, topN, func(s playerstats.Statistic) int { return s.Goals },
		fmt.Sprintf("Top %d scorers", topN), "Goals", b.theme.Palette.Accent)
}

func (b *Builder) TopAssists(stats []playerstats.Statistic, topN int) Figure {
	return b.leaderboard(stats, topN, func(s playerstats.Statistic) int { return s.Assists },
		fmt.Sprintf("Top %d assist providers", topN), "Assists", b.theme.Palette.Secondary)
}

// leaderboard keeps rows with a positive metric, takes the topN and draws them ascending so
// the leader sits on top.
func (b *Builder) leaderboard(stats []playerstats.Statistic, topN int, metric func(playerstats.Statistic) int, title, unit, color string) Figure {
	items := make([]playerstats.Statistic, 0, len(stats))
	for _, s := range stats {
		if metric(s) > 0 {
			items = append(items, s)
		}
	}
	slices.SortStableFunc(items, func(a, c playerstats.Statistic) int { return cmp.Compare(metric(c), metric(a)) })
	if topN > 0 && len(items) > topN {
		items = items[:topN]
	}
	slices.Reverse(items)

	labels := make([]string, 0, len(items))
	values := make([]int, 0, len(items))
	for _, s := range items {
		labels = append(labels, fmt.Sprintf("%s (%s)", s.PlayerName, s.Team))
		values = append(values, metric(s))
	}

	layout := b.layout(title)
	layout.XAxis.Title = &Title{Text: unit}
	layout.YAxis.Title = &Title{Text: "Player"}
	layout.Height = barHeight(topN)
	return Figure{
		Data: []Trace{{
			Type:          "bar",
			Y:             labels,
			X:             values,
			Orientation:   "h",
			Marker:        &Marker{Color: color},
			Text:          values,
			TextPosition:  "outside",
			HoverTemplate: "<b>%{y}</b><br>" + unit + ": %{x}<extra></extra>",
		}},
		Layout: layout,
	}
}

// AgeDistribution is a histogram of every player's age.
func (b *Builder) AgeDistribution(players []player.Player) Figure {
	ages := make([]int, 0, len(players))
	for _, p := range players {
		ages = append(ages, p.Age)
	}

	layout := b.layout("Player age distribution")
	layout.XAxis.Title = &Title{Text: "Age"}
	layout.YAxis.Title = &Title{Text: "Players"}
	layout.BarGap = 0.1
	return Figure{
		Data: []Trace{{
			Type:          "histogram",
			X:             ages,
			NBinsX:        20,
			Marker:        &Marker{Color: b.theme.Palette.Primary},
			Opacity:       0.7,
			HoverTemplate: "Age: %{x}<br>Players: %{y}<extra></extra>",
		}},
		Layout: layout,
	}
}

// ValueDistribution is a histogram of positive market values in millions.
func (b *Builder) ValueDistribution(players []player.Player) Figure {
	values := make([]float64, 0, len(players))
	for _, p := range players {
		if p.MarketValue > 0 {
			values = append(values, float64(p.MarketValue)/million)
		}
	}

	layout := b.layout("Market value distribution")
	layout.XAxis.Title = &Title{Text: "Market value (€ millions)"}
	layout.YAxis.Title = &Title{Text: "Players"}
	layout.BarGap = 0.1
	return Figure{
		Data: []Trace{{
			Type:          "histogram",
			X:             values,
			NBinsX:        30,
			Marker:        &Marker{Color: b.theme.Palette.Accent},
			Opacity:       0.7,
			HoverTemplate: "Value: €%{x:.1f}M<br>Players: %{y}<extra></extra>",
		}},
		Layout: layout,
	}
}

type category struct {
	label string
	count int
}

// countCategories tallies labels in first-seen order, then sorts by count descending so ties
// keep first-seen order.
func countCategories(labels []string) []category {
	index := make(map[string]int)
	out := make([]category, 0)
	for _, l := range labels {
		if i, ok := index[l]; ok {
			out[i].count++
			continue
		}
		index[l] = len(out)
		out = append(out, category{label: l, count: 1})
	}
	slices.SortStableFunc(out, func(a, c category) int { return cmp.Compare(c.count, a.count) })
	return out
}

func (b *Builder) pie(title string, cats []category) Figure {
	labels := make([]string, 0, len(cats))
	values := make([]float64, 0, len(cats))
	for _, c := range cats {
		labels = append(labels, c.label)
		values = append(values, float64(c.count))
	}
	colors := b.theme.Series
	if len(colors) > len(cats) {
		colors = colors[:len(cats)]
	}

	return Figure{
		Data: []Trace{{
			Type:          "pie",
			Labels:        labels,
			Values:        values,
			Marker:        &Marker{Colors: colors},
			TextPosition:  "inside",
			TextInfo:      "percent+label",
			HoverTemplate: "<b>%{label}</b><br>Players: %{value}<br>%{percent}<extra></extra>",
		}},
		Layout: b.layout(title),
	}
}

// LeagueDistribution splits players by club: the five biggest pools plus an Other slice.
func (b *Builder) LeagueDistribution(players []player.Player) Figure {
	clubs := make([]string, 0, len(players))
	for _, p := range players {
		clubs = append(clubs, p.Club)
	}
	cats := countCategories(clubs)
	if len(cats) > topCategories {
		other := 0
		for _, c := range cats[topCategories:] {
			other += c.count
		}
		cats = append(cats[:topCategories:topCategories], category{label: otherCategory, count: other})
	}
	return b.pie("Players by league", cats)
}

func (b *Builder) PositionDistribution(stats []playerstats.Statistic) Figure {
	positions := make([]string, 0, len(stats))
	for _, s := range stats {
		positions = append(positions, string(s.Position))
	}
	return b.pie("Players by position", countCategories(positions))
}

// ValueBoxplot draws one box of player values per team, in team order.
func (b *Builder) ValueBoxplot(teams []team.Team, squads map[string][]player.Player) Figure {
	traces := make([]Trace, 0, len(teams))
	for i, t := range teams {
		values := make([]float64, 0, len(squads[t.Name]))
		for _, p := range squads[t.Name] {
			values = append(values, float64(p.MarketValue)/million)
		}
		traces = append(traces, Trace{
			Type:   "box",
			Name:   t.Name,
			Y:      values,
			Marker: &Marker{Color: b.theme.SeriesColor(i)},
		})
	}

	layout := b.layout("Player values by team")
	layout.XAxis.Title = &Title{Text: "Team"}
	layout.XAxis.TickAngle = 45
	layout.YAxis.Title = &Title{Text: "Market value (€ millions)"}
	layout.ShowLegend = false
	layout.Height = 500
	return Figure{Data: traces, Layout: layout}
}

// ValueVsPerformance plots squad value against goals, colored by points.
func (b *Builder) ValueVsPerformance(rows []teamstats.Aggregate) Figure {
	values := make([]float64, 0, len(rows))
	goals := make([]int, 0, len(rows))
	points := make([]int, 0, len(rows))
	names := make([]string, 0, len(rows))
	for _, r := range rows {
		values = append(values, r.SquadValue/million)
		goals = append(goals, r.GoalsScored)
		points = append(points, r.Points)
		names = append(names, r.TeamName)
	}

	layout := b.layout("Squad value vs performance")
	layout.XAxis.Title = &Title{Text: "Squad value (€ millions)"}
	layout.YAxis.Title = &Title{Text: "Goals scored"}
	layout.Height = 600
	return Figure{
		Data: []Trace{{
			Type: "scatter",
			X:    values,
			Y:    goals,
			Mode: "markers+text",
			Marker: &Marker{
				Size:       12,
				Color:      points,
				ColorScale: "Viridis",
				ShowScale:  true,
				ColorBar:   &ColorBar{Title: &Title{Text: "Points"}},
			},
			Text:          names,
			TextPosition:  "top center",
			HoverTemplate: "<b>%{text}</b><br>Value: €%{x:.1f}M<br>Goals: %{y}<extra></extra>",
		}},
		Layout: layout,
	}
}

func (b *Builder) AgeVsValue(rows []teamstats.Aggregate) Figure {
	ages := make([]float64, 0, len(rows))
	values := make([]float64, 0, len(rows))
	names := make([]string, 0, len(rows))
	for _, r := range rows {
		ages = append(ages, r.AvgAge)
		values = append(values, r.SquadValue/million)
		names = append(names, r.TeamName)
	}

	layout := b.layout("Average age vs squad value")
	layout.XAxis.Title = &Title{Text: "Average age"}
	layout.YAxis.Title = &Title{Text: "Squad value (€ millions)"}
	layout.Height = 600
	return Figure{
		Data: []Trace{{
			Type:          "scatter",
			X:             ages,
			Y:             values,
			Mode:          "markers+text",
			Marker:        &Marker{Size: 12, Color: b.theme.Palette.Secondary},
			Text:          names,
			TextPosition:  "top center",
			HoverTemplate: "<b>%{text}</b><br>Average age: %{x:.1f}<br>Value: €%{y:.1f}M<extra></extra>",
		}},
		Layout: layout,
	}
}

// CorrelationHeatmap correlates value, goals for and against, age, wins and points across
// teams. Constant metrics, as before kickoff, correlate as 0.
func (b *Builder) CorrelationHeatmap(rows []teamstats.Aggregate) Figure {
	columns := make([][]float64, len(CorrelationLabels))
	for _, r := range rows {
		columns[0] = append(columns[0], r.SquadValue)
		columns[1] = append(columns[1], float64(r.GoalsScored))
		columns[2] = append(columns[2], float64(r.GoalsConceded))
		columns[3] = append(columns[3], r.AvgAge)
		columns[4] = append(columns[4], float64(r.Wins))
		columns[5] = append(columns[5], float64(r.Points))
	}
	matrix := CorrelationMatrix(columns)

	zmid := 0.0
	layout := b.layout("Team metric correlation")
	layout.Height = 600
	return Figure{
		Data: []Trace{{
			Type:          "heatmap",
			Z:             matrix,
			X:             CorrelationLabels,
			Y:             CorrelationLabels,
			ColorScale:    "RdBu",
			ZMid:          &zmid,
			Text:          matrix,
			TextTemplate:  "%{text:.2f}",
			TextFont:      &Font{Size: 10},
			HoverTemplate: "%{x} vs %{y}<br>Correlation: %{z:.2f}<extra></extra>",
		}},
		Layout: layout,
	}
}

// RadarProfile scales one team against the field maxima. Defense is 100 minus conceded goals
// relative to the worst defense, so a side that conceded nothing scores 100.
func RadarProfile(rows []teamstats.Aggregate, row teamstats.Aggregate) []float64 {
	var maxValue float64
	var maxGoals, maxConceded, maxPoints, maxWins int
	for _, r := range rows {
		maxValue = max(maxValue, r.SquadValue)
		maxGoals = max(maxGoals, r.GoalsScored)
		maxConceded = max(maxConceded, r.GoalsConceded)
		maxPoints = max(maxPoints, r.Points)
		maxWins = max(maxWins, r.Wins)
	}

	scale := func(v, top float64) float64 {
		if top <= 0 {
			return 0
		}
		return min(100, max(0, v/top*100))
	}
	defense := 100.0
	if maxConceded > 0 {
		defense = 100 - scale(float64(row.GoalsConceded), float64(maxConceded))
	}

	return []float64{
		scale(row.SquadValue, maxValue),
		scale(float64(row.GoalsScored), float64(maxGoals)),
		defense,
		scale(float64(row.Points), float64(maxPoints)),
		scale(float64(row.Wins), float64(maxWins)),
	}
}

// TeamRadar overlays the profiles of the named teams. Unknown names are skipped; an empty
// selection compares the first three rows.
func (b *Builder) TeamRadar(rows []teamstats.Aggregate, names []string) Figure {
	if len(names) == 0 {
		for _, r := range rows[:min(3, len(rows))] {
			names = append(names, r.TeamName)
		}
	}

	traces := make([]Trace, 0, len(names))
	for _, name := range names {
		row, ok := teamstats.Find(rows, name)
		if !ok {
			continue
		}
		traces = append(traces, Trace{
			Type:  "scatterpolar",
			Name:  name,
			R:     RadarProfile(rows, row),
			Theta: RadarCategories,
			Fill:  "toself",
		})
	}

	layout := b.layout("Team profile comparison")
	layout.XAxis = nil
	layout.YAxis = nil
	layout.Polar = &Polar{RadialAxis: RadialAxis{Visible: true, Range: []float64{0, 100}}}
	layout.Height = 600
	return Figure{Data: traces, Layout: layout}
}

// Evolution is the cumulative goals and points of one team. MatchNumbers index into every
// match of the team by date, so unplayed matches leave gaps.
type Evolution struct {
	MatchNumbers []int
	Goals        []int
	Points       []int
}

func PerformanceSeries(matches []fixture.Match, teamName string) Evolution {
	own := make([]fixture.Match, 0, 8)
	for _, m := range matches {
		if m.Involves(teamName) {
			own = append(own, m)
		}
	}
	slices.SortStableFunc(own, func(a, c fixture.Match) int { return cmp.Compare(a.Date, c.Date) })

	var out Evolution
	goals, points := 0, 0
	for i, m := range own {
		scored, conceded, ok := m.GoalsFor(teamName)
		if !ok {
			continue
		}
		goals += scored
		points += fixture.Points(scored, conceded)
		out.MatchNumbers = append(out.MatchNumbers, i+1)
		out.Goals = append(out.Goals, goals)
		out.Points = append(out.Points, points)
	}
	return out
}

// PerformanceEvolution draws cumulative goals on the left axis and points on the right.
func (b *Builder) PerformanceEvolution(matches []fixture.Match, teamName string) Figure {
	series := PerformanceSeries(matches, teamName)

	layout := b.layout("Performance over time - " + teamName)
	layout.XAxis.Title = &Title{Text: "Match number"}
	layout.YAxis.Title = &Title{Text: "Cumulative goals"}
	layout.YAxis2 = b.axis("Cumulative points")
	layout.YAxis2.Overlaying = "y"
	layout.YAxis2.Side = "right"
	layout.YAxis2.ShowGrid = false
	layout.Height = 500
	return Figure{
		Data: []Trace{
			{
				Type: "scatter",
				Name: "Cumulative goals",
				X:    series.MatchNumbers,
				Y:    series.Goals,
				Mode: "lines",
				Line: &Line{Color: b.theme.Palette.Primary, Width: 3},
			},
			{
				Type:  "scatter",
				Name:  "Cumulative points",
				X:     series.MatchNumbers,
				Y:     series.Points,
				Mode:  "lines",
				Line:  &Line{Color: b.theme.Palette.Secondary, Width: 3},
				YAxis: "y2",
			},
		},
		Layout: layout,
	}
}

var subplotDomains = [][]float64{{0, 0.28}, {0.36, 0.64}, {0.72, 1}}

// GroupComparison lays three bar panels side by side: mean squad value, total goals and mean
// age per group.
func (b *Builder) GroupComparison(groups []teamstats.GroupSummary) Figure {
	labels := make([]string, 0, len(groups))
	values := make([]float64, 0, len(groups))
	goals := make([]int, 0, len(groups))
	ages := make([]float64, 0, len(groups))
	for _, g := range groups {
		labels = append(labels, g.Group)
		values = append(values, g.MeanValue/million)
		goals = append(goals, g.GoalsScored)
		ages = append(ages, g.AvgAge)
	}

	layout := b.layout("Group comparison")
	layout.Height = minHeight
	layout.ShowLegend = false

	panels := []struct {
		title, unit string
	}{
		{title: "Mean value", unit: "€ millions"},
		{title: "Total goals", unit: "Goals"},
		{title: "Mean age", unit: "Years"},
	}
	xs := []**Axis{&layout.XAxis, &layout.XAxis2, &layout.XAxis3}
	ys := []**Axis{&layout.YAxis, &layout.YAxis2, &layout.YAxis3}
	for i, p := range panels {
		x := b.axis("")
		x.Domain = subplotDomains[i]
		x.Anchor = axisRef("y", i)
		y := b.axis(p.unit)
		y.Anchor = axisRef("x", i)
		*xs[i] = x
		*ys[i] = y
		layout.Annotations = append(layout.Annotations, Annotation{
			Text:      p.title,
			X:         (subplotDomains[i][0] + subplotDomains[i][1]) / 2,
			Y:         1,
			XRef:      "paper",
			YRef:      "paper",
			XAnchor:   "center",
			YAnchor:   "bottom",
			ShowArrow: false,
			Font:      &Font{Size: 16, Color: b.theme.FontColor},
		})
	}

	return Figure{
		Data: []Trace{
			{Type: "bar", Name: "Value", X: labels, Y: values, Marker: &Marker{Color: b.theme.Palette.Primary}},
			{Type: "bar", Name: "Goals", X: labels, Y: goals, Marker: &Marker{Color: b.theme.Palette.Success}, XAxis: "x2", YAxis: "y2"},
			{Type: "bar", Name: "Age", X: labels, Y: ages, Marker: &Marker{Color: b.theme.Palette.Secondary}, XAxis: "x3", YAxis: "y3"},
		},
		Layout: layout,
	}
}

func axisRef(prefix string, i int) string {
	if i == 0 {
		return prefix
	}
	return fmt.Sprintf("%s%d", prefix, i+1)
}
