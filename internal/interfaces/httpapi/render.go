package httpapi

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"slices"
	"strings"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/afcon-dashboard/internal/domain/fixture"
	"github.com/riskibarqy/afcon-dashboard/internal/domain/history"
	"github.com/riskibarqy/afcon-dashboard/internal/visualization"
	"github.com/valyala/bytebufferpool"
)

//go:embed templates/*.html
var templateFS embed.FS

const plotlyScriptURL = "https://cdn.plot.ly/plotly-2.35.2.min.js"

const (
	pageOverview  = "overview"
	pageChampions = "champions"
	pageGroups    = "groups"
	pageMatches   = "matches"
	pagePlayers   = "players"
	pageAnalysis  = "analysis"
	pageError     = "error"
)

type navLink struct {
	Page  string
	Path  string
	Label string
}

var navigation = []navLink{
	{Page: pageOverview, Path: "/", Label: "Overview"},
	{Page: pageChampions, Path: "/champions", Label: "Champions"},
	{Page: pageGroups, Path: "/groups", Label: "Groups"},
	{Page: pageMatches, Path: "/matches", Label: "Matches"},
	{Page: pagePlayers, Path: "/players", Label: "Players"},
	{Page: pageAnalysis, Path: "/analysis", Label: "Analysis"},
}

// chartView is one figure placed on a page. Figure holds encoded Plotly JSON.
type chartView struct {
	ID     string
	Title  string
	Figure template.JS
}

type pageData struct {
	Title     string
	Active    string
	Nav       []navLink
	Theme     visualization.Theme
	ThemeCSS  template.CSS
	PlotlyURL string
	Charts    []chartView
	Body      any
}

type errorBody struct {
	Status  int
	Heading string
	Message string
}

type pageRenderer struct {
	theme     visualization.Theme
	themeCSS  template.CSS
	templates map[string]*template.Template
}

var templateFuncs = template.FuncMap{
	"euros":    formatEuros,
	"pct":      func(v float64) string { return fmt.Sprintf("%.1f%%", v) },
	"decimal":  func(v float64) string { return fmt.Sprintf("%.2f", v) },
	"add":      func(a, b int) int { return a + b },
	"score":    formatScore,
	"flag":     history.Flag,
	"lower":    strings.ToLower,
	"contains": slices.Contains[[]string, string],
}

func newPageRenderer(theme visualization.Theme) *pageRenderer {
	pages := []string{pageOverview, pageChampions, pageGroups, pageMatches, pagePlayers, pageAnalysis, pageError}
	templates := make(map[string]*template.Template, len(pages))
	for _, page := range pages {
		templates[page] = template.Must(template.New("layout.html").Funcs(templateFuncs).ParseFS(
			templateFS,
			"templates/layout.html",
			"templates/"+page+".html",
		))
	}
	return &pageRenderer{theme: theme, themeCSS: themeVariables(theme), templates: templates}
}

// themeVariables exposes the configured theme as CSS custom properties. Values come from
// configuration, never from requests.
func themeVariables(t visualization.Theme) template.CSS {
	var b strings.Builder
	b.WriteString(":root {")
	vars := [][2]string{
		{"--page-bg", t.PageBackground},
		{"--card-bg", t.CardBackground},
		{"--font", t.FontFamily},
		{"--text", t.FontColor},
		{"--title", t.TitleColor},
		{"--muted", t.MutedColor},
		{"--grid", t.GridColor},
		{"--border", t.LegendBorder},
		{"--primary", t.Palette.Primary},
		{"--secondary", t.Palette.Secondary},
		{"--accent", t.Palette.Accent},
		{"--danger", t.Palette.Danger},
	}
	for _, v := range vars {
		fmt.Fprintf(&b, " %s: %s;", v[0], v[1])
	}
	b.WriteString(" }")
	return template.CSS(b.String())
}

// render executes the page into a pooled buffer first so a failing template never leaves a
// half written response. An error means nothing was written.
func (p *pageRenderer) render(ctx context.Context, w http.ResponseWriter, status int, page, title string, charts []chartView, body any) error {
	ctx, span := startSpan(ctx, "httpapi.pageRenderer.render")
	defer span.End()

	tmpl, ok := p.templates[page]
	if !ok {
		return fmt.Errorf("unknown page template %q", page)
	}

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	data := pageData{
		Title:     title,
		Active:    page,
		Nav:       navigation,
		Theme:     p.theme,
		ThemeCSS:  p.themeCSS,
		PlotlyURL: plotlyScriptURL,
		Charts:    charts,
		Body:      body,
	}
	if err := tmpl.ExecuteTemplate(buf, "layout.html", data); err != nil {
		return fmt.Errorf("execute %s template: %w", page, err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(buf.B)
	return nil
}

func encodeFigure(id, title string, figure visualization.Figure) (chartView, error) {
	raw, err := sonic.ConfigStd.Marshal(figure)
	if err != nil {
		return chartView{}, fmt.Errorf("encode figure %s: %w", id, err)
	}
	return chartView{ID: id, Title: title, Figure: template.JS(raw)}, nil
}

// formatEuros accepts the float squad values and the integer market values alike.
func formatEuros(raw any) string {
	var v float64
	switch n := raw.(type) {
	case float64:
		v = n
	case int64:
		v = float64(n)
	case int:
		v = float64(n)
	}
	switch {
	case v >= 1e9:
		return fmt.Sprintf("€%.2fbn", v/1e9)
	case v >= 1e6:
		return fmt.Sprintf("€%.1fM", v/1e6)
	case v >= 1e3:
		return fmt.Sprintf("€%.0fk", v/1e3)
	default:
		return fmt.Sprintf("€%.0f", v)
	}
}

func formatScore(m fixture.Match) string {
	if m.HomeScore == nil || m.AwayScore == nil {
		return "vs"
	}
	return fmt.Sprintf("%d - %d", *m.HomeScore, *m.AwayScore)
}
