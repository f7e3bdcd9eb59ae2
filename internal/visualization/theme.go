package visualization

import (
	"fmt"
	"strings"
)

// Palette names the accent colors used by single-series charts.
type Palette struct {
	Primary   string
	Secondary string
	Accent    string
	Success   string
	Danger    string
	Purple    string
	Dark      string
	Light     string
}

// Theme is the full styling configuration shared by the chart builder and the page renderer.
type Theme struct {
	Name    string
	Palette Palette
	// Series cycles through multi-series charts (pies, box plots).
	Series []string

	FontFamily string
	FontColor  string
	TitleColor string
	TitleSize  int
	FontSize   int

	PlotBackground   string
	PaperBackground  string
	GridColor        string
	LegendBackground string
	LegendBorder     string

	PageBackground string
	CardBackground string
	MutedColor     string
}

const (
	ThemeDark  = "dark"
	ThemeLight = "light"
)

var seriesColors = []string{
	"#00F260", "#0575E6", "#F7B801", "#2ECC71",
	"#E74C3C", "#667eea", "#3498DB", "#1ABC9C",
	"#F39C12", "#D35400", "#C0392B", "#8E44AD",
	"#16A085", "#27AE60", "#2980B9", "#9B59B6",
}

var basePalette = Palette{
	Primary:   "#00F260",
	Secondary: "#0575E6",
	Accent:    "#F7B801",
	Success:   "#2ECC71",
	Danger:    "#E74C3C",
	Purple:    "#667eea",
	Dark:      "#0a0e27",
	Light:     "#ECF0F1",
}

func DarkTheme() Theme {
	return Theme{
		Name:             ThemeDark,
		Palette:          basePalette,
		Series:           append([]string(nil), seriesColors...),
		FontFamily:       "Poppins, sans-serif",
		FontColor:        "white",
		TitleColor:       "white",
		TitleSize:        22,
		FontSize:         13,
		PlotBackground:   "rgba(10, 14, 39, 0.5)",
		PaperBackground:  "rgba(0, 0, 0, 0)",
		GridColor:        "rgba(0, 242, 96, 0.15)",
		LegendBackground: "rgba(26, 29, 58, 0.9)",
		LegendBorder:     "rgba(0, 242, 96, 0.3)",
		PageBackground:   "linear-gradient(135deg, #0a0e27 0%, #1a1d3a 100%)",
		CardBackground:   "rgba(26, 29, 58, 0.8)",
		MutedColor:       "#7f8c8d",
	}
}

func LightTheme() Theme {
	return Theme{
		Name:             ThemeLight,
		Palette:          basePalette,
		Series:           append([]string(nil), seriesColors...),
		FontFamily:       "Poppins, sans-serif",
		FontColor:        "#1a1d3a",
		TitleColor:       "#0a0e27",
		TitleSize:        22,
		FontSize:         13,
		PlotBackground:   "rgba(236, 240, 241, 0.6)",
		PaperBackground:  "rgba(255, 255, 255, 0)",
		GridColor:        "rgba(5, 117, 230, 0.15)",
		LegendBackground: "rgba(255, 255, 255, 0.9)",
		LegendBorder:     "rgba(5, 117, 230, 0.3)",
		PageBackground:   "linear-gradient(135deg, #ECF0F1 0%, #ffffff 100%)",
		CardBackground:   "rgba(255, 255, 255, 0.9)",
		MutedColor:       "#5d6d7e",
	}
}

// ThemeByName resolves a configured theme name.
func ThemeByName(name string) (Theme, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", ThemeDark:
		return DarkTheme(), nil
	case ThemeLight:
		return LightTheme(), nil
	default:
		return Theme{}, fmt.Errorf("unknown theme %q", name)
	}
}

// SeriesColor cycles through the series colors.
func (t Theme) SeriesColor(i int) string {
	if len(t.Series) == 0 {
		return t.Palette.Primary
	}
	return t.Series[i%len(t.Series)]
}
