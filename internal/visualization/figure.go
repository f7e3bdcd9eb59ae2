package visualization

// Figure is a chart description in the JSON shape Plotly.js accepts for newPlot.
type Figure struct {
	Data   []Trace `json:"data"`
	Layout Layout  `json:"layout"`
}

type Trace struct {
	Type          string    `json:"type"`
	Name          string    `json:"name,omitempty"`
	X             any       `json:"x,omitempty"`
	Y             any       `json:"y,omitempty"`
	Z             any       `json:"z,omitempty"`
	R             []float64 `json:"r,omitempty"`
	Theta         []string  `json:"theta,omitempty"`
	Labels        []string  `json:"labels,omitempty"`
	Values        []float64 `json:"values,omitempty"`
	Orientation   string    `json:"orientation,omitempty"`
	Mode          string    `json:"mode,omitempty"`
	Text          any       `json:"text,omitempty"`
	TextPosition  string    `json:"textposition,omitempty"`
	TextInfo      string    `json:"textinfo,omitempty"`
	TextTemplate  string    `json:"texttemplate,omitempty"`
	TextFont      *Font     `json:"textfont,omitempty"`
	HoverTemplate string    `json:"hovertemplate,omitempty"`
	Marker        *Marker   `json:"marker,omitempty"`
	Line          *Line     `json:"line,omitempty"`
	Fill          string    `json:"fill,omitempty"`
	Opacity       float64   `json:"opacity,omitempty"`
	NBinsX        int       `json:"nbinsx,omitempty"`
	ColorScale    string    `json:"colorscale,omitempty"`
	ZMid          *float64  `json:"zmid,omitempty"`
	XAxis         string    `json:"xaxis,omitempty"`
	YAxis         string    `json:"yaxis,omitempty"`
}

type Marker struct {
	Color      any       `json:"color,omitempty"`
	Colors     []string  `json:"colors,omitempty"`
	Size       int       `json:"size,omitempty"`
	ColorScale string    `json:"colorscale,omitempty"`
	ShowScale  bool      `json:"showscale,omitempty"`
	ColorBar   *ColorBar `json:"colorbar,omitempty"`
}

type ColorBar struct {
	Title *Title `json:"title,omitempty"`
}

type Line struct {
	Color string `json:"color,omitempty"`
	Width int    `json:"width,omitempty"`
}

type Font struct {
	Family string `json:"family,omitempty"`
	Size   int    `json:"size,omitempty"`
	Color  string `json:"color,omitempty"`
	Weight int    `json:"weight,omitempty"`
}

type Title struct {
	Text string `json:"text,omitempty"`
	Font *Font  `json:"font,omitempty"`
}

type Legend struct {
	BGColor     string `json:"bgcolor,omitempty"`
	BorderColor string `json:"bordercolor,omitempty"`
	BorderWidth int    `json:"borderwidth,omitempty"`
	Font        *Font  `json:"font,omitempty"`
}

type Axis struct {
	Title      *Title    `json:"title,omitempty"`
	ShowGrid   bool      `json:"showgrid"`
	GridWidth  int       `json:"gridwidth,omitempty"`
	GridColor  string    `json:"gridcolor,omitempty"`
	Color      string    `json:"color,omitempty"`
	TickAngle  int       `json:"tickangle,omitempty"`
	Domain     []float64 `json:"domain,omitempty"`
	Anchor     string    `json:"anchor,omitempty"`
	Overlaying string    `json:"overlaying,omitempty"`
	Side       string    `json:"side,omitempty"`
}

type RadialAxis struct {
	Visible bool      `json:"visible"`
	Range   []float64 `json:"range,omitempty"`
}

type Polar struct {
	RadialAxis RadialAxis `json:"radialaxis"`
	BGColor    string     `json:"bgcolor,omitempty"`
}

type Annotation struct {
	Text      string  `json:"text"`
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	XRef      string  `json:"xref"`
	YRef      string  `json:"yref"`
	ShowArrow bool    `json:"showarrow"`
	XAnchor   string  `json:"xanchor,omitempty"`
	YAnchor   string  `json:"yanchor,omitempty"`
	Font      *Font   `json:"font,omitempty"`
}

type Layout struct {
	Title        *Title       `json:"title,omitempty"`
	Font         *Font        `json:"font,omitempty"`
	PlotBGColor  string       `json:"plot_bgcolor,omitempty"`
	PaperBGColor string       `json:"paper_bgcolor,omitempty"`
	HoverMode    string       `json:"hovermode,omitempty"`
	ShowLegend   bool         `json:"showlegend"`
	Legend       *Legend      `json:"legend,omitempty"`
	Height       int          `json:"height,omitempty"`
	BarGap       float64      `json:"bargap,omitempty"`
	XAxis        *Axis        `json:"xaxis,omitempty"`
	YAxis        *Axis        `json:"yaxis,omitempty"`
	XAxis2       *Axis        `json:"xaxis2,omitempty"`
	YAxis2       *Axis        `json:"yaxis2,omitempty"`
	XAxis3       *Axis        `json:"xaxis3,omitempty"`
	YAxis3       *Axis        `json:"yaxis3,omitempty"`
	Polar        *Polar       `json:"polar,omitempty"`
	Annotations  []Annotation `json:"annotations,omitempty"`
}
