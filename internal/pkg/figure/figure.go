// Package figure builds Plotly.js figure documents for the dashboard charts.
package figure

import "encoding/json"

// Condition colours shared by the bar and line charts.
const (
	ColorConfirmed = "#e74c3c"
	ColorDeaths    = "#8e44ad"
	ColorRecovered = "#27ae60"

	background = "#111111"
	gridColor  = "#283442"
	fontColor  = "#f2f5fa"
)

// Oryel is Plotly's sequential "Oryel" colour scale.
var Oryel = []string{
	"rgb(236, 218, 154)",
	"rgb(239, 196, 126)",
	"rgb(243, 173, 106)",
	"rgb(247, 148, 93)",
	"rgb(249, 123, 87)",
	"rgb(246, 99, 86)",
	"rgb(238, 77, 90)",
}

type Figure struct {
	Data   []Trace `json:"data"`
	Layout Layout  `json:"layout"`
}

func (f Figure) JSON() ([]byte, error) {
	return json.Marshal(f)
}

type Trace struct {
	Type          string     `json:"type"`
	Mode          string     `json:"mode,omitempty"`
	Name          string     `json:"name,omitempty"`
	X             []string   `json:"x,omitempty"`
	Y             []int64    `json:"y,omitempty"`
	Locations     []string   `json:"locations,omitempty"`
	LocationMode  string     `json:"locationmode,omitempty"`
	HoverText     []string   `json:"hovertext,omitempty"`
	CustomData    [][3]int64 `json:"customdata,omitempty"`
	HoverTemplate string     `json:"hovertemplate,omitempty"`
	Marker        *Marker    `json:"marker,omitempty"`
	Line          *Line      `json:"line,omitempty"`
}

type Marker struct {
	Size       []int64          `json:"size,omitempty"`
	SizeMode   string           `json:"sizemode,omitempty"`
	SizeRef    float64          `json:"sizeref,omitempty"`
	Color      interface{}      `json:"color,omitempty"`
	ColorScale [][2]interface{} `json:"colorscale,omitempty"`
	ShowScale  bool             `json:"showscale,omitempty"`
	ColorBar   *ColorBar        `json:"colorbar,omitempty"`
}

type ColorBar struct {
	Title *Title `json:"title,omitempty"`
}

type Line struct {
	Color string `json:"color,omitempty"`
	Width int    `json:"width,omitempty"`
}

type Title struct {
	Text string `json:"text"`
}

type Font struct {
	Color  string `json:"color,omitempty"`
	Family string `json:"family,omitempty"`
}

type Margin struct {
	L int `json:"l"`
	R int `json:"r"`
	T int `json:"t"`
	B int `json:"b"`
}

type Layout struct {
	Title        *Title  `json:"title,omitempty"`
	PaperBgColor string  `json:"paper_bgcolor,omitempty"`
	PlotBgColor  string  `json:"plot_bgcolor,omitempty"`
	Font         *Font   `json:"font,omitempty"`
	Margin       *Margin `json:"margin,omitempty"`
	XAxis        *Axis   `json:"xaxis,omitempty"`
	YAxis        *Axis   `json:"yaxis,omitempty"`
	Geo          *Geo    `json:"geo,omitempty"`
	Legend       *Legend `json:"legend,omitempty"`
	HoverMode    string  `json:"hovermode,omitempty"`
}

type Legend struct {
	Title *Title `json:"title,omitempty"`
}

type Axis struct {
	Title         *Title         `json:"title,omitempty"`
	Type          string         `json:"type,omitempty"`
	GridColor     string         `json:"gridcolor,omitempty"`
	RangeSlider   *RangeSlider   `json:"rangeslider,omitempty"`
	RangeSelector *RangeSelector `json:"rangeselector,omitempty"`
}

type RangeSlider struct {
	Visible bool `json:"visible"`
}

type RangeSelector struct {
	Buttons     []Button `json:"buttons"`
	BgColor     string   `json:"bgcolor,omitempty"`
	ActiveColor string   `json:"activecolor,omitempty"`
}

type Button struct {
	Count    int    `json:"count,omitempty"`
	Label    string `json:"label,omitempty"`
	Step     string `json:"step"`
	StepMode string `json:"stepmode,omitempty"`
}

type Geo struct {
	BgColor       string `json:"bgcolor,omitempty"`
	ShowFrame     bool   `json:"showframe"`
	ShowLand      bool   `json:"showland"`
	LandColor     string `json:"landcolor,omitempty"`
	ShowCountries bool   `json:"showcountries"`
	CountryColor  string `json:"countrycolor,omitempty"`
	ShowLakes     bool   `json:"showlakes"`
}

func darkLayout() Layout {
	return Layout{
		PaperBgColor: background,
		PlotBgColor:  background,
		Font:         &Font{Color: fontColor, Family: "Open Sans, sans-serif"},
	}
}

func colorScale(colors []string) [][2]interface{} {
	out := make([][2]interface{}, len(colors))
	last := float64(len(colors) - 1)
	for i, c := range colors {
		out[i] = [2]interface{}{float64(i) / last, c}
	}
	return out
}
