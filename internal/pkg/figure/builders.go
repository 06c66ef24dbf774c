package figure

import (
	"github.com/ManuelReschke/CoronaDash/app/models"
	"github.com/ManuelReschke/CoronaDash/internal/pkg/dataset"
)

// maxBubble is the diameter in pixels of the largest map bubble.
const maxBubble = 40

const (
	LabelConfirmed = "confirmed"
	LabelDeaths    = "deaths"
	LabelRecovered = "recovered"
)

// BubbleMap plots one bubble per country, sized and coloured by confirmed cases.
func BubbleMap(snapshot []dataset.CountrySnapshot) Figure {
	n := len(snapshot)
	names := make([]string, n)
	sizes := make([]int64, n)
	custom := make([][3]int64, n)

	var biggest int64
	for i, s := range snapshot {
		names[i] = s.Country
		sizes[i] = s.Confirmed
		custom[i] = [3]int64{s.Confirmed, s.Deaths, s.Recovered}
		if s.Confirmed > biggest {
			biggest = s.Confirmed
		}
	}

	// area sizing: the biggest value maps to a maxBubble diameter
	sizeRef := 1.0
	if biggest > 0 {
		sizeRef = 2.0 * float64(biggest) / (maxBubble * maxBubble)
	}

	layout := darkLayout()
	layout.Title = &Title{Text: "Confirmed By Country"}
	layout.Margin = &Margin{L: 0, R: 0, T: 50, B: 0}
	layout.Geo = &Geo{
		BgColor:       background,
		ShowLand:      true,
		LandColor:     "#1e1e1e",
		ShowCountries: true,
		CountryColor:  "#3a3a3a",
	}

	return Figure{
		Data: []Trace{{
			Type:         "scattergeo",
			Locations:    names,
			LocationMode: "country names",
			HoverText:    names,
			CustomData:   custom,
			HoverTemplate: "<b>%{hovertext}</b><br><br>" +
				"Confirmed=%{customdata[0]:,}<br>" +
				"Deaths=%{customdata[1]:,}<br>" +
				"Recovered=%{customdata[2]:,}<extra></extra>",
			Marker: &Marker{
				Size:       sizes,
				SizeMode:   "area",
				SizeRef:    sizeRef,
				Color:      sizes,
				ColorScale: colorScale(Oryel),
				ShowScale:  true,
				ColorBar:   &ColorBar{Title: &Title{Text: "Confirmed"}},
			},
		}},
		Layout: layout,
	}
}

// TotalsBar plots the global totals, one coloured bar per condition.
func TotalsBar(t dataset.GlobalTotals) Figure {
	layout := darkLayout()
	layout.Title = &Title{Text: "Total Global Cases"}
	layout.XAxis = &Axis{Title: &Title{Text: "Condition"}, GridColor: gridColor}
	layout.YAxis = &Axis{Title: &Title{Text: "Count"}, GridColor: gridColor}

	return Figure{
		Data: []Trace{{
			Type:          "bar",
			X:             []string{LabelConfirmed, LabelDeaths, LabelRecovered},
			Y:             []int64{t.Confirmed, t.Deaths, t.Recovered},
			HoverTemplate: "Condition=%{x}<br>Count=%{y:,}<extra></extra>",
			Marker:        &Marker{Color: []string{ColorConfirmed, ColorDeaths, ColorRecovered}},
		}},
		Layout: layout,
	}
}

// CountryLine plots confirmed, deaths and recovered over time for a series.
func CountryLine(ts dataset.TimeSeries) Figure {
	n := ts.Len()
	dates := make([]string, n)
	confirmed := make([]int64, n)
	deaths := make([]int64, n)
	recovered := make([]int64, n)
	for i, p := range ts.Points {
		dates[i] = p.Date.Format(models.DateLayout)
		confirmed[i] = p.Confirmed
		deaths[i] = p.Deaths
		recovered[i] = p.Recovered
	}

	line := func(name, color string, y []int64) Trace {
		return Trace{
			Type:          "scatter",
			Mode:          "lines",
			Name:          name,
			X:             dates,
			Y:             y,
			HoverTemplate: "Cases=%{y:,}<extra></extra>",
			Line:          &Line{Color: color},
		}
	}

	title := ts.Country
	if ts.IsWorld() {
		title = "Worldwide"
	}

	layout := darkLayout()
	layout.Title = &Title{Text: title}
	layout.HoverMode = "x unified"
	layout.Legend = &Legend{Title: &Title{Text: "Condition"}}
	layout.YAxis = &Axis{Title: &Title{Text: "Cases"}, GridColor: gridColor}
	layout.XAxis = &Axis{
		Title:       &Title{Text: "Date"},
		Type:        "date",
		GridColor:   gridColor,
		RangeSlider: &RangeSlider{Visible: true},
		RangeSelector: &RangeSelector{
			BgColor:     "#2a2a2a",
			ActiveColor: "#555555",
			Buttons: []Button{
				{Count: 1, Label: "1m", Step: "month", StepMode: "backward"},
				{Count: 6, Label: "6m", Step: "month", StepMode: "backward"},
				{Count: 1, Label: "YTD", Step: "year", StepMode: "todate"},
				{Count: 1, Label: "1y", Step: "year", StepMode: "backward"},
				{Step: "all"},
			},
		},
	}

	return Figure{
		Data: []Trace{
			line(LabelConfirmed, ColorConfirmed, confirmed),
			line(LabelDeaths, ColorDeaths, deaths),
			line(LabelRecovered, ColorRecovered, recovered),
		},
		Layout: layout,
	}
}
