package viewmodel

import (
	"html/template"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/ManuelReschke/CoronaDash/internal/pkg/dataset"
)

var printer = message.NewPrinter(language.English)

// FormatCount renders n with thousands separators, e.g. 1,234,567.
func FormatCount(n int64) string {
	return printer.Sprintf("%d", n)
}

// CountryRow is one line of the countries table, already formatted for display.
type CountryRow struct {
	Country   string
	Confirmed string
	Deaths    string
	Recovered string
}

func CountryRows(snapshot []dataset.CountrySnapshot) []CountryRow {
	rows := make([]CountryRow, 0, len(snapshot))
	for _, s := range snapshot {
		rows = append(rows, CountryRow{
			Country:   s.Country,
			Confirmed: FormatCount(s.Confirmed),
			Deaths:    FormatCount(s.Deaths),
			Recovered: FormatCount(s.Recovered),
		})
	}
	return rows
}

// CountryOption is one entry of the country dropdown.
type CountryOption struct {
	Label    string
	Value    string
	Selected bool
}

func CountryOptions(catalog []string, selected string) []CountryOption {
	opts := make([]CountryOption, 0, len(catalog))
	for _, c := range catalog {
		opts = append(opts, CountryOption{Label: c, Value: c, Selected: c == selected})
	}
	return opts
}

// Dashboard is the model of the index page. Figures are pre-serialised JSON.
type Dashboard struct {
	Layout

	Placeholder    string
	FigureEndpoint string
	Selected       string
	Countries      []CountryOption
	Table          template.HTML
	MapFigure      template.JS
	TotalsFigure   template.JS
	LineFigure     template.JS
	Rows           int
	Source         string
}
