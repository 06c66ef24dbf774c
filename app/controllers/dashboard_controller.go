package controllers

import (
	"context"
	"fmt"
	"html/template"

	"github.com/a-h/templ"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"

	"github.com/ManuelReschke/CoronaDash/internal/pkg/constants"
	"github.com/ManuelReschke/CoronaDash/internal/pkg/dataset"
	"github.com/ManuelReschke/CoronaDash/internal/pkg/env"
	"github.com/ManuelReschke/CoronaDash/internal/pkg/figure"
	"github.com/ManuelReschke/CoronaDash/internal/pkg/selector"
	"github.com/ManuelReschke/CoronaDash/internal/pkg/viewmodel"
	"github.com/ManuelReschke/CoronaDash/views"
)

const dropdownPlaceholder = "Select your Country"

// DashboardController serves the dashboard page and its fragments
type DashboardController struct {
	ds      *dataset.Dataset
	sel     *selector.Selector
	figures *figure.Static
	rows    []viewmodel.CountryRow
	table   template.HTML
}

func NewDashboardController(ds *dataset.Dataset, sel *selector.Selector, figures *figure.Static) (*DashboardController, error) {
	rows := viewmodel.CountryRows(ds.Snapshot())
	table, err := templ.ToGoHTML(context.Background(), views.CountryTable(rows))
	if err != nil {
		return nil, fmt.Errorf("render country table: %w", err)
	}
	return &DashboardController{
		ds:      ds,
		sel:     sel,
		figures: figures,
		rows:    rows,
		table:   table,
	}, nil
}

// HandleIndex renders the whole dashboard. ?country= preselects a country.
func (dc *DashboardController) HandleIndex(c *fiber.Ctx) error {
	selected := countryQuery(c)
	if !dc.ds.HasCountry(selected) {
		selected = ""
	}

	line, err := figure.CountryLine(dc.sel.SelectView(selected)).JSON()
	if err != nil {
		return handleError(c, fiber.StatusInternalServerError, "internal_error", "failed to build country figure", err)
	}

	model := viewmodel.Dashboard{
		Layout: viewmodel.Layout{
			Page:    "dashboard",
			Title:   "Corona Dashboard",
			IsDebug: env.IsDebug(),
		},
		Placeholder:    dropdownPlaceholder,
		FigureEndpoint: constants.CountryFigureURL,
		Selected:       selected,
		Countries:      viewmodel.CountryOptions(dc.sel.Catalog(), selected),
		Table:          dc.table,
		MapFigure:      template.JS(dc.figures.Map),
		TotalsFigure:   template.JS(dc.figures.Totals),
		LineFigure:     template.JS(line),
		Rows:           dc.ds.Len(),
		Source:         dc.ds.Source(),
	}

	return c.Render("index", model, "layouts/main")
}

// HandleCountryTable serves the countries table on its own
func (dc *DashboardController) HandleCountryTable(c *fiber.Ctx) error {
	handler := adaptor.HTTPHandler(templ.Handler(views.CountryTable(dc.rows)))
	return handler(c)
}
