package apiv1

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/utils"

	"github.com/ManuelReschke/CoronaDash/app/models"
	"github.com/ManuelReschke/CoronaDash/internal/pkg/dataset"
	"github.com/ManuelReschke/CoronaDash/internal/pkg/figure"
	"github.com/ManuelReschke/CoronaDash/internal/pkg/metrics/counter"
	"github.com/ManuelReschke/CoronaDash/internal/pkg/selector"
)

// APIServer implements the ServerInterface
type APIServer struct {
	ds      *dataset.Dataset
	sel     *selector.Selector
	figures *figure.Static
	counts  counter.Counter
}

const (
	defaultSelectionsLimit = 10
	maxSelectionsLimit     = 100
)

// NewAPIServer creates a new API server instance over a loaded dataset
func NewAPIServer(ds *dataset.Dataset, sel *selector.Selector, figures *figure.Static, counts counter.Counter) *APIServer {
	return &APIServer{ds: ds, sel: sel, figures: figures, counts: counts}
}

// GetPing handles the ping endpoint
func (s *APIServer) GetPing(c *fiber.Ctx) error {
	response := Pong{
		Ping: "pong",
	}

	return c.Status(fiber.StatusOK).JSON(response)
}

// GetCountries returns the sorted country catalog
func (s *APIServer) GetCountries(c *fiber.Ctx) error {
	return c.JSON(CountryList{Countries: s.sel.Catalog()})
}

func (s *APIServer) GetTotals(c *fiber.Ctx) error {
	t := s.ds.Totals()
	return c.JSON(Totals{Confirmed: t.Confirmed, Deaths: t.Deaths, Recovered: t.Recovered})
}

// GetSnapshot returns every country at its latest date, largest outbreak first
func (s *APIServer) GetSnapshot(c *fiber.Ctx) error {
	snapshot := s.ds.Snapshot()
	out := Snapshot{Countries: make([]SnapshotEntry, 0, len(snapshot))}
	for _, cs := range snapshot {
		out.Countries = append(out.Countries, SnapshotEntry{
			Country:   cs.Country,
			Date:      cs.Date.Format(models.DateLayout),
			Confirmed: cs.Confirmed,
			Deaths:    cs.Deaths,
			Recovered: cs.Recovered,
		})
	}
	return c.JSON(out)
}

// GetSeries returns the daily series of the selected country. Without a
// country the worldwide aggregate is returned. Unknown countries yield an
// empty series.
func (s *APIServer) GetSeries(c *fiber.Ctx, params CountryParams) error {
	ts := s.sel.SelectView(selection(params))
	out := Series{Country: ts.Country, Points: make([]SeriesPoint, 0, ts.Len())}
	for _, p := range ts.Points {
		out.Points = append(out.Points, SeriesPoint{
			Date:      p.Date.Format(models.DateLayout),
			Confirmed: p.Confirmed,
			Deaths:    p.Deaths,
			Recovered: p.Recovered,
		})
	}
	return c.JSON(out)
}

func (s *APIServer) GetMapFigure(c *fiber.Ctx) error {
	return sendFigure(c, s.figures.Map)
}

func (s *APIServer) GetTotalsFigure(c *fiber.Ctx) error {
	return sendFigure(c, s.figures.Totals)
}

// GetCountryFigure answers a dropdown change with the matching line chart
func (s *APIServer) GetCountryFigure(c *fiber.Ctx, params CountryParams) error {
	b, err := figure.CountryLine(s.sel.SelectView(selection(params))).JSON()
	if err != nil {
		log.Errorf("encode country figure: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(Error{
			Error:   "internal_error",
			Message: "failed to build country figure",
		})
	}
	return sendFigure(c, b)
}

// GetSelections ranks the views picked in the dropdown
func (s *APIServer) GetSelections(c *fiber.Ctx, params SelectionsParams) error {
	limit := defaultSelectionsLimit
	if params.Limit != nil {
		limit = *params.Limit
	}
	if limit < 1 || limit > maxSelectionsLimit {
		return c.Status(fiber.StatusBadRequest).JSON(Error{
			Error:   "bad_request",
			Message: "limit must be between 1 and 100",
		})
	}

	top, err := s.counts.Top(c.UserContext(), limit)
	if err != nil {
		log.Errorf("read selection counts: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(Error{
			Error:   "internal_error",
			Message: "failed to read selection counts",
		})
	}

	out := Selections{Selections: make([]SelectionCount, 0, len(top))}
	for _, t := range top {
		out.Selections = append(out.Selections, SelectionCount{Country: t.Country, Selections: t.Selections})
	}
	return c.JSON(out)
}

// CountSelection records the requested view before the response cache can
// answer it. Unknown countries are not counted.
func (s *APIServer) CountSelection(c *fiber.Ctx) error {
	country := utils.CopyString(strings.TrimSpace(c.Query("country")))
	if country == "" || s.ds.HasCountry(country) {
		if err := s.counts.Add(context.WithoutCancel(c.UserContext()), country); err != nil {
			log.Warnf("count selection %q: %v", country, err)
		}
	}
	return c.Next()
}

func selection(params CountryParams) string {
	if params.Country == nil {
		return ""
	}
	return *params.Country
}

func sendFigure(c *fiber.Ctx, b []byte) error {
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSONCharsetUTF8)
	return c.Status(fiber.StatusOK).Send(b)
}
