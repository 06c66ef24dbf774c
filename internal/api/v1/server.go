package apiv1

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
)

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// (GET /ping)
	GetPing(c *fiber.Ctx) error
	// (GET /countries)
	GetCountries(c *fiber.Ctx) error
	// (GET /totals)
	GetTotals(c *fiber.Ctx) error
	// (GET /snapshot)
	GetSnapshot(c *fiber.Ctx) error
	// (GET /series)
	GetSeries(c *fiber.Ctx, params CountryParams) error
	// (GET /figures/map)
	GetMapFigure(c *fiber.Ctx) error
	// (GET /figures/totals)
	GetTotalsFigure(c *fiber.Ctx) error
	// (GET /figures/country)
	GetCountryFigure(c *fiber.Ctx, params CountryParams) error
	// (GET /selections)
	GetSelections(c *fiber.Ctx, params SelectionsParams) error
}

// ServerInterfaceWrapper converts fiber contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

func (siw *ServerInterfaceWrapper) GetPing(c *fiber.Ctx) error {
	return siw.Handler.GetPing(c)
}

func (siw *ServerInterfaceWrapper) GetCountries(c *fiber.Ctx) error {
	return siw.Handler.GetCountries(c)
}

func (siw *ServerInterfaceWrapper) GetTotals(c *fiber.Ctx) error {
	return siw.Handler.GetTotals(c)
}

func (siw *ServerInterfaceWrapper) GetSnapshot(c *fiber.Ctx) error {
	return siw.Handler.GetSnapshot(c)
}

func (siw *ServerInterfaceWrapper) GetSeries(c *fiber.Ctx) error {
	return siw.Handler.GetSeries(c, countryParams(c))
}

func (siw *ServerInterfaceWrapper) GetMapFigure(c *fiber.Ctx) error {
	return siw.Handler.GetMapFigure(c)
}

func (siw *ServerInterfaceWrapper) GetTotalsFigure(c *fiber.Ctx) error {
	return siw.Handler.GetTotalsFigure(c)
}

func (siw *ServerInterfaceWrapper) GetCountryFigure(c *fiber.Ctx) error {
	return siw.Handler.GetCountryFigure(c, countryParams(c))
}

func (siw *ServerInterfaceWrapper) GetSelections(c *fiber.Ctx) error {
	var params SelectionsParams
	if raw := c.Query("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(Error{
				Error:   "bad_request",
				Message: fmt.Sprintf("Invalid format for parameter limit: %s", err),
			})
		}
		params.Limit = &limit
	}
	return siw.Handler.GetSelections(c, params)
}

func countryParams(c *fiber.Ctx) CountryParams {
	var params CountryParams
	if raw := c.Query("country"); raw != "" {
		// fiber reuses the query buffer once the handler returns
		v := utils.CopyString(strings.TrimSpace(raw))
		params.Country = &v
	}
	return params
}

// FiberServerOptions provides options for the Fiber server.
type FiberServerOptions struct {
	BaseURL     string
	Middlewares []fiber.Handler
}

// RegisterHandlers mounts every route documented in openapi.yml.
func RegisterHandlers(router fiber.Router, si ServerInterface) {
	RegisterHandlersWithOptions(router, si, FiberServerOptions{})
}

// RegisterHandlersWithOptions creates http.Handler with additional options
func RegisterHandlersWithOptions(router fiber.Router, si ServerInterface, options FiberServerOptions) {
	wrapper := ServerInterfaceWrapper{
		Handler: si,
	}

	for _, m := range options.Middlewares {
		router.Use(m)
	}

	router.Get(options.BaseURL+"/ping", wrapper.GetPing)
	router.Get(options.BaseURL+"/countries", wrapper.GetCountries)
	router.Get(options.BaseURL+"/totals", wrapper.GetTotals)
	router.Get(options.BaseURL+"/snapshot", wrapper.GetSnapshot)
	router.Get(options.BaseURL+"/series", wrapper.GetSeries)
	router.Get(options.BaseURL+"/figures/map", wrapper.GetMapFigure)
	router.Get(options.BaseURL+"/figures/totals", wrapper.GetTotalsFigure)
	router.Get(options.BaseURL+"/figures/country", wrapper.GetCountryFigure)
	router.Get(options.BaseURL+"/selections", wrapper.GetSelections)
}
