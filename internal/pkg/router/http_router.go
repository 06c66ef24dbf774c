package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ManuelReschke/CoronaDash/app/controllers"
	"github.com/ManuelReschke/CoronaDash/internal/pkg/constants"
)

type HttpRouter struct {
	dashboard *controllers.DashboardController
}

func (h HttpRouter) InstallRouter(app *fiber.App) {
	app.Get(constants.PublicRoute, h.dashboard.HandleIndex)
	app.Get(constants.CountryTableRoute, h.dashboard.HandleCountryTable)
}

func NewHttpRouter(dashboard *controllers.DashboardController) *HttpRouter {
	return &HttpRouter{dashboard: dashboard}
}
