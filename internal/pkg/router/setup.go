package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ManuelReschke/CoronaDash/app/controllers"
	apiv1 "github.com/ManuelReschke/CoronaDash/internal/api/v1"
)

type Router interface {
	InstallRouter(app *fiber.App)
}

// Handlers carries everything the routers serve. It is built once at startup.
type Handlers struct {
	Dashboard *controllers.DashboardController
	API       *apiv1.APIServer
	// CacheStorage backs the figure response cache, nil keeps it in memory
	CacheStorage fiber.Storage
}

func InstallRouter(app *fiber.App, h Handlers) {
	setup(app, NewHttpRouter(h.Dashboard), NewApiRouter(h.API, h.CacheStorage))
}

func setup(app *fiber.App, router ...Router) {
	for _, r := range router {
		r.InstallRouter(app)
	}
}
