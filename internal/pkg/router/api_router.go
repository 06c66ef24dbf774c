package router

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cache"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/utils"

	apiv1 "github.com/ManuelReschke/CoronaDash/internal/api/v1"
	appcache "github.com/ManuelReschke/CoronaDash/internal/pkg/cache"
	"github.com/ManuelReschke/CoronaDash/internal/pkg/constants"
	"github.com/ManuelReschke/CoronaDash/internal/pkg/env"
)

type ApiRouter struct {
	server  *apiv1.APIServer
	storage fiber.Storage
}

func (h ApiRouter) InstallRouter(app *fiber.App) {
	api := app.Group(constants.APIRoute, limiter.New(limiter.Config{
		Max:        env.GetEnvInt("API_RATE_LIMIT", 120),
		Expiration: time.Minute,
	}))
	api.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
			"message": "Hello from api",
		})
	})

	// API v1 routes
	v1 := api.Group(constants.APIV1Route)
	// count every selection, then serve one cached line figure per selection
	v1.Use(constants.CountryFigureRoute, h.server.CountSelection, cache.New(cache.Config{
		Expiration:   appcache.TTL(),
		CacheControl: true,
		Storage:      h.storage,
		KeyGenerator: func(c *fiber.Ctx) string {
			return utils.CopyString(c.OriginalURL())
		},
	}))
	apiv1.RegisterHandlers(v1, h.server)
}

func NewApiRouter(server *apiv1.APIServer, storage fiber.Storage) *ApiRouter {
	return &ApiRouter{server: server, storage: storage}
}
