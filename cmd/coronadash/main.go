package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	fiberlog "github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/basicauth"
	"github.com/gofiber/fiber/v2/middleware/favicon"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/monitor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/template/html/v2"

	"github.com/ManuelReschke/CoronaDash/app/controllers"
	"github.com/ManuelReschke/CoronaDash/app/repository"
	apiv1 "github.com/ManuelReschke/CoronaDash/internal/api/v1"
	"github.com/ManuelReschke/CoronaDash/internal/pkg/cache"
	"github.com/ManuelReschke/CoronaDash/internal/pkg/constants"
	"github.com/ManuelReschke/CoronaDash/internal/pkg/database"
	"github.com/ManuelReschke/CoronaDash/internal/pkg/dataset"
	"github.com/ManuelReschke/CoronaDash/internal/pkg/env"
	"github.com/ManuelReschke/CoronaDash/internal/pkg/figure"
	"github.com/ManuelReschke/CoronaDash/internal/pkg/metrics/counter"
	"github.com/ManuelReschke/CoronaDash/internal/pkg/router"
	"github.com/ManuelReschke/CoronaDash/internal/pkg/selector"
)

func main() {
	env.SetupEnvFile()

	app, err := NewApplication()
	if err != nil {
		log.Fatal(err)
	}
	err = app.Listen(fmt.Sprintf("%s:%s", env.GetEnv("APP_HOST", "localhost"), env.GetEnv("APP_PORT", "4000")))
	log.Fatal(err)
}

// NewApplication wires the dashboard from the loaded environment
func NewApplication() (*fiber.App, error) {
	if env.IsDebug() {
		fiberlog.SetLevel(fiberlog.LevelDebug)
	}

	// Define possible base paths
	basePaths := []string{
		"./",        // Current directory
		"../../",    // From cmd/coronadash to project root
		"../../../", // Fallback
	}

	// Find the correct base path
	basePath := ""
	for _, path := range basePaths {
		if _, err := os.Stat(path + "views"); !os.IsNotExist(err) {
			basePath = path
			break
		}
	}

	if basePath == "" {
		return nil, fmt.Errorf("could not find project root directory")
	}

	// DATASET
	src, err := datasetSource(basePath)
	if err != nil {
		return nil, err
	}
	ds, err := dataset.Load(context.Background(), src, dataset.Options{
		Strict: env.GetEnvBool("DATASET_STRICT", false),
	})
	if err != nil {
		return nil, fmt.Errorf("load dataset from %s: %w", src.Name(), err)
	}
	sel := selector.New(ds)
	static, err := figure.NewStatic(ds)
	if err != nil {
		return nil, err
	}
	dashboard, err := controllers.NewDashboardController(ds, sel, static)
	if err != nil {
		return nil, err
	}

	cache.SetupCache()

	engine := html.New(basePath+"views", ".html")
	engine.Reload(env.IsDebug())

	// init fiber app
	app := fiber.New(fiber.Config{
		Views:   engine,
		AppName: "CoronaDash",
	})

	// no favicon shipped, answer 204 instead of hitting the router
	app.Use(favicon.New())

	// recovery and logging
	app.Use(recover.New(), logger.New())

	// fiber metrics
	app.Get(constants.MetricsRoute, metricsAuth(), monitor.New(monitor.Config{Title: "CoronaDash Metrics"}))

	// static files
	app.Static("/", basePath+"public/assets", fiber.Static{
		CacheDuration: 15 * time.Second,
		Compress:      true,
	})

	// SWAGGER / OPENAPI
	openAPICfg := swagger.Config{
		BasePath: "/docs/api/",
		FilePath: basePath + "public/docs/v1/openapi.yml",
		Path:     "v1",
		Title:    "CoronaDash API",
	}
	app.Use(swagger.New(openAPICfg))

	// ROUTER
	router.InstallRouter(app, router.Handlers{
		Dashboard:    dashboard,
		API:          apiv1.NewAPIServer(ds, sel, static, counter.New()),
		CacheStorage: cache.Storage(),
	})

	return app, nil
}

// datasetSource picks the CSV file or the case_records table per DATASET_SOURCE
func datasetSource(basePath string) (dataset.Source, error) {
	switch kind := env.GetEnv("DATASET_SOURCE", "csv"); kind {
	case "csv":
		path := env.GetEnv("DATASET_PATH", "data/cases.csv")
		if !filepath.IsAbs(path) {
			path = filepath.Join(basePath, path)
		}
		return dataset.CSVSource{Path: path}, nil
	case "db":
		if err := database.SetupDatabase(); err != nil {
			return nil, err
		}
		repo := repository.NewFactory(database.GetDB()).GetCaseRecordRepository()
		return dataset.DBSource{Repo: repo}, nil
	default:
		return nil, fmt.Errorf("unsupported DATASET_SOURCE %q", kind)
	}
}

// metricsAuth guards /metrics with basic auth once METRICS_PASSWORD is set
func metricsAuth() fiber.Handler {
	password := env.GetEnv("METRICS_PASSWORD", "")
	if password == "" {
		return func(c *fiber.Ctx) error { return c.Next() }
	}
	return basicauth.New(basicauth.Config{
		Users: map[string]string{
			env.GetEnv("METRICS_USER", "admin"): password,
		},
	})
}
