package main

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ManuelReschke/CoronaDash/internal/pkg/env"
)

func withTestEnv(t *testing.T, vars map[string]string) {
	t.Helper()
	prev := env.Env
	t.Cleanup(func() { env.Env = prev })
	env.Env = vars
}

func TestNewApplication(t *testing.T) {
	withTestEnv(t, map[string]string{
		"DATASET_SOURCE": "csv",
		"DATASET_PATH":   "data/cases.csv",
		"CACHE_HOST":     "",
	})

	app, err := NewApplication()
	require.NoError(t, err)

	for _, target := range []string{"/", "/api/v1/ping", "/docs/api/v1", "/css/dashboard.css", "/metrics"} {
		resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, target, nil), -1)
		require.NoError(t, err, target)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode, target)
	}

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/?country=Germany", nil))
	require.NoError(t, err)
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(b), `<option value="Germany" selected>`)
}

func TestNewApplication_MissingDatasetFails(t *testing.T) {
	withTestEnv(t, map[string]string{
		"DATASET_SOURCE": "csv",
		"DATASET_PATH":   "data/does-not-exist.csv",
	})

	_, err := NewApplication()
	assert.Error(t, err)
}

func TestNewApplication_UnknownSourceFails(t *testing.T) {
	withTestEnv(t, map[string]string{"DATASET_SOURCE": "s3"})

	_, err := NewApplication()
	assert.ErrorContains(t, err, "unsupported DATASET_SOURCE")
}
