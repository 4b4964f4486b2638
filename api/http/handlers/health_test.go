package handlers_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thesanmark/auth-api/api/http/handlers"
	"github.com/thesanmark/auth-api/pkg/health"
)

type failingChecker struct{ err error }

func (c failingChecker) Name() string                  { return "failing" }
func (c failingChecker) Check(_ context.Context) error { return c.err }

func TestHealthProbe(t *testing.T) {
	app := fiber.New()
	h := handlers.NewHealthHandler(health.NewService())
	app.Get("/health", h.Health)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestReadyProbe(t *testing.T) {
	app := fiber.New()

	t.Run("ready", func(t *testing.T) {
		h := handlers.NewHealthHandler(health.NewService())
		app.Get("/ready", h.Ready)
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/ready", nil), -1)
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("dependency down", func(t *testing.T) {
		down := fiber.New()
		h := handlers.NewHealthHandler(health.NewService(failingChecker{err: errors.New("connection refused")}))
		down.Get("/ready", h.Ready)
		resp, err := down.Test(httptest.NewRequest(http.MethodGet, "/ready", nil), -1)
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	})
}
