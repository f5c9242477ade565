package ready_test

import (
	"net/http/httptest"
	"testing"

	"ornithe-meta/core/middleware/ready"
	"ornithe-meta/core/snapshot"
	"ornithe-meta/core/snapshot/snapshottest"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReady(t *testing.T) {
	store := snapshot.NewStore()
	app := fiber.New()
	app.Use(ready.New(store))
	app.Get("/", func(c *fiber.Ctx) error {
		if ready.Snapshot(c) == nil {
			return c.SendStatus(fiber.StatusInternalServerError)
		}
		return c.SendStatus(fiber.StatusNoContent)
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusServiceUnavailable, resp.StatusCode)
	assert.Equal(t, "5", resp.Header.Get("Retry-After"))

	store.Publish(snapshottest.NewFixture().MustBuild(t))

	resp, err = app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
}

func TestReady_KeepsPinnedSnapshot(t *testing.T) {
	app := fiber.New()
	app.Use(ready.New(snapshottest.NewFixture().Store(t)))
	app.Use(ready.New(snapshot.NewStore()))
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusNoContent)
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
}
