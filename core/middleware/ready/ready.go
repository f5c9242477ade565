// Package ready gates routes on the presence of a published snapshot.
package ready

import (
	"ornithe-meta/core/snapshot"

	"github.com/gofiber/fiber/v2"
)

const localsKey = "snapshot"

// Source returns the currently published snapshot.
type Source interface {
	Current() *snapshot.Snapshot
}

// New answers 503 until src has a snapshot and otherwise pins the current
// snapshot to the request, so every read in one request sees the same data.
func New(src Source) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if Snapshot(c) != nil {
			return c.Next()
		}
		snap := src.Current()
		if snap == nil {
			c.Set(fiber.HeaderRetryAfter, "5")
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"error": "version index is not available yet",
			})
		}
		c.Locals(localsKey, snap)
		return c.Next()
	}
}

// Snapshot returns the snapshot pinned by New.
func Snapshot(c *fiber.Ctx) *snapshot.Snapshot {
	snap, _ := c.Locals(localsKey).(*snapshot.Snapshot)
	return snap
}
