// Package rayid tags every request with a unique id.
package rayid

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	// Header is the request and response header carrying the ray id.
	Header = "X-Ray-ID"
	// LocalsKey is the fiber Locals key holding the ray id.
	LocalsKey = "ray_id"
)

// New returns the middleware. An incoming X-Ray-ID is kept so callers can
// correlate their own logs.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(Header)
		if id == "" || len(id) > 64 {
			id = uuid.NewString()
		}
		c.Locals(LocalsKey, id)
		c.Set(Header, id)
		return c.Next()
	}
}

// Get returns the ray id of the request.
func Get(c *fiber.Ctx) string {
	id, _ := c.Locals(LocalsKey).(string)
	return id
}
