package rayid

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Header is the HTTP header carrying the ray ID.
const Header = "X-Ray-Id"

// New returns a middleware that assigns every request a ray ID. An incoming
// ID is kept so callers can propagate their own correlation IDs; otherwise a
// fresh UUID is generated. The ID is stored in Locals under "ray_id" and
// echoed in the response header.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		rid := c.Get(Header)
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Locals("ray_id", rid)
		c.Set(Header, rid)
		return c.Next()
	}
}
