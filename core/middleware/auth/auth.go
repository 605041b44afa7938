package auth

import "github.com/gofiber/fiber/v2"

// Header is the HTTP header carrying the API key.
const Header = "X-Api-Key"

// Config holds configuration for the auth middleware.
type Config struct {
	// ApiKey is the expected key. Empty disables authentication entirely.
	ApiKey string
}

// New returns a middleware that rejects requests without the configured API
// key. When no key is configured the middleware is a pass-through.
func New(cfg Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if cfg.ApiKey == "" {
			return c.Next()
		}
		if c.Get(Header) != cfg.ApiKey {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "invalid or missing API key",
			})
		}
		return c.Next()
	}
}
