// Package gateway implements the stateless front door: it forwards every
// path under /api/v1.0/blogsite to the user or blog service by prefix and
// carries no business logic of its own.
package gateway

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/proxy"
	"github.com/google/uuid"
)

// Router forwards blogsite paths to the two backend services.
type Router struct {
	userServiceURL string
	blogServiceURL string
}

// New creates a Router targeting the given backend base URLs
// (e.g. http://localhost:8081).
func New(userServiceURL, blogServiceURL string) *Router {
	return &Router{
		userServiceURL: userServiceURL,
		blogServiceURL: blogServiceURL,
	}
}

// RegisterRoutes wires the forwarding rules. The blog service owns several
// paths under /user (blogs/add, getall, delete), so those are registered
// before the user-service wildcard.
func (r *Router) RegisterRoutes(app *fiber.App) {
	base := app.Group("/api/v1.0/blogsite", requestID)

	base.All("/user/blogs/*", r.forward(r.blogServiceURL))
	base.All("/user/getall", r.forward(r.blogServiceURL))
	base.All("/user/delete/*", r.forward(r.blogServiceURL))
	base.All("/blogs/*", r.forward(r.blogServiceURL))
	base.All("/health", r.forward(r.blogServiceURL))
	base.All("/user/*", r.forward(r.userServiceURL))
}

// forward proxies the request to the target service, preserving the original
// path and query.
func (r *Router) forward(target string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return proxy.Do(c, target+c.OriginalURL())
	}
}

// requestID tags each forwarded request so the two services' logs can be
// correlated. An id supplied by the client is kept.
func requestID(c *fiber.Ctx) error {
	if c.Get(fiber.HeaderXRequestID) == "" {
		c.Request().Header.Set(fiber.HeaderXRequestID, uuid.New().String())
	}
	return c.Next()
}
