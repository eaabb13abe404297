package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4" // import the Echo web framework to handle routing
	"github.com/redis/go-redis/v9"

	"github.com/iliyamo/studio-booking/internal/config"
	"github.com/iliyamo/studio-booking/internal/handler"    // import the handlers that implement business logic
	"github.com/iliyamo/studio-booking/internal/middleware" // import middleware for JWT authentication and role enforcement
)

// RegisterRoutes registers routes that do not require authentication on the
// provided Echo instance.  Currently it exposes only a health check.
func RegisterRoutes(e *echo.Echo) {
	// Load balancers and monitoring probes hit this endpoint to verify
	// that the service is up and running.
	e.GET("/healthz", handler.Health)
}

// RegisterBooking registers the guest-facing booking surface under /v1.
// All routes require a valid access token; any authenticated role may
// browse availability and book.  The commit endpoint additionally runs
// through the Redis token-bucket rate limiter so a single client cannot
// hammer the transactional booking path.
func RegisterBooking(e *echo.Echo, b *handler.BookingHandler, jwtSecret string, rl config.RateLimitConfig, rdb *redis.Client) {
	g := e.Group("/v1")
	// Apply the JWTAuth middleware to the protected group using the provided secret.
	g.Use(middleware.JWTAuth(jwtSecret))
	// Both guests and hosts may book rooms.  The middleware rejects
	// requests with missing or unknown roles.
	g.Use(middleware.RequireRole(middleware.RoleGuest, middleware.RoleHost))

	// Read-only availability evaluation used by the booking form.
	g.GET("/rooms/:id/availability", b.Availability)
	// Itemized price preview for the confirmation screen.  Nothing is
	// committed.
	g.POST("/rooms/:id/quote", b.Quote)
	// The authoritative booking commit.  Rate limited per user.
	g.POST("/rooms/:id/bookings", b.Commit, middleware.CommitRateLimit(rl, rdb))
}

// RegisterHost registers the host-facing room management surface under
// /v1/host.  Every route requires the HOST role; per-room ownership is
// verified inside the handlers.
func RegisterHost(e *echo.Echo, h *handler.HostHandler, jwtSecret string) {
	g := e.Group("/v1/host")
	g.Use(middleware.JWTAuth(jwtSecret))
	g.Use(middleware.RequireRole(middleware.RoleHost))

	// Weekly business hours: read the current week, replace it wholesale.
	g.GET("/rooms/:id/business-hours", h.GetBusinessHours)
	g.PUT("/rooms/:id/business-hours", h.PutBusinessHours)

	// Reservation overview for one room, newest first.
	g.GET("/rooms/:id/reservations", h.ListReservations)

	// Ad-hoc closures (maintenance, private events).
	g.GET("/rooms/:id/closures", h.ListClosures)
	g.POST("/rooms/:id/closures", h.CreateClosure)
	g.DELETE("/rooms/:id/closures/:closureId", h.DeleteClosure)

	// Price rules: time-of-day multipliers and per-weekday fixed fees.
	g.GET("/rooms/:id/price-rules", h.ListPriceRules)
	g.POST("/rooms/:id/price-rules", h.CreatePriceRule)
	g.DELETE("/rooms/:id/price-rules/:ruleId", h.DeletePriceRule)
}
