package middleware

import (
    "net/http"

    "github.com/labstack/echo/v4"
)

// Roles recognized in the JWT "role" claim.  Guests book rooms; hosts
// additionally manage schedules, closures and price rules for rooms
// they own.
const (
    RoleGuest = "GUEST"
    RoleHost  = "HOST"
)

// RequireRole enforces that the authenticated user carries one of the
// given roles.  It assumes JWTAuth already stored the role in the
// context; a missing or unknown role is rejected with 403.
func RequireRole(roles ...string) echo.MiddlewareFunc {
    allowed := make(map[string]bool, len(roles))
    for _, r := range roles {
        allowed[r] = true
    }
    return func(next echo.HandlerFunc) echo.HandlerFunc {
        return func(c echo.Context) error {
            role, ok := c.Get("role").(string)
            if !ok || !allowed[role] {
                return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
            }
            return next(c)
        }
    }
}
