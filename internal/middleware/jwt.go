// Package middleware provides shared request processing: bearer-token
// verification, role enforcement and commit rate limiting.  Token
// issuance lives in the external identity service; this service only
// verifies.
package middleware

import (
    "net/http"
    "strconv"
    "strings"

    "github.com/golang-jwt/jwt/v5"
    "github.com/labstack/echo/v4"
)

// JWTAuth returns middleware that validates a Bearer access token
// signed with HS256 and injects the subject and role claims into the
// request context under "user_id" and "role".  Handlers read the
// numeric subject via UserID.
func JWTAuth(secret string) echo.MiddlewareFunc {
    return func(next echo.HandlerFunc) echo.HandlerFunc {
        return func(c echo.Context) error {
            auth := c.Request().Header.Get("Authorization")
            if !strings.HasPrefix(auth, "Bearer ") {
                return c.JSON(http.StatusUnauthorized, echo.Map{"error": "missing bearer token"})
            }
            raw := strings.TrimPrefix(auth, "Bearer ")

            tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
                if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
                    return nil, echo.ErrUnauthorized
                }
                return []byte(secret), nil
            })
            if err != nil || !tok.Valid {
                return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid token"})
            }
            claims, ok := tok.Claims.(jwt.MapClaims)
            if !ok {
                return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid claims"})
            }

            c.Set("user_id", claims["sub"])
            c.Set("role", claims["role"])
            return next(c)
        }
    }
}

// UserID extracts the authenticated user's numeric ID from the
// context.  The "sub" claim may arrive as a string or a JSON number
// depending on the issuer.
func UserID(c echo.Context) (uint64, bool) {
    switch v := c.Get("user_id").(type) {
    case string:
        id, err := strconv.ParseUint(v, 10, 64)
        return id, err == nil && id > 0
    case float64:
        if v < 1 {
            return 0, false
        }
        return uint64(v), true
    }
    return 0, false
}
