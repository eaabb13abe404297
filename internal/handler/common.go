// Package handler implements the HTTP layer.  Handlers parse and
// validate input, delegate to the booking core and repositories, and
// map domain outcomes onto HTTP statuses.  JWT authentication and role
// checks have already run in middleware by the time a handler is
// invoked.
package handler

import (
    "errors"
    "net/http"
    "strconv"
    "time"

    "github.com/labstack/echo/v4"

    "github.com/iliyamo/studio-booking/internal/repository"
)

// paramID parses a positive numeric path parameter.
func paramID(c echo.Context, name string) (uint64, bool) {
    id, err := strconv.ParseUint(c.Param(name), 10, 64)
    return id, err == nil && id > 0
}

// parseTimestamp accepts RFC 3339 ("2026-03-02T10:00:00Z") and the
// zoneless calendar form the booking UI sends ("2026-03-02T10:00"),
// interpreted as UTC.  The result is always normalized to UTC: stored
// timestamps, clock windows and the scheduler's day-boundary walk all
// use the UTC calendar, so a client-supplied offset must not leak
// past this point.
func parseTimestamp(s string) (time.Time, error) {
    if t, err := time.Parse(time.RFC3339, s); err == nil {
        return t.UTC(), nil
    }
    t, err := time.Parse("2006-01-02T15:04", s)
    if err != nil {
        return time.Time{}, err
    }
    return t.UTC(), nil
}

// roomErrorResponse maps room-lookup sentinel errors onto HTTP
// responses, returning true when it wrote one.
func roomErrorResponse(c echo.Context, err error) bool {
    switch {
    case errors.Is(err, repository.ErrRoomNotFound):
        _ = c.JSON(http.StatusNotFound, echo.Map{"error": "room not found"})
    case errors.Is(err, repository.ErrForbidden):
        _ = c.JSON(http.StatusForbidden, echo.Map{"error": "you do not own this room"})
    default:
        return false
    }
    return true
}
