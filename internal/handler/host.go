package handler

import (
    "net/http"

    "github.com/labstack/echo/v4"

    "github.com/iliyamo/studio-booking/internal/middleware"
    "github.com/iliyamo/studio-booking/internal/model"
    "github.com/iliyamo/studio-booking/internal/repository"
)

// HostHandler groups the repositories behind the host-facing room
// management surface: weekly business hours, closures, price rules
// and the reservation overview.  Every method resolves the room and
// verifies ownership before touching anything else.
type HostHandler struct {
    RoomRepo        *repository.RoomRepo
    HourRepo        *repository.BusinessHourRepo
    ClosureRepo     *repository.ClosureRepo
    RuleRepo        *repository.PriceRuleRepo
    ReservationRepo *repository.ReservationRepo
}

// NewHostHandler constructs a HostHandler.  All dependencies must be
// non-nil.
func NewHostHandler(rooms *repository.RoomRepo, hours *repository.BusinessHourRepo, closures *repository.ClosureRepo, rules *repository.PriceRuleRepo, reservations *repository.ReservationRepo) *HostHandler {
    if rooms == nil || hours == nil || closures == nil || rules == nil || reservations == nil {
        panic("nil repository passed to NewHostHandler")
    }
    return &HostHandler{RoomRepo: rooms, HourRepo: hours, ClosureRepo: closures, RuleRepo: rules, ReservationRepo: reservations}
}

// ownedRoom authenticates the caller, parses the room path parameter
// and verifies ownership.  It writes the error response itself and
// returns nil when the request must not proceed.
func (h *HostHandler) ownedRoom(c echo.Context) *model.Room {
    userID, ok := middleware.UserID(c)
    if !ok {
        _ = c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
        return nil
    }
    roomID, ok := paramID(c, "id")
    if !ok {
        _ = c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid room id"})
        return nil
    }
    room, err := h.RoomRepo.GetOwned(c.Request().Context(), roomID, userID)
    if err != nil {
        if !roomErrorResponse(c, err) {
            _ = c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
        }
        return nil
    }
    return room
}
