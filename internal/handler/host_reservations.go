package handler

import (
    "net/http"
    "strconv"
    "time"

    "github.com/labstack/echo/v4"

    "github.com/iliyamo/studio-booking/internal/model"
)

type reservationView struct {
    ID      uint64 `json:"id"`
    UserID  uint64 `json:"user_id"`
    StartAt string `json:"start_at"`
    EndAt   string `json:"end_at"`
    Status  string `json:"status"`
    Amount  int64  `json:"amount"`
}

func newReservationView(r model.Reservation) reservationView {
    return reservationView{
        ID:      r.ID,
        UserID:  r.UserID,
        StartAt: r.StartAt.UTC().Format(time.RFC3339),
        EndAt:   r.EndAt.UTC().Format(time.RFC3339),
        Status:  r.Status,
        Amount:  r.Amount,
    }
}

// ListReservations handles GET /v1/host/rooms/:id/reservations, the
// host's booking overview for one room.  Newest first; an optional
// ?limit= caps the page (the repository clamps unreasonable values).
func (h *HostHandler) ListReservations(c echo.Context) error {
    room := h.ownedRoom(c)
    if room == nil {
        return nil
    }
    limit, _ := strconv.Atoi(c.QueryParam("limit"))
    reservations, err := h.ReservationRepo.ListByRoom(c.Request().Context(), room.ID, limit)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
    }
    out := make([]reservationView, 0, len(reservations))
    for _, r := range reservations {
        out = append(out, newReservationView(r))
    }
    return c.JSON(http.StatusOK, echo.Map{"room_id": room.ID, "reservations": out})
}
