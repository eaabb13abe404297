package handler

import (
    "errors"
    "net/http"
    "time"

    "github.com/labstack/echo/v4"

    "github.com/iliyamo/studio-booking/internal/model"
    "github.com/iliyamo/studio-booking/internal/repository"
)

// maxClosureSpan caps a single closure.  Long-term unavailability
// should be modeled through business hours, not an open-ended block.
const maxClosureSpan = 90 * 24 * time.Hour

type closurePayload struct {
    // Timed form.
    StartAt string `json:"start_at,omitempty"`
    EndAt   string `json:"end_at,omitempty"`
    // All-day form: whole calendar days, end date inclusive.
    StartDate string `json:"start_date,omitempty"`
    EndDate   string `json:"end_date,omitempty"`
    Reason    string `json:"reason"`
}

// ListClosures handles GET /v1/host/rooms/:id/closures.
func (h *HostHandler) ListClosures(c echo.Context) error {
    room := h.ownedRoom(c)
    if room == nil {
        return nil
    }
    closures, err := h.ClosureRepo.ListByRoom(c.Request().Context(), room.ID)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
    }
    out := make([]echo.Map, 0, len(closures))
    for _, cl := range closures {
        out = append(out, echo.Map{
            "id":       cl.ID,
            "start_at": cl.StartAt.UTC().Format(time.RFC3339),
            "end_at":   cl.EndAt.UTC().Format(time.RFC3339),
            "reason":   cl.Reason,
        })
    }
    return c.JSON(http.StatusOK, echo.Map{"room_id": room.ID, "closures": out})
}

// CreateClosure handles POST /v1/host/rooms/:id/closures.  The payload
// is either timed (start_at/end_at) or all-day (start_date/end_date,
// end inclusive, expanded to midnight-to-midnight).  A closure that
// overlaps an existing closure is rejected with 409.
func (h *HostHandler) CreateClosure(c echo.Context) error {
    room := h.ownedRoom(c)
    if room == nil {
        return nil
    }
    var body closurePayload
    if err := c.Bind(&body); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
    }

    start, end, err := body.window()
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
    }
    if !start.Before(end) {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "end must be after start"})
    }
    if end.Sub(start) > maxClosureSpan {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "closure span too long (max 90 days)"})
    }

    closure := &model.Closure{RoomID: room.ID, StartAt: start, EndAt: end, Reason: body.Reason}
    if err := h.ClosureRepo.Create(c.Request().Context(), closure); err != nil {
        if errors.Is(err, repository.ErrClosureConflict) {
            return c.JSON(http.StatusConflict, echo.Map{"error": "overlaps an existing closure"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
    }
    return c.JSON(http.StatusCreated, echo.Map{"id": closure.ID})
}

// window resolves the payload into a half-open [start, end) interval.
func (p closurePayload) window() (time.Time, time.Time, error) {
    if p.StartDate != "" || p.EndDate != "" {
        startDay, err := time.Parse("2006-01-02", p.StartDate)
        if err != nil {
            return time.Time{}, time.Time{}, errors.New("invalid start_date")
        }
        endDay, err := time.Parse("2006-01-02", p.EndDate)
        if err != nil {
            return time.Time{}, time.Time{}, errors.New("invalid end_date")
        }
        // End date is inclusive: block through the following midnight.
        return startDay, endDay.AddDate(0, 0, 1), nil
    }
    start, err := parseTimestamp(p.StartAt)
    if err != nil {
        return time.Time{}, time.Time{}, errors.New("invalid start_at")
    }
    end, err := parseTimestamp(p.EndAt)
    if err != nil {
        return time.Time{}, time.Time{}, errors.New("invalid end_at")
    }
    return start, end, nil
}

// DeleteClosure handles DELETE /v1/host/rooms/:id/closures/:closureId.
func (h *HostHandler) DeleteClosure(c echo.Context) error {
    room := h.ownedRoom(c)
    if room == nil {
        return nil
    }
    closureID, ok := paramID(c, "closureId")
    if !ok {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid closure id"})
    }
    err := h.ClosureRepo.Delete(c.Request().Context(), room.ID, closureID)
    if errors.Is(err, repository.ErrClosureNotFound) {
        return c.JSON(http.StatusNotFound, echo.Map{"error": "closure not found"})
    }
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
    }
    return c.NoContent(http.StatusNoContent)
}
