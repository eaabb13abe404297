package handler

import (
    "context"
    "errors"
    "log"
    "net/http"
    "time"

    "github.com/labstack/echo/v4"

    "github.com/iliyamo/studio-booking/internal/booking"
    "github.com/iliyamo/studio-booking/internal/middleware"
    "github.com/iliyamo/studio-booking/internal/queue"
    "github.com/iliyamo/studio-booking/internal/repository"
    queuepublisher "github.com/iliyamo/studio-booking/internal/service"
)

// BookingHandler exposes the guest-facing booking flow: availability
// evaluation, quote preview and the authoritative commit.
type BookingHandler struct {
    RoomRepo    *repository.RoomRepo
    Coordinator *booking.Coordinator
    // PublishEvent is called best-effort after a successful commit.
    // Swappable for tests; defaults to the RabbitMQ publisher.
    PublishEvent func(ctx context.Context, ev queue.BookingCommittedEvent) error
}

// NewBookingHandler constructs a BookingHandler.  Both dependencies
// must be non-nil.
func NewBookingHandler(rooms *repository.RoomRepo, coord *booking.Coordinator) *BookingHandler {
    if rooms == nil || coord == nil {
        panic("nil dependency passed to NewBookingHandler")
    }
    return &BookingHandler{
        RoomRepo:     rooms,
        Coordinator:  coord,
        PublishEvent: queuepublisher.PublishBookingCommitted,
    }
}

// rangeRequest is the common start/end payload for quote and commit.
type rangeRequest struct {
    StartAt string `json:"start_at"`
    EndAt   string `json:"end_at"`
}

func (r rangeRequest) parse() (start, end time.Time, err error) {
    start, err = parseTimestamp(r.StartAt)
    if err != nil {
        return
    }
    end, err = parseTimestamp(r.EndAt)
    return
}

// Availability handles GET /v1/rooms/:id/availability?start=&end=.
// It runs the read-only evaluation used by the booking form before
// submit.  An accepted answer is advisory: the commit re-checks under
// exclusion.
func (h *BookingHandler) Availability(c echo.Context) error {
    roomID, ok := paramID(c, "id")
    if !ok {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid room id"})
    }
    start, err := parseTimestamp(c.QueryParam("start"))
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid start timestamp"})
    }
    end, err := parseTimestamp(c.QueryParam("end"))
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid end timestamp"})
    }
    if _, err := h.RoomRepo.GetByID(c.Request().Context(), roomID); err != nil {
        if roomErrorResponse(c, err) {
            return nil
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
    }

    dec, err := h.Coordinator.Evaluate(c.Request().Context(), roomID, start, end)
    if err != nil {
        log.Printf("availability: evaluate room %d: %v", roomID, err)
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "availability check failed"})
    }
    return c.JSON(http.StatusOK, dec)
}

// Quote handles POST /v1/rooms/:id/quote.  It evaluates availability
// and, when accepted, returns the full itemized price breakdown
// without committing anything.  This backs the confirmation screen.
func (h *BookingHandler) Quote(c echo.Context) error {
    roomID, ok := paramID(c, "id")
    if !ok {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid room id"})
    }
    var body rangeRequest
    if err := c.Bind(&body); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
    }
    start, end, err := body.parse()
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid timestamps"})
    }
    room, err := h.RoomRepo.GetByID(c.Request().Context(), roomID)
    if err != nil {
        if roomErrorResponse(c, err) {
            return nil
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
    }

    dec, quote, err := h.Coordinator.Quote(c.Request().Context(), *room, start, end)
    if err != nil {
        return h.pricingError(c, room.ID, err)
    }
    if !dec.Accepted {
        return c.JSON(http.StatusConflict, echo.Map{"accepted": false, "reason": dec.Reason})
    }
    return c.JSON(http.StatusOK, echo.Map{"accepted": true, "quote": quote})
}

// Commit handles POST /v1/rooms/:id/bookings, the authoritative
// concurrency-safe booking path.  On success it returns 201 with the
// reservation ID and quote; losing a race or failing any availability
// check returns 409 with the rejection reason.
func (h *BookingHandler) Commit(c echo.Context) error {
    userID, ok := middleware.UserID(c)
    if !ok {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
    }
    roomID, ok := paramID(c, "id")
    if !ok {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid room id"})
    }
    var body rangeRequest
    if err := c.Bind(&body); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
    }
    start, end, err := body.parse()
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid timestamps"})
    }
    room, err := h.RoomRepo.GetByID(c.Request().Context(), roomID)
    if err != nil {
        if roomErrorResponse(c, err) {
            return nil
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
    }

    result, err := h.Coordinator.CommitBooking(c.Request().Context(), booking.CommitRequest{
        Room: *room, UserID: userID, Start: start, End: end,
    })
    if err != nil {
        return h.pricingError(c, room.ID, err)
    }
    if !result.Committed {
        return c.JSON(http.StatusConflict, echo.Map{"status": "rejected", "reason": result.Reason})
    }

    // Publishing is best-effort: the booking is already durable and a
    // broker outage must not turn success into failure.
    if h.PublishEvent != nil {
        ev := queue.BookingCommittedEvent{
            ReservationID: result.ReservationID,
            RoomID:        room.ID,
            RoomName:      room.Name,
            UserID:        userID,
            StartAt:       start.UTC().Format(time.RFC3339),
            EndAt:         end.UTC().Format(time.RFC3339),
            Subtotal:      result.Quote.Subtotal,
            Tax:           result.Quote.Tax,
            Amount:        result.Quote.Amount,
            AdminFee:      result.AdminFee,
            CommittedAt:   time.Now().UTC().Format(time.RFC3339),
        }
        if err := h.PublishEvent(c.Request().Context(), ev); err != nil {
            log.Printf("booking: publish committed event for reservation %d: %v", result.ReservationID, err)
        }
    }

    return c.JSON(http.StatusCreated, echo.Map{
        "status":         "committed",
        "reservation_id": result.ReservationID,
        "quote":          result.Quote,
    })
}

// pricingError distinguishes administrative pricing misconfiguration
// from plain storage faults.  Both are server-side errors, but a rule
// problem is actionable by the host/admin and is labeled as such.
func (h *BookingHandler) pricingError(c echo.Context, roomID uint64, err error) error {
    var cfgErr *booking.RuleConfigError
    if errors.As(err, &cfgErr) {
        log.Printf("booking: room %d pricing misconfigured: %v", roomID, cfgErr)
        return c.JSON(http.StatusInternalServerError, echo.Map{
            "error":   "pricing configuration error",
            "rule_id": cfgErr.RuleID,
        })
    }
    log.Printf("booking: room %d: %v", roomID, err)
    return c.JSON(http.StatusInternalServerError, echo.Map{"error": "booking failed"})
}
