package booking

import (
    "context"
    "fmt"
    "sync"
    "time"

    "github.com/iliyamo/studio-booking/internal/model"
)

// Coordinator orchestrates availability checking, pricing and the
// concurrency-safe commit of a booking.  Availability checks and
// pricing are pure reads and run freely in parallel; the only guarded
// step is the final insert, which holds a per-room mutex around the
// store's atomic insert-iff-no-overlap primitive.  The pre-commit
// availability check is advisory (fast user-facing rejection); the
// authoritative overlap check is the one the store performs inside
// InsertIfNoOverlap.
type Coordinator struct {
    checker      *AvailabilityChecker
    tariff       *TariffEngine
    reservations ReservationStore
    rules        PriceRuleStore

    adminFeeRatePercent float64

    mu        sync.Mutex
    roomLocks map[uint64]*sync.Mutex
}

// Rates carries the externally validated pricing percentages.
type Rates struct {
    TaxRatePercent      float64
    AdminFeeRatePercent float64
}

// NewCoordinator wires the coordinator to its stores.
func NewCoordinator(reservations ReservationStore, closures ClosureStore, hours BusinessHourStore, rules PriceRuleStore, rates Rates) *Coordinator {
    if rules == nil {
        panic("nil price rule store passed to NewCoordinator")
    }
    return &Coordinator{
        checker:             NewAvailabilityChecker(reservations, closures, hours),
        tariff:              &TariffEngine{TaxRatePercent: rates.TaxRatePercent},
        reservations:        reservations,
        rules:               rules,
        adminFeeRatePercent: rates.AdminFeeRatePercent,
        roomLocks:           map[uint64]*sync.Mutex{},
    }
}

// Evaluate is the read-only availability check used for pre-submit
// validation.  It never mutates anything and its acceptance is not a
// promise: a later commit can still lose a race.
func (c *Coordinator) Evaluate(ctx context.Context, roomID uint64, start, end time.Time) (Decision, error) {
    return c.checker.Check(ctx, roomID, model.Interval{Start: start, End: end})
}

// Quote evaluates availability and, when accepted, prices the interval
// without committing anything.  Used by the confirmation screen.
func (c *Coordinator) Quote(ctx context.Context, room model.Room, start, end time.Time) (Decision, *model.BookingQuote, error) {
    iv := model.Interval{Start: start, End: end}
    dec, err := c.checker.Check(ctx, room.ID, iv)
    if err != nil || !dec.Accepted {
        return dec, nil, err
    }
    rules, err := c.rules.RulesByRoom(ctx, room.ID)
    if err != nil {
        return Decision{}, nil, fmt.Errorf("load price rules: %w", err)
    }
    quote, err := c.tariff.BuildQuote(room, iv, rules)
    if err != nil {
        return Decision{}, nil, err
    }
    return dec, quote, nil
}

// CommitRequest is the input to CommitBooking.  Room carries the base
// hourly price; UserID identifies the guest the reservation belongs to.
type CommitRequest struct {
    Room   model.Room
    UserID uint64
    Start  time.Time
    End    time.Time
}

// CommitResult is the terminal outcome of a booking attempt: either
// Committed with the persisted reservation and its quote, or rejected
// with a reason.  AdminFee is the platform's cut of the subtotal,
// reported for downstream sales accounting and never charged to the
// guest on top of the quote.
type CommitResult struct {
    Committed     bool
    Reason        RejectionKind
    ReservationID uint64
    Quote         *model.BookingQuote
    AdminFee      int64
}

// CommitBooking runs the full request lifecycle: validate, price, then
// atomically commit.  Losing the commit race surfaces as a
// reservation-overlap rejection exactly as if the availability check
// had failed, and the pricing work is discarded; the caller retries
// with a fresh request.
func (c *Coordinator) CommitBooking(ctx context.Context, req CommitRequest) (*CommitResult, error) {
    dec, quote, err := c.Quote(ctx, req.Room, req.Start, req.End)
    if err != nil {
        return nil, err
    }
    if !dec.Accepted {
        return &CommitResult{Reason: dec.Reason}, nil
    }

    res := &model.Reservation{
        RoomID:  req.Room.ID,
        UserID:  req.UserID,
        StartAt: req.Start,
        EndAt:   req.End,
        Status:  model.ReservationBooked,
        Amount:  quote.Amount,
    }

    // Exclusion is scoped to the re-check + insert only; pricing above
    // ran unlocked.
    lock := c.roomLock(req.Room.ID)
    lock.Lock()
    ok, err := c.reservations.InsertIfNoOverlap(ctx, res)
    lock.Unlock()
    if err != nil {
        return nil, fmt.Errorf("commit reservation: %w", err)
    }
    if !ok {
        return &CommitResult{Reason: RejectReservationOverlap}, nil
    }

    return &CommitResult{
        Committed:     true,
        ReservationID: res.ID,
        Quote:         quote,
        AdminFee:      roundCurrency(float64(quote.Subtotal) * c.adminFeeRatePercent / 100),
    }, nil
}

// roomLock returns the mutex guarding commits for one room, creating
// it on first use.
func (c *Coordinator) roomLock(roomID uint64) *sync.Mutex {
    c.mu.Lock()
    defer c.mu.Unlock()
    l, ok := c.roomLocks[roomID]
    if !ok {
        l = &sync.Mutex{}
        c.roomLocks[roomID] = l
    }
    return l
}
