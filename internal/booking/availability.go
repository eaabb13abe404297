package booking

import (
    "context"
    "fmt"

    "github.com/iliyamo/studio-booking/internal/model"
)

// AvailabilityChecker combines the three independent interval sources
// (existing reservations, closures, business-hour coverage) into a
// single accept/reject decision.  Checks run in a fixed order and the
// first failure wins, so every rejection carries exactly one reason.
type AvailabilityChecker struct {
    reservations ReservationStore
    closures     ClosureStore
    hours        BusinessHourStore
}

// NewAvailabilityChecker wires the checker to its stores.  All
// dependencies must be non-nil.
func NewAvailabilityChecker(reservations ReservationStore, closures ClosureStore, hours BusinessHourStore) *AvailabilityChecker {
    if reservations == nil || closures == nil || hours == nil {
        panic("nil store passed to NewAvailabilityChecker")
    }
    return &AvailabilityChecker{reservations: reservations, closures: closures, hours: hours}
}

// Check evaluates whether the interval may be booked.  The returned
// Decision is a business outcome; a non-nil error means a store could
// not be read and says nothing about availability.
func (a *AvailabilityChecker) Check(ctx context.Context, roomID uint64, iv model.Interval) (Decision, error) {
    if !iv.Valid() {
        return rejected(RejectInvalidRange), nil
    }

    existing, err := a.reservations.ListActiveOverlapping(ctx, roomID, iv)
    if err != nil {
        return Decision{}, fmt.Errorf("list overlapping reservations: %w", err)
    }
    for _, r := range existing {
        if r.Active() && r.Interval().Overlaps(iv) {
            return rejected(RejectReservationOverlap), nil
        }
    }

    closed, err := a.closures.ListOverlapping(ctx, roomID, iv)
    if err != nil {
        return Decision{}, fmt.Errorf("list overlapping closures: %w", err)
    }
    for _, c := range closed {
        if c.Interval().Overlaps(iv) {
            return rejected(RejectClosureOverlap), nil
        }
    }

    sched, err := a.hours.WeeklySchedule(ctx, roomID)
    if err != nil {
        return Decision{}, fmt.Errorf("load weekly schedule: %w", err)
    }
    if !fitsWithinBusinessHours(sched, iv) {
        return rejected(RejectOutsideBusinessHours), nil
    }

    return accepted(), nil
}
