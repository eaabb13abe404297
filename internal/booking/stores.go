package booking

import (
    "context"

    "github.com/iliyamo/studio-booking/internal/model"
)

// ReservationStore is the core's view of reservation persistence.
// ListActiveOverlapping is advisory (used for early rejection);
// InsertIfNoOverlap is the authoritative primitive: it must atomically
// re-check for overlapping non-canceled reservations and insert only
// when none exist, so that two racing commits can never both succeed.
type ReservationStore interface {
    ListActiveOverlapping(ctx context.Context, roomID uint64, iv model.Interval) ([]model.Reservation, error)
    InsertIfNoOverlap(ctx context.Context, res *model.Reservation) (bool, error)
}

// ClosureStore reads host-created closures that overlap an interval.
type ClosureStore interface {
    ListOverlapping(ctx context.Context, roomID uint64, iv model.Interval) ([]model.Closure, error)
}

// BusinessHourStore reads a room's weekly recurring schedule.
type BusinessHourStore interface {
    WeeklySchedule(ctx context.Context, roomID uint64) (model.WeeklySchedule, error)
}

// PriceRuleStore reads the pricing rules attached to a room.
type PriceRuleStore interface {
    RulesByRoom(ctx context.Context, roomID uint64) ([]model.PriceRule, error)
}
