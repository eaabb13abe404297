package model

import "time"

// Reservation statuses.  A reservation is created as booked, moves to
// paid when the external payment flow settles, and to canceled when the
// guest or host cancels.  Only non-canceled rows participate in
// overlap checks; a reservation's time range never changes after
// creation.
const (
    ReservationBooked   = "booked"
    ReservationPaid     = "paid"
    ReservationCanceled = "canceled"
)

// Reservation records a guest's booking of a room for a half-open
// time range.
//
// Fields:
//  ID        – primary key identifier.
//  RoomID    – room being booked.
//  UserID    – guest who made the booking.
//  StartAt   – inclusive start of the booked range.
//  EndAt     – exclusive end of the booked range.
//  Status    – booked, paid or canceled.
//  Amount    – final charged amount (subtotal + tax) in whole currency units.
//  CreatedAt – creation timestamp.
//  UpdatedAt – last update timestamp.
type Reservation struct {
    ID        uint64    // reservations.id
    RoomID    uint64    // reservations.room_id
    UserID    uint64    // reservations.user_id
    StartAt   time.Time // reservations.start_at
    EndAt     time.Time // reservations.end_at
    Status    string    // reservations.status
    Amount    int64     // reservations.amount
    CreatedAt time.Time // reservations.created_at
    UpdatedAt time.Time // reservations.updated_at
}

// Interval returns the reserved range as a half-open interval.
func (r Reservation) Interval() Interval {
    return Interval{Start: r.StartAt, End: r.EndAt}
}

// Active reports whether the reservation still blocks the room.
func (r Reservation) Active() bool {
    return r.Status != ReservationCanceled
}
