package model

import "time"

// Closure marks a room as unavailable for a half-open time range,
// typically for maintenance or holidays.  Closures are created by the
// host, are immutable except for deletion, and block bookings the same
// way reservations do.
//
// Fields:
//  ID        – primary key identifier.
//  RoomID    – room being closed.
//  StartAt   – inclusive start of the closed range.
//  EndAt     – exclusive end of the closed range.
//  Reason    – free-form explanation shown to the host.
//  CreatedAt – creation timestamp.
type Closure struct {
    ID        uint64    // closures.id
    RoomID    uint64    // closures.room_id
    StartAt   time.Time // closures.start_at
    EndAt     time.Time // closures.end_at
    Reason    string    // closures.reason
    CreatedAt time.Time // closures.created_at
}

// Interval returns the closed range as a half-open interval.
func (c Closure) Interval() Interval {
    return Interval{Start: c.StartAt, End: c.EndAt}
}
