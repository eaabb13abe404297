// Package model holds the persistence-facing domain types shared by
// the repositories, the booking core and the HTTP handlers.
package model

import "time"

// Interval is a half-open time range [Start, End).  The end instant is
// excluded, so back-to-back intervals such as [10:00,11:00) and
// [11:00,12:00) do not overlap.
type Interval struct {
    Start time.Time
    End   time.Time
}

// NewInterval builds an interval from its endpoints.
func NewInterval(start, end time.Time) Interval {
    return Interval{Start: start, End: end}
}

// Valid reports whether the interval has positive length.
func (iv Interval) Valid() bool {
    return iv.Start.Before(iv.End)
}

// Overlaps reports whether iv and other share at least one instant.
// Sharing only a boundary point is not an overlap.
func (iv Interval) Overlaps(other Interval) bool {
    return iv.Start.Before(other.End) && other.Start.Before(iv.End)
}

// Intersect returns the overlapping part of iv and other.  The second
// return value is false when the intervals do not overlap.
func (iv Interval) Intersect(other Interval) (Interval, bool) {
    start := iv.Start
    if other.Start.After(start) {
        start = other.Start
    }
    end := iv.End
    if other.End.Before(end) {
        end = other.End
    }
    if !start.Before(end) {
        return Interval{}, false
    }
    return Interval{Start: start, End: end}, true
}

// Minutes returns the interval length in whole minutes, zero for an
// invalid interval.
func (iv Interval) Minutes() float64 {
    if !iv.Valid() {
        return 0
    }
    return iv.End.Sub(iv.Start).Minutes()
}

// Hours returns the interval length in fractional hours, zero for an
// invalid interval.
func (iv Interval) Hours() float64 {
    if !iv.Valid() {
        return 0
    }
    return iv.End.Sub(iv.Start).Hours()
}
