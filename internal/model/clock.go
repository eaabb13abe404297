package model

import (
    "fmt"
    "time"
)

// ClockMinutes is a time of day expressed as minutes since midnight.
// It survives the round trip through MySQL TIME columns without the
// date and zone baggage of time.Time.
type ClockMinutes int

// EndOfDay is 24:00, the exclusive upper bound of a day.  Business
// hour and price rule windows store midnight-at-the-end as 00:00 and
// normalize it to EndOfDay when comparing.
const EndOfDay ClockMinutes = 24 * 60

// ParseClock parses "HH:MM" or "HH:MM:SS" (the form MySQL returns for
// TIME columns).  "24:00" is accepted as the end-of-day bound; seconds
// are ignored.
func ParseClock(s string) (ClockMinutes, error) {
    var h, m, sec int
    // Sscanf reports an error when the seconds field is absent; two
    // matched fields are enough.
    if n, _ := fmt.Sscanf(s, "%d:%d:%d", &h, &m, &sec); n < 2 {
        return 0, fmt.Errorf("invalid clock time %q", s)
    }
    if h == 24 && m == 0 {
        return EndOfDay, nil
    }
    if h < 0 || h > 23 || m < 0 || m > 59 {
        return 0, fmt.Errorf("invalid clock time %q", s)
    }
    return ClockMinutes(h*60 + m), nil
}

// String renders the time of day as "HH:MM".  EndOfDay renders as
// "24:00".
func (c ClockMinutes) String() string {
    return fmt.Sprintf("%02d:%02d", int(c)/60, int(c)%60)
}

// At anchors the time of day on the calendar date of d, in d's
// location.  EndOfDay.At(d) is midnight of the following day.
func (c ClockMinutes) At(d time.Time) time.Time {
    y, m, day := d.Date()
    return time.Date(y, m, day, 0, 0, 0, 0, d.Location()).Add(time.Duration(c) * time.Minute)
}
