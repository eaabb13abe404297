package booking

import (
    "time"

    "github.com/iliyamo/studio-booking/internal/model"
)

// startOfDay returns midnight of t's calendar day in t's location.
func startOfDay(t time.Time) time.Time {
    return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// eachDaySegment invokes fn for every non-empty daily sub-interval of
// iv, in calendar order.  The walk uses (End - 1ns) for the last day so
// an interval ending exactly at midnight does not visit the following
// day; a boundary landing on midnight therefore contributes no
// zero-length segment.  fn returning false stops the walk early.
func eachDaySegment(iv model.Interval, fn func(day time.Time, seg model.Interval) bool) {
    d := startOfDay(iv.Start)
    last := startOfDay(iv.End.Add(-time.Nanosecond))
    for !d.After(last) {
        next := d.AddDate(0, 0, 1)
        seg, ok := iv.Intersect(model.Interval{Start: d, End: next})
        if ok && !fn(d, seg) {
            return
        }
        d = next
    }
}

// fitsWithinBusinessHours reports whether every daily segment of iv is
// fully contained in the room's open window for that weekday.  A
// missing row, a holiday row or an incomplete row closes the whole
// day, and partial coverage anywhere fails the whole interval.  A
// Close of 00:00 counts as 24:00 so rooms can stay open to midnight.
func fitsWithinBusinessHours(sched model.WeeklySchedule, iv model.Interval) bool {
    if !iv.Valid() {
        return false
    }
    fits := true
    eachDaySegment(iv, func(day time.Time, seg model.Interval) bool {
        row := sched.Row(model.DayIndexOf(day.Weekday()))
        if row == nil || row.Holiday || row.Open == nil || row.Close == nil {
            fits = false
            return false
        }
        openAt := row.Open.At(day)
        closeAt := row.Close.At(day)
        if *row.Close == 0 {
            closeAt = model.EndOfDay.At(day)
        }
        if !openAt.Before(closeAt) {
            fits = false
            return false
        }
        if seg.Start.Before(openAt) || seg.End.After(closeAt) {
            fits = false
            return false
        }
        return true
    })
    return fits
}
