package model

import "time"

// BusinessHourRow is one weekday's slice of a room's recurring weekly
// schedule.  Exactly one row exists per room per DayIndex.  When
// Holiday is set the open/close times are ignored and the room cannot
// be booked on that weekday at all.  A Close of 00:00 means 24:00, so
// a row open 00:00–00:00 covers the whole day.
//
// Fields:
//  ID       – primary key identifier.
//  RoomID   – room the row belongs to.
//  DayIndex – weekday, 1=Monday .. 7=Sunday.
//  Open     – opening clock time (nil when Holiday).
//  Close    – closing clock time, exclusive (nil when Holiday).
//  Holiday  – the room does not open on this weekday.
type BusinessHourRow struct {
    ID       uint64        // room_business_hours.id
    RoomID   uint64        // room_business_hours.room_id
    DayIndex int           // room_business_hours.day_index (1=Mon..7=Sun)
    Open     *ClockMinutes // room_business_hours.open_time (nullable)
    Close    *ClockMinutes // room_business_hours.close_time (nullable)
    Holiday  bool          // room_business_hours.holiday
}

// WeeklySchedule indexes one room's business-hour rows by DayIndex for
// O(1) weekday lookups.  Slots may be nil when a weekday has never
// been configured; the scheduler treats a missing row as closed.
type WeeklySchedule [8]*BusinessHourRow // index 1..7, slot 0 unused

// Row returns the row for the given DayIndex, or nil.
func (w WeeklySchedule) Row(dayIndex int) *BusinessHourRow {
    if dayIndex < 1 || dayIndex > 7 {
        return nil
    }
    return w[dayIndex]
}

// DayIndexOf maps a Go weekday (Sunday=0) onto the 1=Mon..7=Sun
// numbering used by business-hour rows.
func DayIndexOf(wd time.Weekday) int {
    if wd == time.Sunday {
        return 7
    }
    return int(wd)
}
