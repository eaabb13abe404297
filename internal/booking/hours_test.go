package booking

import (
    "testing"
    "time"

    "github.com/iliyamo/studio-booking/internal/model"
)

// 2026-03-02 is a Monday; 2026-03-07 a Saturday; 2026-03-08 a Sunday.
func day(d, hour, min int) time.Time {
    return time.Date(2026, time.March, d, hour, min, 0, 0, time.UTC)
}

func clock(h, m int) model.ClockMinutes { return model.ClockMinutes(h*60 + m) }

func clockPtr(h, m int) *model.ClockMinutes {
    c := clock(h, m)
    return &c
}

func TestFitsWithinBusinessHours(t *testing.T) {
    nineToSix := openAllWeek(clock(9, 0), clock(18, 0))

    holidayTuesday := openAllWeek(clock(9, 0), clock(18, 0))
    holidayTuesday[2] = &model.BusinessHourRow{DayIndex: 2, Holiday: true}

    missingWednesday := openAllWeek(clock(9, 0), clock(18, 0))
    missingWednesday[3] = nil

    openToMidnight := openAllWeek(clock(9, 0), clock(0, 0)) // close 00:00 = 24:00

    cases := []struct {
        name       string
        sched      model.WeeklySchedule
        start, end time.Time
        want       bool
    }{
        {"inside open window", nineToSix, day(2, 10, 0), day(2, 12, 0), true},
        {"exactly the full window", nineToSix, day(2, 9, 0), day(2, 18, 0), true},
        {"one minute past close", nineToSix, day(2, 9, 0), day(2, 18, 1), false},
        {"one minute before open", nineToSix, day(2, 8, 59), day(2, 10, 0), false},
        {"holiday weekday rejected", holidayTuesday, day(3, 10, 0), day(3, 11, 0), false},
        {"missing row rejected", missingWednesday, day(4, 10, 0), day(4, 11, 0), false},
        {"multi-day must fit every day", holidayTuesday, day(2, 10, 0), day(3, 11, 0), false},
        {"close 00:00 keeps evening bookable", openToMidnight, day(2, 22, 0), day(3, 0, 0), true},
        {"end at midnight adds no next-day constraint", holidayTuesday, day(2, 10, 0), day(3, 0, 0), true},
        {"degenerate interval rejected", nineToSix, day(2, 10, 0), day(2, 10, 0), false},
    }
    for _, tc := range cases {
        t.Run(tc.name, func(t *testing.T) {
            got := fitsWithinBusinessHours(tc.sched, model.Interval{Start: tc.start, End: tc.end})
            if got != tc.want {
                t.Fatalf("fitsWithinBusinessHours(%s..%s) = %v, want %v", tc.start, tc.end, got, tc.want)
            }
        })
    }
}

func TestFitsWithinBusinessHoursOffsetInputNormalizedToUTC(t *testing.T) {
    // Monday 14:00-15:00 UTC expressed in a +09:00 zone is Monday
    // 23:00-00:00 local. Normalized to UTC it must get the UTC
    // verdict; the local calendar day never enters the walk.
    jst := time.FixedZone("UTC+9", 9*60*60)
    start := time.Date(2026, time.March, 2, 23, 0, 0, 0, jst)
    iv := model.Interval{Start: start.UTC(), End: start.Add(time.Hour).UTC()}
    if !fitsWithinBusinessHours(openAllWeek(clock(9, 0), clock(18, 0)), iv) {
        t.Fatal("UTC-normalized interval inside open hours was rejected")
    }
}

func TestFitsWithinBusinessHoursSpansMultipleOpenDays(t *testing.T) {
    allDay := openAllWeek(clock(0, 0), clock(0, 0))
    iv := model.Interval{Start: day(2, 12, 0), End: day(4, 12, 0)}
    if !fitsWithinBusinessHours(allDay, iv) {
        t.Fatal("a 24/7 schedule must accept a multi-day interval")
    }
}
