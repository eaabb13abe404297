package model

import (
    "testing"
    "time"
)

func at(hour, min int) time.Time {
    return time.Date(2026, time.March, 2, hour, min, 0, 0, time.UTC)
}

func TestOverlapsSymmetry(t *testing.T) {
    cases := []struct {
        name string
        a, b Interval
        want bool
    }{
        {"disjoint", Interval{at(9, 0), at(10, 0)}, Interval{at(11, 0), at(12, 0)}, false},
        {"contained", Interval{at(9, 0), at(12, 0)}, Interval{at(10, 0), at(11, 0)}, true},
        {"partial", Interval{at(9, 0), at(11, 0)}, Interval{at(10, 0), at(12, 0)}, true},
        {"identical", Interval{at(9, 0), at(11, 0)}, Interval{at(9, 0), at(11, 0)}, true},
        {"back to back", Interval{at(10, 0), at(11, 0)}, Interval{at(11, 0), at(12, 0)}, false},
        {"single shared instant only", Interval{at(9, 0), at(11, 0)}, Interval{at(11, 0), at(11, 30)}, false},
    }
    for _, tc := range cases {
        t.Run(tc.name, func(t *testing.T) {
            if got := tc.a.Overlaps(tc.b); got != tc.want {
                t.Errorf("a.Overlaps(b) = %v, want %v", got, tc.want)
            }
            if tc.a.Overlaps(tc.b) != tc.b.Overlaps(tc.a) {
                t.Error("overlap is not symmetric")
            }
        })
    }
}

func TestIntersect(t *testing.T) {
    a := Interval{at(9, 0), at(11, 0)}
    b := Interval{at(10, 0), at(12, 0)}
    got, ok := a.Intersect(b)
    if !ok || !got.Start.Equal(at(10, 0)) || !got.End.Equal(at(11, 0)) {
        t.Fatalf("Intersect = %+v (%v), want [10:00,11:00)", got, ok)
    }
    if _, ok := a.Intersect(Interval{at(11, 0), at(12, 0)}); ok {
        t.Error("adjacent intervals reported a non-empty intersection")
    }
}

func TestIntervalDurations(t *testing.T) {
    iv := Interval{at(10, 0), at(11, 30)}
    if iv.Minutes() != 90 {
        t.Errorf("Minutes = %v, want 90", iv.Minutes())
    }
    if iv.Hours() != 1.5 {
        t.Errorf("Hours = %v, want 1.5", iv.Hours())
    }
    if (Interval{at(11, 0), at(10, 0)}).Minutes() != 0 {
        t.Error("inverted interval should report zero length")
    }
}

func TestParseClock(t *testing.T) {
    cases := []struct {
        in      string
        want    ClockMinutes
        wantErr bool
    }{
        {"09:00", 540, false},
        {"18:30", 1110, false},
        {"00:00", 0, false},
        {"24:00", EndOfDay, false},
        {"10:15:00", 615, false}, // MySQL TIME form
        {"25:00", 0, true},
        {"10:75", 0, true},
        {"noon", 0, true},
    }
    for _, tc := range cases {
        got, err := ParseClock(tc.in)
        if tc.wantErr {
            if err == nil {
                t.Errorf("ParseClock(%q) accepted invalid input", tc.in)
            }
            continue
        }
        if err != nil || got != tc.want {
            t.Errorf("ParseClock(%q) = %v, %v; want %v", tc.in, got, err, tc.want)
        }
    }
}

func TestClockAt(t *testing.T) {
    d := at(15, 45) // anchor day, time of day irrelevant
    if got := ClockMinutes(600).At(d); !got.Equal(at(10, 0)) {
        t.Errorf("At = %v, want 10:00", got)
    }
    if got := EndOfDay.At(d); !got.Equal(time.Date(2026, time.March, 3, 0, 0, 0, 0, time.UTC)) {
        t.Errorf("EndOfDay.At = %v, want next midnight", got)
    }
}

func TestDayIndexOf(t *testing.T) {
    if DayIndexOf(time.Monday) != 1 || DayIndexOf(time.Saturday) != 6 || DayIndexOf(time.Sunday) != 7 {
        t.Error("DayIndexOf does not match 1=Mon..7=Sun numbering")
    }
}
