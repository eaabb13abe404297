package handler

import (
    "testing"
    "time"
)

func TestParseTimestampNormalizesToUTC(t *testing.T) {
    want := time.Date(2026, time.March, 2, 14, 0, 0, 0, time.UTC)
    cases := []struct {
        name string
        in   string
    }{
        {"utc form", "2026-03-02T14:00:00Z"},
        {"positive offset, same instant", "2026-03-02T23:00:00+09:00"},
        {"negative offset, same instant", "2026-03-02T09:00:00-05:00"},
        {"zoneless calendar form", "2026-03-02T14:00"},
    }
    for _, tc := range cases {
        t.Run(tc.name, func(t *testing.T) {
            got, err := parseTimestamp(tc.in)
            if err != nil {
                t.Fatal(err)
            }
            if !got.Equal(want) {
                t.Errorf("parseTimestamp(%q) = %v, want %v", tc.in, got, want)
            }
            if got.Location() != time.UTC {
                t.Errorf("parseTimestamp(%q) location = %v, want UTC", tc.in, got.Location())
            }
        })
    }
}

func TestParseTimestampRejectsGarbage(t *testing.T) {
    for _, in := range []string{"", "noon", "2026-03-02", "02/03/2026 14:00"} {
        if _, err := parseTimestamp(in); err == nil {
            t.Errorf("parseTimestamp(%q) accepted invalid input", in)
        }
    }
}
