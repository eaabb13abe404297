package model

import "time"

// Price rule types.  A multiplier rule scales the hourly base price
// inside its window; a flat-fee rule adds a fixed surcharge once per
// matching day.
const (
    RuleMultiplier = "multiplier"
    RuleFlatFee    = "flat_fee"
)

// PriceRule is one pricing adjustment attached to a room.  A rule may
// be scoped to a weekday (nil = every day) and to a clock-time window
// (nil start/end = all day).  Multiplier set iff RuleType is
// multiplier; FlatFee set iff RuleType is flat_fee.  At most one
// flat-fee rule may exist per (room, weekday); multiplier rules may
// overlap freely and compound multiplicatively.
//
// Fields:
//  ID         – primary key identifier.
//  RoomID     – room the rule prices.
//  RuleType   – multiplier or flat_fee.
//  Weekday    – optional weekday scope (0=Sunday .. 6=Saturday).
//  StartHour  – optional window start clock time.
//  EndHour    – optional window end clock time, exclusive; 00:00 means 24:00.
//  Multiplier – scale factor for multiplier rules (e.g. 1.5).
//  FlatFee    – surcharge for flat-fee rules in whole currency units.
//  Note       – host-facing description.
type PriceRule struct {
    ID         uint64        // price_rules.id
    RoomID     uint64        // price_rules.room_id
    RuleType   string        // price_rules.rule_type
    Weekday    *time.Weekday // price_rules.weekday (nullable, 0=Sun..6=Sat)
    StartHour  *ClockMinutes // price_rules.start_hour (nullable)
    EndHour    *ClockMinutes // price_rules.end_hour (nullable)
    Multiplier *float64      // price_rules.multiplier (nullable)
    FlatFee    *int64        // price_rules.flat_fee (nullable)
    Note       string        // price_rules.note
}

// Window projects the rule's clock-time scope onto the calendar day of
// d.  An absent start means midnight; an absent or 00:00 end means the
// following midnight.
func (p PriceRule) Window(d time.Time) Interval {
    start := ClockMinutes(0)
    if p.StartHour != nil {
        start = *p.StartHour
    }
    end := EndOfDay
    if p.EndHour != nil && *p.EndHour != 0 {
        end = *p.EndHour
    }
    return Interval{Start: start.At(d), End: end.At(d)}
}

// AppliesOn reports whether the rule's weekday scope matches the given
// weekday.  A nil scope matches every day.
func (p PriceRule) AppliesOn(wd time.Weekday) bool {
    return p.Weekday == nil || *p.Weekday == wd
}
