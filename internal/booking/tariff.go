package booking

import (
    "fmt"
    "math"
    "sort"
    "time"

    "github.com/iliyamo/studio-booking/internal/model"
)

// TariffEngine prices a booking interval against a room's rule set.
// The computation is deterministic: the interval is sliced at calendar
// day boundaries and at every multiplier-rule window edge, each slice
// is priced with the product of the multipliers covering it, flat fees
// are added once per matching day, and tax is applied last.  Every
// line item is rounded to whole currency units before summing, so the
// emitted items always add up to the subtotal exactly.
type TariffEngine struct {
    TaxRatePercent float64 // e.g. 10 for 10% tax
}

// roundCurrency rounds to the nearest whole currency unit, halves away
// from zero (matching HALF_UP for the positive amounts seen here).
func roundCurrency(v float64) int64 {
    return int64(math.Round(v))
}

// ValidateRule rejects rules whose mandatory fields do not match
// their type.  The engine applies it lazily at pricing time; rule
// creation applies it up front so misconfiguration never reaches a
// guest-facing quote.  Either way the fault is surfaced, never
// defaulted away.
func ValidateRule(r model.PriceRule) error {
    switch r.RuleType {
    case model.RuleMultiplier:
        if r.Multiplier == nil {
            return &RuleConfigError{RuleID: r.ID, Detail: "multiplier rule without multiplier value"}
        }
        if *r.Multiplier <= 0 {
            return &RuleConfigError{RuleID: r.ID, Detail: "multiplier must be positive"}
        }
        if r.FlatFee != nil {
            return &RuleConfigError{RuleID: r.ID, Detail: "multiplier rule carries a flat fee"}
        }
    case model.RuleFlatFee:
        if r.FlatFee == nil {
            return &RuleConfigError{RuleID: r.ID, Detail: "flat-fee rule without fee value"}
        }
        if r.Multiplier != nil {
            return &RuleConfigError{RuleID: r.ID, Detail: "flat-fee rule carries a multiplier"}
        }
    default:
        return &RuleConfigError{RuleID: r.ID, Detail: fmt.Sprintf("unknown rule type %q", r.RuleType)}
    }
    // End of 00:00 means 24:00, which is always after any start.
    if r.StartHour != nil && r.EndHour != nil && *r.EndHour != 0 && *r.StartHour >= *r.EndHour {
        return &RuleConfigError{RuleID: r.ID, Detail: "window start must be before window end"}
    }
    return nil
}

// BuildQuote prices iv for the given room and rule set.  It returns a
// RuleConfigError (wrapped) when the rule set is malformed; it never
// fails for a well-configured room.
func (t *TariffEngine) BuildQuote(room model.Room, iv model.Interval, rules []model.PriceRule) (*model.BookingQuote, error) {
    for _, r := range rules {
        if err := ValidateRule(r); err != nil {
            return nil, err
        }
    }

    perHour := float64(room.HourlyPrice)
    minutes := iv.Minutes()

    base := roundCurrency(perHour * minutes / 60)
    items := []model.ConfirmLineItem{{
        Kind:       model.ItemBase,
        Label:      fmt.Sprintf("Base rate (%d/hour, %.0f min)", room.HourlyPrice, minutes),
        Amount:     base,
        SliceStart: timePtr(iv.Start),
        SliceEnd:   timePtr(iv.End),
    }}

    eachDaySegment(iv, func(day time.Time, seg model.Interval) bool {
        wd := day.Weekday()
        items = append(items, multiplierItems(perHour, day, wd, seg, rules)...)
        items = append(items, flatFeeItems(day, wd, seg, rules)...)
        return true
    })

    var subtotal int64
    for _, it := range items {
        subtotal += it.Amount
    }

    // No tax item when the rate is zero, or when the rounded tax comes
    // to nothing (zero subtotal); Tax stays 0 and Amount == Subtotal.
    var tax int64
    if t.TaxRatePercent > 0 {
        tax = roundCurrency(float64(subtotal) * t.TaxRatePercent / 100)
        if tax != 0 {
            items = append(items, model.ConfirmLineItem{
                Kind:   model.ItemTax,
                Label:  fmt.Sprintf("Tax (%.4g%%)", t.TaxRatePercent),
                Amount: tax,
            })
        }
    }

    return &model.BookingQuote{
        RoomID:      room.ID,
        RoomName:    room.Name,
        StartAt:     iv.Start,
        EndAt:       iv.End,
        HourlyPrice: room.HourlyPrice,
        Hours:       math.Ceil(minutes / 60),
        Items:       items,
        Subtotal:    subtotal,
        Tax:         tax,
        Amount:      subtotal + tax,
    }, nil
}

// multiplierItems slices one day's segment at every applicable
// multiplier-window edge and emits a delta item per slice covered by
// at least one rule.  Simultaneous rules compound multiplicatively, so
// the delta for a slice is P * hours * (product of multipliers - 1).
func multiplierItems(perHour float64, day time.Time, wd time.Weekday, seg model.Interval, rules []model.PriceRule) []model.ConfirmLineItem {
    applicable := make([]model.PriceRule, 0, len(rules))
    cuts := []time.Time{seg.Start, seg.End}
    for _, r := range rules {
        if r.RuleType != model.RuleMultiplier || !r.AppliesOn(wd) {
            continue
        }
        win := r.Window(day)
        if !win.Overlaps(seg) {
            continue
        }
        applicable = append(applicable, r)
        if win.Start.After(seg.Start) {
            cuts = append(cuts, win.Start)
        }
        if win.End.Before(seg.End) {
            cuts = append(cuts, win.End)
        }
    }
    if len(applicable) == 0 {
        return nil
    }

    sort.Slice(cuts, func(i, j int) bool { return cuts[i].Before(cuts[j]) })

    var out []model.ConfirmLineItem
    for i := 0; i+1 < len(cuts); i++ {
        slice := model.Interval{Start: cuts[i], End: cuts[i+1]}
        if !slice.Valid() {
            continue // duplicate cut
        }
        combined := 1.0
        for _, r := range applicable {
            win := r.Window(day)
            if !win.Start.After(slice.Start) && !win.End.Before(slice.End) {
                combined *= *r.Multiplier
            }
        }
        if combined == 1 {
            continue
        }
        delta := roundCurrency(perHour * slice.Hours() * (combined - 1))
        if delta == 0 {
            continue
        }
        out = append(out, model.ConfirmLineItem{
            Kind:       model.ItemMultiplier,
            Label:      fmt.Sprintf("Time-of-day rate %.4gx (%s)", combined, day.Format("2006-01-02")),
            Amount:     delta,
            SliceStart: timePtr(slice.Start),
            SliceEnd:   timePtr(slice.End),
        })
    }
    return out
}

// flatFeeItems emits one fixed-surcharge item per flat-fee rule whose
// weekday matches the day and whose window touches the day's segment.
// Multi-day bookings collect the fee once per matching day.  Creation
// enforces a single flat-fee rule per (room, weekday); should that
// invariant ever be violated the engine fails open and emits every
// match in ascending rule-ID order.
func flatFeeItems(day time.Time, wd time.Weekday, seg model.Interval, rules []model.PriceRule) []model.ConfirmLineItem {
    matched := make([]model.PriceRule, 0, 1)
    for _, r := range rules {
        if r.RuleType != model.RuleFlatFee || !r.AppliesOn(wd) {
            continue
        }
        if !r.Window(day).Overlaps(seg) {
            continue
        }
        matched = append(matched, r)
    }
    sort.Slice(matched, func(i, j int) bool { return matched[i].ID < matched[j].ID })

    var out []model.ConfirmLineItem
    for _, r := range matched {
        out = append(out, model.ConfirmLineItem{
            Kind:       model.ItemFlatFee,
            Label:      fmt.Sprintf("Fixed fee (%s)", day.Format("2006-01-02")),
            Amount:     *r.FlatFee,
            SliceStart: timePtr(seg.Start),
            SliceEnd:   timePtr(seg.End),
        })
    }
    return out
}

func timePtr(t time.Time) *time.Time { return &t }
