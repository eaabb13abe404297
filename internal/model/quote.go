package model

import "time"

// Line item kinds emitted by the tariff engine, in the order they
// appear in a quote: one base item, then multiplier deltas, flat fees
// and finally a single tax item.
const (
    ItemBase       = "base"
    ItemMultiplier = "multiplier"
    ItemFlatFee    = "flat_fee"
    ItemTax        = "tax"
)

// ConfirmLineItem is one row of the itemized price breakdown shown on
// the booking confirmation.  Items are transient: they are recomputed
// per quote and never stored on their own.  Amounts are already
// rounded to whole currency units, so summing the non-tax items always
// reproduces the subtotal exactly.
//
// Fields:
//  Kind       – base, multiplier, flat_fee or tax.
//  Label      – human-readable description.
//  Amount     – rounded amount in whole currency units.
//  SliceStart – start of the sub-interval the item covers (nil for tax).
//  SliceEnd   – end of that sub-interval (nil for tax).
type ConfirmLineItem struct {
    Kind       string     `json:"kind"`
    Label      string     `json:"label"`
    Amount     int64      `json:"amount"`
    SliceStart *time.Time `json:"slice_start,omitempty"`
    SliceEnd   *time.Time `json:"slice_end,omitempty"`
}

// BookingQuote is the full priced breakdown for a requested interval.
// Subtotal is the exact sum of all non-tax line items and Amount is
// Subtotal + Tax; the quote is always internally consistent because
// each item is rounded before summing.
type BookingQuote struct {
    RoomID      uint64            `json:"room_id"`
    RoomName    string            `json:"room_name"`
    StartAt     time.Time         `json:"start_at"`
    EndAt       time.Time         `json:"end_at"`
    HourlyPrice int64             `json:"hourly_price"`
    Hours       float64           `json:"hours"`
    Items       []ConfirmLineItem `json:"items"`
    Subtotal    int64             `json:"subtotal"`
    Tax         int64             `json:"tax"`
    Amount      int64             `json:"amount"`
}
