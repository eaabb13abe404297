// Package booking implements the scheduling and tariff core: it
// decides whether a requested room interval may be booked and computes
// the itemized price of accepted bookings.  Business rejections are
// returned as values; only storage faults and malformed pricing
// configuration travel as errors.
package booking

import "fmt"

// RejectionKind identifies why a booking request was turned down.
// Rejections are user-correctable (pick another interval) and are
// never reported as errors.
type RejectionKind string

const (
    RejectInvalidRange         RejectionKind = "invalid_range"
    RejectReservationOverlap   RejectionKind = "reservation_overlap"
    RejectClosureOverlap       RejectionKind = "closure_overlap"
    RejectOutsideBusinessHours RejectionKind = "outside_business_hours"
)

// Decision is the outcome of an availability evaluation.  Reason is
// set only when Accepted is false.
type Decision struct {
    Accepted bool          `json:"accepted"`
    Reason   RejectionKind `json:"reason,omitempty"`
}

func accepted() Decision                    { return Decision{Accepted: true} }
func rejected(kind RejectionKind) Decision  { return Decision{Reason: kind} }

// RuleConfigError reports a malformed price rule discovered while
// pricing.  It is an administrative fault, distinct from guest-facing
// rejections, and pricing never papers over it with a default
// multiplier or fee.
type RuleConfigError struct {
    RuleID uint64
    Detail string
}

func (e *RuleConfigError) Error() string {
    return fmt.Sprintf("price rule %d misconfigured: %s", e.RuleID, e.Detail)
}
