// Package queue defines message payloads exchanged over the message
// broker and the background consumer that processes them.
package queue

// BookingCommittedEvent is published after a reservation commit
// succeeds.  It carries enough for downstream consumers (notification
// dispatch, host sales accounting) to act without querying the primary
// database.  AdminFee is the platform's cut of the subtotal computed
// at commit time.
type BookingCommittedEvent struct {
    ReservationID uint64 `json:"reservation_id"`
    RoomID        uint64 `json:"room_id"`
    RoomName      string `json:"room_name"`
    UserID        uint64 `json:"user_id"`
    StartAt       string `json:"start_at"`
    EndAt         string `json:"end_at"`
    Subtotal      int64  `json:"subtotal"`
    Tax           int64  `json:"tax"`
    Amount        int64  `json:"amount"`
    AdminFee      int64  `json:"admin_fee"`
    CommittedAt   string `json:"committed_at"`
}
