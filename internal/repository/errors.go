// Package repository implements the persistent stores on MySQL.  It
// also defines the sentinel errors shared across repositories so the
// handler layer can map failure scenarios onto HTTP statuses without
// string matching.
package repository

import "errors"

// ErrRoomNotFound is returned when a room ID does not exist.
var ErrRoomNotFound = errors.New("room not found")

// ErrClosureNotFound is returned when a closure ID does not exist or
// belongs to a different room.
var ErrClosureNotFound = errors.New("closure not found")

// ErrRuleNotFound is returned when a price rule ID does not exist or
// belongs to a different room.
var ErrRuleNotFound = errors.New("price rule not found")

// ErrForbidden is returned when the caller attempts an operation on a
// room they do not own.  Handlers translate this into HTTP 403.
var ErrForbidden = errors.New("forbidden")

// ErrDuplicateFlatFee is returned when creating a second flat-fee rule
// for the same (room, weekday) combination.  At most one such rule may
// exist; the tariff engine fails open if the invariant is ever broken,
// but creation refuses to break it in the first place.
var ErrDuplicateFlatFee = errors.New("flat-fee rule already exists for this weekday")

// ErrClosureConflict is returned when a new closure would overlap an
// existing closure on the same room.
var ErrClosureConflict = errors.New("closure overlaps an existing closure")
