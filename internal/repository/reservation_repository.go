package repository

import (
    "context"
    "database/sql"
    "errors"

    "github.com/iliyamo/studio-booking/internal/model"
)

// ReservationRepo persists reservations.  Besides plain reads it
// provides the one primitive the booking core depends on for
// correctness: InsertIfNoOverlap, an atomic re-check-and-insert that
// makes it impossible for two overlapping bookings on the same room to
// both land.  All timestamps are stored in UTC.
type ReservationRepo struct {
    db *sql.DB
}

// NewReservationRepo returns a ReservationRepo bound to the given database.
func NewReservationRepo(db *sql.DB) *ReservationRepo { return &ReservationRepo{db: db} }

const reservationCols = `id, room_id, user_id, start_at, end_at, status, amount, created_at, updated_at`

func scanReservation(row interface{ Scan(...any) error }) (model.Reservation, error) {
    var m model.Reservation
    err := row.Scan(&m.ID, &m.RoomID, &m.UserID, &m.StartAt, &m.EndAt, &m.Status, &m.Amount, &m.CreatedAt, &m.UpdatedAt)
    return m, err
}

// ListActiveOverlapping returns the non-canceled reservations on a room
// that overlap the half-open interval.  Used by the advisory
// availability check; the authoritative check happens inside
// InsertIfNoOverlap.
func (r *ReservationRepo) ListActiveOverlapping(ctx context.Context, roomID uint64, iv model.Interval) ([]model.Reservation, error) {
    const q = `SELECT ` + reservationCols + ` FROM reservations
        WHERE room_id = ? AND status <> 'canceled' AND start_at < ? AND end_at > ?
        ORDER BY start_at ASC`
    rows, err := r.db.QueryContext(ctx, q, roomID, iv.End, iv.Start)
    if err != nil {
        return nil, err
    }
    defer rows.Close()
    var out []model.Reservation
    for rows.Next() {
        m, err := scanReservation(rows)
        if err != nil {
            return nil, err
        }
        out = append(out, m)
    }
    return out, rows.Err()
}

// InsertIfNoOverlap atomically inserts the reservation provided no
// non-canceled reservation overlaps its range.  The overlap re-check
// runs inside the same transaction with FOR UPDATE so a concurrent
// commit for an overlapping range blocks until this one resolves, and
// then sees the inserted row.  Returns false (and no error) when the
// range is already taken; the generated ID and timestamps are written
// back onto res on success.
func (r *ReservationRepo) InsertIfNoOverlap(ctx context.Context, res *model.Reservation) (bool, error) {
    tx, err := r.db.BeginTx(ctx, nil)
    if err != nil {
        return false, err
    }
    committed := false
    defer func() {
        if !committed {
            _ = tx.Rollback()
        }
    }()

    const check = `SELECT id FROM reservations
        WHERE room_id = ? AND status <> 'canceled' AND start_at < ? AND end_at > ?
        LIMIT 1 FOR UPDATE`
    var blocking uint64
    err = tx.QueryRowContext(ctx, check, res.RoomID, res.EndAt, res.StartAt).Scan(&blocking)
    switch {
    case err == nil:
        return false, nil // range already taken, rollback via defer
    case errors.Is(err, sql.ErrNoRows):
        // free, proceed with the insert
    default:
        return false, err
    }

    const ins = `INSERT INTO reservations (room_id, user_id, start_at, end_at, status, amount)
        VALUES (?, ?, ?, ?, ?, ?)`
    result, err := tx.ExecContext(ctx, ins, res.RoomID, res.UserID, res.StartAt, res.EndAt, res.Status, res.Amount)
    if err != nil {
        return false, err
    }
    id, err := result.LastInsertId()
    if err != nil {
        return false, err
    }
    res.ID = uint64(id)

    // Query back the row to populate DB-generated timestamps.
    const sel = `SELECT created_at, updated_at FROM reservations WHERE id = ?`
    if err := tx.QueryRowContext(ctx, sel, res.ID).Scan(&res.CreatedAt, &res.UpdatedAt); err != nil {
        return false, err
    }

    if err := tx.Commit(); err != nil {
        return false, err
    }
    committed = true
    return true, nil
}

// UpdateStatus moves a reservation to a new status.  The external
// payment and cancellation flows call this; the time range itself is
// immutable.
func (r *ReservationRepo) UpdateStatus(ctx context.Context, id uint64, status string) error {
    const q = `UPDATE reservations SET status = ? WHERE id = ?`
    result, err := r.db.ExecContext(ctx, q, status, id)
    if err != nil {
        return err
    }
    n, err := result.RowsAffected()
    if err != nil {
        return err
    }
    if n == 0 {
        return sql.ErrNoRows
    }
    return nil
}

// ListByRoom returns a room's reservations newest-first, for the host
// reservation overview.
func (r *ReservationRepo) ListByRoom(ctx context.Context, roomID uint64, limit int) ([]model.Reservation, error) {
    if limit <= 0 || limit > 200 {
        limit = 50
    }
    const q = `SELECT ` + reservationCols + ` FROM reservations
        WHERE room_id = ? ORDER BY created_at DESC LIMIT ?`
    rows, err := r.db.QueryContext(ctx, q, roomID, limit)
    if err != nil {
        return nil, err
    }
    defer rows.Close()
    var out []model.Reservation
    for rows.Next() {
        m, err := scanReservation(rows)
        if err != nil {
            return nil, err
        }
        out = append(out, m)
    }
    return out, rows.Err()
}
