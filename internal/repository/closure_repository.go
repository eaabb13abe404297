package repository

import (
    "context"
    "database/sql"
    "errors"

    "github.com/iliyamo/studio-booking/internal/model"
)

// ClosureRepo persists host-created closures (maintenance windows,
// holidays).  Closures are immutable once created except for deletion.
type ClosureRepo struct {
    db *sql.DB
}

// NewClosureRepo returns a ClosureRepo bound to the given database.
func NewClosureRepo(db *sql.DB) *ClosureRepo { return &ClosureRepo{db: db} }

const closureCols = `id, room_id, start_at, end_at, reason, created_at`

// ListOverlapping returns closures on a room overlapping the half-open
// interval.
func (r *ClosureRepo) ListOverlapping(ctx context.Context, roomID uint64, iv model.Interval) ([]model.Closure, error) {
    const q = `SELECT ` + closureCols + ` FROM closures
        WHERE room_id = ? AND start_at < ? AND end_at > ?
        ORDER BY start_at ASC`
    return r.list(ctx, q, roomID, iv.End, iv.Start)
}

// ListByRoom returns all closures on a room in chronological order.
func (r *ClosureRepo) ListByRoom(ctx context.Context, roomID uint64) ([]model.Closure, error) {
    const q = `SELECT ` + closureCols + ` FROM closures WHERE room_id = ? ORDER BY start_at ASC`
    return r.list(ctx, q, roomID)
}

func (r *ClosureRepo) list(ctx context.Context, q string, args ...any) ([]model.Closure, error) {
    rows, err := r.db.QueryContext(ctx, q, args...)
    if err != nil {
        return nil, err
    }
    defer rows.Close()
    var out []model.Closure
    for rows.Next() {
        var m model.Closure
        if err := rows.Scan(&m.ID, &m.RoomID, &m.StartAt, &m.EndAt, &m.Reason, &m.CreatedAt); err != nil {
            return nil, err
        }
        out = append(out, m)
    }
    return out, rows.Err()
}

// Create inserts a closure unless it would overlap an existing closure
// on the same room, in which case ErrClosureConflict is returned.  The
// check and insert share a transaction.
func (r *ClosureRepo) Create(ctx context.Context, c *model.Closure) error {
    tx, err := r.db.BeginTx(ctx, nil)
    if err != nil {
        return err
    }
    committed := false
    defer func() {
        if !committed {
            _ = tx.Rollback()
        }
    }()

    const check = `SELECT id FROM closures
        WHERE room_id = ? AND start_at < ? AND end_at > ? LIMIT 1 FOR UPDATE`
    var existing uint64
    err = tx.QueryRowContext(ctx, check, c.RoomID, c.EndAt, c.StartAt).Scan(&existing)
    switch {
    case err == nil:
        return ErrClosureConflict
    case errors.Is(err, sql.ErrNoRows):
    default:
        return err
    }

    const ins = `INSERT INTO closures (room_id, start_at, end_at, reason) VALUES (?, ?, ?, ?)`
    result, err := tx.ExecContext(ctx, ins, c.RoomID, c.StartAt, c.EndAt, c.Reason)
    if err != nil {
        return err
    }
    id, err := result.LastInsertId()
    if err != nil {
        return err
    }
    c.ID = uint64(id)

    if err := tx.Commit(); err != nil {
        return err
    }
    committed = true
    return nil
}

// Delete removes a closure, verifying it belongs to the given room.
func (r *ClosureRepo) Delete(ctx context.Context, roomID, closureID uint64) error {
    const q = `DELETE FROM closures WHERE id = ? AND room_id = ?`
    result, err := r.db.ExecContext(ctx, q, closureID, roomID)
    if err != nil {
        return err
    }
    n, err := result.RowsAffected()
    if err != nil {
        return err
    }
    if n == 0 {
        return ErrClosureNotFound
    }
    return nil
}
