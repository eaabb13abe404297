package repository

import (
    "context"
    "database/sql"
    "errors"

    "github.com/iliyamo/studio-booking/internal/model"
)

// RoomRepo reads bookable rooms.  Room CRUD itself belongs to the
// listing/administration surface; the booking flow only ever needs to
// resolve a room's base price and owner.
type RoomRepo struct {
    db *sql.DB
}

// NewRoomRepo returns a RoomRepo bound to the given database.
func NewRoomRepo(db *sql.DB) *RoomRepo { return &RoomRepo{db: db} }

// GetByID fetches one room or ErrRoomNotFound.
func (r *RoomRepo) GetByID(ctx context.Context, id uint64) (*model.Room, error) {
    const q = `SELECT id, owner_id, name, hourly_price, created_at, updated_at FROM rooms WHERE id = ?`
    var m model.Room
    err := r.db.QueryRowContext(ctx, q, id).Scan(
        &m.ID, &m.OwnerID, &m.Name, &m.HourlyPrice, &m.CreatedAt, &m.UpdatedAt,
    )
    if errors.Is(err, sql.ErrNoRows) {
        return nil, ErrRoomNotFound
    }
    if err != nil {
        return nil, err
    }
    return &m, nil
}

// GetOwned fetches a room and verifies ownership in one step, for the
// host-facing management endpoints.
func (r *RoomRepo) GetOwned(ctx context.Context, id, ownerID uint64) (*model.Room, error) {
    room, err := r.GetByID(ctx, id)
    if err != nil {
        return nil, err
    }
    if room.OwnerID != ownerID {
        return nil, ErrForbidden
    }
    return room, nil
}
