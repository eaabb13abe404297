package repository

import (
    "context"
    "database/sql"
    "fmt"
    "time"

    "github.com/redis/go-redis/v9"

    "github.com/iliyamo/studio-booking/internal/model"
)

// BusinessHourRepo persists the weekly recurring schedule: exactly one
// row per room per weekday (1=Mon..7=Sun).  Reads go through Redis
// because every availability check loads the full week.
type BusinessHourRepo struct {
    db    *sql.DB
    cache kvCache
}

// NewBusinessHourRepo returns a BusinessHourRepo bound to the given
// database.  rdb may be nil to disable caching.
func NewBusinessHourRepo(db *sql.DB, rdb *redis.Client) *BusinessHourRepo {
    return &BusinessHourRepo{db: db, cache: newKVCache(rdb, 5*time.Minute)}
}

func scheduleKey(roomID uint64) string {
    return fmt.Sprintf("studio:schedule:%d", roomID)
}

// WeeklySchedule loads a room's seven rows indexed by DayIndex.
// Missing weekdays stay nil and are treated as closed by the
// scheduler.  TIME columns scan as strings and are parsed into clock
// minutes here so the rest of the system never sees raw column values.
func (r *BusinessHourRepo) WeeklySchedule(ctx context.Context, roomID uint64) (model.WeeklySchedule, error) {
    var sched model.WeeklySchedule
    if r.cache.get(ctx, scheduleKey(roomID), &sched) {
        return sched, nil
    }

    const q = `SELECT id, room_id, day_index, open_time, close_time, holiday
        FROM room_business_hours WHERE room_id = ? ORDER BY day_index ASC`
    rows, err := r.db.QueryContext(ctx, q, roomID)
    if err != nil {
        return model.WeeklySchedule{}, err
    }
    defer rows.Close()

    for rows.Next() {
        var (
            row        model.BusinessHourRow
            openRaw    sql.NullString
            closeRaw   sql.NullString
        )
        if err := rows.Scan(&row.ID, &row.RoomID, &row.DayIndex, &openRaw, &closeRaw, &row.Holiday); err != nil {
            return model.WeeklySchedule{}, err
        }
        if openRaw.Valid {
            cm, err := model.ParseClock(openRaw.String)
            if err != nil {
                return model.WeeklySchedule{}, fmt.Errorf("room %d day %d open_time: %w", roomID, row.DayIndex, err)
            }
            row.Open = &cm
        }
        if closeRaw.Valid {
            cm, err := model.ParseClock(closeRaw.String)
            if err != nil {
                return model.WeeklySchedule{}, fmt.Errorf("room %d day %d close_time: %w", roomID, row.DayIndex, err)
            }
            row.Close = &cm
        }
        if row.DayIndex >= 1 && row.DayIndex <= 7 {
            rowCopy := row
            sched[row.DayIndex] = &rowCopy
        }
    }
    if err := rows.Err(); err != nil {
        return model.WeeklySchedule{}, err
    }

    r.cache.set(ctx, scheduleKey(roomID), sched)
    return sched, nil
}

// ReplaceWeek upserts all seven rows for a room in one transaction and
// invalidates the cached schedule.  Rows must already be validated
// (dayIndex 1..7, open < close unless holiday); this method is purely
// mechanical.
func (r *BusinessHourRepo) ReplaceWeek(ctx context.Context, roomID uint64, rows [7]model.BusinessHourRow) error {
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

    const q = `INSERT INTO room_business_hours (room_id, day_index, open_time, close_time, holiday)
        VALUES (?, ?, ?, ?, ?)
        ON DUPLICATE KEY UPDATE open_time = VALUES(open_time),
            close_time = VALUES(close_time), holiday = VALUES(holiday)`
    for _, row := range rows {
        var openVal, closeVal any
        if !row.Holiday && row.Open != nil {
            openVal = row.Open.String()
        }
        if !row.Holiday && row.Close != nil {
            closeVal = row.Close.String()
        }
        if _, err := tx.ExecContext(ctx, q, roomID, row.DayIndex, openVal, closeVal, row.Holiday); err != nil {
            return err
        }
    }

    if err := tx.Commit(); err != nil {
        return err
    }
    committed = true
    r.cache.drop(ctx, scheduleKey(roomID))
    return nil
}
