package repository

import (
    "context"
    "database/sql"
    "errors"
    "fmt"
    "time"

    "github.com/redis/go-redis/v9"

    "github.com/iliyamo/studio-booking/internal/model"
)

// PriceRuleRepo persists pricing rules.  Reads go through Redis since
// every quote loads the room's full rule set; creation enforces the
// single-flat-fee-per-weekday invariant so the tariff engine never has
// to tie-break at runtime.
type PriceRuleRepo struct {
    db    *sql.DB
    cache kvCache
}

// NewPriceRuleRepo returns a PriceRuleRepo bound to the given
// database.  rdb may be nil to disable caching.
func NewPriceRuleRepo(db *sql.DB, rdb *redis.Client) *PriceRuleRepo {
    return &PriceRuleRepo{db: db, cache: newKVCache(rdb, 5*time.Minute)}
}

func rulesKey(roomID uint64) string {
    return fmt.Sprintf("studio:rules:%d", roomID)
}

const ruleCols = `id, room_id, rule_type, weekday, start_hour, end_hour, multiplier, flat_fee, note`

func scanRule(row interface{ Scan(...any) error }) (model.PriceRule, error) {
    var (
        m          model.PriceRule
        weekday    sql.NullInt64
        startRaw   sql.NullString
        endRaw     sql.NullString
        multiplier sql.NullFloat64
        flatFee    sql.NullInt64
        note       sql.NullString
    )
    if err := row.Scan(&m.ID, &m.RoomID, &m.RuleType, &weekday, &startRaw, &endRaw, &multiplier, &flatFee, &note); err != nil {
        return model.PriceRule{}, err
    }
    if weekday.Valid {
        wd := time.Weekday(weekday.Int64)
        m.Weekday = &wd
    }
    if startRaw.Valid {
        cm, err := model.ParseClock(startRaw.String)
        if err != nil {
            return model.PriceRule{}, fmt.Errorf("rule %d start_hour: %w", m.ID, err)
        }
        m.StartHour = &cm
    }
    if endRaw.Valid {
        cm, err := model.ParseClock(endRaw.String)
        if err != nil {
            return model.PriceRule{}, fmt.Errorf("rule %d end_hour: %w", m.ID, err)
        }
        m.EndHour = &cm
    }
    if multiplier.Valid {
        v := multiplier.Float64
        m.Multiplier = &v
    }
    if flatFee.Valid {
        v := flatFee.Int64
        m.FlatFee = &v
    }
    if note.Valid {
        m.Note = note.String
    }
    return m, nil
}

// RulesByRoom returns every rule attached to a room in ascending ID
// order (the fail-open ordering the engine relies on).
func (r *PriceRuleRepo) RulesByRoom(ctx context.Context, roomID uint64) ([]model.PriceRule, error) {
    var cached []model.PriceRule
    if r.cache.get(ctx, rulesKey(roomID), &cached) {
        return cached, nil
    }

    const q = `SELECT ` + ruleCols + ` FROM price_rules WHERE room_id = ? ORDER BY id ASC`
    rows, err := r.db.QueryContext(ctx, q, roomID)
    if err != nil {
        return nil, err
    }
    defer rows.Close()
    var out []model.PriceRule
    for rows.Next() {
        m, err := scanRule(rows)
        if err != nil {
            return nil, err
        }
        out = append(out, m)
    }
    if err := rows.Err(); err != nil {
        return nil, err
    }

    r.cache.set(ctx, rulesKey(roomID), out)
    return out, nil
}

// Create inserts a rule.  For flat-fee rules it first verifies, inside
// the same transaction, that no flat-fee rule already exists for the
// same (room, weekday) combination; a NULL weekday only collides with
// another NULL weekday.
func (r *PriceRuleRepo) Create(ctx context.Context, rule *model.PriceRule) error {
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

    if rule.RuleType == model.RuleFlatFee {
        const check = `SELECT id FROM price_rules
            WHERE room_id = ? AND rule_type = 'flat_fee' AND weekday <=> ? LIMIT 1 FOR UPDATE`
        var weekday any
        if rule.Weekday != nil {
            weekday = int(*rule.Weekday)
        }
        var existing uint64
        err = tx.QueryRowContext(ctx, check, rule.RoomID, weekday).Scan(&existing)
        switch {
        case err == nil:
            return ErrDuplicateFlatFee
        case errors.Is(err, sql.ErrNoRows):
        default:
            return err
        }
    }

    const ins = `INSERT INTO price_rules (room_id, rule_type, weekday, start_hour, end_hour, multiplier, flat_fee, note)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
    var (
        weekday, startHour, endHour, multiplier, flatFee any
    )
    if rule.Weekday != nil {
        weekday = int(*rule.Weekday)
    }
    if rule.StartHour != nil {
        startHour = rule.StartHour.String()
    }
    if rule.EndHour != nil {
        endHour = rule.EndHour.String()
    }
    if rule.Multiplier != nil {
        multiplier = *rule.Multiplier
    }
    if rule.FlatFee != nil {
        flatFee = *rule.FlatFee
    }
    result, err := tx.ExecContext(ctx, ins, rule.RoomID, rule.RuleType, weekday, startHour, endHour, multiplier, flatFee, rule.Note)
    if err != nil {
        return err
    }
    id, err := result.LastInsertId()
    if err != nil {
        return err
    }
    rule.ID = uint64(id)

    if err := tx.Commit(); err != nil {
        return err
    }
    committed = true
    r.cache.drop(ctx, rulesKey(rule.RoomID))
    return nil
}

// Delete removes a rule, verifying it belongs to the given room.
func (r *PriceRuleRepo) Delete(ctx context.Context, roomID, ruleID uint64) error {
    const q = `DELETE FROM price_rules WHERE id = ? AND room_id = ?`
    result, err := r.db.ExecContext(ctx, q, ruleID, roomID)
    if err != nil {
        return err
    }
    n, err := result.RowsAffected()
    if err != nil {
        return err
    }
    if n == 0 {
        return ErrRuleNotFound
    }
    r.cache.drop(ctx, rulesKey(roomID))
    return nil
}
