package booking

import (
    "context"
    "errors"
    "sync"

    "github.com/iliyamo/studio-booking/internal/model"
)

// memoryStore is an in-memory implementation of all four store
// contracts, used to exercise the core without a database.  The
// mutex makes InsertIfNoOverlap genuinely atomic so the concurrency
// tests race against a faithful implementation of the contract.
type memoryStore struct {
    mu           sync.Mutex
    nextID       uint64
    reservations []model.Reservation
    closures     []model.Closure
    schedules    map[uint64]model.WeeklySchedule
    rules        map[uint64][]model.PriceRule
    failWith     error // when set, every method returns this error
}

func newMemoryStore() *memoryStore {
    return &memoryStore{
        nextID:    1,
        schedules: map[uint64]model.WeeklySchedule{},
        rules:     map[uint64][]model.PriceRule{},
    }
}

func (s *memoryStore) ListActiveOverlapping(_ context.Context, roomID uint64, iv model.Interval) ([]model.Reservation, error) {
    s.mu.Lock()
    defer s.mu.Unlock()
    if s.failWith != nil {
        return nil, s.failWith
    }
    var out []model.Reservation
    for _, r := range s.reservations {
        if r.RoomID == roomID && r.Active() && r.Interval().Overlaps(iv) {
            out = append(out, r)
        }
    }
    return out, nil
}

func (s *memoryStore) InsertIfNoOverlap(_ context.Context, res *model.Reservation) (bool, error) {
    s.mu.Lock()
    defer s.mu.Unlock()
    if s.failWith != nil {
        return false, s.failWith
    }
    for _, r := range s.reservations {
        if r.RoomID == res.RoomID && r.Active() && r.Interval().Overlaps(res.Interval()) {
            return false, nil
        }
    }
    res.ID = s.nextID
    s.nextID++
    s.reservations = append(s.reservations, *res)
    return true, nil
}

func (s *memoryStore) ListOverlapping(_ context.Context, roomID uint64, iv model.Interval) ([]model.Closure, error) {
    s.mu.Lock()
    defer s.mu.Unlock()
    if s.failWith != nil {
        return nil, s.failWith
    }
    var out []model.Closure
    for _, c := range s.closures {
        if c.RoomID == roomID && c.Interval().Overlaps(iv) {
            out = append(out, c)
        }
    }
    return out, nil
}

func (s *memoryStore) WeeklySchedule(_ context.Context, roomID uint64) (model.WeeklySchedule, error) {
    s.mu.Lock()
    defer s.mu.Unlock()
    if s.failWith != nil {
        return model.WeeklySchedule{}, s.failWith
    }
    return s.schedules[roomID], nil
}

func (s *memoryStore) RulesByRoom(_ context.Context, roomID uint64) ([]model.PriceRule, error) {
    s.mu.Lock()
    defer s.mu.Unlock()
    if s.failWith != nil {
        return nil, s.failWith
    }
    return s.rules[roomID], nil
}

// openAllWeek fills a schedule with the same open window for all seven
// weekdays.
func openAllWeek(open, close model.ClockMinutes) model.WeeklySchedule {
    var w model.WeeklySchedule
    for i := 1; i <= 7; i++ {
        o, c := open, close
        w[i] = &model.BusinessHourRow{DayIndex: i, Open: &o, Close: &c}
    }
    return w
}

var errStoreDown = errors.New("store down")
