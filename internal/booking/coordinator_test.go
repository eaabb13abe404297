package booking

import (
    "context"
    "errors"
    "sync"
    "testing"
    "time"

    "github.com/iliyamo/studio-booking/internal/model"
)

func newTestCoordinator(store *memoryStore) *Coordinator {
    return NewCoordinator(store, store, store, store, Rates{TaxRatePercent: 10, AdminFeeRatePercent: 5})
}

func TestCommitBookingHappyPath(t *testing.T) {
    store := newMemoryStore()
    store.schedules[1] = openAllWeek(clock(9, 0), clock(18, 0))
    coord := newTestCoordinator(store)

    res, err := coord.CommitBooking(context.Background(), CommitRequest{
        Room: testRoom(), UserID: 42, Start: day(2, 10, 0), End: day(2, 12, 0),
    })
    if err != nil {
        t.Fatal(err)
    }
    if !res.Committed {
        t.Fatalf("commit rejected: %+v", res)
    }
    if res.ReservationID == 0 {
        t.Error("committed result carries no reservation ID")
    }
    if res.Quote == nil || res.Quote.Amount != 4400 {
        t.Fatalf("quote = %+v, want amount 4400", res.Quote)
    }
    if res.AdminFee != 200 { // 5% of 4000 subtotal
        t.Errorf("admin fee = %d, want 200", res.AdminFee)
    }
    if got := store.reservations[0]; got.Amount != 4400 || got.Status != model.ReservationBooked {
        t.Errorf("persisted reservation = %+v", got)
    }
}

func TestCommitBookingRejectsBeforeTouchingStore(t *testing.T) {
    store := newMemoryStore()
    store.schedules[1] = openAllWeek(clock(9, 0), clock(18, 0))
    coord := newTestCoordinator(store)

    res, err := coord.CommitBooking(context.Background(), CommitRequest{
        Room: testRoom(), UserID: 42, Start: day(2, 17, 0), End: day(2, 19, 0),
    })
    if err != nil {
        t.Fatal(err)
    }
    if res.Committed || res.Reason != RejectOutsideBusinessHours {
        t.Fatalf("result = %+v, want outside_business_hours rejection", res)
    }
    if len(store.reservations) != 0 {
        t.Error("rejected request left a reservation row behind")
    }
}

func TestCommitBookingLosingRaceLooksLikeOverlap(t *testing.T) {
    store := newMemoryStore()
    store.schedules[1] = openAllWeek(clock(9, 0), clock(18, 0))
    coord := newTestCoordinator(store)
    ctx := context.Background()

    first, err := coord.CommitBooking(ctx, CommitRequest{Room: testRoom(), UserID: 1, Start: day(2, 10, 0), End: day(2, 12, 0)})
    if err != nil || !first.Committed {
        t.Fatalf("first commit failed: %+v %v", first, err)
    }
    second, err := coord.CommitBooking(ctx, CommitRequest{Room: testRoom(), UserID: 2, Start: day(2, 11, 0), End: day(2, 13, 0)})
    if err != nil {
        t.Fatal(err)
    }
    if second.Committed || second.Reason != RejectReservationOverlap {
        t.Fatalf("second commit = %+v, want reservation_overlap rejection", second)
    }
}

func TestCommitBookingConcurrentOverlapExclusivity(t *testing.T) {
    store := newMemoryStore()
    store.schedules[1] = openAllWeek(clock(0, 0), clock(0, 0))
    coord := newTestCoordinator(store)

    const attempts = 32
    var wg sync.WaitGroup
    results := make([]*CommitResult, attempts)
    errs := make([]error, attempts)

    // Every goroutine asks for a range overlapping 10:00-12:00 on the
    // same room; at most one may commit.
    for i := 0; i < attempts; i++ {
        wg.Add(1)
        go func(i int) {
            defer wg.Done()
            start := day(2, 10, 0).Add(time.Duration(i) * time.Minute)
            results[i], errs[i] = coord.CommitBooking(context.Background(), CommitRequest{
                Room: testRoom(), UserID: uint64(i + 1), Start: start, End: start.Add(2 * time.Hour),
            })
        }(i)
    }
    wg.Wait()

    var committed int
    for i := 0; i < attempts; i++ {
        if errs[i] != nil {
            t.Fatalf("attempt %d errored: %v", i, errs[i])
        }
        if results[i].Committed {
            committed++
        } else if results[i].Reason != RejectReservationOverlap {
            t.Errorf("attempt %d rejected with %q, want reservation_overlap", i, results[i].Reason)
        }
    }
    if committed != 1 {
        t.Fatalf("%d overlapping commits succeeded, want exactly 1", committed)
    }
    if len(store.reservations) != 1 {
        t.Fatalf("store holds %d reservations, want 1", len(store.reservations))
    }
}

func TestCommitBookingAdjacentSlotsBothCommit(t *testing.T) {
    store := newMemoryStore()
    store.schedules[1] = openAllWeek(clock(9, 0), clock(18, 0))
    coord := newTestCoordinator(store)
    ctx := context.Background()

    var wg sync.WaitGroup
    out := make([]*CommitResult, 2)
    slots := []model.Interval{
        {Start: day(2, 10, 0), End: day(2, 11, 0)},
        {Start: day(2, 11, 0), End: day(2, 12, 0)},
    }
    for i, slot := range slots {
        wg.Add(1)
        go func(i int, slot model.Interval) {
            defer wg.Done()
            out[i], _ = coord.CommitBooking(ctx, CommitRequest{Room: testRoom(), UserID: uint64(i + 1), Start: slot.Start, End: slot.End})
        }(i, slot)
    }
    wg.Wait()

    for i, res := range out {
        if res == nil || !res.Committed {
            t.Fatalf("adjacent slot %d did not commit: %+v", i, res)
        }
    }
}

func TestQuoteDoesNotCommit(t *testing.T) {
    store := newMemoryStore()
    store.schedules[1] = openAllWeek(clock(9, 0), clock(18, 0))
    coord := newTestCoordinator(store)

    dec, quote, err := coord.Quote(context.Background(), testRoom(), day(2, 10, 0), day(2, 12, 0))
    if err != nil {
        t.Fatal(err)
    }
    if !dec.Accepted || quote == nil {
        t.Fatalf("quote rejected: %+v", dec)
    }
    if len(store.reservations) != 0 {
        t.Error("Quote persisted a reservation")
    }
}

func TestCommitBookingSurfacesRuleConfigError(t *testing.T) {
    store := newMemoryStore()
    store.schedules[1] = openAllWeek(clock(9, 0), clock(18, 0))
    store.rules[1] = []model.PriceRule{{ID: 7, RoomID: 1, RuleType: model.RuleMultiplier}}
    coord := newTestCoordinator(store)

    _, err := coord.CommitBooking(context.Background(), CommitRequest{
        Room: testRoom(), UserID: 1, Start: day(2, 10, 0), End: day(2, 11, 0),
    })
    var cfgErr *RuleConfigError
    if !errors.As(err, &cfgErr) {
        t.Fatalf("want RuleConfigError, got %v", err)
    }
    if len(store.reservations) != 0 {
        t.Error("misconfigured pricing still committed a reservation")
    }
}

func TestEvaluateIsAdvisoryOnly(t *testing.T) {
    store := newMemoryStore()
    store.schedules[1] = openAllWeek(clock(9, 0), clock(18, 0))
    coord := newTestCoordinator(store)

    dec, err := coord.Evaluate(context.Background(), 1, day(2, 10, 0), day(2, 12, 0))
    if err != nil {
        t.Fatal(err)
    }
    if !dec.Accepted {
        t.Fatalf("evaluate rejected an open slot: %+v", dec)
    }
    if len(store.reservations) != 0 {
        t.Error("Evaluate mutated the reservation store")
    }
}
