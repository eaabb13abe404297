package booking

import (
    "context"
    "errors"
    "testing"

    "github.com/iliyamo/studio-booking/internal/model"
)

func newTestChecker(store *memoryStore) *AvailabilityChecker {
    return NewAvailabilityChecker(store, store, store)
}

func TestCheckInvalidRange(t *testing.T) {
    store := newMemoryStore()
    chk := newTestChecker(store)
    dec, err := chk.Check(context.Background(), 1, model.Interval{Start: day(2, 12, 0), End: day(2, 10, 0)})
    if err != nil {
        t.Fatal(err)
    }
    if dec.Accepted || dec.Reason != RejectInvalidRange {
        t.Fatalf("decision = %+v, want invalid_range rejection", dec)
    }
}

func TestCheckReservationOverlapWins(t *testing.T) {
    store := newMemoryStore()
    store.schedules[1] = openAllWeek(clock(9, 0), clock(18, 0))
    store.reservations = append(store.reservations, model.Reservation{
        ID: 1, RoomID: 1, StartAt: day(2, 10, 0), EndAt: day(2, 12, 0), Status: model.ReservationBooked,
    })
    // A closure overlapping the same range must not mask the
    // reservation reason: checks run in a fixed order.
    store.closures = append(store.closures, model.Closure{
        ID: 1, RoomID: 1, StartAt: day(2, 9, 0), EndAt: day(2, 13, 0),
    })
    chk := newTestChecker(store)
    dec, err := chk.Check(context.Background(), 1, model.Interval{Start: day(2, 11, 0), End: day(2, 13, 0)})
    if err != nil {
        t.Fatal(err)
    }
    if dec.Reason != RejectReservationOverlap {
        t.Fatalf("reason = %q, want reservation_overlap", dec.Reason)
    }
}

func TestCheckCanceledReservationDoesNotBlock(t *testing.T) {
    store := newMemoryStore()
    store.schedules[1] = openAllWeek(clock(9, 0), clock(18, 0))
    store.reservations = append(store.reservations, model.Reservation{
        ID: 1, RoomID: 1, StartAt: day(2, 10, 0), EndAt: day(2, 12, 0), Status: model.ReservationCanceled,
    })
    chk := newTestChecker(store)
    dec, err := chk.Check(context.Background(), 1, model.Interval{Start: day(2, 10, 0), End: day(2, 12, 0)})
    if err != nil {
        t.Fatal(err)
    }
    if !dec.Accepted {
        t.Fatalf("canceled reservation blocked the slot: %+v", dec)
    }
}

func TestCheckClosureOverlap(t *testing.T) {
    store := newMemoryStore()
    store.schedules[1] = openAllWeek(clock(9, 0), clock(18, 0))
    store.closures = append(store.closures, model.Closure{
        ID: 1, RoomID: 1, StartAt: day(2, 9, 0), EndAt: day(2, 13, 0), Reason: "maintenance",
    })
    chk := newTestChecker(store)
    // Closure [09:00,13:00), request [12:00,14:00) -> closure overlap.
    dec, err := chk.Check(context.Background(), 1, model.Interval{Start: day(2, 12, 0), End: day(2, 14, 0)})
    if err != nil {
        t.Fatal(err)
    }
    if dec.Reason != RejectClosureOverlap {
        t.Fatalf("reason = %q, want closure_overlap", dec.Reason)
    }
    // Back-to-back with the closure end is fine.
    dec, err = chk.Check(context.Background(), 1, model.Interval{Start: day(2, 13, 0), End: day(2, 14, 0)})
    if err != nil {
        t.Fatal(err)
    }
    if !dec.Accepted {
        t.Fatalf("request adjacent to closure rejected: %+v", dec)
    }
}

func TestCheckOutsideBusinessHours(t *testing.T) {
    store := newMemoryStore()
    store.schedules[1] = openAllWeek(clock(9, 0), clock(18, 0))
    chk := newTestChecker(store)
    dec, err := chk.Check(context.Background(), 1, model.Interval{Start: day(2, 17, 0), End: day(2, 19, 0)})
    if err != nil {
        t.Fatal(err)
    }
    if dec.Reason != RejectOutsideBusinessHours {
        t.Fatalf("reason = %q, want outside_business_hours", dec.Reason)
    }
}

func TestCheckAdjacentReservationsDoNotOverlap(t *testing.T) {
    store := newMemoryStore()
    store.schedules[1] = openAllWeek(clock(9, 0), clock(18, 0))
    store.reservations = append(store.reservations, model.Reservation{
        ID: 1, RoomID: 1, StartAt: day(2, 10, 0), EndAt: day(2, 11, 0), Status: model.ReservationBooked,
    })
    chk := newTestChecker(store)
    dec, err := chk.Check(context.Background(), 1, model.Interval{Start: day(2, 11, 0), End: day(2, 12, 0)})
    if err != nil {
        t.Fatal(err)
    }
    if !dec.Accepted {
        t.Fatalf("back-to-back slot rejected: %+v", dec)
    }
}

func TestCheckSurfacesStorageErrors(t *testing.T) {
    store := newMemoryStore()
    store.failWith = errStoreDown
    chk := newTestChecker(store)
    _, err := chk.Check(context.Background(), 1, model.Interval{Start: day(2, 10, 0), End: day(2, 11, 0)})
    if !errors.Is(err, errStoreDown) {
        t.Fatalf("want wrapped store error, got %v", err)
    }
}
