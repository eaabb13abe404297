package model

import "time"

// Room is a bookable studio space listed by a host.
//
// Fields:
//  ID          – primary key identifier.
//  OwnerID     – the host user who manages the room.
//  HourlyPrice – base price per hour in whole currency units; rules
//                and taxes are layered on top by the tariff engine.
type Room struct {
    ID          uint64    `json:"id"`
    OwnerID     uint64    `json:"owner_id"`
    Name        string    `json:"name"`
    HourlyPrice int64     `json:"hourly_price"`
    CreatedAt   time.Time `json:"created_at"`
    UpdatedAt   time.Time `json:"updated_at"`
}
