package entity

import (
	"time"

	"github.com/google/uuid"
)

type OrderState string

const (
	OrderStatePending   OrderState = "pending"
	OrderStateConfirmed OrderState = "confirmed"
	OrderStateRejected  OrderState = "rejected"
	OrderStateFinished  OrderState = "finished"
)

// Blocks reports whether an order in this state occupies its slot.
// Rejected and finished orders never block new bookings.
func (s OrderState) Blocks() bool {
	return s == OrderStatePending || s == OrderStateConfirmed
}

// Order is a venue reservation for the half-open slot
// [StartTime, StartTime+Hours). Total is price x hours locked at booking
// time and never recomputed.
type Order struct {
	ID        uuid.UUID  `db:"id"`
	UserID    uuid.UUID  `db:"user_id"`
	VenueID   uuid.UUID  `db:"venue_id"`
	State     OrderState `db:"state"`
	OrderTime time.Time  `db:"order_time"`
	StartTime time.Time  `db:"start_time"`
	Hours     int        `db:"hours"`
	Total     float64    `db:"total"`
	UpdatedAt time.Time  `db:"updated_at"`
}

func (o *Order) EndTime() time.Time {
	return o.StartTime.Add(time.Duration(o.Hours) * time.Hour)
}

// Overlaps reports whether the half-open intervals [s1,e1) and [s2,e2)
// intersect. Both the SQL overlap predicate and the in-memory stores used
// in tests must agree with this definition.
func Overlaps(s1, e1, s2, e2 time.Time) bool {
	return s1.Before(e2) && s2.Before(e1)
}
