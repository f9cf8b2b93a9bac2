package response

import (
	"time"

	"venue-booking/internal/data/entity"
)

// OrderVo is an order enriched with the venue name for list rendering.
// The core returns raw orders; the vo service fills in VenueName.
type OrderVo struct {
	ID        string            `json:"id"`
	UserID    string            `json:"user_id"`
	VenueID   string            `json:"venue_id"`
	VenueName string            `json:"venue_name,omitempty"`
	State     entity.OrderState `json:"state"`
	OrderTime time.Time         `json:"order_time"`
	StartTime time.Time         `json:"start_time"`
	Hours     int               `json:"hours"`
	Total     float64           `json:"total"`
}

func OrderToVo(order *entity.Order, venueName string) OrderVo {
	return OrderVo{
		ID:        order.ID.String(),
		UserID:    order.UserID.String(),
		VenueID:   order.VenueID.String(),
		VenueName: venueName,
		State:     order.State,
		OrderTime: order.OrderTime,
		StartTime: order.StartTime,
		Hours:     order.Hours,
		Total:     order.Total,
	}
}

// ReservationManageResponse is the combined admin view: the audited list
// in full next to one page of the unaudited queue.
type ReservationManageResponse struct {
	Audited   []OrderVo                   `json:"audited"`
	Unaudited *PaginatedResponse[OrderVo] `json:"unaudited"`
}

// VenueOrdersResponse lists a venue's same-day active bookings for the
// public availability view.
type VenueOrdersResponse struct {
	Venue  VenueResponse `json:"venue"`
	Orders []OrderVo     `json:"orders"`
}
