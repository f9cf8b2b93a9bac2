package request

// TimeLayout is the wire format of reservation start instants.
const TimeLayout = "2006-01-02 15:04"

// DateLayout is the wire format of availability-listing dates.
const DateLayout = "2006-01-02"

type SubmitOrderRequest struct {
	UserID    string `json:"user_id" validate:"required,uuid4"`
	VenueName string `json:"venue_name" validate:"required,min=1,max=100"`
	StartTime string `json:"start_time" validate:"required,datetime=2006-01-02 15:04"`
	Hours     int    `json:"hours" validate:"required,min=1,max=24"`
}

// UpdateOrderRequest reschedules an existing order. The edited order is
// re-audited, so there is no way to carry the old state over.
type UpdateOrderRequest struct {
	VenueName string `json:"venue_name" validate:"required,min=1,max=100"`
	StartTime string `json:"start_time" validate:"required,datetime=2006-01-02 15:04"`
	Hours     int    `json:"hours" validate:"required,min=1,max=24"`
}
