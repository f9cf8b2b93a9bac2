package response

import (
	"venue-booking/internal/data/entity"
)

type VenueResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Picture     string  `json:"picture,omitempty"`
	Address     string  `json:"address"`
	OpenTime    string  `json:"open_time"`
	CloseTime   string  `json:"close_time"`
}

func VenueToResponse(venue *entity.Venue) VenueResponse {
	return VenueResponse{
		ID:          venue.ID.String(),
		Name:        venue.Name,
		Description: venue.Description,
		Price:       venue.Price,
		Picture:     venue.Picture,
		Address:     venue.Address,
		OpenTime:    venue.OpenTime,
		CloseTime:   venue.CloseTime,
	}
}
