package wire

import (
	"venue-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireVenue(r chi.Router, venueHandler *adaptor.VenueHandler) {
	// ==================== PUBLIC ROUTES ====================
	// GET /api/venues - Venue directory, paginated
	r.Get("/api/venues", venueHandler.ListVenues)

	// GET /api/venues/{id} - Venue details
	r.Get("/api/venues/{id}", venueHandler.GetVenue)

	// GET /api/venues/by-name/{name} - Lookup by unique name
	r.Get("/api/venues/by-name/{name}", venueHandler.GetVenueByName)

	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin/venues", func(r chi.Router) {
		// POST /api/admin/venues - Register a venue
		r.Post("/", venueHandler.CreateVenue)

		// PUT /api/admin/venues/{id} - Edit venue fields
		r.Put("/{id}", venueHandler.UpdateVenue)

		// DELETE /api/admin/venues/{id} - Remove a venue
		r.Delete("/{id}", venueHandler.DeleteVenue)
	})
}
