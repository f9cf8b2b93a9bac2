package wire

import (
	"venue-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireUser(r chi.Router, userHandler *adaptor.UserHandler) {
	// ==================== PUBLIC ROUTES ====================
	// POST /api/users - Register an account
	r.Post("/api/users", userHandler.CreateUser)

	// GET /api/users/{id} - Profile details
	r.Get("/api/users/{id}", userHandler.GetUser)

	// GET /api/users/by-username/{username} - Lookup by unique username
	r.Get("/api/users/by-username/{username}", userHandler.GetUserByUsername)

	// PUT /api/users/{id} - Edit profile fields
	r.Put("/api/users/{id}", userHandler.UpdateUser)

	// PUT /api/users/{id}/password - Change password
	r.Put("/api/users/{id}/password", userHandler.UpdatePassword)

	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin/users", func(r chi.Router) {
		// GET /api/admin/users - Account list, paginated
		r.Get("/", userHandler.ListUsers)

		// DELETE /api/admin/users/{id} - Remove an account
		r.Delete("/{id}", userHandler.DeleteUser)
	})
}
