package wire

import (
	"venue-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireMessage(r chi.Router, messageHandler *adaptor.MessageHandler) {
	// ==================== PUBLIC ROUTES ====================
	// GET /api/messages - Approved messages, paginated
	r.Get("/api/messages", messageHandler.GetPassMessages)

	// POST /api/messages - Post a message (enters moderation)
	r.Post("/api/messages", messageHandler.PostMessage)

	// PUT /api/messages/{id} - Edit a message (back to moderation)
	r.Put("/api/messages/{id}", messageHandler.UpdateMessage)

	// DELETE /api/messages/{id} - Remove a message
	r.Delete("/api/messages/{id}", messageHandler.DeleteMessage)

	// GET /api/users/{id}/messages - A user's own messages, paginated
	r.Get("/api/users/{id}/messages", messageHandler.GetUserMessages)

	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin/messages", func(r chi.Router) {
		// GET /api/admin/messages/wait - Moderation queue, paginated
		r.Get("/wait", messageHandler.GetWaitMessages)

		// PUT /api/admin/messages/{id}/pass|reject - Moderation decisions
		r.Put("/{id}/pass", messageHandler.PassMessage)
		r.Put("/{id}/reject", messageHandler.RejectMessage)
	})
}
