package wire

import (
	"venue-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireNews(r chi.Router, newsHandler *adaptor.NewsHandler) {
	// ==================== PUBLIC ROUTES ====================
	// GET /api/news - Published news, newest first
	r.Get("/api/news", newsHandler.ListNews)

	// GET /api/news/{id} - News item details
	r.Get("/api/news/{id}", newsHandler.GetNews)

	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin/news", func(r chi.Router) {
		// POST /api/admin/news - Publish a news item
		r.Post("/", newsHandler.CreateNews)

		// PUT /api/admin/news/{id} - Edit a news item
		r.Put("/{id}", newsHandler.UpdateNews)

		// DELETE /api/admin/news/{id} - Remove a news item
		r.Delete("/{id}", newsHandler.DeleteNews)
	})
}
