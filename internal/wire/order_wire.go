package wire

import (
	"venue-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireOrder(r chi.Router, orderHandler *adaptor.OrderHandler) {
	// ==================== PUBLIC ROUTES ====================
	// POST /api/orders - Submit a reservation (lands in the audit queue)
	r.Post("/api/orders", orderHandler.SubmitOrder)

	// PUT /api/orders/{id} - Reschedule an order (resets it to pending)
	r.Put("/api/orders/{id}", orderHandler.UpdateOrder)

	// GET /api/orders/{id} - Order details
	r.Get("/api/orders/{id}", orderHandler.GetOrder)

	// DELETE /api/orders/{id} - Remove an order
	r.Delete("/api/orders/{id}", orderHandler.DeleteOrder)

	// GET /api/users/{id}/orders - A user's own reservations, paginated
	r.Get("/api/users/{id}/orders", orderHandler.GetUserOrders)

	// GET /api/venues/by-name/{name}/orders?date= - A venue's bookings for
	// one day
	r.Get("/api/venues/by-name/{name}/orders", orderHandler.GetVenueOrders)

	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin", func(r chi.Router) {
		// GET /api/admin/reservation-manage - Audited list plus one page of
		// the pending queue
		r.Get("/reservation-manage", orderHandler.ReservationManage)

		// GET /api/admin/orders/unaudited - Pending queue, paginated
		r.Get("/orders/unaudited", orderHandler.GetUnauditedOrders)

		// GET /api/admin/orders/audited - Every audited order
		r.Get("/orders/audited", orderHandler.GetAuditedOrders)

		// PUT /api/admin/orders/{id}/confirm|reject|finish - Lifecycle moves
		r.Put("/orders/{id}/confirm", orderHandler.ConfirmOrder)
		r.Put("/orders/{id}/reject", orderHandler.RejectOrder)
		r.Put("/orders/{id}/finish", orderHandler.FinishOrder)
	})
}
