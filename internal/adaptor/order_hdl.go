package adaptor

import (
	"context"
	"encoding/json"
	"net/http"

	"venue-booking/internal/data/entity"
	"venue-booking/internal/dto/request"
	"venue-booking/internal/dto/response"
	"venue-booking/internal/usecase"
	"venue-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type OrderHandler struct {
	service usecase.OrderService
	vo      usecase.OrderVoService
	log     *zap.Logger
}

func NewOrderHandler(service usecase.OrderService, vo usecase.OrderVoService, log *zap.Logger) *OrderHandler {
	return &OrderHandler{
		service: service,
		vo:      vo,
		log:     log.With(zap.String("handler", "order")),
	}
}

// SubmitOrder handles POST /api/orders
func (h *OrderHandler) SubmitOrder(w http.ResponseWriter, r *http.Request) {
	var req request.SubmitOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	order, err := h.service.Submit(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "submit order")
		return
	}

	utils.ResponseCreated(w, "success", response.OrderToVo(order, req.VenueName))
}

// UpdateOrder handles PUT /api/orders/{id}
func (h *OrderHandler) UpdateOrder(w http.ResponseWriter, r *http.Request) {
	orderID, ok := parseIDParam(w, chi.URLParam(r, "id"), "order ID")
	if !ok {
		return
	}

	var req request.UpdateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	order, err := h.service.Update(r.Context(), orderID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update order")
		return
	}

	utils.ResponseSuccess(w, "success", response.OrderToVo(order, req.VenueName))
}

// GetOrder handles GET /api/orders/{id}
func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	orderID, ok := parseIDParam(w, chi.URLParam(r, "id"), "order ID")
	if !ok {
		return
	}

	order, err := h.service.GetByID(r.Context(), orderID)
	if err != nil {
		handleServiceError(w, h.log, err, "get order")
		return
	}

	vos, err := h.vo.ReturnVo(r.Context(), []*entity.Order{order})
	if err != nil {
		handleServiceError(w, h.log, err, "get order")
		return
	}

	utils.ResponseSuccess(w, "success", vos[0])
}

// DeleteOrder handles DELETE /api/orders/{id}
func (h *OrderHandler) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	orderID, ok := parseIDParam(w, chi.URLParam(r, "id"), "order ID")
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), orderID); err != nil {
		handleServiceError(w, h.log, err, "delete order")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

// GetUserOrders handles GET /api/users/{id}/orders
func (h *OrderHandler) GetUserOrders(w http.ResponseWriter, r *http.Request) {
	userID, ok := parseIDParam(w, chi.URLParam(r, "id"), "user ID")
	if !ok {
		return
	}

	page := utils.ParseInt(r.URL.Query().Get("page"), 1)

	orders, err := h.service.FindUserOrders(r.Context(), userID, page)
	if err != nil {
		handleServiceError(w, h.log, err, "get user orders")
		return
	}

	vos, err := h.vo.ReturnVo(r.Context(), orders.Items)
	if err != nil {
		handleServiceError(w, h.log, err, "get user orders")
		return
	}

	utils.ResponseSuccess(w, "success",
		response.NewPaginatedResponse(vos, orders.Page, orders.PerPage, orders.Total))
}

// GetUnauditedOrders handles GET /api/admin/orders/unaudited
func (h *OrderHandler) GetUnauditedOrders(w http.ResponseWriter, r *http.Request) {
	page := utils.ParseInt(r.URL.Query().Get("page"), 1)

	orders, err := h.service.FindUnauditedOrders(r.Context(), page)
	if err != nil {
		handleServiceError(w, h.log, err, "get unaudited orders")
		return
	}

	vos, err := h.vo.ReturnVo(r.Context(), orders.Items)
	if err != nil {
		handleServiceError(w, h.log, err, "get unaudited orders")
		return
	}

	utils.ResponseSuccess(w, "success",
		response.NewPaginatedResponse(vos, orders.Page, orders.PerPage, orders.Total))
}

// GetAuditedOrders handles GET /api/admin/orders/audited
func (h *OrderHandler) GetAuditedOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.service.FindAuditedOrders(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "get audited orders")
		return
	}

	vos, err := h.vo.ReturnVo(r.Context(), orders)
	if err != nil {
		handleServiceError(w, h.log, err, "get audited orders")
		return
	}

	utils.ResponseSuccess(w, "success", vos)
}

// ReservationManage handles GET /api/admin/reservation-manage. It is the
// combined admin screen: every audited order plus one page of the
// pending queue.
func (h *OrderHandler) ReservationManage(w http.ResponseWriter, r *http.Request) {
	page := utils.ParseInt(r.URL.Query().Get("page"), 1)

	audited, err := h.service.FindAuditedOrders(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "reservation manage")
		return
	}

	unaudited, err := h.service.FindUnauditedOrders(r.Context(), page)
	if err != nil {
		handleServiceError(w, h.log, err, "reservation manage")
		return
	}

	auditedVos, err := h.vo.ReturnVo(r.Context(), audited)
	if err != nil {
		handleServiceError(w, h.log, err, "reservation manage")
		return
	}

	unauditedVos, err := h.vo.ReturnVo(r.Context(), unaudited.Items)
	if err != nil {
		handleServiceError(w, h.log, err, "reservation manage")
		return
	}

	utils.ResponseSuccess(w, "success", response.ReservationManageResponse{
		Audited: auditedVos,
		Unaudited: response.NewPaginatedResponse(
			unauditedVos, unaudited.Page, unaudited.PerPage, unaudited.Total),
	})
}

// ConfirmOrder handles PUT /api/admin/orders/{id}/confirm
func (h *OrderHandler) ConfirmOrder(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, "confirm order", h.service.Confirm)
}

// RejectOrder handles PUT /api/admin/orders/{id}/reject
func (h *OrderHandler) RejectOrder(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, "reject order", h.service.Reject)
}

// FinishOrder handles PUT /api/admin/orders/{id}/finish
func (h *OrderHandler) FinishOrder(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, "finish order", h.service.Finish)
}

func (h *OrderHandler) transition(w http.ResponseWriter, r *http.Request, operation string, op func(context.Context, uuid.UUID) error) {
	orderID, ok := parseIDParam(w, chi.URLParam(r, "id"), "order ID")
	if !ok {
		return
	}

	if err := op(r.Context(), orderID); err != nil {
		handleServiceError(w, h.log, err, operation)
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

// GetVenueOrders handles GET /api/venues/by-name/{name}/orders?date=YYYY-MM-DD.
// It shows a venue's blocking bookings for one day so users can pick a
// free slot.
func (h *OrderHandler) GetVenueOrders(w http.ResponseWriter, r *http.Request) {
	venueName := chi.URLParam(r, "name")
	if venueName == "" {
		utils.ResponseBadRequest(w, "Venue name is required", nil)
		return
	}

	date := r.URL.Query().Get("date")
	if date == "" {
		utils.ResponseBadRequest(w, "Date is required", nil)
		return
	}

	venue, orders, err := h.service.FindVenueOrders(r.Context(), venueName, date)
	if err != nil {
		handleServiceError(w, h.log, err, "get venue orders")
		return
	}

	vos, err := h.vo.ReturnVo(r.Context(), orders)
	if err != nil {
		handleServiceError(w, h.log, err, "get venue orders")
		return
	}

	utils.ResponseSuccess(w, "success", response.VenueOrdersResponse{
		Venue:  response.VenueToResponse(venue),
		Orders: vos,
	})
}
