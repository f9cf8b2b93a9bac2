package adaptor

import (
	"encoding/json"
	"net/http"

	"venue-booking/internal/dto/request"
	"venue-booking/internal/dto/response"
	"venue-booking/internal/usecase"
	"venue-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type MessageHandler struct {
	service usecase.MessageService
	log     *zap.Logger
}

func NewMessageHandler(service usecase.MessageService, log *zap.Logger) *MessageHandler {
	return &MessageHandler{
		service: service,
		log:     log.With(zap.String("handler", "message")),
	}
}

// PostMessage handles POST /api/messages
func (h *MessageHandler) PostMessage(w http.ResponseWriter, r *http.Request) {
	var req request.PostMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	message, err := h.service.Post(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "post message")
		return
	}

	utils.ResponseCreated(w, "success", response.MessageToResponse(message))
}

// UpdateMessage handles PUT /api/messages/{id}
func (h *MessageHandler) UpdateMessage(w http.ResponseWriter, r *http.Request) {
	messageID, ok := parseIDParam(w, chi.URLParam(r, "id"), "message ID")
	if !ok {
		return
	}

	var req request.UpdateMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	message, err := h.service.Update(r.Context(), messageID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update message")
		return
	}

	utils.ResponseSuccess(w, "success", response.MessageToResponse(message))
}

// PassMessage handles PUT /api/admin/messages/{id}/pass
func (h *MessageHandler) PassMessage(w http.ResponseWriter, r *http.Request) {
	messageID, ok := parseIDParam(w, chi.URLParam(r, "id"), "message ID")
	if !ok {
		return
	}

	if err := h.service.Pass(r.Context(), messageID); err != nil {
		handleServiceError(w, h.log, err, "pass message")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

// RejectMessage handles PUT /api/admin/messages/{id}/reject
func (h *MessageHandler) RejectMessage(w http.ResponseWriter, r *http.Request) {
	messageID, ok := parseIDParam(w, chi.URLParam(r, "id"), "message ID")
	if !ok {
		return
	}

	if err := h.service.Reject(r.Context(), messageID); err != nil {
		handleServiceError(w, h.log, err, "reject message")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

// DeleteMessage handles DELETE /api/messages/{id}
func (h *MessageHandler) DeleteMessage(w http.ResponseWriter, r *http.Request) {
	messageID, ok := parseIDParam(w, chi.URLParam(r, "id"), "message ID")
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), messageID); err != nil {
		handleServiceError(w, h.log, err, "delete message")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

// GetUserMessages handles GET /api/users/{id}/messages
func (h *MessageHandler) GetUserMessages(w http.ResponseWriter, r *http.Request) {
	userID, ok := parseIDParam(w, chi.URLParam(r, "id"), "user ID")
	if !ok {
		return
	}

	page := utils.ParseInt(r.URL.Query().Get("page"), 1)

	messages, err := h.service.FindUserMessages(r.Context(), userID, page)
	if err != nil {
		handleServiceError(w, h.log, err, "get user messages")
		return
	}

	utils.ResponseSuccess(w, "success", pageResponse(messages, response.MessageToResponse))
}

// GetWaitMessages handles GET /api/admin/messages/wait
func (h *MessageHandler) GetWaitMessages(w http.ResponseWriter, r *http.Request) {
	page := utils.ParseInt(r.URL.Query().Get("page"), 1)

	messages, err := h.service.FindWaitMessages(r.Context(), page)
	if err != nil {
		handleServiceError(w, h.log, err, "get wait messages")
		return
	}

	utils.ResponseSuccess(w, "success", pageResponse(messages, response.MessageToResponse))
}

// GetPassMessages handles GET /api/messages
func (h *MessageHandler) GetPassMessages(w http.ResponseWriter, r *http.Request) {
	page := utils.ParseInt(r.URL.Query().Get("page"), 1)

	messages, err := h.service.FindPassMessages(r.Context(), page)
	if err != nil {
		handleServiceError(w, h.log, err, "get pass messages")
		return
	}

	utils.ResponseSuccess(w, "success", pageResponse(messages, response.MessageToResponse))
}
