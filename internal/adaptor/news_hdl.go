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

type NewsHandler struct {
	service usecase.NewsService
	log     *zap.Logger
}

func NewNewsHandler(service usecase.NewsService, log *zap.Logger) *NewsHandler {
	return &NewsHandler{
		service: service,
		log:     log.With(zap.String("handler", "news")),
	}
}

// CreateNews handles POST /api/admin/news
func (h *NewsHandler) CreateNews(w http.ResponseWriter, r *http.Request) {
	var req request.NewsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	news, err := h.service.Create(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create news")
		return
	}

	utils.ResponseCreated(w, "success", response.NewsToResponse(news))
}

// UpdateNews handles PUT /api/admin/news/{id}
func (h *NewsHandler) UpdateNews(w http.ResponseWriter, r *http.Request) {
	newsID, ok := parseIDParam(w, chi.URLParam(r, "id"), "news ID")
	if !ok {
		return
	}

	var req request.NewsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	news, err := h.service.Update(r.Context(), newsID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update news")
		return
	}

	utils.ResponseSuccess(w, "success", response.NewsToResponse(news))
}

// DeleteNews handles DELETE /api/admin/news/{id}
func (h *NewsHandler) DeleteNews(w http.ResponseWriter, r *http.Request) {
	newsID, ok := parseIDParam(w, chi.URLParam(r, "id"), "news ID")
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), newsID); err != nil {
		handleServiceError(w, h.log, err, "delete news")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

// GetNews handles GET /api/news/{id}
func (h *NewsHandler) GetNews(w http.ResponseWriter, r *http.Request) {
	newsID, ok := parseIDParam(w, chi.URLParam(r, "id"), "news ID")
	if !ok {
		return
	}

	news, err := h.service.GetByID(r.Context(), newsID)
	if err != nil {
		handleServiceError(w, h.log, err, "get news")
		return
	}

	utils.ResponseSuccess(w, "success", response.NewsToResponse(news))
}

// ListNews handles GET /api/news
func (h *NewsHandler) ListNews(w http.ResponseWriter, r *http.Request) {
	page := utils.ParseInt(r.URL.Query().Get("page"), 1)

	news, err := h.service.FindAll(r.Context(), page)
	if err != nil {
		handleServiceError(w, h.log, err, "list news")
		return
	}

	utils.ResponseSuccess(w, "success", pageResponse(news, response.NewsToResponse))
}
