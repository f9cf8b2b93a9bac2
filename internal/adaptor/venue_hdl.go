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

type VenueHandler struct {
	service usecase.VenueService
	log     *zap.Logger
}

func NewVenueHandler(service usecase.VenueService, log *zap.Logger) *VenueHandler {
	return &VenueHandler{
		service: service,
		log:     log.With(zap.String("handler", "venue")),
	}
}

// CreateVenue handles POST /api/admin/venues
func (h *VenueHandler) CreateVenue(w http.ResponseWriter, r *http.Request) {
	var req request.VenueRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	venue, err := h.service.Create(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create venue")
		return
	}

	utils.ResponseCreated(w, "success", response.VenueToResponse(venue))
}

// UpdateVenue handles PUT /api/admin/venues/{id}
func (h *VenueHandler) UpdateVenue(w http.ResponseWriter, r *http.Request) {
	venueID, ok := parseIDParam(w, chi.URLParam(r, "id"), "venue ID")
	if !ok {
		return
	}

	var req request.VenueUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	venue, err := h.service.Update(r.Context(), venueID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update venue")
		return
	}

	utils.ResponseSuccess(w, "success", response.VenueToResponse(venue))
}

// DeleteVenue handles DELETE /api/admin/venues/{id}
func (h *VenueHandler) DeleteVenue(w http.ResponseWriter, r *http.Request) {
	venueID, ok := parseIDParam(w, chi.URLParam(r, "id"), "venue ID")
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), venueID); err != nil {
		handleServiceError(w, h.log, err, "delete venue")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

// GetVenue handles GET /api/venues/{id}
func (h *VenueHandler) GetVenue(w http.ResponseWriter, r *http.Request) {
	venueID, ok := parseIDParam(w, chi.URLParam(r, "id"), "venue ID")
	if !ok {
		return
	}

	venue, err := h.service.GetByID(r.Context(), venueID)
	if err != nil {
		handleServiceError(w, h.log, err, "get venue")
		return
	}

	utils.ResponseSuccess(w, "success", response.VenueToResponse(venue))
}

// GetVenueByName handles GET /api/venues/by-name/{name}
func (h *VenueHandler) GetVenueByName(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	if name == "" {
		utils.ResponseBadRequest(w, "Venue name is required", nil)
		return
	}

	venue, err := h.service.GetByName(r.Context(), name)
	if err != nil {
		handleServiceError(w, h.log, err, "get venue by name")
		return
	}

	utils.ResponseSuccess(w, "success", response.VenueToResponse(venue))
}

// ListVenues handles GET /api/venues
func (h *VenueHandler) ListVenues(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &request.PaginatedRequest{
		Page:    utils.ParseInt(query.Get("page"), 1),
		PerPage: utils.ParseInt(query.Get("per_page"), 10),
	}

	venues, err := h.service.FindAll(r.Context(), req)
	if err != nil {
		handleServiceError(w, h.log, err, "list venues")
		return
	}

	utils.ResponseSuccess(w, "success", pageResponse(venues, response.VenueToResponse))
}
