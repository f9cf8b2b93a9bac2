package usecase

import (
	"context"
	"fmt"
	"time"

	"venue-booking/internal/data/entity"
	"venue-booking/internal/data/repository"
	"venue-booking/internal/dto/request"
	"venue-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// VenueService is the venue directory plus admin management. Lookups
// report ErrNotFound explicitly; they never fall back to defaults.
type VenueService interface {
	Create(ctx context.Context, req *request.VenueRequest) (*entity.Venue, error)
	Update(ctx context.Context, venueID uuid.UUID, req *request.VenueUpdateRequest) (*entity.Venue, error)
	Delete(ctx context.Context, venueID uuid.UUID) error
	GetByID(ctx context.Context, venueID uuid.UUID) (*entity.Venue, error)
	GetByName(ctx context.Context, name string) (*entity.Venue, error)
	FindAll(ctx context.Context, req *request.PaginatedRequest) (*Page[*entity.Venue], error)
}

type venueService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewVenueService(repo *repository.Repository, log *zap.Logger) VenueService {
	return &venueService{
		repo: repo,
		log:  log.With(zap.String("service", "venue")),
	}
}

func (s *venueService) Create(ctx context.Context, req *request.VenueRequest) (*entity.Venue, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create venue validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrInvalidArgument, utils.FormatValidationErrors(errs))
	}

	existing, err := s.repo.Venue.FindByName(ctx, req.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("venue name %q already taken: %w", req.Name, ErrConflict)
	}

	now := time.Now()
	venue := &entity.Venue{
		ID:          uuid.New(),
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Picture:     req.Picture,
		Address:     req.Address,
		OpenTime:    req.OpenTime,
		CloseTime:   req.CloseTime,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Venue.Create(ctx, venue); err != nil {
		return nil, err
	}

	s.log.Info("Venue created",
		zap.String("venue_id", venue.ID.String()),
		zap.String("name", venue.Name),
	)

	return venue, nil
}

func (s *venueService) Update(ctx context.Context, venueID uuid.UUID, req *request.VenueUpdateRequest) (*entity.Venue, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update venue validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrInvalidArgument, utils.FormatValidationErrors(errs))
	}

	venue, err := s.repo.Venue.FindByID(ctx, venueID)
	if err != nil {
		return nil, err
	}
	if venue == nil {
		return nil, fmt.Errorf("venue %s: %w", venueID.String(), ErrNotFound)
	}

	if req.Name != nil {
		venue.Name = *req.Name
	}
	if req.Description != nil {
		venue.Description = *req.Description
	}
	if req.Price != nil {
		// Existing orders keep their locked-in totals.
		venue.Price = *req.Price
	}
	if req.Picture != nil {
		venue.Picture = *req.Picture
	}
	if req.Address != nil {
		venue.Address = *req.Address
	}
	if req.OpenTime != nil {
		venue.OpenTime = *req.OpenTime
	}
	if req.CloseTime != nil {
		venue.CloseTime = *req.CloseTime
	}
	venue.UpdatedAt = time.Now()

	if err := s.repo.Venue.Update(ctx, venue); err != nil {
		return nil, err
	}

	s.log.Info("Venue updated", zap.String("venue_id", venue.ID.String()))

	return venue, nil
}

func (s *venueService) Delete(ctx context.Context, venueID uuid.UUID) error {
	return s.repo.Venue.Delete(ctx, venueID)
}

func (s *venueService) GetByID(ctx context.Context, venueID uuid.UUID) (*entity.Venue, error) {
	venue, err := s.repo.Venue.FindByID(ctx, venueID)
	if err != nil {
		return nil, err
	}
	if venue == nil {
		return nil, fmt.Errorf("venue %s: %w", venueID.String(), ErrNotFound)
	}
	return venue, nil
}

func (s *venueService) GetByName(ctx context.Context, name string) (*entity.Venue, error) {
	venue, err := s.repo.Venue.FindByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if venue == nil {
		return nil, fmt.Errorf("venue %q: %w", name, ErrNotFound)
	}
	return venue, nil
}

func (s *venueService) FindAll(ctx context.Context, req *request.PaginatedRequest) (*Page[*entity.Venue], error) {
	if req.Page < 1 {
		return emptyPage[*entity.Venue](req.Page, req.Limit()), nil
	}

	venues, err := s.repo.Venue.FindAll(ctx, req.Limit(), req.Offset())
	if err != nil {
		return nil, err
	}

	total, err := s.repo.Venue.Count(ctx)
	if err != nil {
		return nil, err
	}

	return &Page[*entity.Venue]{Items: venues, Total: total, Page: req.Page, PerPage: req.Limit()}, nil
}
