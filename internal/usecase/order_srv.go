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

// OrderService is the reservation lifecycle engine. Submit and Update
// delegate the overlap-check-then-write pair to the store so it happens
// inside one serializable transaction; the four transition operations are
// compare-and-swap on the current state. Listing goes through the
// projector queries below, never over the raw store.
type OrderService interface {
	Submit(ctx context.Context, req *request.SubmitOrderRequest) (*entity.Order, error)
	Update(ctx context.Context, orderID uuid.UUID, req *request.UpdateOrderRequest) (*entity.Order, error)
	Confirm(ctx context.Context, orderID uuid.UUID) error
	Reject(ctx context.Context, orderID uuid.UUID) error
	Finish(ctx context.Context, orderID uuid.UUID) error
	Delete(ctx context.Context, orderID uuid.UUID) error
	GetByID(ctx context.Context, orderID uuid.UUID) (*entity.Order, error)

	// FindUserOrders pages a user's own orders, newest first. Bad or
	// out-of-range pages degrade to an empty page: the caller is public
	// and low-risk.
	FindUserOrders(ctx context.Context, userID uuid.UUID, page int) (*Page[*entity.Order], error)
	// FindUnauditedOrders pages the admin audit queue, oldest first, at
	// the fixed audit page size. Page indexes below 1 are rejected with
	// ErrInvalidArgument; pages past the end come back empty.
	FindUnauditedOrders(ctx context.Context, page int) (*Page[*entity.Order], error)
	// FindAuditedOrders returns every confirmed/rejected/finished order,
	// unpaginated, for the combined admin view.
	FindAuditedOrders(ctx context.Context) ([]*entity.Order, error)
	// FindVenueOrders lists the venue's blocking bookings on one calendar
	// day, ordered by start time.
	FindVenueOrders(ctx context.Context, venueName, date string) (*entity.Venue, []*entity.Order, error)
}

type orderService struct {
	repo          *repository.Repository
	auditPageSize int
	userPageSize  int
	log           *zap.Logger
}

func NewOrderService(repo *repository.Repository, config *utils.Config, log *zap.Logger) OrderService {
	auditSize := config.Booking.AuditPageSize
	if auditSize < 1 {
		auditSize = 10
	}
	userSize := config.Booking.UserPageSize
	if userSize < 1 {
		userSize = 10
	}
	return &orderService{
		repo:          repo,
		auditPageSize: auditSize,
		userPageSize:  userSize,
		log:           log.With(zap.String("service", "order")),
	}
}

func (s *orderService) Submit(ctx context.Context, req *request.SubmitOrderRequest) (*entity.Order, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Submit order validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrInvalidArgument, utils.FormatValidationErrors(errs))
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return nil, fmt.Errorf("%w: user ID %q", ErrInvalidArgument, req.UserID)
	}

	venue, startTime, err := s.resolveSlot(ctx, req.VenueName, req.StartTime, req.Hours)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	order := &entity.Order{
		ID:        uuid.New(),
		UserID:    userID,
		VenueID:   venue.ID,
		State:     entity.OrderStatePending,
		OrderTime: now,
		StartTime: startTime,
		Hours:     req.Hours,
		// Price is locked here; later venue price changes never touch it.
		Total:     venue.Price * float64(req.Hours),
		UpdatedAt: now,
	}

	if err := s.repo.Order.CreateIfFree(ctx, order); err != nil {
		return nil, err
	}

	s.log.Info("Order submitted",
		zap.String("order_id", order.ID.String()),
		zap.String("user_id", userID.String()),
		zap.String("venue", venue.Name),
		zap.Time("start_time", startTime),
		zap.Int("hours", req.Hours),
		zap.Float64("total", order.Total),
	)

	return order, nil
}

func (s *orderService) Update(ctx context.Context, orderID uuid.UUID, req *request.UpdateOrderRequest) (*entity.Order, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update order validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrInvalidArgument, utils.FormatValidationErrors(errs))
	}

	order, err := s.repo.Order.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, fmt.Errorf("order %s: %w", orderID.String(), ErrNotFound)
	}

	venue, startTime, err := s.resolveSlot(ctx, req.VenueName, req.StartTime, req.Hours)
	if err != nil {
		return nil, err
	}

	// An edited order must be re-audited, whatever state it was in.
	order.VenueID = venue.ID
	order.State = entity.OrderStatePending
	order.StartTime = startTime
	order.Hours = req.Hours
	order.Total = venue.Price * float64(req.Hours)
	order.UpdatedAt = time.Now()

	if err := s.repo.Order.UpdateIfFree(ctx, order); err != nil {
		return nil, err
	}

	s.log.Info("Order updated",
		zap.String("order_id", order.ID.String()),
		zap.String("venue", venue.Name),
		zap.Time("start_time", startTime),
		zap.Int("hours", req.Hours),
	)

	return order, nil
}

// resolveSlot looks up the venue and checks the requested interval sits
// inside its opening window on the start date.
func (s *orderService) resolveSlot(ctx context.Context, venueName, start string, hours int) (*entity.Venue, time.Time, error) {
	if hours <= 0 {
		return nil, time.Time{}, fmt.Errorf("%w: hours must be positive", ErrInvalidArgument)
	}

	venue, err := s.repo.Venue.FindByName(ctx, venueName)
	if err != nil {
		return nil, time.Time{}, err
	}
	if venue == nil {
		return nil, time.Time{}, fmt.Errorf("venue %q: %w", venueName, ErrNotFound)
	}

	startTime, err := time.Parse(request.TimeLayout, start)
	if err != nil {
		return nil, time.Time{}, fmt.Errorf("%w: start time %q", ErrInvalidArgument, start)
	}

	open, close, err := venue.OpeningWindow(startTime)
	if err != nil {
		return nil, time.Time{}, fmt.Errorf("venue %q opening hours: %w", venueName, err)
	}

	endTime := startTime.Add(time.Duration(hours) * time.Hour)
	if startTime.Before(open) || endTime.After(close) {
		return nil, time.Time{}, fmt.Errorf("%w: slot %s+%dh outside opening hours %s-%s",
			ErrInvalidArgument, start, hours, venue.OpenTime, venue.CloseTime)
	}

	return venue, startTime, nil
}

func (s *orderService) Confirm(ctx context.Context, orderID uuid.UUID) error {
	return s.transition(ctx, orderID, entity.OrderStatePending, entity.OrderStateConfirmed, "confirm")
}

func (s *orderService) Reject(ctx context.Context, orderID uuid.UUID) error {
	return s.transition(ctx, orderID, entity.OrderStatePending, entity.OrderStateRejected, "reject")
}

func (s *orderService) Finish(ctx context.Context, orderID uuid.UUID) error {
	return s.transition(ctx, orderID, entity.OrderStateConfirmed, entity.OrderStateFinished, "finish")
}

// transition performs one CAS state change and classifies a miss as
// NotFound or IllegalState by re-reading the row.
func (s *orderService) transition(ctx context.Context, orderID uuid.UUID, from, to entity.OrderState, op string) error {
	swapped, err := s.repo.Order.UpdateStateFrom(ctx, orderID, from, to)
	if err != nil {
		return err
	}
	if !swapped {
		order, err := s.repo.Order.FindByID(ctx, orderID)
		if err != nil {
			return err
		}
		if order == nil {
			return fmt.Errorf("order %s: %w", orderID.String(), ErrNotFound)
		}
		return fmt.Errorf("cannot %s order %s in state %s: %w", op, orderID.String(), order.State, ErrIllegalState)
	}

	s.log.Info("Order state changed",
		zap.String("order_id", orderID.String()),
		zap.String("from", string(from)),
		zap.String("to", string(to)),
	)
	return nil
}

func (s *orderService) Delete(ctx context.Context, orderID uuid.UUID) error {
	return s.repo.Order.Delete(ctx, orderID)
}

func (s *orderService) GetByID(ctx context.Context, orderID uuid.UUID) (*entity.Order, error) {
	order, err := s.repo.Order.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, fmt.Errorf("order %s: %w", orderID.String(), ErrNotFound)
	}
	return order, nil
}

func (s *orderService) FindUserOrders(ctx context.Context, userID uuid.UUID, page int) (*Page[*entity.Order], error) {
	if page < 1 {
		// Public listing degrades gracefully instead of erroring.
		return emptyPage[*entity.Order](page, s.userPageSize), nil
	}

	offset := utils.CalculateOffset(page, s.userPageSize)
	orders, err := s.repo.Order.FindByUser(ctx, userID, s.userPageSize, offset)
	if err != nil {
		return nil, err
	}

	total, err := s.repo.Order.CountByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &Page[*entity.Order]{Items: orders, Total: total, Page: page, PerPage: s.userPageSize}, nil
}

func (s *orderService) FindUnauditedOrders(ctx context.Context, page int) (*Page[*entity.Order], error) {
	if page < 1 {
		// The admin product consumes this as raw JSON; a 0/negative page
		// is a caller bug and is rejected before the store is touched.
		return nil, fmt.Errorf("%w: page %d", ErrInvalidArgument, page)
	}

	offset := utils.CalculateOffset(page, s.auditPageSize)
	orders, err := s.repo.Order.FindPending(ctx, s.auditPageSize, offset)
	if err != nil {
		return nil, err
	}

	total, err := s.repo.Order.CountPending(ctx)
	if err != nil {
		return nil, err
	}

	return &Page[*entity.Order]{Items: orders, Total: total, Page: page, PerPage: s.auditPageSize}, nil
}

func (s *orderService) FindAuditedOrders(ctx context.Context) ([]*entity.Order, error) {
	return s.repo.Order.FindAudited(ctx)
}

func (s *orderService) FindVenueOrders(ctx context.Context, venueName, date string) (*entity.Venue, []*entity.Order, error) {
	venue, err := s.repo.Venue.FindByName(ctx, venueName)
	if err != nil {
		return nil, nil, err
	}
	if venue == nil {
		return nil, nil, fmt.Errorf("venue %q: %w", venueName, ErrNotFound)
	}

	day, err := time.Parse(request.DateLayout, date)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: date %q", ErrInvalidArgument, date)
	}

	from := day
	to := day.AddDate(0, 0, 1)
	orders, err := s.repo.Order.FindOverlapping(ctx, venue.ID, from, to)
	if err != nil {
		return nil, nil, err
	}

	return venue, orders, nil
}
