package usecase

import (
	"context"

	"venue-booking/internal/data/entity"
	"venue-booking/internal/data/repository"
	"venue-booking/internal/dto/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// OrderVoService enriches raw orders with venue display fields for list
// responses. It lives outside the core engine on purpose: the engine
// returns store records and knows nothing about rendering.
type OrderVoService interface {
	ReturnVo(ctx context.Context, orders []*entity.Order) ([]response.OrderVo, error)
}

type orderVoService struct {
	venues repository.VenueRepository
	log    *zap.Logger
}

func NewOrderVoService(venues repository.VenueRepository, log *zap.Logger) OrderVoService {
	return &orderVoService{
		venues: venues,
		log:    log.With(zap.String("service", "order_vo")),
	}
}

func (s *orderVoService) ReturnVo(ctx context.Context, orders []*entity.Order) ([]response.OrderVo, error) {
	vos := make([]response.OrderVo, 0, len(orders))
	names := make(map[uuid.UUID]string)

	for _, order := range orders {
		name, ok := names[order.VenueID]
		if !ok {
			venue, err := s.venues.FindByID(ctx, order.VenueID)
			if err != nil {
				return nil, err
			}
			if venue != nil {
				name = venue.Name
			}
			// A deleted venue leaves the name blank rather than failing
			// the whole listing.
			names[order.VenueID] = name
		}
		vos = append(vos, response.OrderToVo(order, name))
	}

	return vos, nil
}
