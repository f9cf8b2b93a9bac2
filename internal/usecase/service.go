package usecase

import (
	"venue-booking/internal/data/repository"
	"venue-booking/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Venue   VenueService
	Order   OrderService
	OrderVo OrderVoService
	Message MessageService
	News    NewsService
	User    UserService
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Venue:   NewVenueService(repo, log),
		Order:   NewOrderService(repo, config, log),
		OrderVo: NewOrderVoService(repo.Venue, log),
		Message: NewMessageService(repo, config, log),
		News:    NewNewsService(repo.News, config, log),
		User:    NewUserService(repo.User, config, log),
	}
}
