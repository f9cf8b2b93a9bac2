package repository

import (
	"venue-booking/pkg/database"
	"venue-booking/pkg/utils"

	"go.uber.org/zap"
)

type Repository struct {
	Venue   VenueRepository
	Order   OrderRepository
	Message MessageRepository
	News    NewsRepository
	User    UserRepository
}

func NewRepository(db database.PgxIface, cfg *utils.Config, log *zap.Logger) *Repository {
	return &Repository{
		Venue:   NewVenueRepository(db, log),
		Order:   NewOrderRepository(db, log, cfg.Booking.ConflictRetries),
		Message: NewMessageRepository(db, log),
		News:    NewNewsRepository(db, log),
		User:    NewUserRepository(db, log),
	}
}
