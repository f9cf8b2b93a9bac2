package adaptor

import (
	"venue-booking/internal/dto/response"
	"venue-booking/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Venue   *VenueHandler
	Order   *OrderHandler
	Message *MessageHandler
	News    *NewsHandler
	User    *UserHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Venue:   NewVenueHandler(service.Venue, log),
		Order:   NewOrderHandler(service.Order, service.OrderVo, log),
		Message: NewMessageHandler(service.Message, log),
		News:    NewNewsHandler(service.News, log),
		User:    NewUserHandler(service.User, log),
	}
}

// pageResponse shapes a service page into the wire pagination envelope.
func pageResponse[T, R any](page *usecase.Page[T], conv func(T) R) *response.PaginatedResponse[R] {
	items := make([]R, 0, len(page.Items))
	for _, item := range page.Items {
		items = append(items, conv(item))
	}
	return response.NewPaginatedResponse(items, page.Page, page.PerPage, page.Total)
}
