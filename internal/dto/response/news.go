package response

import (
	"time"

	"venue-booking/internal/data/entity"
)

type NewsResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	PublishTime time.Time `json:"publish_time"`
}

func NewsToResponse(news *entity.News) NewsResponse {
	return NewsResponse{
		ID:          news.ID.String(),
		Title:       news.Title,
		Content:     news.Content,
		PublishTime: news.PublishTime,
	}
}
