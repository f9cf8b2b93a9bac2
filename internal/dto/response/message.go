package response

import (
	"time"

	"venue-booking/internal/data/entity"
)

type MessageResponse struct {
	ID       string              `json:"id"`
	UserID   string              `json:"user_id"`
	Content  string              `json:"content"`
	State    entity.MessageState `json:"state"`
	PostTime time.Time           `json:"post_time"`
}

func MessageToResponse(message *entity.Message) MessageResponse {
	return MessageResponse{
		ID:       message.ID.String(),
		UserID:   message.UserID.String(),
		Content:  message.Content,
		State:    message.State,
		PostTime: message.PostTime,
	}
}
