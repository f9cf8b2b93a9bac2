package request

type PostMessageRequest struct {
	UserID  string `json:"user_id" validate:"required,uuid4"`
	Content string `json:"content" validate:"required,min=1,max=500"`
}

type UpdateMessageRequest struct {
	Content string `json:"content" validate:"required,min=1,max=500"`
}
