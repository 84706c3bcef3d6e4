package request

type CreateMessageRequest struct {
	Content     string `json:"content" validate:"required"`
	RecipientID string `json:"recipientId" validate:"required"`
}

type UpdateMessageRequest struct {
	Content string `json:"content" validate:"required"`
}
