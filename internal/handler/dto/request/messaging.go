package request

type BulkMessage struct {
	RecipientPhone string `json:"recipientPhone" binding:"required"`
	Content        string `json:"content" binding:"required"`
	Cost           int    `json:"cost,omitempty"`
}

type BulkSendRequest struct {
	Messages []BulkMessage `json:"messages" binding:"required,min=1,dive"`
}
