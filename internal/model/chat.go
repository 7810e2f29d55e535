package model

// ChatRequest represents a chat message from the client.
type ChatRequest struct {
	Message string `json:"message"`
}

// ChatResponse represents the normalized reply from the chat webhook.
type ChatResponse struct {
	Reply string `json:"reply"`
}
