package domain

// ChatRequest is a message to the copilot assistant
type ChatRequest struct {
	Message string         `json:"message" binding:"required"`
	Context map[string]any `json:"context,omitempty"`
}

// ChatResponse is the assistant's reply with suggested follow-up actions
type ChatResponse struct {
	Reply   string   `json:"reply"`
	Actions []string `json:"actions"`
}
