package dto

import (
	"time"

	"policy-assist-be/pkg/chat"
	"policy-assist-be/pkg/completion"
)

type ChatRequest struct {
	Question string                  `json:"question" validate:"required"`
	History  []chat.ConversationTurn `json:"history" validate:"dive"`
}

type ChatResponse struct {
	Reply      string                       `json:"reply"`
	Structured *completion.StructuredAnswer `json:"structured"`
	Sources    []completion.SourceCitation  `json:"sources"`
}

// --- Limit Exceeded Error Types ---

// LimitExceededError carries usage details for the daily message cap
type LimitExceededError struct {
	Limit      int       `json:"limit"`
	Used       int       `json:"used"`
	ResetAfter time.Time `json:"reset_after"`
}

func (e *LimitExceededError) Error() string {
	return "daily message limit exceeded"
}

// LimitExceededData is the data payload for 429 responses
type LimitExceededData struct {
	Limit      int       `json:"limit"`
	Used       int       `json:"used"`
	ResetAfter time.Time `json:"reset_after"`
}

// LimitExceededResponse is the full 429 response structure
type LimitExceededResponse struct {
	Success   bool              `json:"success"`
	Code      int               `json:"code"`
	Message   string            `json:"message"`
	ErrorType string            `json:"error_type"`
	Data      LimitExceededData `json:"data"`
}
