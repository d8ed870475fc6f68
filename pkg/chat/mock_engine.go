package chat

import (
	"context"
	"strings"

	"policy-assist-be/internal/constant"
	"policy-assist-be/pkg/completion"
)

// MockEngine is the deterministic offline variant: no network calls, no
// logging side effects. It keeps the Live result shape so callers and tests
// cannot tell the variants apart structurally.
type MockEngine struct{}

var _ Engine = &MockEngine{}

func NewMockEngine() *MockEngine {
	return &MockEngine{}
}

func (e *MockEngine) Reply(ctx context.Context, req Request) (*AnswerResult, error) {
	return &AnswerResult{
		Reply:      constant.MockReplyPrefix + strings.ToUpper(req.Question),
		Structured: nil,
		Sources:    []completion.SourceCitation{},
	}, nil
}
