package chat

import (
	"context"

	"policy-assist-be/pkg/completion"
	"policy-assist-be/pkg/grounding"
)

// ConversationTurn is one prior message in the conversation, oldest first.
// Order is meaningful and preserved verbatim when the prompt is built.
type ConversationTurn struct {
	Role    string `json:"role"` // "user" | "assistant"
	Content string `json:"content"`
}

// Request carries everything an engine needs for one reply. The caller is
// responsible for rejecting an empty question before invoking the engine.
type Request struct {
	Question       string
	History        []ConversationTurn
	CallerIdentity string // empty for guests
}

// AnswerResult is the only artifact returned to the caller. Reply is either
// the generated draft or the fallback message, decided by the gating policy.
type AnswerResult struct {
	Reply      string                       `json:"reply"`
	Structured *completion.StructuredAnswer `json:"structured"`
	Sources    []completion.SourceCitation  `json:"sources"`
}

// Engine defines WHAT a chat engine does without specifying HOW. The Mock
// and Live variants are wire-compatible so call sites stay agnostic; the
// variant is chosen once per process at bootstrap, never per request.
type Engine interface {
	Reply(ctx context.Context, req Request) (*AnswerResult, error)
}

// Exchange is the full audited record of one question/answer round trip,
// handed to the recorder after the reply is finalized. DraftReply is the
// pre-gating model output so the unfiltered answer survives for audit even
// when the user saw the fallback.
type Exchange struct {
	Question       string
	DraftReply     string
	FinalReply     string
	Grounded       bool
	Structured     *completion.StructuredAnswer
	Sources        []completion.SourceCitation
	Assessment     *grounding.Assessment
	CallerIdentity string
}

// ExchangeRecorder is a best-effort side channel: implementations must
// swallow their own failures. Its outcome never influences the reply already
// computed for the caller.
type ExchangeRecorder interface {
	Record(exchange *Exchange)
}
