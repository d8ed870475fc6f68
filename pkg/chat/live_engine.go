package chat

import (
	"context"
	"fmt"
	"strings"

	"policy-assist-be/internal/constant"
	"policy-assist-be/internal/pkg/logger"
	"policy-assist-be/pkg/completion"
	"policy-assist-be/pkg/grounding"
)

// LiveEngine is the retrieval-augmented, groundedness-gated variant. One
// request runs sequentially: generate, ground, record. The engine holds no
// per-request state and is safe to share across concurrent requests.
type LiveEngine struct {
	provider completion.Provider
	verifier *grounding.Verifier
	recorder ExchangeRecorder
	logger   logger.ILogger
}

var _ Engine = &LiveEngine{}

func NewLiveEngine(
	provider completion.Provider,
	verifier *grounding.Verifier,
	recorder ExchangeRecorder,
	log logger.ILogger,
) *LiveEngine {
	return &LiveEngine{
		provider: provider,
		verifier: verifier,
		recorder: recorder,
		logger:   log,
	}
}

func (e *LiveEngine) Reply(ctx context.Context, req Request) (*AnswerResult, error) {
	// 1. Generate. A completion failure fails the whole request; there is no
	// retry and no partial result.
	structured, err := e.provider.Generate(ctx, []completion.Message{
		{Role: constant.ChatRoleUser, Content: BuildUserInput(req.History, req.Question)},
	})
	if err != nil {
		return nil, fmt.Errorf("completion call failed: %w", err)
	}

	draftReply := ComposeDraftReply(structured)
	sourcesText := ComposeSourcesText(structured.RelatedPolicies)

	// 2. Ground. Embedding failures degrade to the fallback path inside the
	// verifier; they never abort the request.
	assessment := e.verifier.Assess(ctx, req.Question, draftReply, sourcesText)

	finalReply := draftReply
	if !assessment.Grounded {
		finalReply = constant.UngroundedFallbackReply
		e.logger.Info("chat", "reply gated to fallback", map[string]interface{}{
			"identity": req.CallerIdentity,
			"scores":   assessment.Scores,
		})
	}

	// 3. Record, best effort. The recorder swallows its own failures.
	e.recorder.Record(&Exchange{
		Question:       req.Question,
		DraftReply:     draftReply,
		FinalReply:     finalReply,
		Grounded:       assessment.Grounded,
		Structured:     structured,
		Sources:        structured.RelatedPolicies,
		Assessment:     assessment,
		CallerIdentity: req.CallerIdentity,
	})

	return &AnswerResult{
		Reply:      finalReply,
		Structured: structured,
		Sources:    structured.RelatedPolicies,
	}, nil
}

// ComposeDraftReply joins conclusion and analysis (conclusion first, blank
// line between) into the user-visible draft. A non-empty conclusion always
// carries its separator, even when analysis is empty. Both empty gives the
// literal empty-reply marker so downstream stages always have a non-empty
// string.
func ComposeDraftReply(answer *completion.StructuredAnswer) string {
	draft := answer.Analysis
	if answer.Conclusion != "" {
		draft = answer.Conclusion + "\n\n" + answer.Analysis
	}
	if draft == "" {
		return constant.EmptyReplyMarker
	}
	return draft
}

// ComposeSourcesText joins citation snippets with blank lines, in array
// order, forming the grounding comparison text.
func ComposeSourcesText(citations []completion.SourceCitation) string {
	snippets := make([]string, 0, len(citations))
	for _, c := range citations {
		snippets = append(snippets, c.Snippet)
	}
	return strings.Join(snippets, "\n\n")
}
