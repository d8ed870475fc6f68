package chat

import (
	"context"
	"errors"
	"testing"

	"policy-assist-be/internal/constant"
	"policy-assist-be/pkg/completion"
	"policy-assist-be/pkg/grounding"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubCompletion struct {
	answer *completion.StructuredAnswer
	err    error
	gotMsg []completion.Message
}

func (s *stubCompletion) Generate(ctx context.Context, messages []completion.Message) (*completion.StructuredAnswer, error) {
	s.gotMsg = messages
	if s.err != nil {
		return nil, s.err
	}
	return s.answer, nil
}

type stubEmbedder struct {
	vectors [][]float32
	err     error
}

func (s *stubEmbedder) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.vectors, nil
}

type captureRecorder struct {
	exchange *Exchange
}

func (r *captureRecorder) Record(exchange *Exchange) {
	r.exchange = exchange
}

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }

func policyAnswer() *completion.StructuredAnswer {
	return &completion.StructuredAnswer{
		Grade:      "10",
		Major:      "Science",
		Conclusion: "Attendance below 80% requires a make-up plan.",
		Analysis:   "The handbook sets an 80% minimum attendance rate per term.",
		RelatedPolicies: []completion.SourceCitation{
			{File: "handbook.pdf", Snippet: "Students must attend at least 80% of scheduled classes.", Reason: "attendance rule"},
		},
	}
}

// Vectors chosen so cosine, angular AND the raw L2 distance all clear 0.65.
func groundedVectors() [][]float32 {
	return [][]float32{
		{1, 1},
		{10, 0},
		{9, 4},
	}
}

func TestLiveEngineGroundedReply(t *testing.T) {
	provider := &stubCompletion{answer: policyAnswer()}
	recorder := &captureRecorder{}
	verifier := grounding.NewVerifier(&stubEmbedder{vectors: groundedVectors()}, 0.65, nopLogger{})
	engine := NewLiveEngine(provider, verifier, recorder, nopLogger{})

	res, err := engine.Reply(context.Background(), Request{
		Question: "What is the attendance policy?",
		History: []ConversationTurn{
			{Role: "user", Content: "Hi"},
			{Role: "assistant", Content: "Hello"},
		},
		CallerIdentity: "student@school.edu",
	})

	require.NoError(t, err)
	wantReply := "Attendance below 80% requires a make-up plan.\n\nThe handbook sets an 80% minimum attendance rate per term."
	assert.Equal(t, wantReply, res.Reply)
	assert.Equal(t, policyAnswer(), res.Structured)
	assert.Len(t, res.Sources, 1)

	// The transcript is folded into one user-role message.
	require.Len(t, provider.gotMsg, 1)
	assert.Equal(t, "user", provider.gotMsg[0].Role)
	assert.Equal(t, "User: Hi\nAssistant: Hello\n\nUser: What is the attendance policy?", provider.gotMsg[0].Content)

	require.NotNil(t, recorder.exchange)
	assert.True(t, recorder.exchange.Grounded)
	assert.Equal(t, wantReply, recorder.exchange.DraftReply)
	assert.Equal(t, wantReply, recorder.exchange.FinalReply)
	assert.Equal(t, "student@school.edu", recorder.exchange.CallerIdentity)
	require.NotNil(t, recorder.exchange.Assessment.Scores)
}

func TestLiveEngineUngroundedFallsBack(t *testing.T) {
	provider := &stubCompletion{answer: policyAnswer()}
	recorder := &captureRecorder{}
	// Orthogonal answer and sources embeddings: cosine 0 fails the gate.
	embedder := &stubEmbedder{vectors: [][]float32{{1, 1}, {1, 0}, {0, 1}}}
	verifier := grounding.NewVerifier(embedder, 0.65, nopLogger{})
	engine := NewLiveEngine(provider, verifier, recorder, nopLogger{})

	res, err := engine.Reply(context.Background(), Request{Question: "What is the attendance policy?"})

	require.NoError(t, err)
	assert.Equal(t, constant.UngroundedFallbackReply, res.Reply)

	// The unfiltered draft still lands in the record.
	require.NotNil(t, recorder.exchange)
	assert.False(t, recorder.exchange.Grounded)
	assert.NotEqual(t, recorder.exchange.DraftReply, recorder.exchange.FinalReply)
	assert.Equal(t, constant.UngroundedFallbackReply, recorder.exchange.FinalReply)
}

func TestLiveEngineEmbeddingFailureFallsBack(t *testing.T) {
	provider := &stubCompletion{answer: policyAnswer()}
	recorder := &captureRecorder{}
	verifier := grounding.NewVerifier(&stubEmbedder{err: errors.New("embedding service down")}, 0.65, nopLogger{})
	engine := NewLiveEngine(provider, verifier, recorder, nopLogger{})

	res, err := engine.Reply(context.Background(), Request{Question: "What is the attendance policy?"})

	require.NoError(t, err)
	assert.Equal(t, constant.UngroundedFallbackReply, res.Reply)

	require.NotNil(t, recorder.exchange)
	assert.False(t, recorder.exchange.Grounded)
	assert.Nil(t, recorder.exchange.Assessment.Scores)
}

func TestLiveEngineCompletionFailure(t *testing.T) {
	provider := &stubCompletion{err: errors.New("upstream 500")}
	recorder := &captureRecorder{}
	verifier := grounding.NewVerifier(&stubEmbedder{}, 0.65, nopLogger{})
	engine := NewLiveEngine(provider, verifier, recorder, nopLogger{})

	res, err := engine.Reply(context.Background(), Request{Question: "What is the attendance policy?"})

	require.Error(t, err)
	assert.Nil(t, res)
	assert.Nil(t, recorder.exchange)
}

func TestComposeDraftReply(t *testing.T) {
	tests := []struct {
		name   string
		answer *completion.StructuredAnswer
		want   string
	}{
		{
			name:   "conclusion and analysis",
			answer: &completion.StructuredAnswer{Conclusion: "Yes.", Analysis: "Section 4 allows it."},
			want:   "Yes.\n\nSection 4 allows it.",
		},
		{
			// the separator stays even with nothing after it
			name:   "conclusion only keeps trailing separator",
			answer: &completion.StructuredAnswer{Conclusion: "Yes."},
			want:   "Yes.\n\n",
		},
		{
			name:   "analysis only",
			answer: &completion.StructuredAnswer{Analysis: "Section 4 allows it."},
			want:   "Section 4 allows it.",
		},
		{
			name:   "both empty",
			answer: &completion.StructuredAnswer{},
			want:   "(empty reply)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComposeDraftReply(tt.answer)
			if got != tt.want {
				t.Errorf("ComposeDraftReply() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestComposeSourcesText(t *testing.T) {
	citations := []completion.SourceCitation{
		{File: "a.pdf", Snippet: "first snippet"},
		{File: "b.pdf", Snippet: "second snippet"},
	}

	assert.Equal(t, "first snippet\n\nsecond snippet", ComposeSourcesText(citations))
	assert.Equal(t, "", ComposeSourcesText(nil))
}
