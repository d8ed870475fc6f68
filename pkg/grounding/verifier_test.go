package grounding

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubEmbedder struct {
	vectors  [][]float32
	err      error
	gotTexts []string
}

func (s *stubEmbedder) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	s.gotTexts = texts
	if s.err != nil {
		return nil, s.err
	}
	return s.vectors, nil
}

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }

func TestAssessBatchesAllThreeTexts(t *testing.T) {
	embedder := &stubEmbedder{vectors: [][]float32{{1, 1}, {10, 0}, {9, 4}}}
	v := NewVerifier(embedder, 0.65, nopLogger{})

	a := v.Assess(context.Background(), "question", "draft", "sources")

	assert.Equal(t, []string{"question", "draft", "sources"}, embedder.gotTexts)
	assert.Equal(t, []float32{1, 1}, a.QuestionEmbedding)
	assert.Equal(t, []float32{10, 0}, a.AnswerEmbedding)
	assert.Equal(t, []float32{9, 4}, a.SourcesEmbedding)
	require.NotNil(t, a.Scores)
	assert.True(t, a.Grounded)
}

func TestAssessGate(t *testing.T) {
	tests := []struct {
		name    string
		answer  []float32
		sources []float32
		want    bool
	}{
		{
			// cosine 0.914, angular 0.867, distance 4.12: everything clears 0.65
			name:    "aligned and far enough apart",
			answer:  []float32{10, 0},
			sources: []float32{9, 4},
			want:    true,
		},
		{
			// cosine 0 sinks it regardless of distance
			name:    "orthogonal",
			answer:  []float32{1, 0},
			sources: []float32{0, 1},
			want:    false,
		},
		{
			// cosine and angular are both 1 but the distance is 0, and the
			// gate compares the distance against the same lower bound
			name:    "identical vectors fail the distance check",
			answer:  []float32{3, 4},
			sources: []float32{3, 4},
			want:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			embedder := &stubEmbedder{vectors: [][]float32{{1, 1}, tt.answer, tt.sources}}
			v := NewVerifier(embedder, 0.65, nopLogger{})

			a := v.Assess(context.Background(), "q", "draft", "sources")

			assert.Equal(t, tt.want, a.Grounded)
		})
	}
}

func TestAssessEmbeddingFailure(t *testing.T) {
	v := NewVerifier(&stubEmbedder{err: errors.New("timeout")}, 0.65, nopLogger{})

	a := v.Assess(context.Background(), "q", "draft", "sources")

	assert.False(t, a.Grounded)
	assert.Nil(t, a.Scores)
	assert.Nil(t, a.AnswerEmbedding)
}

func TestAssessVectorCountMismatch(t *testing.T) {
	v := NewVerifier(&stubEmbedder{vectors: [][]float32{{1, 0}}}, 0.65, nopLogger{})

	a := v.Assess(context.Background(), "q", "draft", "sources")

	assert.False(t, a.Grounded)
	assert.Nil(t, a.Scores)
}

func TestNewVerifierDefaultsThreshold(t *testing.T) {
	v := NewVerifier(&stubEmbedder{}, 0, nopLogger{})
	assert.Equal(t, DefaultThreshold, v.threshold)
}
