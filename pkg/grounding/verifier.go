package grounding

import (
	"context"

	"policy-assist-be/internal/pkg/logger"
	"policy-assist-be/pkg/embedding"
	"policy-assist-be/pkg/similarity"
)

// DefaultThreshold is the literal gate the source policy applies to all three
// metrics. Applying it to the L2 distance as a "< threshold" check is
// semantically inconsistent (L2 is an unbounded distance, not a bounded
// similarity) but is kept as documented behavior rather than corrected.
const DefaultThreshold = 0.65

// Scores holds the similarity metrics between the answer embedding and the
// sources embedding. Never computed against the question embedding.
type Scores struct {
	Cosine  float64 `json:"cosine"`
	L2      float64 `json:"l2"`
	Angular float64 `json:"angular"`
}

// Assessment is the outcome of one groundedness check. When the embedding
// call fails all vectors are nil, Scores is nil, and Grounded is false: a
// confidence we cannot establish is treated as confidence we do not have.
type Assessment struct {
	QuestionEmbedding []float32
	AnswerEmbedding   []float32
	SourcesEmbedding  []float32
	Scores            *Scores
	Grounded          bool
}

// Verifier checks whether a generated answer is supported by its cited
// source text, measured in embedding space.
type Verifier struct {
	provider  embedding.Provider
	threshold float64
	logger    logger.ILogger
}

func NewVerifier(provider embedding.Provider, threshold float64, log logger.ILogger) *Verifier {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	return &Verifier{
		provider:  provider,
		threshold: threshold,
		logger:    log,
	}
}

// Assess embeds (question, draft, sources) in one batched call and gates the
// draft on answer-vs-sources similarity. The question embedding is carried
// along for the exchange log only. Embedding failures never abort the
// request; they just force the fallback path.
func (v *Verifier) Assess(ctx context.Context, question, draft, sources string) *Assessment {
	vectors, err := v.provider.Embed(ctx, []string{question, draft, sources})
	if err != nil || len(vectors) != 3 {
		v.logger.Warn("grounding", "embedding call failed, gating to fallback", map[string]interface{}{
			"error": errString(err),
		})
		return &Assessment{Grounded: false}
	}

	questionVec, answerVec, sourcesVec := vectors[0], vectors[1], vectors[2]

	scores := &Scores{
		Cosine:  similarity.Cosine(answerVec, sourcesVec),
		L2:      similarity.Euclidean(answerVec, sourcesVec),
		Angular: similarity.Angular(answerVec, sourcesVec),
	}

	return &Assessment{
		QuestionEmbedding: questionVec,
		AnswerEmbedding:   answerVec,
		SourcesEmbedding:  sourcesVec,
		Scores:            scores,
		Grounded:          v.passes(scores),
	}
}

// passes applies the gate: any metric below the threshold fails. The L2
// comparison direction is intentionally the same as the bounded metrics (see
// DefaultThreshold).
func (v *Verifier) passes(s *Scores) bool {
	if s.Cosine < v.threshold {
		return false
	}
	if s.L2 < v.threshold {
		return false
	}
	if s.Angular < v.threshold {
		return false
	}
	return true
}

func errString(err error) string {
	if err == nil {
		return "embedding count mismatch"
	}
	return err.Error()
}
