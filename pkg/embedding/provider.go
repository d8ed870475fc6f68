package embedding

import "context"

// Provider defines the interface for generating text embeddings.
// Embed takes all texts in one batched call so every vector comes from the
// same model and dimension; comparing vectors from separate calls (or models)
// would make the downstream similarity scores meaningless.
type Provider interface {
	Embed(ctx context.Context, texts []string) ([][]float32, error)
}
