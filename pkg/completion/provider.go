package completion

import "context"

// Message is a single prompt turn in a provider-agnostic format
type Message struct {
	Role    string // "user", "assistant", "system"
	Content string
}

// SourceCitation is one cited policy snippet backing a structured answer
type SourceCitation struct {
	File    string `json:"file"`
	Snippet string `json:"snippet"`
	Reason  string `json:"reason"`
}

// StructuredAnswer is the schema-constrained output of the completion service.
// It is produced exactly once per query and never mutated afterwards.
type StructuredAnswer struct {
	Grade           string           `json:"grade"`
	Major           string           `json:"major"`
	Conclusion      string           `json:"conclusion"`
	Analysis        string           `json:"analysis"`
	RelatedPolicies []SourceCitation `json:"related_policies"`
}

// Provider defines the contract for the retrieval-augmented completion backend.
// One call, one structured answer; transport or parse failures are fatal for
// the request and are never retried here.
type Provider interface {
	Generate(ctx context.Context, messages []Message) (*StructuredAnswer, error)
}
