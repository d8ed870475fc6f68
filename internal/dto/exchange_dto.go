package dto

import (
	"policy-assist-be/pkg/completion"
	"policy-assist-be/pkg/grounding"
)

// PublishExchangeMessage is the wire payload carried on the exchange-log
// topic between the response path and the consumer that persists it.
type PublishExchangeMessage struct {
	Question          string                       `json:"question"`
	Answer            string                       `json:"answer"` // pre-gating draft
	Reply             string                       `json:"reply"`  // what the user saw
	Grounded          bool                         `json:"grounded"`
	Structured        *completion.StructuredAnswer `json:"structured"`
	Sources           []completion.SourceCitation  `json:"sources"`
	Scores            *grounding.Scores            `json:"scores"`
	QuestionEmbedding []float32                    `json:"question_embedding,omitempty"`
	AnswerEmbedding   []float32                    `json:"answer_embedding,omitempty"`
	SourcesEmbedding  []float32                    `json:"sources_embedding,omitempty"`
	CallerIdentity    string                       `json:"caller_identity,omitempty"`
}
