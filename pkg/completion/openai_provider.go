package completion

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"policy-assist-be/internal/constant"
)

// OpenAIProvider implements Provider against the OpenAI Responses API with a
// single file_search tool bound to one fixed vector store (the policy corpus).
type OpenAIProvider struct {
	ApiKey        string
	Model         string
	VectorStoreId string
	BaseURL       string
	Client        *http.Client
}

var _ Provider = &OpenAIProvider{}

func NewOpenAIProvider(apiKey, model, vectorStoreId string) *OpenAIProvider {
	if model == "" {
		model = "gpt-4.1"
	}
	return &OpenAIProvider{
		ApiKey:        apiKey,
		Model:         model,
		VectorStoreId: vectorStoreId,
		BaseURL:       "https://api.openai.com/v1",
		Client: &http.Client{
			Timeout: 120 * time.Second,
		},
	}
}

// --- Request/Response structs (internal to this package) ---

type responsesRequest struct {
	Model        string           `json:"model"`
	Instructions string           `json:"instructions"`
	Input        []responsesInput `json:"input"`
	Tools        []responsesTool  `json:"tools"`
	Text         responsesText    `json:"text"`
}

type responsesInput struct {
	Role    string             `json:"role"`
	Content []responsesContent `json:"content"`
}

type responsesContent struct {
	Type string `json:"type"` // "input_text"
	Text string `json:"text"`
}

type responsesTool struct {
	Type           string   `json:"type"` // "file_search"
	VectorStoreIds []string `json:"vector_store_ids"`
}

type responsesText struct {
	Format responsesTextFormat `json:"format"`
}

type responsesTextFormat struct {
	Type   string         `json:"type"` // "json_schema"
	Name   string         `json:"name"`
	Strict bool           `json:"strict"`
	Schema map[string]any `json:"schema"`
}

type responsesResponse struct {
	Output []responsesOutputItem `json:"output"`
	Error  *responsesError       `json:"error"`
}

type responsesOutputItem struct {
	Type    string                   `json:"type"` // "message", "file_search_call", ...
	Content []responsesOutputContent `json:"content"`
}

type responsesOutputContent struct {
	Type string `json:"type"` // "output_text"
	Text string `json:"text"`
}

type responsesError struct {
	Message string `json:"message"`
	Type    string `json:"type"`
}

// answerSchema declares the required StructuredAnswer shape so the service
// returns deterministic JSON instead of free text.
func answerSchema() map[string]any {
	citation := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"file":    map[string]any{"type": "string"},
			"snippet": map[string]any{"type": "string"},
			"reason":  map[string]any{"type": "string"},
		},
		"required":             []string{"file", "snippet", "reason"},
		"additionalProperties": false,
	}

	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"grade":      map[string]any{"type": "string"},
			"major":      map[string]any{"type": "string"},
			"conclusion": map[string]any{"type": "string"},
			"analysis":   map[string]any{"type": "string"},
			"related_policies": map[string]any{
				"type":  "array",
				"items": citation,
			},
		},
		"required":             []string{"grade", "major", "conclusion", "analysis", "related_policies"},
		"additionalProperties": false,
	}
}

func (p *OpenAIProvider) Generate(ctx context.Context, messages []Message) (*StructuredAnswer, error) {
	input := make([]responsesInput, 0, len(messages))
	for _, m := range messages {
		input = append(input, responsesInput{
			Role: m.Role,
			Content: []responsesContent{
				{Type: "input_text", Text: m.Content},
			},
		})
	}

	payload := responsesRequest{
		Model:        p.Model,
		Instructions: constant.PolicyAgentInstructionsV1,
		Input:        input,
		Tools: []responsesTool{
			{Type: "file_search", VectorStoreIds: []string{p.VectorStoreId}},
		},
		Text: responsesText{
			Format: responsesTextFormat{
				Type:   "json_schema",
				Name:   "policy_answer",
				Strict: true,
				Schema: answerSchema(),
			},
		},
	}

	payloadJson, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", p.BaseURL+"/responses", bytes.NewBuffer(payloadJson))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+p.ApiKey)
	req.Header.Set("Content-Type", "application/json")

	res, err := p.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("openai request failed: %w", err)
	}
	defer res.Body.Close()

	resBody, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("error from openai response, code %d, body %s", res.StatusCode, string(resBody))
	}

	var parsed responsesResponse
	if err := json.Unmarshal(resBody, &parsed); err != nil {
		return nil, fmt.Errorf("unmarshal response: %w", err)
	}
	if parsed.Error != nil {
		return nil, fmt.Errorf("openai error (%s): %s", parsed.Error.Type, parsed.Error.Message)
	}

	// The final structured output rides on the last "message" item. Tool call
	// items (file_search_call) precede it and carry no answer text.
	outputText := ""
	for _, item := range parsed.Output {
		if item.Type != "message" {
			continue
		}
		for _, content := range item.Content {
			if content.Type == "output_text" {
				outputText = content.Text
			}
		}
	}

	// A missing or empty final output yields an all-empty answer; downstream
	// stages tolerate it and surface the empty-reply marker instead.
	if outputText == "" {
		return &StructuredAnswer{RelatedPolicies: []SourceCitation{}}, nil
	}

	var answer StructuredAnswer
	if err := json.Unmarshal([]byte(outputText), &answer); err != nil {
		return nil, fmt.Errorf("structured output did not match schema: %w", err)
	}
	if answer.RelatedPolicies == nil {
		answer.RelatedPolicies = []SourceCitation{}
	}

	return &answer, nil
}
