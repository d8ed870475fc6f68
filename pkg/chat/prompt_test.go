package chat

import (
	"testing"
)

func TestRenderTranscript(t *testing.T) {
	tests := []struct {
		name    string
		history []ConversationTurn
		want    string
	}{
		{
			name:    "empty history",
			history: nil,
			want:    "",
		},
		{
			name: "single user turn",
			history: []ConversationTurn{
				{Role: "user", Content: "What is the dress code?"},
			},
			want: "User: What is the dress code?",
		},
		{
			name: "alternating turns keep order",
			history: []ConversationTurn{
				{Role: "user", Content: "Is there a uniform?"},
				{Role: "assistant", Content: "Yes, navy blue."},
				{Role: "user", Content: "Even on Fridays?"},
			},
			want: "User: Is there a uniform?\nAssistant: Yes, navy blue.\nUser: Even on Fridays?",
		},
		{
			name: "unknown role renders as assistant",
			history: []ConversationTurn{
				{Role: "system", Content: "ignored role"},
			},
			want: "Assistant: ignored role",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RenderTranscript(tt.history)
			if got != tt.want {
				t.Errorf("RenderTranscript() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBuildUserInput(t *testing.T) {
	tests := []struct {
		name     string
		history  []ConversationTurn
		question string
		want     string
	}{
		{
			name:     "no history",
			history:  nil,
			question: "When does term start?",
			want:     "User: When does term start?",
		},
		{
			name: "history prepended with blank line",
			history: []ConversationTurn{
				{Role: "user", Content: "Hello"},
				{Role: "assistant", Content: "Hi there"},
			},
			question: "When does term start?",
			want:     "User: Hello\nAssistant: Hi there\n\nUser: When does term start?",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BuildUserInput(tt.history, tt.question)
			if got != tt.want {
				t.Errorf("BuildUserInput() = %q, want %q", got, tt.want)
			}
		})
	}
}
