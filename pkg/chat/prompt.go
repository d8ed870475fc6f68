package chat

import (
	"strings"

	"policy-assist-be/internal/constant"
)

// RenderTranscript turns the conversation history into a readable transcript,
// one "User: ..." or "Assistant: ..." line per turn, in original order.
// Returns the empty string for empty history.
func RenderTranscript(history []ConversationTurn) string {
	if len(history) == 0 {
		return ""
	}

	lines := make([]string, 0, len(history))
	for _, turn := range history {
		speaker := "Assistant"
		if turn.Role == constant.ChatRoleUser {
			speaker = "User"
		}
		lines = append(lines, speaker+": "+turn.Content)
	}

	return strings.Join(lines, "\n")
}

// BuildUserInput composes the single user-role message sent to the completion
// service: transcript, blank line, then the new question. The transcript and
// its separator are omitted entirely when history is empty.
func BuildUserInput(history []ConversationTurn, question string) string {
	transcript := RenderTranscript(history)
	if transcript == "" {
		return "User: " + question
	}
	return transcript + "\n\n" + "User: " + question
}
