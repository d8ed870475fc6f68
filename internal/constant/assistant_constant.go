package constant

const (
	ChatRoleUser      = "user"
	ChatRoleAssistant = "assistant"

	// PolicyAgentName identifies the assistant on the completion service side.
	PolicyAgentName = "SchoolPolicyAgent"

	// PolicyAgentInstructionsV1 is the fixed system directive for every live
	// completion call. The assistant must answer only from the indexed policy
	// corpus and say explicitly when a topic is not covered.
	PolicyAgentInstructionsV1 = `You are a school policy assistant. You MUST answer strictly using school policy files via the File Search tool. ` +
		`If the policy does not cover the question, say clearly that it is not specified. ` +
		`Never answer from general knowledge.`

	// EmptyReplyMarker is returned when the structured answer carries neither
	// a conclusion nor an analysis.
	EmptyReplyMarker = "(empty reply)"

	// MockReplyPrefix marks replies produced by the offline mock engine.
	MockReplyPrefix = "Mock reply (no LLM): "

	// UngroundedFallbackReply replaces the generated answer whenever the
	// groundedness gate fails. It must point users at a human escalation path
	// rather than risk a confidently-wrong answer.
	UngroundedFallbackReply = `I'm not confident enough in my answer to share it. ` +
		`Please double-check the policy handbook directly, or contact the Student Services office ` +
		`(student.services@school.edu) or your programme administrator for an authoritative answer.`
)
