package constant

const (
	ChatMessageRoleUser      = "user"
	ChatMessageRoleAssistant = "assistant"
	ChatMessageRoleSystem    = "system"

	ChatSessionStatusActive    = "active"
	ChatSessionStatusCompleted = "completed"
	ChatSessionStatusCancelled = "cancelled"

	// Content length bounds enforced on every message.
	ChatMessageMinLength = 1
	ChatMessageMaxLength = 2000

	ChatSessionGreeting = "I'm your AI event planning assistant! I'll help you create the perfect event by asking questions and gathering details. Let's start planning your event together!"

	// Reply used whenever generation fails or the turn pipeline faults.
	// The assistant never goes silent.
	ChatFallbackReply = "I apologize, but I'm having trouble processing your request right now. Could you please try rephrasing your message?"

	EventCreatedMessage = "Event created successfully from chat session!"
)

// FallbackSuggestions accompany the canned fallback reply.
var FallbackSuggestions = []string{
	"Tell me about your event",
	"What type of event are you planning?",
	"When is your event?",
}

// ColdStartSuggestions advertise capabilities when the draft has no fields
// set yet. Distinct from the field-specific questions asked once gathering
// has started.
var ColdStartSuggestions = []string{
	"Help me plan a birthday party",
	"I want to organize a team meeting",
	"Plan a dinner with friends",
	"What can you help me with?",
}

// EventCreationSystemPrompt is the template for the generation call. The two
// placeholders are the JSON snapshot of the current draft and the caller's
// recent-events context.
const EventCreationSystemPrompt = `You are an expert event planning assistant helping users create events through conversation.

Current event data:
%s

User's recent events:
%s

Your role:
1. Ask clarifying questions to gather event details
2. Provide helpful suggestions and recommendations
3. Build event data progressively through conversation
4. Be friendly, professional, and encouraging

Key information to gather:
- Event title and description
- Event type (birthday, wedding, meeting, party, dinner, workshop, other)
- Date and time
- Location (venue name, address)
- Number of attendees
- Special requirements or preferences

Guidelines:
- Ask one or two questions at a time, don't overwhelm
- When you have enough information, offer to create the event
- Be conversational and natural
- If the user seems ready to finalize, summarize the event details

Respond with a natural conversational reply. Do not use JSON formatting in your response.`
