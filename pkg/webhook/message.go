package webhook

// ChatMessage is the body accepted by incoming-webhook endpoints of common
// chat services. Slack-style endpoints read Text, Discord-style read Content.
type ChatMessage struct {
	Text    string `json:"text,omitempty"`
	Content string `json:"content,omitempty"`
}

// NewChatMessage fills both fields with msg.
func NewChatMessage(msg string) ChatMessage {
	return ChatMessage{Text: msg, Content: msg}
}
