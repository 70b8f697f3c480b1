package models

const (
	MessageTypeText    = "text"
	MessageTypeSticker = "sticker"
)

// DirectMessage belongs to the unordered (sender, receiver) pair. There is
// no persisted conversation entity; conversations are a derived view.
type DirectMessage struct {
	ID        string `json:"id"`
	Sender    string `json:"sender"`
	Receiver  string `json:"receiver"`
	Content   string `json:"content"`
	Type      string `json:"type"`
	Timestamp string `json:"timestamp"`
	Read      bool   `json:"read"`
}

// ChatMessage is a global-chat message. Reactions map username to a single
// emoji, one reaction per user per message, last write wins.
type ChatMessage struct {
	ID        string            `json:"id"`
	Author    string            `json:"author"`
	Avatar    string            `json:"avatar"`
	Content   string            `json:"content"`
	Type      string            `json:"type"`
	Timestamp string            `json:"timestamp"`
	Reactions map[string]string `json:"reactions,omitempty"`
}

// ConversationSummary is one row of the derived conversation list: the
// counterpart plus the most recent message exchanged with them.
type ConversationSummary struct {
	Counterpart string        `json:"counterpart"`
	LastMessage DirectMessage `json:"lastMessage"`
	Unread      bool          `json:"unread"`
}
