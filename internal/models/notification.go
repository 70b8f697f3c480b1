package models

const (
	NotificationLike    = "like"
	NotificationComment = "comment"
	NotificationFollow  = "follow"
)

type Notification struct {
	ID        string `json:"id"`
	Type      string `json:"type"`
	FromUser  Author `json:"fromUser"`
	Message   string `json:"message"`
	CreatedAt string `json:"createdAt"`
	Read      bool   `json:"read"`
	PostID    string `json:"postId,omitempty"`
}
