package models

// Author is the denormalized author snapshot embedded on posts. IsFollowing
// is a copy of the Person flag and must move together with it (see
// services.EngagementService).
type Author struct {
	ID          string `json:"id"`
	Username    string `json:"username"`
	Avatar      string `json:"avatar"`
	IsFollowing bool   `json:"isFollowing"`
}

type Media struct {
	Kind   string `json:"kind"` // "image" or "video"
	Source string `json:"source"`
}

type Comment struct {
	ID        string    `json:"id"`
	Author    string    `json:"author"`
	Text      string    `json:"text"`
	Timestamp string    `json:"timestamp"`
	Replies   []Comment `json:"replies,omitempty"`
}

type Post struct {
	ID           string    `json:"id"`
	Author       Author    `json:"author"`
	Timestamp    string    `json:"timestamp"`
	Caption      string    `json:"caption"`
	Media        Media     `json:"media"`
	Likes        int       `json:"likes"`
	Views        int       `json:"views"`
	IsLiked      bool      `json:"isLiked"`
	IsBookmarked bool      `json:"isBookmarked"`
	Comments     []Comment `json:"comments"`
}
