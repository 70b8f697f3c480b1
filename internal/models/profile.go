package models

type ProfileStats struct {
	Posts     int `json:"posts"`
	Followers int `json:"followers"`
	Following int `json:"following"`
}

type AboutInfo struct {
	Work      string `json:"work,omitempty"`
	Education string `json:"education,omitempty"`
	Location  string `json:"location,omitempty"`
	Joined    string `json:"joined,omitempty"`
}

// UserProfile is the singleton local-user profile, mutated wholesale by
// profile edits. CreatedAt is optional; when absent the timeline keeps an
// explicit placeholder for the account-creation event.
type UserProfile struct {
	Name       string       `json:"name"`
	Avatar     string       `json:"avatar"`
	CoverPhoto string       `json:"coverPhoto"`
	Bio        string       `json:"bio"`
	Stats      ProfileStats `json:"stats"`
	About      *AboutInfo   `json:"about,omitempty"`
	CreatedAt  string       `json:"createdAt,omitempty"`
}

// TimelineEvent is a derived, non-persisted summary fact about a profile's
// history, recomputed on each read.
type TimelineEvent struct {
	Icon string `json:"icon"`
	Text string `json:"text"`
}
