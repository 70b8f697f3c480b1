package models

// Story joins to a profile by author display name, not by id. Stories are
// created once and never updated; expiry is enforced by the purge job.
type Story struct {
	ID        string `json:"id"`
	Author    string `json:"author"`
	Avatar    string `json:"avatar"`
	Media     Media  `json:"media"`
	CreatedAt string `json:"createdAt"`
}
