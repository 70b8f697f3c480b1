package models

// Credential is one registered local account: username plus bcrypt hash.
type Credential struct {
	Username       string `json:"username"`
	HashedPassword string `json:"hashedPassword"`
	CreatedAt      string `json:"createdAt"`
}
