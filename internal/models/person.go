package models

type Person struct {
	ID          int    `json:"id"`
	Username    string `json:"username"`
	Avatar      string `json:"avatar"`
	Bio         string `json:"bio"`
	Followers   int    `json:"followers"`
	IsFollowing bool   `json:"isFollowing"`
}
