package models

// RankingEntry is one score row inside a weekly bucket. One entry per
// username per bucket; the score is monotonically non-decreasing.
type RankingEntry struct {
	Username string `json:"username"`
	Score    int    `json:"score"`
}
