package models

import "time"

// Timestamps are stored as RFC 3339 strings for compatibility with the
// persisted JSON blobs. Unparseable values sort as the zero time.

func NewTimestamp() string {
	return time.Now().UTC().Format(time.RFC3339)
}

func ParseTimestamp(ts string) time.Time {
	t, err := time.Parse(time.RFC3339, ts)
	if err != nil {
		return time.Time{}
	}
	return t
}
