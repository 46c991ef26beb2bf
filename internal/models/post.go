package models

import "time"

// Post is a single submission pulled from a monitored source stream.
// Posts are transient: they are matched, processed and discarded.
type Post struct {
	ID        string
	Title     string
	Body      string
	Source    string // e.g. "r/wallstreetbets"
	URL       string
	CreatedAt time.Time
}
