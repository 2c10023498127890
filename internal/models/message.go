package models

import "time"

// Message is one entry in a mentorship thread. Messages are append-only and
// immutable once created.
type Message struct {
	ID           int64
	MentorshipID int64
	SenderID     int64
	SenderName   string // joined in for display
	Body         string
	CreatedAt    time.Time
}
