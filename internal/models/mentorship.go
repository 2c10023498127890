package models

import "time"

const (
	StatusPending   = "pending"
	StatusActive    = "active"
	StatusDeclined  = "declined"
	StatusCompleted = "completed"
)

// Mentorship is the relationship record between one mentor and one mentee.
// Status only ever moves forward: pending -> active|declined, active -> completed.
type Mentorship struct {
	ID        int64
	MentorID  int64
	MenteeID  int64
	Goal      string
	Status    string
	CreatedAt time.Time
	// MentorName and MenteeName are joined in for display.
	MentorName string
	MenteeName string
}

// HasParticipant reports whether userID is the mentor or mentee of m.
func (m *Mentorship) HasParticipant(userID int64) bool {
	return userID == m.MentorID || userID == m.MenteeID
}
