package models

import "time"

const (
	RoleMentor = "mentor"
	RoleMentee = "mentee"
)

// ValidRole reports whether s is one of the two account roles.
func ValidRole(s string) bool {
	return s == RoleMentor || s == RoleMentee
}

// User represents a registered account. Users are never hard-deleted.
type User struct {
	ID           int64
	Name         string
	Email        string
	Role         string
	Bio          string
	Skills       string
	Availability string
	PasswordHash string
	CreatedAt    time.Time
}
