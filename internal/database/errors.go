package database

import "errors"

// Validation failures surfaced to the user as form or page errors.
var (
	ErrDuplicateEmail = errors.New("an account with that email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrInvalidRole is returned when a mentorship request does not run
	// from a mentee to a mentor.
	ErrInvalidRole = errors.New("mentorship requests must go from a mentee to a mentor")
	// ErrInvalidTransition is returned when a status change is not allowed
	// from the mentorship's current state.
	ErrInvalidTransition = errors.New("mentorship is not in a state that allows this action")
	// ErrUnauthorized is returned when the acting user is not permitted to
	// touch the record at all.
	ErrUnauthorized = errors.New("you are not permitted to perform this action")
	ErrMentorshipNotActive = errors.New("messages can only be sent while the mentorship is active")
)
