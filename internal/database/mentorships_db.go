package database

import (
	"database/sql"
	"errors"

	"github.com/mentorship-connect/app/internal/models"
)

const mentorshipSelect = `
	SELECT m.id, m.mentor_id, m.mentee_id, m.goal, m.status, m.created_at,
	       mentor.name, mentee.name
	FROM mentorships m
	JOIN users mentor ON m.mentor_id = mentor.id
	JOIN users mentee ON m.mentee_id = mentee.id`

func scanMentorship(row *sql.Row) (*models.Mentorship, error) {
	m := &models.Mentorship{}
	err := row.Scan(&m.ID, &m.MentorID, &m.MenteeID, &m.Goal, &m.Status,
		&m.CreatedAt, &m.MentorName, &m.MenteeName)
	if err != nil {
		return nil, err
	}
	return m, nil
}

// CreateMentorship records a new mentorship request from menteeID to
// mentorID. The requester must be a mentee and the target a mentor;
// anything else returns ErrInvalidRole. The request starts out pending.
func CreateMentorship(db *sql.DB, menteeID, mentorID int64, goal string) (*models.Mentorship, error) {
	mentee, err := GetUserByID(db, menteeID)
	if err != nil {
		return nil, err
	}
	mentor, err := GetUserByID(db, mentorID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrInvalidRole
		}
		return nil, err
	}
	if mentee.Role != models.RoleMentee || mentor.Role != models.RoleMentor {
		return nil, ErrInvalidRole
	}

	res, err := db.Exec(
		"INSERT INTO mentorships(mentor_id, mentee_id, goal, status) VALUES(?, ?, ?, ?)",
		mentorID, menteeID, goal, models.StatusPending,
	)
	if err != nil {
		return nil, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	return GetMentorshipByID(db, id)
}

// GetMentorshipByID retrieves a mentorship with participant names joined in.
// Returns sql.ErrNoRows if absent.
func GetMentorshipByID(db *sql.DB, id int64) (*models.Mentorship, error) {
	return scanMentorship(db.QueryRow(mentorshipSelect+" WHERE m.id = ?", id))
}

// ListMentorshipsForUser retrieves every mentorship the user participates in,
// newest first.
func ListMentorshipsForUser(db *sql.DB, userID int64) ([]*models.Mentorship, error) {
	rows, err := db.Query(
		mentorshipSelect+" WHERE m.mentor_id = ? OR m.mentee_id = ? ORDER BY m.created_at DESC, m.id DESC",
		userID, userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var mentorships []*models.Mentorship
	for rows.Next() {
		m := &models.Mentorship{}
		err := rows.Scan(&m.ID, &m.MentorID, &m.MenteeID, &m.Goal, &m.Status,
			&m.CreatedAt, &m.MentorName, &m.MenteeName)
		if err != nil {
			return nil, err
		}
		mentorships = append(mentorships, m)
	}
	return mentorships, rows.Err()
}

// transition moves mentorship id from one status to another. The WHERE
// clause carries the from-status, so a concurrent transition that got there
// first makes this one report ErrInvalidTransition instead of clobbering it.
func transition(db *sql.DB, id int64, from, to string) error {
	res, err := db.Exec("UPDATE mentorships SET status = ? WHERE id = ? AND status = ?", to, id, from)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrInvalidTransition
	}
	return nil
}

// AcceptMentorship moves a pending request to active. Only the targeted
// mentor may accept; only a pending request can be accepted.
func AcceptMentorship(db *sql.DB, id, actorID int64) error {
	m, err := GetMentorshipByID(db, id)
	if err != nil {
		return err
	}
	if m.MentorID != actorID {
		return ErrUnauthorized
	}
	return transition(db, id, models.StatusPending, models.StatusActive)
}

// DeclineMentorship moves a pending request to declined. Only the targeted
// mentor may decline; declined is terminal.
func DeclineMentorship(db *sql.DB, id, actorID int64) error {
	m, err := GetMentorshipByID(db, id)
	if err != nil {
		return err
	}
	if m.MentorID != actorID {
		return ErrUnauthorized
	}
	return transition(db, id, models.StatusPending, models.StatusDeclined)
}

// CompleteMentorship moves an active mentorship to completed. Either
// participant may complete; completed is terminal.
func CompleteMentorship(db *sql.DB, id, actorID int64) error {
	m, err := GetMentorshipByID(db, id)
	if err != nil {
		return err
	}
	if !m.HasParticipant(actorID) {
		return ErrUnauthorized
	}
	return transition(db, id, models.StatusActive, models.StatusCompleted)
}

// CountMentorshipsByStatus returns the number of mentorships in the given
// status, for the dashboard stats.
func CountMentorshipsByStatus(db *sql.DB, status string) (int, error) {
	var n int
	err := db.QueryRow("SELECT COUNT(*) FROM mentorships WHERE status = ?", status).Scan(&n)
	return n, err
}
