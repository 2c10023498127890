package database

import (
	"database/sql"

	"github.com/mentorship-connect/app/internal/models"
)

// CreateMessage appends a message to a mentorship thread. The sender must be
// a participant (ErrUnauthorized) and the mentorship must be active
// (ErrMentorshipNotActive). Messages are immutable once created.
func CreateMessage(db *sql.DB, mentorshipID, senderID int64, body string) (*models.Message, error) {
	mentorship, err := GetMentorshipByID(db, mentorshipID)
	if err != nil {
		return nil, err
	}
	if !mentorship.HasParticipant(senderID) {
		return nil, ErrUnauthorized
	}
	if mentorship.Status != models.StatusActive {
		return nil, ErrMentorshipNotActive
	}

	res, err := db.Exec(
		"INSERT INTO messages(mentorship_id, sender_id, body) VALUES(?, ?, ?)",
		mentorshipID, senderID, body,
	)
	if err != nil {
		return nil, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}

	// Reload with the sender name joined so the caller gets a complete row.
	msg := &models.Message{}
	row := db.QueryRow(`
		SELECT msg.id, msg.mentorship_id, msg.sender_id, u.name, msg.body, msg.created_at
		FROM messages msg
		JOIN users u ON msg.sender_id = u.id
		WHERE msg.id = ?
	`, id)
	err = row.Scan(&msg.ID, &msg.MentorshipID, &msg.SenderID, &msg.SenderName, &msg.Body, &msg.CreatedAt)
	if err != nil {
		return nil, err
	}
	return msg, nil
}

// GetMessagesForMentorship retrieves the thread in creation order, oldest
// first, with sender names joined in. The id tiebreak keeps messages created
// within the same timestamp tick in insertion order.
func GetMessagesForMentorship(db *sql.DB, mentorshipID int64) ([]*models.Message, error) {
	rows, err := db.Query(`
		SELECT msg.id, msg.mentorship_id, msg.sender_id, u.name, msg.body, msg.created_at
		FROM messages msg
		JOIN users u ON msg.sender_id = u.id
		WHERE msg.mentorship_id = ?
		ORDER BY msg.created_at ASC, msg.id ASC
	`, mentorshipID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []*models.Message
	for rows.Next() {
		msg := &models.Message{}
		err := rows.Scan(&msg.ID, &msg.MentorshipID, &msg.SenderID, &msg.SenderName, &msg.Body, &msg.CreatedAt)
		if err != nil {
			return nil, err
		}
		messages = append(messages, msg)
	}
	return messages, rows.Err()
}
