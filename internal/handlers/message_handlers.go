package handlers

import (
	"database/sql"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"

	"github.com/mentorship-connect/app/internal/database"
)

// MessagesPage renders a mentorship's thread for one of its participants.
func MessagesPage(db *sql.DB, sessions *SessionStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, err := GetCurrentUser(r, db, sessions)
		if err != nil {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}

		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			RenderErrorPage(w, r, db, sessions, http.StatusBadRequest, "Bad Request", "Invalid mentorship ID.")
			return
		}

		mentorship, err := database.GetMentorshipByID(db, id)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				RenderErrorPage(w, r, db, sessions, http.StatusNotFound, "Not Found", "That mentorship does not exist.")
				return
			}
			logrus.WithError(err).Error("loading mentorship")
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
		if !mentorship.HasParticipant(user.ID) {
			SetFlash(w, "error", "You are not part of this mentorship.")
			http.Redirect(w, r, "/mentorships", http.StatusSeeOther)
			return
		}

		messages, err := database.GetMessagesForMentorship(db, id)
		if err != nil {
			logrus.WithError(err).Error("loading messages")
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}

		RenderTemplate(w, "mentorships/messages.html", map[string]interface{}{
			"Title":      "Messages",
			"User":       user,
			"Flash":      PopFlash(w, r),
			"Mentorship": mentorship,
			"Messages":   messages,
		})
	}
}

// PostMessage appends a message to the thread and redirects back to it.
func PostMessage(db *sql.DB, sessions *SessionStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, err := GetCurrentUser(r, db, sessions)
		if err != nil {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}

		idStr := chi.URLParam(r, "id")
		id, err := strconv.ParseInt(idStr, 10, 64)
		if err != nil {
			RenderErrorPage(w, r, db, sessions, http.StatusBadRequest, "Bad Request", "Invalid mentorship ID.")
			return
		}

		if err := r.ParseForm(); err != nil {
			http.Error(w, "Error parsing form", http.StatusBadRequest)
			return
		}

		threadURL := "/mentorships/" + idStr + "/messages"

		body := strings.TrimSpace(r.FormValue("body"))
		if body == "" {
			SetFlash(w, "error", "Message cannot be empty.")
			http.Redirect(w, r, threadURL, http.StatusSeeOther)
			return
		}

		switch _, err := database.CreateMessage(db, id, user.ID, body); {
		case err == nil:
			SetFlash(w, "success", "Message sent.")
			http.Redirect(w, r, threadURL, http.StatusSeeOther)
		case errors.Is(err, sql.ErrNoRows):
			RenderErrorPage(w, r, db, sessions, http.StatusNotFound, "Not Found", "That mentorship does not exist.")
		case errors.Is(err, database.ErrUnauthorized):
			SetFlash(w, "error", "You are not part of this mentorship.")
			http.Redirect(w, r, "/mentorships", http.StatusSeeOther)
		case errors.Is(err, database.ErrMentorshipNotActive):
			SetFlash(w, "error", "Messages can only be sent while the mentorship is active.")
			http.Redirect(w, r, threadURL, http.StatusSeeOther)
		default:
			logrus.WithError(err).WithField("mentorship_id", id).Error("posting message failed")
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		}
	}
}
