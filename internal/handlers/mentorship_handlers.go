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
	"github.com/mentorship-connect/app/internal/models"
)

// MentorshipsPage renders the caller's mentorships plus the request form
// (mentees get a mentor picker).
func MentorshipsPage(db *sql.DB, sessions *SessionStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, err := GetCurrentUser(r, db, sessions)
		if err != nil {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}

		mentors, err := database.ListUsersByRole(db, models.RoleMentor)
		if err != nil {
			logrus.WithError(err).Error("listing mentors")
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
		mentorships, err := database.ListMentorshipsForUser(db, user.ID)
		if err != nil {
			logrus.WithError(err).Error("listing mentorships")
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}

		RenderTemplate(w, "mentorships/index.html", map[string]interface{}{
			"Title":       "Mentorships",
			"User":        user,
			"Flash":       PopFlash(w, r),
			"Mentors":     mentors,
			"Mentorships": mentorships,
		})
	}
}

// CreateMentorshipRequest handles the request form: a mentee picks a mentor
// and describes a goal.
func CreateMentorshipRequest(db *sql.DB, sessions *SessionStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, err := GetCurrentUser(r, db, sessions)
		if err != nil {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}

		if err := r.ParseForm(); err != nil {
			http.Error(w, "Error parsing form", http.StatusBadRequest)
			return
		}

		mentorID, err := strconv.ParseInt(r.FormValue("mentor_id"), 10, 64)
		goal := strings.TrimSpace(r.FormValue("goal"))
		if err != nil || goal == "" {
			SetFlash(w, "error", "Please select a mentor and describe your goal.")
			http.Redirect(w, r, "/mentorships", http.StatusSeeOther)
			return
		}

		_, err = database.CreateMentorship(db, user.ID, mentorID, goal)
		if err != nil {
			if errors.Is(err, database.ErrInvalidRole) {
				SetFlash(w, "error", "Only mentees can request mentorships from mentors.")
			} else {
				logrus.WithError(err).Error("creating mentorship request")
				SetFlash(w, "error", "Could not create the mentorship request.")
			}
			http.Redirect(w, r, "/mentorships", http.StatusSeeOther)
			return
		}

		SetFlash(w, "success", "Mentorship request created.")
		http.Redirect(w, r, "/mentorships", http.StatusSeeOther)
	}
}

// mentorshipAction wraps the accept/decline/complete POST handlers: parse
// the id, run the transition, flash the outcome, redirect back.
func mentorshipAction(db *sql.DB, sessions *SessionStore, successMsg string,
	action func(db *sql.DB, id, actorID int64) error) http.HandlerFunc {
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

		switch err := action(db, id, user.ID); {
		case err == nil:
			SetFlash(w, "success", successMsg)
		case errors.Is(err, sql.ErrNoRows):
			RenderErrorPage(w, r, db, sessions, http.StatusNotFound, "Not Found", "That mentorship does not exist.")
			return
		case errors.Is(err, database.ErrUnauthorized):
			SetFlash(w, "error", "You are not permitted to perform this action.")
		case errors.Is(err, database.ErrInvalidTransition):
			SetFlash(w, "error", "The mentorship is not in a state that allows this action.")
		default:
			logrus.WithError(err).WithField("mentorship_id", id).Error("mentorship action failed")
			SetFlash(w, "error", "Something went wrong.")
		}
		http.Redirect(w, r, "/mentorships", http.StatusSeeOther)
	}
}

// AcceptMentorship handles POST /mentorships/{id}/accept.
func AcceptMentorship(db *sql.DB, sessions *SessionStore) http.HandlerFunc {
	return mentorshipAction(db, sessions, "Mentorship accepted. Start collaborating!", database.AcceptMentorship)
}

// DeclineMentorship handles POST /mentorships/{id}/decline.
func DeclineMentorship(db *sql.DB, sessions *SessionStore) http.HandlerFunc {
	return mentorshipAction(db, sessions, "Request declined.", database.DeclineMentorship)
}

// CompleteMentorship handles POST /mentorships/{id}/complete.
func CompleteMentorship(db *sql.DB, sessions *SessionStore) http.HandlerFunc {
	return mentorshipAction(db, sessions, "Mentorship marked as completed.", database.CompleteMentorship)
}
