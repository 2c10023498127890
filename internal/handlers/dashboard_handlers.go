package handlers

import (
	"database/sql"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/mentorship-connect/app/internal/database"
	"github.com/mentorship-connect/app/internal/models"
)

// Dashboard renders the signed-in landing page: community stats, the mentor
// and mentee directories, and the caller's mentorships newest first.
func Dashboard(db *sql.DB, sessions *SessionStore) http.HandlerFunc {
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
		mentees, err := database.ListUsersByRole(db, models.RoleMentee)
		if err != nil {
			logrus.WithError(err).Error("listing mentees")
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
		myMentorships, err := database.ListMentorshipsForUser(db, user.ID)
		if err != nil {
			logrus.WithError(err).Error("listing mentorships")
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}

		totalUsers, err := database.CountUsers(db)
		if err != nil {
			logrus.WithError(err).Error("counting users")
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
		activeMentorships, err := database.CountMentorshipsByStatus(db, models.StatusActive)
		if err != nil {
			logrus.WithError(err).Error("counting active mentorships")
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}

		RenderTemplate(w, "dashboard.html", map[string]interface{}{
			"Title":         "Dashboard",
			"User":          user,
			"Flash":         PopFlash(w, r),
			"Mentors":       mentors,
			"Mentees":       mentees,
			"MyMentorships": myMentorships,
			"Stats": map[string]int{
				"TotalUsers":        totalUsers,
				"MentorCount":       len(mentors),
				"MenteeCount":       len(mentees),
				"ActiveMentorships": activeMentorships,
			},
		})
	}
}
