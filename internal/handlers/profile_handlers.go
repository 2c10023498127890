package handlers

import (
	"database/sql"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/mentorship-connect/app/internal/database"
)

// EditProfilePage renders the profile form prefilled with the caller's
// current values.
func EditProfilePage(db *sql.DB, sessions *SessionStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, err := GetCurrentUser(r, db, sessions)
		if err != nil {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		RenderTemplate(w, "profile/edit.html", map[string]interface{}{
			"Title": "Edit Profile",
			"User":  user,
			"Flash": PopFlash(w, r),
		})
	}
}

// UpdateProfile applies the profile form to the session user. The target
// row is always the caller's own; there is no way to edit another account.
func UpdateProfile(db *sql.DB, sessions *SessionStore) http.HandlerFunc {
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

		name := strings.TrimSpace(r.FormValue("name"))
		if name == "" {
			name = user.Name
		}

		_, err = database.UpdateProfile(db, user.ID, name,
			r.FormValue("bio"), r.FormValue("skills"), r.FormValue("availability"))
		if err != nil {
			logrus.WithError(err).WithField("user_id", user.ID).Error("profile update failed")
			http.Error(w, "Could not update profile", http.StatusInternalServerError)
			return
		}

		SetFlash(w, "success", "Profile updated.")
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
	}
}
