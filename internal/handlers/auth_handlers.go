package handlers

import (
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/mentorship-connect/app/internal/database"
	"github.com/mentorship-connect/app/internal/models"
)

// IndexPage renders the landing page, or sends signed-in users straight to
// their dashboard.
func IndexPage(db *sql.DB, sessions *SessionStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, err := GetCurrentUser(r, db, sessions); err == nil {
			http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
			return
		}
		RenderTemplate(w, "index.html", map[string]interface{}{
			"Title": "Mentorship Connect",
			"Flash": PopFlash(w, r),
		})
	}
}

// RegisterPage renders the registration form.
func RegisterPage(w http.ResponseWriter, r *http.Request) {
	renderRegisterForm(w, "", "", "", "")
}

func renderRegisterForm(w http.ResponseWriter, msg, name, email, role string) {
	RenderTemplate(w, "auth/register.html", map[string]interface{}{
		"Title": "Register",
		"Error": msg,
		"Name":  name,
		"Email": email,
		"Role":  role,
	})
}

// Register handles the registration form submission. A new account is
// signed in immediately.
func Register(db *sql.DB, sessions *SessionStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Error parsing form", http.StatusBadRequest)
			return
		}

		name := strings.TrimSpace(r.FormValue("name"))
		email := strings.ToLower(strings.TrimSpace(r.FormValue("email")))
		role := r.FormValue("role")
		password := r.FormValue("password")

		if name == "" || email == "" || role == "" || password == "" {
			renderRegisterForm(w, "Please fill out all required fields.", name, email, role)
			return
		}
		if !models.ValidRole(role) {
			renderRegisterForm(w, "Please choose a valid role.", name, email, role)
			return
		}

		user, err := database.CreateUser(db, name, email, role, password)
		if err != nil {
			if errors.Is(err, database.ErrDuplicateEmail) {
				renderRegisterForm(w, "An account with that email already exists.", name, email, role)
				return
			}
			logrus.WithError(err).Error("registration failed")
			http.Error(w, "Could not create user", http.StatusInternalServerError)
			return
		}

		sessions.SetSessionCookie(w, r, sessions.Create(user.ID))
		SetFlash(w, "success", "Welcome to the mentorship community!")
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
	}
}

// LoginPage renders the login form.
func LoginPage(w http.ResponseWriter, r *http.Request) {
	RenderTemplate(w, "auth/login.html", map[string]interface{}{
		"Title": "Sign In",
		"Email": "",
		"Flash": PopFlash(w, r),
	})
}

// Login handles the login form submission.
func Login(db *sql.DB, sessions *SessionStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Error parsing form", http.StatusBadRequest)
			return
		}

		email := strings.ToLower(strings.TrimSpace(r.FormValue("email")))
		password := r.FormValue("password")

		user, err := database.AuthenticateUser(db, email, password)
		if err != nil {
			if errors.Is(err, database.ErrInvalidCredentials) {
				RenderTemplate(w, "auth/login.html", map[string]interface{}{
					"Title": "Sign In",
					"Error": "Invalid email or password.",
					"Email": email,
				})
				return
			}
			logrus.WithError(err).Error("login failed")
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}

		sessions.SetSessionCookie(w, r, sessions.Create(user.ID))
		SetFlash(w, "success", "Successfully signed in.")
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
	}
}

// Logout destroys the session and clears the cookie.
func Logout(sessions *SessionStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if cookie, err := r.Cookie(sessionCookieName); err == nil {
			sessions.Destroy(cookie.Value)
		}
		ClearSessionCookie(w, r)
		SetFlash(w, "info", "Signed out successfully.")
		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}

// AuthMiddleware redirects unauthenticated requests to the login page.
func AuthMiddleware(sessions *SessionStore, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !IsAuthenticated(r, sessions) {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	}
}

// IsAuthenticated reports whether the request carries a valid session cookie.
func IsAuthenticated(r *http.Request, sessions *SessionStore) bool {
	cookie, err := r.Cookie(sessionCookieName)
	if err != nil {
		return false
	}
	_, ok := sessions.Lookup(cookie.Value)
	return ok
}

// GetCurrentUser resolves the session cookie to the signed-in user.
func GetCurrentUser(r *http.Request, db *sql.DB, sessions *SessionStore) (*models.User, error) {
	cookie, err := r.Cookie(sessionCookieName)
	if err != nil {
		return nil, fmt.Errorf("no session cookie: %w", err)
	}
	userID, ok := sessions.Lookup(cookie.Value)
	if !ok {
		return nil, errors.New("invalid session token")
	}
	return database.GetUserByID(db, userID)
}
