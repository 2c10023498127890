package database

import (
	"database/sql"
	"errors"

	"github.com/mattn/go-sqlite3"
	"golang.org/x/crypto/bcrypt"

	"github.com/mentorship-connect/app/internal/models"
)

const userColumns = "id, name, email, role, bio, skills, availability, password_hash, created_at"

func scanUser(row *sql.Row) (*models.User, error) {
	user := &models.User{}
	err := row.Scan(&user.ID, &user.Name, &user.Email, &user.Role, &user.Bio,
		&user.Skills, &user.Availability, &user.PasswordHash, &user.CreatedAt)
	if err != nil {
		return nil, err
	}
	return user, nil
}

// CreateUser hashes the password and inserts a new user. A second
// registration with the same email returns ErrDuplicateEmail.
func CreateUser(db *sql.DB, name, email, role, password string) (*models.User, error) {
	if !models.ValidRole(role) {
		return nil, ErrInvalidRole
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	res, err := db.Exec(
		"INSERT INTO users(name, email, role, password_hash) VALUES(?, ?, ?, ?)",
		name, email, role, string(hashedPassword),
	)
	if err != nil {
		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique {
			return nil, ErrDuplicateEmail
		}
		return nil, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}

	// Reload so DB defaults (created_at) are populated.
	return GetUserByID(db, id)
}

// GetUserByEmail retrieves a user by email. Returns sql.ErrNoRows if absent.
func GetUserByEmail(db *sql.DB, email string) (*models.User, error) {
	return scanUser(db.QueryRow("SELECT "+userColumns+" FROM users WHERE email = ?", email))
}

// GetUserByID retrieves a user by ID. Returns sql.ErrNoRows if absent.
func GetUserByID(db *sql.DB, id int64) (*models.User, error) {
	return scanUser(db.QueryRow("SELECT "+userColumns+" FROM users WHERE id = ?", id))
}

// AuthenticateUser looks the user up by email and verifies the password.
// Unknown email and wrong password both return ErrInvalidCredentials so the
// two cases are indistinguishable to the caller.
func AuthenticateUser(db *sql.DB, email, password string) (*models.User, error) {
	user, err := GetUserByEmail(db, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// UpdateProfile writes the profile fields of the given user. Only the row
// belonging to userID is touched; there is no cross-user mutation path.
func UpdateProfile(db *sql.DB, userID int64, name, bio, skills, availability string) (*models.User, error) {
	_, err := db.Exec(
		"UPDATE users SET name = ?, bio = ?, skills = ?, availability = ? WHERE id = ?",
		name, bio, skills, availability, userID,
	)
	if err != nil {
		return nil, err
	}
	return GetUserByID(db, userID)
}

// ListUsersByRole retrieves all users with the given role, newest first.
func ListUsersByRole(db *sql.DB, role string) ([]*models.User, error) {
	rows, err := db.Query("SELECT "+userColumns+" FROM users WHERE role = ? ORDER BY created_at DESC", role)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []*models.User
	for rows.Next() {
		user := &models.User{}
		err := rows.Scan(&user.ID, &user.Name, &user.Email, &user.Role, &user.Bio,
			&user.Skills, &user.Availability, &user.PasswordHash, &user.CreatedAt)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, rows.Err()
}

// CountUsers returns the total number of registered users.
func CountUsers(db *sql.DB) (int, error) {
	var n int
	err := db.QueryRow("SELECT COUNT(*) FROM users").Scan(&n)
	return n, err
}
