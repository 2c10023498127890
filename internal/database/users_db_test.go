package database

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mentorship-connect/app/internal/models"
)

// setupTestDB initializes an in-memory SQLite database with the schema
// applied.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := InitDB(":memory:")
	require.NoError(t, err, "failed to initialize test database")

	t.Cleanup(func() {
		require.NoError(t, db.Close())
	})
	return db
}

func createTestUser(t *testing.T, db *sql.DB, name, email, role string) *models.User {
	t.Helper()
	user, err := CreateUser(db, name, email, role, "password123")
	require.NoError(t, err, "failed to create test user %s", email)
	return user
}

func TestCreateUserAndGet(t *testing.T) {
	db := setupTestDB(t)

	t.Run("create and get", func(t *testing.T) {
		created, err := CreateUser(db, "Alice", "alice@example.com", models.RoleMentor, "password123")
		require.NoError(t, err)
		assert.NotZero(t, created.ID)
		assert.Equal(t, "Alice", created.Name)
		assert.Equal(t, "alice@example.com", created.Email)
		assert.Equal(t, models.RoleMentor, created.Role)
		assert.False(t, created.CreatedAt.IsZero(), "CreatedAt should be set by the schema default")

		byID, err := GetUserByID(db, created.ID)
		require.NoError(t, err)
		assert.Equal(t, created, byID)

		byEmail, err := GetUserByEmail(db, "alice@example.com")
		require.NoError(t, err)
		assert.Equal(t, created, byEmail)
	})

	t.Run("duplicate email", func(t *testing.T) {
		_, err := CreateUser(db, "Alice Again", "alice@example.com", models.RoleMentee, "otherpass")
		assert.ErrorIs(t, err, ErrDuplicateEmail)
	})

	t.Run("invalid role", func(t *testing.T) {
		_, err := CreateUser(db, "Bob", "bob@example.com", "admin", "password123")
		assert.ErrorIs(t, err, ErrInvalidRole)
	})

	t.Run("missing user", func(t *testing.T) {
		_, err := GetUserByID(db, 99999)
		assert.ErrorIs(t, err, sql.ErrNoRows)

		_, err = GetUserByEmail(db, "nobody@example.com")
		assert.ErrorIs(t, err, sql.ErrNoRows)
	})
}

func TestAuthenticateUser(t *testing.T) {
	db := setupTestDB(t)
	createTestUser(t, db, "Carol", "carol@example.com", models.RoleMentee)

	t.Run("correct password", func(t *testing.T) {
		user, err := AuthenticateUser(db, "carol@example.com", "password123")
		require.NoError(t, err)
		assert.Equal(t, "Carol", user.Name)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := AuthenticateUser(db, "carol@example.com", "wrongpassword")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := AuthenticateUser(db, "ghost@example.com", "password123")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestUpdateProfile(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "Dave", "dave@example.com", models.RoleMentor)
	other := createTestUser(t, db, "Erin", "erin@example.com", models.RoleMentee)

	updated, err := UpdateProfile(db, user.ID, "David", "Ten years of Go.", "Go, SQL", "Weekends")
	require.NoError(t, err)
	assert.Equal(t, "David", updated.Name)
	assert.Equal(t, "Ten years of Go.", updated.Bio)
	assert.Equal(t, "Go, SQL", updated.Skills)
	assert.Equal(t, "Weekends", updated.Availability)
	assert.Equal(t, user.Email, updated.Email, "email is not a profile field")

	// Other rows are untouched.
	otherAfter, err := GetUserByID(db, other.ID)
	require.NoError(t, err)
	assert.Equal(t, other, otherAfter)
}

func TestListUsersByRoleAndCount(t *testing.T) {
	db := setupTestDB(t)
	createTestUser(t, db, "Mentor One", "m1@example.com", models.RoleMentor)
	createTestUser(t, db, "Mentor Two", "m2@example.com", models.RoleMentor)
	createTestUser(t, db, "Mentee One", "e1@example.com", models.RoleMentee)

	mentors, err := ListUsersByRole(db, models.RoleMentor)
	require.NoError(t, err)
	assert.Len(t, mentors, 2)
	for _, m := range mentors {
		assert.Equal(t, models.RoleMentor, m.Role)
	}

	mentees, err := ListUsersByRole(db, models.RoleMentee)
	require.NoError(t, err)
	assert.Len(t, mentees, 1)

	total, err := CountUsers(db)
	require.NoError(t, err)
	assert.Equal(t, 3, total)
}
