package handlers_test

import (
	"database/sql"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/mentorship-connect/app/internal/database"
	"github.com/mentorship-connect/app/internal/handlers"
	"github.com/mentorship-connect/app/internal/server"
)

// setupTestServer starts the full application router over an in-memory
// database, mirroring the wiring in cmd/server.
func setupTestServer(t *testing.T) (*httptest.Server, *sql.DB) {
	t.Helper()

	db, err := database.InitDB(":memory:")
	require.NoError(t, err, "failed to initialize test database")
	t.Cleanup(func() { db.Close() })

	// Template path is relative to this package.
	require.NoError(t, handlers.LoadTemplates("../../web/templates"))

	srv := server.New("", db, "test-session-secret", time.Hour, nil)
	ts := httptest.NewServer(srv.Router())
	t.Cleanup(ts.Close)

	return ts, db
}

// newClient returns an HTTP client with a cookie jar, so it carries the
// session across requests like a browser.
func newClient(t *testing.T) *http.Client {
	t.Helper()
	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	return &http.Client{Jar: jar}
}

func get(t *testing.T, client *http.Client, url string) (int, string) {
	t.Helper()
	resp, err := client.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(body)
}

func postForm(t *testing.T, client *http.Client, url string, form url.Values) (int, string) {
	t.Helper()
	resp, err := client.PostForm(url, form)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(body)
}

// registerUser signs a new account up through the real registration
// endpoint; the client ends up signed in on its dashboard.
func registerUser(t *testing.T, client *http.Client, baseURL, name, email, role string) {
	t.Helper()
	status, body := postForm(t, client, baseURL+"/register", url.Values{
		"name":     {name},
		"email":    {email},
		"role":     {role},
		"password": {"password123"},
	})
	require.Equal(t, http.StatusOK, status)
	require.Contains(t, body, "Welcome back", "registration should land on the dashboard")
}
