package handlers

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

const sessionCookieName = "session_token"

// SessionStore keeps session tokens in process, keyed to user IDs. The
// cookie carries the token plus an HMAC signature so a tampered value is
// rejected before it is even looked up.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]session
	secret   []byte
	ttl      time.Duration
}

type session struct {
	userID    int64
	expiresAt time.Time
}

func NewSessionStore(secret string, ttl time.Duration) *SessionStore {
	return &SessionStore{
		sessions: make(map[string]session),
		secret:   []byte(secret),
		ttl:      ttl,
	}
}

// Create registers a new session for userID and returns the signed cookie
// value.
func (s *SessionStore) Create(userID int64) string {
	token := uuid.NewString()

	s.mu.Lock()
	s.sessions[token] = session{userID: userID, expiresAt: time.Now().Add(s.ttl)}
	s.mu.Unlock()

	return token + "." + s.sign(token)
}

// Lookup resolves a signed cookie value to a user ID. Expired sessions are
// evicted on the way out.
func (s *SessionStore) Lookup(cookieValue string) (int64, bool) {
	token, sig, found := strings.Cut(cookieValue, ".")
	if !found || !hmac.Equal([]byte(sig), []byte(s.sign(token))) {
		return 0, false
	}

	s.mu.RLock()
	sess, ok := s.sessions[token]
	s.mu.RUnlock()
	if !ok {
		return 0, false
	}
	if time.Now().After(sess.expiresAt) {
		s.mu.Lock()
		delete(s.sessions, token)
		s.mu.Unlock()
		return 0, false
	}
	return sess.userID, true
}

// Destroy removes the session behind the signed cookie value, if any.
func (s *SessionStore) Destroy(cookieValue string) {
	token, _, _ := strings.Cut(cookieValue, ".")
	s.mu.Lock()
	delete(s.sessions, token)
	s.mu.Unlock()
}

func (s *SessionStore) sign(token string) string {
	mac := hmac.New(sha256.New, s.secret)
	mac.Write([]byte(token))
	return hex.EncodeToString(mac.Sum(nil))
}

// SetSessionCookie attaches the signed session cookie to the response.
func (s *SessionStore) SetSessionCookie(w http.ResponseWriter, r *http.Request, value string) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    value,
		Path:     "/",
		Expires:  time.Now().Add(s.ttl),
		HttpOnly: true,
		Secure:   r.TLS != nil,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearSessionCookie expires the session cookie on the client.
func ClearSessionCookie(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		Secure:   r.TLS != nil,
		SameSite: http.SameSiteLaxMode,
	})
}
