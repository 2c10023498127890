package handlers

import (
	"encoding/base64"
	"net/http"
	"strings"
)

const flashCookieName = "flash"

// Flash is a one-shot notice carried across a redirect.
type Flash struct {
	Kind    string // "success", "error" or "info"
	Message string
}

// SetFlash queues a flash message for the next rendered page.
func SetFlash(w http.ResponseWriter, kind, message string) {
	value := base64.URLEncoding.EncodeToString([]byte(kind + "|" + message))
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookieName,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// PopFlash reads and clears the pending flash message, if any.
func PopFlash(w http.ResponseWriter, r *http.Request) *Flash {
	cookie, err := r.Cookie(flashCookieName)
	if err != nil {
		return nil
	}

	http.SetCookie(w, &http.Cookie{
		Name:   flashCookieName,
		Value:  "",
		Path:   "/",
		MaxAge: -1,
	})

	decoded, err := base64.URLEncoding.DecodeString(cookie.Value)
	if err != nil {
		return nil
	}
	kind, message, found := strings.Cut(string(decoded), "|")
	if !found {
		return nil
	}
	return &Flash{Kind: kind, Message: message}
}
