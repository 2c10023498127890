package handlers

import (
	"database/sql"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/mentorship-connect/app/internal/models"
)

var funcMap = template.FuncMap{
	"FormatDateTime": FormatDateTime,
	"Nl2br":          Nl2br,
	"TitleCase":      TitleCase,
}

// TitleCase converts a status or role value for display,
// e.g. "pending" -> "Pending".
func TitleCase(s string) string {
	s = strings.ReplaceAll(s, "_", " ")
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// FormatDateTime formats a timestamp for display.
func FormatDateTime(t time.Time) string {
	if t.IsZero() {
		return "N/A"
	}
	return t.Format("January 2, 2006 at 3:04 PM")
}

// Nl2br replaces newlines with <br> tags for multi-line text fields.
func Nl2br(s string) template.HTML {
	return template.HTML(strings.ReplaceAll(template.HTMLEscapeString(s), "\n", "<br>"))
}

// templates maps a page's path relative to the templates directory
// (e.g. "auth/login.html") to its parsed template set.
var templates map[string]*template.Template

// LoadTemplates parses every page template under dir against layout.html.
// Call once at startup; pages render through RenderTemplate afterwards.
func LoadTemplates(dir string) error {
	layoutFile := filepath.Join(dir, "layout.html")

	pages := []string{}
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".html") || path == layoutFile {
			return nil
		}
		pages = append(pages, path)
		return nil
	})
	if err != nil {
		return fmt.Errorf("walking templates dir %s: %w", dir, err)
	}
	if len(pages) == 0 {
		return fmt.Errorf("no page templates found in %s", dir)
	}

	parsed := make(map[string]*template.Template, len(pages))
	for _, page := range pages {
		name := filepath.ToSlash(strings.TrimPrefix(page, dir+string(filepath.Separator)))
		tmpl, err := template.New("layout.html").Funcs(funcMap).ParseFiles(layoutFile, page)
		if err != nil {
			return fmt.Errorf("parsing template %s: %w", name, err)
		}
		parsed[name] = tmpl
	}

	templates = parsed
	return nil
}

// RenderTemplate executes the named page template inside the layout.
func RenderTemplate(w http.ResponseWriter, name string, data map[string]interface{}) {
	tmpl, ok := templates[name]
	if !ok {
		logrus.WithField("template", name).Error("template not found")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	if data == nil {
		data = map[string]interface{}{}
	}
	if err := tmpl.ExecuteTemplate(w, "layout.html", data); err != nil {
		logrus.WithError(err).WithField("template", name).Error("template execution failed")
	}
}

// RenderErrorPage renders the standard error page with the given status.
// db may be nil; the navbar then renders signed-out.
func RenderErrorPage(w http.ResponseWriter, r *http.Request, db *sql.DB, sessions *SessionStore, statusCode int, title, message string) {
	var currentUser *models.User
	if db != nil && sessions != nil {
		currentUser, _ = GetCurrentUser(r, db, sessions)
	}

	w.WriteHeader(statusCode)
	RenderTemplate(w, "error.html", map[string]interface{}{
		"Title":      fmt.Sprintf("Error %d", statusCode),
		"StatusCode": statusCode,
		"StatusText": http.StatusText(statusCode),
		"ErrorTitle": title,
		"Message":    message,
		"User":       currentUser,
	})
}
