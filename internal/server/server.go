package server

import (
	"database/sql"
	"net/http"
	"time"

	logger "github.com/chi-middleware/logrus-logger"
	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"

	"github.com/mentorship-connect/app/internal/handlers"
)

type Server struct {
	Addr     string
	DB       *sql.DB
	Sessions *handlers.SessionStore
	Log      *logrus.Logger
}

func New(addr string, db *sql.DB, sessionSecret string, sessionTTL time.Duration, log *logrus.Logger) *Server {
	return &Server{
		Addr:     addr,
		DB:       db,
		Sessions: handlers.NewSessionStore(sessionSecret, sessionTTL),
		Log:      log,
	}
}

// Router assembles the route table. Split out from Run so tests can mount
// it on an httptest.Server.
func (s *Server) Router() chi.Router {
	db, sessions := s.DB, s.Sessions

	r := chi.NewRouter()
	if s.Log != nil {
		r.Use(logger.Logger("router", s.Log))
	}

	fs := http.FileServer(http.Dir("web/static"))
	r.Handle("/static/*", http.StripPrefix("/static/", fs))

	r.Get("/", handlers.IndexPage(db, sessions))

	r.Get("/register", handlers.RegisterPage)
	r.Post("/register", handlers.Register(db, sessions))
	r.Get("/login", handlers.LoginPage)
	r.Post("/login", handlers.Login(db, sessions))
	r.Post("/logout", handlers.Logout(sessions))

	r.Get("/dashboard", handlers.AuthMiddleware(sessions, handlers.Dashboard(db, sessions)))

	r.Get("/profile/edit", handlers.AuthMiddleware(sessions, handlers.EditProfilePage(db, sessions)))
	r.Post("/profile/edit", handlers.AuthMiddleware(sessions, handlers.UpdateProfile(db, sessions)))

	r.Route("/mentorships", func(r chi.Router) {
		r.Get("/", handlers.AuthMiddleware(sessions, handlers.MentorshipsPage(db, sessions)))
		r.Post("/", handlers.AuthMiddleware(sessions, handlers.CreateMentorshipRequest(db, sessions)))
		r.Post("/{id}/accept", handlers.AuthMiddleware(sessions, handlers.AcceptMentorship(db, sessions)))
		r.Post("/{id}/decline", handlers.AuthMiddleware(sessions, handlers.DeclineMentorship(db, sessions)))
		r.Post("/{id}/complete", handlers.AuthMiddleware(sessions, handlers.CompleteMentorship(db, sessions)))
		r.Get("/{id}/messages", handlers.AuthMiddleware(sessions, handlers.MessagesPage(db, sessions)))
		r.Post("/{id}/messages", handlers.AuthMiddleware(sessions, handlers.PostMessage(db, sessions)))
	})

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		handlers.RenderErrorPage(w, req, db, sessions, http.StatusNotFound,
			"Page Not Found", "The page you are looking for does not exist.")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		handlers.RenderErrorPage(w, req, db, sessions, http.StatusMethodNotAllowed,
			"Method Not Allowed", "This method is not supported for "+req.URL.Path+".")
	})

	return r
}

func (s *Server) Run() error {
	return http.ListenAndServe(s.Addr, s.Router())
}
