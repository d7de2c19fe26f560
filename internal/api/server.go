package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/inkpad/inkpad/internal/note"
	"github.com/inkpad/inkpad/internal/session"
	"github.com/inkpad/inkpad/internal/user"
)

// sessionCookieName is the cookie carrying the opaque session token.
const sessionCookieName = "session_id"

// UserStore is the credential persistence the handlers depend on.
type UserStore interface {
	Create(ctx context.Context, username, passwordHash string) error
	Get(ctx context.Context, username string) (user.User, error)
}

// SessionStore resolves and manages login sessions.
type SessionStore interface {
	Create(ctx context.Context, username string) (session.Session, error)
	Resolve(ctx context.Context, token string) (session.Session, error)
	Delete(ctx context.Context, token string) (bool, error)
}

// NoteStore is the note persistence the handlers depend on.
type NoteStore interface {
	Create(ctx context.Context, owner *string, title, content string, v note.Visibility) (note.Note, error)
	Get(ctx context.Context, id int64) (note.Note, error)
	Update(ctx context.Context, id int64, title, content string) error
	Delete(ctx context.Context, id int64) error
	ListByOwner(ctx context.Context, username string) ([]note.Note, error)
}

// PasswordHasher hashes and verifies passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, encodedHash string) (bool, error)
}

// ServerConfig contains the dependencies for creating the API server.
type ServerConfig struct {
	Logger    *slog.Logger
	Users     UserStore      // Required
	Sessions  SessionStore   // Required
	Notes     NoteStore      // Required
	Passwords PasswordHasher // Required
}

// Server is the JSON API HTTP server.
type Server struct {
	handler http.Handler
}

// NewServer creates a new API server with all routes configured.
func NewServer(cfg ServerConfig) (*Server, error) {
	if cfg.Users == nil {
		return nil, errors.New("user store is required")
	}
	if cfg.Sessions == nil {
		return nil, errors.New("session store is required")
	}
	if cfg.Notes == nil {
		return nil, errors.New("note store is required")
	}
	if cfg.Passwords == nil {
		return nil, errors.New("password hasher is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	ah := &authHandler{
		users:     cfg.Users,
		sessions:  cfg.Sessions,
		passwords: cfg.Passwords,
		logger:    logger,
	}
	nh := &noteHandler{
		notes:    cfg.Notes,
		sessions: cfg.Sessions,
		logger:   logger,
	}
	uh := &userHandler{
		users:    cfg.Users,
		notes:    cfg.Notes,
		sessions: cfg.Sessions,
		logger:   logger,
	}

	mux := http.NewServeMux()

	mux.HandleFunc("POST /register", ah.register)
	mux.HandleFunc("POST /login", ah.login)
	mux.HandleFunc("GET /logout", ah.logout)

	mux.HandleFunc("POST /note/save", nh.save)
	mux.HandleFunc("POST /note/upload", nh.upload)
	mux.HandleFunc("GET /note/{id}", nh.get)
	mux.HandleFunc("PUT /note/{id}", nh.edit)
	mux.HandleFunc("DELETE /note/{id}", nh.delete)

	mux.HandleFunc("GET /user/me", uh.me)
	mux.HandleFunc("GET /user/{username}", uh.profile)

	mux.HandleFunc("GET /health", health)

	// Middleware stack (outermost first): Recovery → RequestID → Logging.
	// RequestID runs before Logging so request_id is available in log
	// attributes.
	var handler http.Handler = mux
	handler = loggingMiddleware(logger)(handler)
	handler = requestIDMiddleware()(handler)
	handler = recoveryMiddleware(logger)(handler)

	return &Server{handler: handler}, nil
}

// Handler returns the server as an http.Handler.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// health is a liveness probe for container orchestration.
func health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// requester resolves the session cookie to a username. Returns the empty
// string for anonymous callers: missing cookie, unknown token, or an
// expired session all look the same to the access rules.
func requester(r *http.Request, sessions SessionStore) string {
	cookie, err := r.Cookie(sessionCookieName)
	if err != nil {
		return ""
	}
	sess, err := sessions.Resolve(r.Context(), cookie.Value)
	if err != nil {
		return ""
	}
	return sess.Username
}
