package session

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// tokenBytes is the entropy of a session token before encoding.
const tokenBytes = 32

// Store manages session persistence with a PostgreSQL backend.
// Safe for concurrent use.
type Store struct {
	pool   *pgxpool.Pool
	ttl    time.Duration
	logger *slog.Logger
}

// NewStore creates a Store backed by the given pool. A zero ttl means
// sessions never expire (the historical behavior); a positive ttl makes
// Resolve treat older sessions as absent.
func NewStore(pool *pgxpool.Pool, ttl time.Duration, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{pool: pool, ttl: ttl, logger: logger}
}

// NewToken returns a fresh opaque session token: 32 bytes from
// crypto/rand, base64url without padding.
func NewToken() (string, error) {
	b := make([]byte, tokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generating session token: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

// Create issues a new session for the username. The delete-then-insert
// runs in one transaction so the single-session-per-user invariant holds
// even under concurrent logins.
func (s *Store) Create(ctx context.Context, username string) (Session, error) {
	token, err := NewToken()
	if err != nil {
		return Session{}, err
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return Session{}, fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `DELETE FROM sessions WHERE username = $1`, username); err != nil {
		return Session{}, fmt.Errorf("deleting prior session: %w", err)
	}

	sess := Session{Token: token, Username: username, CreatedAt: time.Now().UTC()}
	if _, err := tx.Exec(ctx,
		`INSERT INTO sessions (token, username, created_at) VALUES ($1, $2, $3)`,
		sess.Token, sess.Username, sess.CreatedAt,
	); err != nil {
		return Session{}, fmt.Errorf("inserting session: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return Session{}, fmt.Errorf("committing session: %w", err)
	}

	s.logger.Debug("created session", "username", username)
	return sess, nil
}

// Resolve returns the session for the token, or ErrNotFound. With a
// configured TTL, an expired session is deleted and reported as absent.
func (s *Store) Resolve(ctx context.Context, token string) (Session, error) {
	var sess Session
	err := s.pool.QueryRow(ctx,
		`SELECT token, username, created_at FROM sessions WHERE token = $1`,
		token,
	).Scan(&sess.Token, &sess.Username, &sess.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return Session{}, ErrNotFound
	}
	if err != nil {
		return Session{}, fmt.Errorf("resolving session: %w", err)
	}

	if s.ttl > 0 && time.Since(sess.CreatedAt) > s.ttl {
		if _, err := s.Delete(ctx, token); err != nil {
			s.logger.Warn("deleting expired session", "error", err)
		}
		return Session{}, ErrNotFound
	}

	return sess, nil
}

// Delete removes the session for the token and reports whether a row
// was removed.
func (s *Store) Delete(ctx context.Context, token string) (bool, error) {
	tag, err := s.pool.Exec(ctx, `DELETE FROM sessions WHERE token = $1`, token)
	if err != nil {
		return false, fmt.Errorf("deleting session: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
