package user

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Store manages user persistence with a PostgreSQL backend.
// Safe for concurrent use.
type Store struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

// NewStore creates a Store backed by the given pool.
func NewStore(pool *pgxpool.Pool, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{pool: pool, logger: logger}
}

// Create inserts a new user. Uniqueness is enforced by the primary key;
// a unique violation maps to ErrExists rather than a racy pre-check.
func (s *Store) Create(ctx context.Context, username, passwordHash string) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO users (username, password_hash) VALUES ($1, $2)`,
		username, passwordHash,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return ErrExists
		}
		return fmt.Errorf("creating user: %w", err)
	}

	s.logger.Debug("created user", "username", username)
	return nil
}

// Get returns the user for the given username, or ErrNotFound.
func (s *Store) Get(ctx context.Context, username string) (User, error) {
	var u User
	err := s.pool.QueryRow(ctx,
		`SELECT username, password_hash, created_at FROM users WHERE username = $1`,
		username,
	).Scan(&u.Username, &u.PasswordHash, &u.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return User{}, ErrNotFound
	}
	if err != nil {
		return User{}, fmt.Errorf("getting user %s: %w", username, err)
	}
	return u, nil
}
