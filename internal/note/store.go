package note

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Store manages note persistence with a PostgreSQL backend.
// Safe for concurrent use; the last write wins on concurrent edits.
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

// Create inserts a note. owner is nil for anonymous public notes.
func (s *Store) Create(ctx context.Context, owner *string, title, content string, v Visibility) (Note, error) {
	now := time.Now().UTC()
	n := Note{
		Owner:      owner,
		Title:      title,
		Content:    content,
		Visibility: v,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	err := s.pool.QueryRow(ctx,
		`INSERT INTO notes (username, title, content, visibility, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $5)
		 RETURNING id`,
		owner, title, content, string(v), now,
	).Scan(&n.ID)
	if err != nil {
		return Note{}, fmt.Errorf("creating note: %w", err)
	}

	s.logger.Debug("created note", "id", n.ID, "visibility", v)
	return n, nil
}

// Get returns the note for the given ID, or ErrNotFound.
func (s *Store) Get(ctx context.Context, id int64) (Note, error) {
	var n Note
	err := s.pool.QueryRow(ctx,
		`SELECT id, username, title, content, visibility, created_at, updated_at
		 FROM notes WHERE id = $1`,
		id,
	).Scan(&n.ID, &n.Owner, &n.Title, &n.Content, &n.Visibility, &n.CreatedAt, &n.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return Note{}, ErrNotFound
	}
	if err != nil {
		return Note{}, fmt.Errorf("getting note %d: %w", id, err)
	}
	return n, nil
}

// Update overwrites title, content, and updated_at. Authorization is the
// caller's responsibility.
func (s *Store) Update(ctx context.Context, id int64, title, content string) error {
	tag, err := s.pool.Exec(ctx,
		`UPDATE notes SET title = $1, content = $2, updated_at = $3 WHERE id = $4`,
		title, content, time.Now().UTC(), id,
	)
	if err != nil {
		return fmt.Errorf("updating note %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes the note.
func (s *Store) Delete(ctx context.Context, id int64) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM notes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting note %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// ListByOwner returns all notes owned by the username, oldest first.
func (s *Store) ListByOwner(ctx context.Context, username string) ([]Note, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, username, title, content, visibility, created_at, updated_at
		 FROM notes WHERE username = $1 ORDER BY id`,
		username,
	)
	if err != nil {
		return nil, fmt.Errorf("listing notes for %s: %w", username, err)
	}
	defer rows.Close()

	var notes []Note
	for rows.Next() {
		var n Note
		if err := rows.Scan(&n.ID, &n.Owner, &n.Title, &n.Content, &n.Visibility, &n.CreatedAt, &n.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scanning note: %w", err)
		}
		notes = append(notes, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("listing notes for %s: %w", username, err)
	}
	return notes, nil
}
