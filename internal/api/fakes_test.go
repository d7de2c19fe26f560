package api

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/inkpad/inkpad/internal/log"
	"github.com/inkpad/inkpad/internal/note"
	"github.com/inkpad/inkpad/internal/session"
	"github.com/inkpad/inkpad/internal/user"
)

// In-memory store fakes. They mirror the PostgreSQL stores' contracts:
// same sentinel errors, same single-session-per-user behavior.

type fakeUserStore struct {
	mu    sync.Mutex
	users map[string]user.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[string]user.User)}
}

func (s *fakeUserStore) Create(_ context.Context, username, passwordHash string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[username]; ok {
		return user.ErrExists
	}
	s.users[username] = user.User{
		Username:     username,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now(),
	}
	return nil
}

func (s *fakeUserStore) Get(_ context.Context, username string) (user.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[username]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}

type fakeSessionStore struct {
	mu       sync.Mutex
	sessions map[string]session.Session
	next     int
}

func newFakeSessionStore() *fakeSessionStore {
	return &fakeSessionStore{sessions: make(map[string]session.Session)}
}

func (s *fakeSessionStore) Create(_ context.Context, username string) (session.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for token, sess := range s.sessions {
		if sess.Username == username {
			delete(s.sessions, token)
		}
	}
	s.next++
	sess := session.Session{
		Token:     fmt.Sprintf("token-%d", s.next),
		Username:  username,
		CreatedAt: time.Now(),
	}
	s.sessions[sess.Token] = sess
	return sess, nil
}

func (s *fakeSessionStore) Resolve(_ context.Context, token string) (session.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[token]
	if !ok {
		return session.Session{}, session.ErrNotFound
	}
	return sess, nil
}

func (s *fakeSessionStore) Delete(_ context.Context, token string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.sessions[token]
	delete(s.sessions, token)
	return ok, nil
}

type fakeNoteStore struct {
	mu    sync.Mutex
	notes map[int64]note.Note
	next  int64
}

func newFakeNoteStore() *fakeNoteStore {
	return &fakeNoteStore{notes: make(map[int64]note.Note)}
}

func (s *fakeNoteStore) Create(_ context.Context, owner *string, title, content string, v note.Visibility) (note.Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.next++
	now := time.Now()
	n := note.Note{
		ID:         s.next,
		Owner:      owner,
		Title:      title,
		Content:    content,
		Visibility: v,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	s.notes[n.ID] = n
	return n, nil
}

func (s *fakeNoteStore) Get(_ context.Context, id int64) (note.Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n, ok := s.notes[id]
	if !ok {
		return note.Note{}, note.ErrNotFound
	}
	return n, nil
}

func (s *fakeNoteStore) Update(_ context.Context, id int64, title, content string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	n, ok := s.notes[id]
	if !ok {
		return note.ErrNotFound
	}
	n.Title = title
	n.Content = content
	n.UpdatedAt = time.Now()
	s.notes[id] = n
	return nil
}

func (s *fakeNoteStore) Delete(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.notes[id]; !ok {
		return note.ErrNotFound
	}
	delete(s.notes, id)
	return nil
}

func (s *fakeNoteStore) ListByOwner(_ context.Context, username string) ([]note.Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var notes []note.Note
	for id := int64(1); id <= s.next; id++ {
		n, ok := s.notes[id]
		if ok && n.Owner != nil && *n.Owner == username {
			notes = append(notes, n)
		}
	}
	return notes, nil
}

// fakeHasher avoids argon2 work in handler tests.
type fakeHasher struct{}

func (fakeHasher) Hash(password string) (string, error) {
	return "hashed:" + password, nil
}

func (fakeHasher) Verify(password, encodedHash string) (bool, error) {
	return encodedHash == "hashed:"+password, nil
}

// testServer bundles a wired Server with its fakes so tests can seed
// state directly.
type testServer struct {
	handler  http.Handler
	users    *fakeUserStore
	sessions *fakeSessionStore
	notes    *fakeNoteStore
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	ts := &testServer{
		users:    newFakeUserStore(),
		sessions: newFakeSessionStore(),
		notes:    newFakeNoteStore(),
	}
	srv, err := NewServer(ServerConfig{
		Logger:    log.NewNop(),
		Users:     ts.users,
		Sessions:  ts.sessions,
		Notes:     ts.notes,
		Passwords: fakeHasher{},
	})
	require.NoError(t, err)
	ts.handler = srv.Handler()
	return ts
}

// do runs one request through the full middleware and handler stack.
// A non-empty sessionToken is sent as the session_id cookie.
func (ts *testServer) do(t *testing.T, method, target, body, sessionToken string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if sessionToken != "" {
		req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: sessionToken})
	}

	w := httptest.NewRecorder()
	ts.handler.ServeHTTP(w, req)
	return w
}

// register creates a user directly in the fake store.
func (ts *testServer) register(t *testing.T, username, password string) {
	t.Helper()
	hash, err := fakeHasher{}.Hash(password)
	require.NoError(t, err)
	require.NoError(t, ts.users.Create(context.Background(), username, hash))
}

// loginAs creates a session directly and returns its token.
func (ts *testServer) loginAs(t *testing.T, username string) string {
	t.Helper()
	sess, err := ts.sessions.Create(context.Background(), username)
	require.NoError(t, err)
	return sess.Token
}

// seedNote creates a note directly and returns its ID.
func (ts *testServer) seedNote(t *testing.T, owner string, v note.Visibility, title, content string) int64 {
	t.Helper()
	var ownerPtr *string
	if owner != "" {
		ownerPtr = &owner
	}
	n, err := ts.notes.Create(context.Background(), ownerPtr, title, content, v)
	require.NoError(t, err)
	return n.ID
}
