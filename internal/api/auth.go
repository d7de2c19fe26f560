package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/inkpad/inkpad/internal/user"
)

// authHandler serves registration, login, and logout.
type authHandler struct {
	users     UserStore
	sessions  SessionStore
	passwords PasswordHasher
	logger    *slog.Logger
}

type credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *authHandler) register(w http.ResponseWriter, r *http.Request) {
	var creds credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil || creds.Username == "" || creds.Password == "" {
		writeMessage(w, http.StatusBadRequest, "Incomplete user data.")
		return
	}

	hash, err := h.passwords.Hash(creds.Password)
	if err != nil {
		h.logger.Error("hashing password", "error", err)
		writeInternalError(w)
		return
	}

	if err := h.users.Create(r.Context(), creds.Username, hash); err != nil {
		if errors.Is(err, user.ErrExists) {
			writeMessage(w, http.StatusConflict, "User already has an account.")
			return
		}
		h.logger.Error("creating user", "error", err)
		writeInternalError(w)
		return
	}

	h.logger.Info("user registered", "username", creds.Username)
	writeMessage(w, http.StatusOK, "User registered successfully.")
}

func (h *authHandler) login(w http.ResponseWriter, r *http.Request) {
	var creds credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil || creds.Username == "" || creds.Password == "" {
		writeMessage(w, http.StatusBadRequest, "Incomplete credentials.")
		return
	}

	u, err := h.users.Get(r.Context(), creds.Username)
	if errors.Is(err, user.ErrNotFound) {
		writeMessage(w, http.StatusUnauthorized, "Invalid credentials.")
		return
	}
	if err != nil {
		h.logger.Error("looking up user", "error", err)
		writeInternalError(w)
		return
	}

	ok, err := h.passwords.Verify(creds.Password, u.PasswordHash)
	if err != nil {
		h.logger.Error("verifying password", "error", err)
		writeInternalError(w)
		return
	}
	if !ok {
		writeMessage(w, http.StatusUnauthorized, "Invalid credentials.")
		return
	}

	// Creating the session drops any previous session for the user, so
	// a second login invalidates the first device's cookie.
	sess, err := h.sessions.Create(r.Context(), u.Username)
	if err != nil {
		h.logger.Error("creating session", "error", err)
		writeInternalError(w)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    sess.Token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	h.logger.Info("user logged in", "username", u.Username)
	writeMessage(w, http.StatusOK, "User logged in successfully.")
}

func (h *authHandler) logout(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie(sessionCookieName)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "You are not logged in.")
		return
	}

	deleted, err := h.sessions.Delete(r.Context(), cookie.Value)
	if err != nil {
		h.logger.Error("deleting session", "error", err)
		writeInternalError(w)
		return
	}
	if !deleted {
		writeMessage(w, http.StatusBadRequest, "You are not logged in.")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})

	writeMessage(w, http.StatusOK, "User logged out successfully.")
}
