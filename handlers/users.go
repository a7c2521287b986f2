// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/emerge/auth"
	"github.com/danielhkuo/emerge/cliparse"
	"github.com/danielhkuo/emerge/db"
	"github.com/danielhkuo/emerge/middleware"
	"github.com/danielhkuo/emerge/models"
)

type UserHandler struct {
	store db.MoodStore
	cfg   cliparse.Config
}

func NewUserHandler(store db.MoodStore, cfg cliparse.Config) *UserHandler {
	return &UserHandler{store: store, cfg: cfg}
}

// Register handles POST /users
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	userID := auth.GenerateUserID()

	if err := h.store.CreateUser(r.Context(), userID); err != nil {
		slog.Error("failed to create user", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create user")
		return
	}

	slog.Info("user registered", "user_id", userID)

	middleware.JSONResponse(w, http.StatusCreated, models.RegisterUserResponse{
		UserID:    userID,
		UserToken: auth.GenerateUserToken(userID, h.cfg.UserTokenSalt),
	})
}

// authenticate validates the user headers and checks the user is
// registered. On failure it writes the error response and returns false.
func authenticate(w http.ResponseWriter, r *http.Request, store db.MoodStore, salt string) (string, bool) {
	userID, err := auth.UserFromRequest(r, salt)
	if errors.Is(err, auth.ErrMissingCredentials) {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "X-User-ID and X-User-Token are required")
		return "", false
	}
	if err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid user token")
		return "", false
	}

	exists, err := store.UserExists(r.Context(), userID)
	if err != nil {
		slog.Error("failed to query user", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return "", false
	}
	if !exists {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Unknown user")
		return "", false
	}

	return userID, true
}
