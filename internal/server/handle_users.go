package server

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/roamgames/globetrotter/internal/quiz"
)

type CreateUserRequest struct {
	Username string `json:"username"`
}

// UserResponse is a user with their stat counters attached.
type UserResponse struct {
	ID       string        `json:"id"`
	Username string        `json:"username"`
	Score    int           `json:"score"`
	Stat     quiz.GameStat `json:"stat"`
}

func handleCreateUser(logger *slog.Logger, svc *quiz.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateUserRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		req.Username = strings.TrimSpace(req.Username)
		if req.Username == "" {
			writeError(w, http.StatusBadRequest, "username is required")
			return
		}

		user, err := svc.RegisterUser(r.Context(), req.Username)
		if err != nil {
			logger.Error("registering user", "username", req.Username, "error", err)
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		writeJSON(w, http.StatusOK, user)
	}
}

// handleGetUsers serves both the username lookup (?username=) and, without
// a username, the top-10 leaderboard.
func handleGetUsers(logger *slog.Logger, svc *quiz.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username := r.URL.Query().Get("username")
		if username != "" {
			user, stat, err := svc.UserWithStat(r.Context(), username)
			if errors.Is(err, quiz.ErrUserNotFound) {
				writeError(w, http.StatusNotFound, "user not found")
				return
			}
			if err != nil {
				logger.Error("looking up user", "username", username, "error", err)
				writeError(w, http.StatusInternalServerError, "internal error")
				return
			}
			writeJSON(w, http.StatusOK, UserResponse{
				ID:       user.ID,
				Username: user.Username,
				Score:    user.Score,
				Stat:     stat,
			})
			return
		}

		users, err := svc.Leaderboard(r.Context())
		if err != nil {
			logger.Error("loading leaderboard", "error", err)
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}
		writeJSON(w, http.StatusOK, users)
	}
}
