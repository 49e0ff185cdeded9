package server

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/roamgames/globetrotter/internal/quiz"
)

type CheckRequest struct {
	DestinationID string `json:"destinationId"`
	Answer        string `json:"answer"`
	UserID        string `json:"userId,omitempty"`
}

func handleRandomGame(logger *slog.Logger, svc *quiz.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		clueCount := intQuery(r, "clues")
		optionCount := intQuery(r, "options")

		challenge, err := svc.RandomChallenge(r.Context(), clueCount, optionCount)
		if errors.Is(err, quiz.ErrEmptyCatalog) {
			writeError(w, http.StatusNotFound, "no destinations found in the database")
			return
		}
		if err != nil {
			logger.Error("generating challenge", "error", err)
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		writeJSON(w, http.StatusOK, challenge)
	}
}

func handleCheckAnswer(logger *slog.Logger, svc *quiz.Service, broker *Broker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CheckRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		// The answer is compared verbatim: no trimming, no case folding.
		verdict, err := svc.EvaluateAnswer(r.Context(), req.DestinationID, req.Answer, req.UserID)
		switch {
		case errors.Is(err, quiz.ErrInvalidInput):
			writeError(w, http.StatusBadRequest, "destinationId and answer are required")
			return
		case errors.Is(err, quiz.ErrDestinationNotFound):
			writeError(w, http.StatusNotFound, "destination not found")
			return
		case errors.Is(err, quiz.ErrUserNotFound):
			writeError(w, http.StatusNotFound, "user not found")
			return
		case err != nil:
			// The verdict was computed but the score write failed; do not
			// answer with a stale score.
			logger.Error("recording answer", "error", err, "correct", verdict.IsCorrect)
			writeError(w, http.StatusInternalServerError, "answer evaluated but score update failed")
			return
		}

		if verdict.User != nil {
			broker.Publish(verdict.User.Username, ScoreEvent{
				Type:      "score",
				Username:  verdict.User.Username,
				IsCorrect: verdict.IsCorrect,
				Score:     verdict.User.Score,
			})
		}

		writeJSON(w, http.StatusOK, verdict)
	}
}

// intQuery parses a positive integer query parameter; anything else is 0,
// which lets the service fall back to its defaults.
func intQuery(r *http.Request, name string) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0
	}
	return n
}
