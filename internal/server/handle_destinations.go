package server

import (
	"log/slog"
	"net/http"

	"github.com/roamgames/globetrotter/internal/quiz"
)

func handleListDestinations(logger *slog.Logger, svc *quiz.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		destinations, err := svc.Catalog(r.Context())
		if err != nil {
			logger.Error("listing destinations", "error", err)
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}
		writeJSON(w, http.StatusOK, destinations)
	}
}
