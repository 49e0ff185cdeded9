package server

import (
	"encoding/json"
	"net/http"

	openapi "github.com/swaggest/openapi-go"
	"github.com/swaggest/openapi-go/openapi3"

	"github.com/roamgames/globetrotter/internal/quiz"
)

// ErrorResponse is returned for all error responses.
type ErrorResponse struct {
	Error string `json:"error"`
}

func newOpenAPISpec() *openapi3.Spec {
	r := openapi3.NewReflector()
	r.Spec.Info.Title = "Globetrotter API"
	r.Spec.Info.Version = "0.1.0"
	r.Spec.Info.WithDescription("Backend API for the Globetrotter destination guessing game.")

	// GET /healthz
	getHealthz, _ := r.NewOperationContext(http.MethodGet, "/healthz")
	getHealthz.SetSummary("Health check")
	getHealthz.SetDescription("Returns the health status of backend dependencies.")
	getHealthz.AddRespStructure(HealthResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	getHealthz.AddRespStructure(HealthResponse{}, openapi.WithHTTPStatus(http.StatusServiceUnavailable))
	_ = r.AddOperation(getHealthz)

	// GET /api/destinations
	listDestinations, _ := r.NewOperationContext(http.MethodGet, "/api/destinations")
	listDestinations.SetSummary("List destinations")
	listDestinations.SetDescription("Returns the full destination catalog with clues and facts.")
	listDestinations.AddRespStructure([]quiz.Destination{}, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(listDestinations)

	// GET /api/game/random
	getRandom, _ := r.NewOperationContext(http.MethodGet, "/api/game/random")
	getRandom.SetSummary("Generate a challenge")
	getRandom.SetDescription("Picks a random destination and returns sampled clues plus a shuffled option list. Optional clues= and options= query parameters override the defaults.")
	getRandom.AddRespStructure(quiz.Challenge{}, openapi.WithHTTPStatus(http.StatusOK))
	getRandom.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	_ = r.AddOperation(getRandom)

	// POST /api/game/check
	postCheck, _ := r.NewOperationContext(http.MethodPost, "/api/game/check")
	postCheck.SetSummary("Check an answer")
	postCheck.SetDescription("Verifies the submitted answer against the destination's name, discloses a random fact and, when userId is set, updates the user's score and stats.")
	postCheck.AddReqStructure(CheckRequest{})
	postCheck.AddRespStructure(quiz.Verdict{}, openapi.WithHTTPStatus(http.StatusOK))
	postCheck.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	postCheck.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	_ = r.AddOperation(postCheck)

	// POST /api/users
	postUsers, _ := r.NewOperationContext(http.MethodPost, "/api/users")
	postUsers.SetSummary("Register a user")
	postUsers.SetDescription("Finds or creates a user by username. Idempotent.")
	postUsers.AddReqStructure(CreateUserRequest{})
	postUsers.AddRespStructure(quiz.User{}, openapi.WithHTTPStatus(http.StatusOK))
	postUsers.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	_ = r.AddOperation(postUsers)

	// GET /api/users
	getUsers, _ := r.NewOperationContext(http.MethodGet, "/api/users")
	getUsers.SetSummary("Look up a user or list the leaderboard")
	getUsers.SetDescription("With ?username= returns that user and their stat counters; without it returns the top 10 users by score.")
	getUsers.AddRespStructure(UserResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	getUsers.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	_ = r.AddOperation(getUsers)

	// GET /api/game/events
	getEvents, _ := r.NewOperationContext(http.MethodGet, "/api/game/events")
	getEvents.SetSummary("SSE score stream")
	getEvents.SetDescription("Server-Sent Events stream of score updates for a user. Pass username as query parameter.")
	getEvents.AddRespStructure(nil, openapi.WithHTTPStatus(http.StatusOK),
		openapi.WithContentType("text/event-stream"))
	getEvents.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	_ = r.AddOperation(getEvents)

	return r.Spec
}

func handleOpenAPI() http.HandlerFunc {
	spec := newOpenAPISpec()
	data, _ := json.MarshalIndent(spec, "", "  ")

	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
	}
}
