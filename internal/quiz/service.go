package quiz

import (
	"context"
	"errors"
	"fmt"
)

// LeaderboardSize is how many users the leaderboard returns.
const LeaderboardSize = 10

// Service exposes the core quiz operations to the transport layer. Each
// call is stateless; the only side effect is the optional score update in
// EvaluateAnswer.
type Service struct {
	store       Store
	clueCount   int
	optionCount int
}

// NewService builds a Service with the given per-challenge defaults.
// Non-positive counts fall back to DefaultClueCount / DefaultOptionCount.
func NewService(store Store, clueCount, optionCount int) *Service {
	if clueCount <= 0 {
		clueCount = DefaultClueCount
	}
	if optionCount <= 0 {
		optionCount = DefaultOptionCount
	}
	return &Service{store: store, clueCount: clueCount, optionCount: optionCount}
}

// RandomChallenge loads the catalog and generates a challenge from it.
// Zero counts use the service defaults.
func (s *Service) RandomChallenge(ctx context.Context, clueCount, optionCount int) (Challenge, error) {
	catalog, err := s.store.ListDestinations(ctx)
	if err != nil {
		return Challenge{}, fmt.Errorf("listing destinations: %w", err)
	}
	if clueCount <= 0 {
		clueCount = s.clueCount
	}
	if optionCount <= 0 {
		optionCount = s.optionCount
	}
	return GenerateChallenge(catalog, clueCount, optionCount)
}

// EvaluateAnswer checks a submitted answer against the destination's name,
// picks a disclosure fact, and, when userID is set, applies the score and
// stat increments as one atomic storage call. Correctness is exact,
// case-sensitive equality. The verdict is computed before any write; when
// aggregation fails it is returned together with the error so the failure
// is surfaced without losing the judgement.
func (s *Service) EvaluateAnswer(ctx context.Context, destinationID, answer, userID string) (Verdict, error) {
	if destinationID == "" || answer == "" {
		return Verdict{}, ErrInvalidInput
	}

	dest, err := s.store.GetDestination(ctx, destinationID)
	if err != nil {
		return Verdict{}, err
	}

	verdict := Verdict{
		IsCorrect: answer == dest.Name,
		Fact:      randomFact(dest.Facts),
	}

	// Anonymous submissions skip aggregation entirely.
	if userID == "" {
		return verdict, nil
	}

	delta := AnswerDelta{Incorrect: 1}
	if verdict.IsCorrect {
		delta = AnswerDelta{Score: 1, Correct: 1}
	}
	user, err := s.store.ApplyAnswer(ctx, userID, delta)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return verdict, err
		}
		return verdict, fmt.Errorf("recording answer for user %s: %w", userID, err)
	}
	verdict.User = &user
	return verdict, nil
}

// RegisterUser finds or creates a user by username. Creation is idempotent:
// a second call with the same username returns the existing record.
func (s *Service) RegisterUser(ctx context.Context, username string) (User, error) {
	if username == "" {
		return User{}, ErrInvalidInput
	}
	user, err := s.store.FindUserByUsername(ctx, username)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, ErrUserNotFound) {
		return User{}, fmt.Errorf("finding user %q: %w", username, err)
	}
	return s.store.CreateUser(ctx, username)
}

// UserWithStat looks up a user by username together with their stat row.
func (s *Service) UserWithStat(ctx context.Context, username string) (User, GameStat, error) {
	if username == "" {
		return User{}, GameStat{}, ErrInvalidInput
	}
	user, err := s.store.FindUserByUsername(ctx, username)
	if err != nil {
		return User{}, GameStat{}, err
	}
	stat, err := s.store.GameStatByUser(ctx, user.ID)
	if err != nil {
		return User{}, GameStat{}, fmt.Errorf("loading stat for user %s: %w", user.ID, err)
	}
	return user, stat, nil
}

// Leaderboard returns the top users by cumulative score.
func (s *Service) Leaderboard(ctx context.Context) ([]User, error) {
	return s.store.TopUsers(ctx, LeaderboardSize)
}

// Catalog returns every destination with its clues and facts.
func (s *Service) Catalog(ctx context.Context) ([]Destination, error) {
	return s.store.ListDestinations(ctx)
}
