package quiz

import "context"

// AnswerDelta carries the non-negative increments one evaluated answer adds
// to a user's score and stat counters.
type AnswerDelta struct {
	Score     int
	Correct   int
	Incorrect int
}

// Store is the storage collaborator the core depends on. Any keyed store
// satisfying these operations is valid.
type Store interface {
	// ListDestinations returns the full catalog with clues and facts.
	// An empty slice is valid, not an error.
	ListDestinations(ctx context.Context) ([]Destination, error)

	// GetDestination returns one destination with its facts, or
	// ErrDestinationNotFound.
	GetDestination(ctx context.Context, id string) (Destination, error)

	// FindUserByUsername returns ErrUserNotFound when no such user exists.
	FindUserByUsername(ctx context.Context, username string) (User, error)

	// CreateUser inserts a user together with a zeroed game stat. A
	// duplicate username returns the existing user instead of failing.
	CreateUser(ctx context.Context, username string) (User, error)

	// ApplyAnswer atomically adds delta.Score to the user's cumulative
	// score and upserts the user's game stat with the same deltas. Both
	// writes succeed or neither does. Missing user → ErrUserNotFound.
	ApplyAnswer(ctx context.Context, userID string, delta AnswerDelta) (User, error)

	// GameStatByUser returns the user's stat row, or a zeroed stat when
	// none has been written yet.
	GameStatByUser(ctx context.Context, userID string) (GameStat, error)

	// TopUsers returns up to limit users ordered by score descending.
	TopUsers(ctx context.Context, limit int) ([]User, error)
}
