package server

import (
	"context"
	"errors"
	"testing"

	"github.com/roamgames/globetrotter/internal/quiz"
)

func TestStoreGetDestination(t *testing.T) {
	store := setupStore(t, true)
	ctx := context.Background()

	catalog, err := store.ListDestinations(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(catalog) == 0 {
		t.Fatal("expected seeded catalog")
	}

	d, err := store.GetDestination(ctx, catalog[0].ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if d.Name != catalog[0].Name {
		t.Fatalf("expected %q, got %q", catalog[0].Name, d.Name)
	}
	if len(d.Facts) == 0 {
		t.Fatal("expected facts to be loaded")
	}

	if _, err := store.GetDestination(ctx, "missing"); !errors.Is(err, quiz.ErrDestinationNotFound) {
		t.Fatalf("expected ErrDestinationNotFound, got %v", err)
	}
}

func TestStoreCreateUserDuplicate(t *testing.T) {
	store := setupStore(t, false)
	ctx := context.Background()

	first, err := store.CreateUser(ctx, "alice")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	second, err := store.CreateUser(ctx, "alice")
	if err != nil {
		t.Fatalf("create again: %v", err)
	}
	if first.ID != second.ID {
		t.Fatalf("duplicate username created a second user: %q vs %q", first.ID, second.ID)
	}

	var count int
	if err := store.db.QueryRow(`SELECT COUNT(*) FROM users`).Scan(&count); err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 user row, got %d", count)
	}
}

func TestStoreApplyAnswer(t *testing.T) {
	store := setupStore(t, false)
	ctx := context.Background()

	user, err := store.CreateUser(ctx, "bob")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// Correct, incorrect, correct.
	deltas := []quiz.AnswerDelta{
		{Score: 1, Correct: 1},
		{Incorrect: 1},
		{Score: 1, Correct: 1},
	}
	var updated quiz.User
	for _, d := range deltas {
		updated, err = store.ApplyAnswer(ctx, user.ID, d)
		if err != nil {
			t.Fatalf("apply: %v", err)
		}
	}
	if updated.Score != 2 {
		t.Fatalf("expected score 2, got %d", updated.Score)
	}

	stat, err := store.GameStatByUser(ctx, user.ID)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if stat.Score != 2 || stat.Correct != 2 || stat.Incorrect != 1 {
		t.Fatalf("unexpected stat: %+v", stat)
	}
}

func TestStoreApplyAnswerUnknownUser(t *testing.T) {
	store := setupStore(t, false)

	_, err := store.ApplyAnswer(context.Background(), "ghost", quiz.AnswerDelta{Score: 1, Correct: 1})
	if !errors.Is(err, quiz.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestStoreTopUsers(t *testing.T) {
	store := setupStore(t, false)
	ctx := context.Background()

	names := []string{"ann", "ben", "cas"}
	for i, name := range names {
		u, err := store.CreateUser(ctx, name)
		if err != nil {
			t.Fatalf("create %s: %v", name, err)
		}
		for j := 0; j <= i; j++ {
			if _, err := store.ApplyAnswer(ctx, u.ID, quiz.AnswerDelta{Score: 1, Correct: 1}); err != nil {
				t.Fatalf("apply: %v", err)
			}
		}
	}

	top, err := store.TopUsers(ctx, 2)
	if err != nil {
		t.Fatalf("top: %v", err)
	}
	if len(top) != 2 {
		t.Fatalf("expected 2 users, got %d", len(top))
	}
	if top[0].Username != "cas" || top[0].Score != 3 {
		t.Fatalf("expected cas first with 3 points, got %+v", top[0])
	}
	if top[1].Username != "ben" || top[1].Score != 2 {
		t.Fatalf("expected ben second with 2 points, got %+v", top[1])
	}
}

func TestSeedIdempotent(t *testing.T) {
	store := setupStore(t, true)
	ctx := context.Background()

	if err := Seed(ctx, testLogger(), store); err != nil {
		t.Fatalf("second seed: %v", err)
	}
	count, err := store.CountDestinations(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 6 {
		t.Fatalf("expected 6 destinations after reseed, got %d", count)
	}
}
