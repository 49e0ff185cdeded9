package server

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/roamgames/globetrotter/internal/quiz"
)

//go:embed seed_data.json
var seedJSON []byte

// Seed inserts the embedded destination catalog when the table is empty.
// Idempotent: does nothing once destinations exist.
func Seed(ctx context.Context, logger *slog.Logger, store *SQLiteStore) error {
	count, err := store.CountDestinations(ctx)
	if err != nil {
		return fmt.Errorf("counting destinations: %w", err)
	}
	if count > 0 {
		return nil
	}

	var destinations []quiz.Destination
	if err := json.Unmarshal(seedJSON, &destinations); err != nil {
		return fmt.Errorf("decoding seed data: %w", err)
	}

	for _, d := range destinations {
		if _, err := store.InsertDestination(ctx, d); err != nil {
			return err
		}
	}

	logger.Info("destination catalog seeded", "destinations", len(destinations))
	return nil
}
