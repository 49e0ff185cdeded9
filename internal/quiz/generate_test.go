package quiz

import (
	"fmt"
	"testing"
)

func testCatalog(n int) []Destination {
	catalog := make([]Destination, 0, n)
	for i := 0; i < n; i++ {
		id := fmt.Sprintf("d%d", i)
		catalog = append(catalog, Destination{
			ID:        id,
			Name:      fmt.Sprintf("City %d", i),
			Country:   "Country",
			Continent: "Continent",
			Clues: []Clue{
				{ID: id + "-c1", Text: "clue one", Difficulty: "easy"},
				{ID: id + "-c2", Text: "clue two", Difficulty: "medium"},
				{ID: id + "-c3", Text: "clue three", Difficulty: "hard"},
			},
			Facts: []Fact{
				{ID: id + "-f1", Text: "fact one"},
			},
		})
	}
	return catalog
}

func TestGenerateChallengeEmptyCatalog(t *testing.T) {
	_, err := GenerateChallenge(nil, 2, 4)
	if err != ErrEmptyCatalog {
		t.Fatalf("expected ErrEmptyCatalog, got %v", err)
	}
}

func TestGenerateChallengeOptionInvariants(t *testing.T) {
	catalog := testCatalog(10)

	for i := 0; i < 200; i++ {
		ch, err := GenerateChallenge(catalog, 2, 4)
		if err != nil {
			t.Fatalf("generate: %v", err)
		}
		if len(ch.Options) != 4 {
			t.Fatalf("expected 4 options, got %d", len(ch.Options))
		}

		seen := make(map[string]int)
		for _, o := range ch.Options {
			seen[o]++
		}
		if len(seen) != len(ch.Options) {
			t.Fatalf("duplicate options: %v", ch.Options)
		}
		if seen[ch.Destination.Name] != 1 {
			t.Fatalf("correct name %q appears %d times in %v",
				ch.Destination.Name, seen[ch.Destination.Name], ch.Options)
		}
	}
}

func TestGenerateChallengeClueInvariants(t *testing.T) {
	catalog := testCatalog(5)

	for i := 0; i < 100; i++ {
		ch, err := GenerateChallenge(catalog, 2, 4)
		if err != nil {
			t.Fatalf("generate: %v", err)
		}
		if len(ch.Clues) != 2 {
			t.Fatalf("expected 2 clues, got %d", len(ch.Clues))
		}

		// Every sampled clue must belong to the chosen destination,
		// with no duplicates.
		var selected Destination
		for _, d := range catalog {
			if d.ID == ch.Destination.ID {
				selected = d
			}
		}
		seen := make(map[string]bool)
		for _, c := range ch.Clues {
			if seen[c.ID] {
				t.Fatalf("duplicate clue %q", c.ID)
			}
			seen[c.ID] = true
			found := false
			for _, dc := range selected.Clues {
				if dc.ID == c.ID {
					found = true
				}
			}
			if !found {
				t.Fatalf("clue %q is not from destination %q", c.ID, selected.ID)
			}
		}
	}
}

func TestGenerateChallengeFewerCluesThanRequested(t *testing.T) {
	catalog := []Destination{{
		ID:    "d0",
		Name:  "Lonely",
		Clues: []Clue{{ID: "c1", Text: "only clue"}},
	}}

	ch, err := GenerateChallenge(catalog, 5, 4)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(ch.Clues) != 1 {
		t.Fatalf("expected all available clues (1), got %d", len(ch.Clues))
	}
}

func TestGenerateChallengeSingleDestination(t *testing.T) {
	catalog := testCatalog(1)

	ch, err := GenerateChallenge(catalog, 2, 4)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(ch.Options) != 1 || ch.Options[0] != catalog[0].Name {
		t.Fatalf("expected only the correct answer, got %v", ch.Options)
	}
}

func TestGenerateChallengeSmallCatalog(t *testing.T) {
	// Catalog of 3 with optionCount 4: options capped at the 3 names.
	catalog := []Destination{
		{ID: "p", Name: "Paris", Clues: []Clue{{ID: "p1"}, {ID: "p2"}, {ID: "p3"}}},
		{ID: "t", Name: "Tokyo"},
		{ID: "r", Name: "Rome"},
	}

	for i := 0; i < 50; i++ {
		ch, err := GenerateChallenge(catalog, 2, 4)
		if err != nil {
			t.Fatalf("generate: %v", err)
		}
		if len(ch.Options) != 3 {
			t.Fatalf("expected 3 options, got %v", ch.Options)
		}
		if ch.Destination.ID == "p" && len(ch.Clues) != 2 {
			t.Fatalf("expected 2 clues for Paris, got %d", len(ch.Clues))
		}
	}
}

func TestGenerateChallengeShuffleIsNotFixed(t *testing.T) {
	catalog := testCatalog(8)

	positions := make(map[int]bool)
	destinations := make(map[string]bool)
	for i := 0; i < 300; i++ {
		ch, err := GenerateChallenge(catalog, 2, 4)
		if err != nil {
			t.Fatalf("generate: %v", err)
		}
		destinations[ch.Destination.ID] = true
		for pos, o := range ch.Options {
			if o == ch.Destination.Name {
				positions[pos] = true
			}
		}
	}

	if len(positions) < 2 {
		t.Fatalf("correct answer always landed at the same position: %v", positions)
	}
	if len(destinations) < 2 {
		t.Fatalf("same destination picked across 300 trials")
	}
}

func TestGenerateChallengeDefaults(t *testing.T) {
	catalog := testCatalog(10)

	ch, err := GenerateChallenge(catalog, 0, 0)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(ch.Clues) != DefaultClueCount {
		t.Fatalf("expected %d clues, got %d", DefaultClueCount, len(ch.Clues))
	}
	if len(ch.Options) != DefaultOptionCount {
		t.Fatalf("expected %d options, got %d", DefaultOptionCount, len(ch.Options))
	}
}

func TestRandomFact(t *testing.T) {
	if f := randomFact(nil); f != nil {
		t.Fatalf("expected nil fact for empty list, got %+v", f)
	}

	facts := []Fact{{ID: "f1"}, {ID: "f2"}, {ID: "f3"}}
	seen := make(map[string]bool)
	for i := 0; i < 200; i++ {
		f := randomFact(facts)
		if f == nil {
			t.Fatal("expected a fact")
		}
		seen[f.ID] = true
	}
	if len(seen) < 2 {
		t.Fatalf("fact selection looks fixed: %v", seen)
	}
}
