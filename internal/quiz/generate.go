package quiz

import "math/rand/v2"

const (
	DefaultClueCount   = 2
	DefaultOptionCount = 4
)

// GenerateChallenge picks one destination uniformly at random from catalog,
// samples up to clueCount of its clues without replacement, and builds a
// shuffled option list holding the correct name exactly once plus up to
// optionCount-1 distractor names drawn from the rest of the catalog.
// Non-positive counts fall back to the defaults. An empty catalog returns
// ErrEmptyCatalog.
func GenerateChallenge(catalog []Destination, clueCount, optionCount int) (Challenge, error) {
	if len(catalog) == 0 {
		return Challenge{}, ErrEmptyCatalog
	}
	if clueCount <= 0 {
		clueCount = DefaultClueCount
	}
	if optionCount <= 0 {
		optionCount = DefaultOptionCount
	}

	selected := catalog[rand.IntN(len(catalog))]

	options := make([]string, 0, optionCount)
	options = append(options, selected.Name)

	distractors := make([]string, 0, len(catalog)-1)
	for _, d := range catalog {
		if d.ID == selected.ID {
			continue
		}
		distractors = append(distractors, d.Name)
	}
	rand.Shuffle(len(distractors), func(i, j int) {
		distractors[i], distractors[j] = distractors[j], distractors[i]
	})
	if n := optionCount - 1; len(distractors) > n {
		distractors = distractors[:n]
	}
	options = append(options, distractors...)

	// Shuffle so the correct answer's position is not deterministic.
	rand.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})

	return Challenge{
		Destination: DestinationRef{ID: selected.ID, Name: selected.Name},
		Clues:       sampleClues(selected.Clues, clueCount),
		Options:     options,
	}, nil
}

// sampleClues returns up to count clues without replacement. The input
// slice is left untouched.
func sampleClues(clues []Clue, count int) []Clue {
	if len(clues) == 0 {
		return []Clue{}
	}
	shuffled := make([]Clue, len(clues))
	copy(shuffled, clues)
	rand.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	if count > len(shuffled) {
		count = len(shuffled)
	}
	return shuffled[:count]
}

// randomFact picks a disclosure fact uniformly, or nil when there are none.
func randomFact(facts []Fact) *Fact {
	if len(facts) == 0 {
		return nil
	}
	f := facts[rand.IntN(len(facts))]
	return &f
}
