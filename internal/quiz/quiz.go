// Package quiz implements the question-generation and answer-verification
// core of the destination guessing game: picking a destination, sampling its
// clues, building the multiple-choice option set, checking submitted answers
// and keeping per-user score counters. Storage is consumed through the Store
// interface — no SQL or transport lives here.
package quiz

type Destination struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Country   string `json:"country"`
	Continent string `json:"continent"`
	Clues     []Clue `json:"clues"`
	Facts     []Fact `json:"facts"`
}

// Clue is a hint sentence about a destination. Difficulty is presentation
// metadata only; selection never weights by it.
type Clue struct {
	ID         string `json:"id"`
	Text       string `json:"text"`
	Difficulty string `json:"difficulty"`
}

// Fact is a trivia sentence disclosed after an answer is submitted.
type Fact struct {
	ID      string `json:"id"`
	Text    string `json:"text"`
	IsFunny bool   `json:"isFunny"`
}

type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Score    int    `json:"score"`
}

// GameStat holds the cumulative counters for a user. Exactly one stat row
// exists per user; it is upserted additively on every evaluated answer.
type GameStat struct {
	ID        string `json:"id"`
	UserID    string `json:"userId"`
	Score     int    `json:"score"`
	Correct   int    `json:"correct"`
	Incorrect int    `json:"incorrect"`
}

// DestinationRef is the id+name pair echoed back in a challenge. The full
// destination record is withheld until the answer is checked — only the
// sampled clues are exposed.
type DestinationRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Challenge is one generated question instance. Options always contain the
// correct destination name exactly once, at a random position.
type Challenge struct {
	Destination DestinationRef `json:"destination"`
	Clues       []Clue         `json:"clues"`
	Options     []string       `json:"options"`
}

// Verdict is the outcome of one answer submission. Fact is nil when the
// destination has no facts. User is set only when aggregation ran.
type Verdict struct {
	IsCorrect bool  `json:"isCorrect"`
	Fact      *Fact `json:"fact"`
	User      *User `json:"user,omitempty"`
}
