package server

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/roamgames/globetrotter/internal/quiz"
)

// SQLiteStore implements quiz.Store on top of database/sql.
type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

func (s *SQLiteStore) ListDestinations(ctx context.Context) ([]quiz.Destination, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, country, continent
		FROM destinations
		ORDER BY name
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	destinations := []quiz.Destination{}
	index := make(map[string]int)
	for rows.Next() {
		var d quiz.Destination
		if err := rows.Scan(&d.ID, &d.Name, &d.Country, &d.Continent); err != nil {
			return nil, err
		}
		d.Clues = []quiz.Clue{}
		d.Facts = []quiz.Fact{}
		index[d.ID] = len(destinations)
		destinations = append(destinations, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	clueRows, err := s.db.QueryContext(ctx, `
		SELECT id, destination_id, text, difficulty FROM clues
	`)
	if err != nil {
		return nil, err
	}
	defer clueRows.Close()
	for clueRows.Next() {
		var c quiz.Clue
		var destID string
		if err := clueRows.Scan(&c.ID, &destID, &c.Text, &c.Difficulty); err != nil {
			return nil, err
		}
		if i, ok := index[destID]; ok {
			destinations[i].Clues = append(destinations[i].Clues, c)
		}
	}
	if err := clueRows.Err(); err != nil {
		return nil, err
	}

	factRows, err := s.db.QueryContext(ctx, `
		SELECT id, destination_id, text, is_funny FROM facts
	`)
	if err != nil {
		return nil, err
	}
	defer factRows.Close()
	for factRows.Next() {
		var f quiz.Fact
		var destID string
		if err := factRows.Scan(&f.ID, &destID, &f.Text, &f.IsFunny); err != nil {
			return nil, err
		}
		if i, ok := index[destID]; ok {
			destinations[i].Facts = append(destinations[i].Facts, f)
		}
	}
	return destinations, factRows.Err()
}

func (s *SQLiteStore) GetDestination(ctx context.Context, id string) (quiz.Destination, error) {
	var d quiz.Destination
	err := s.db.QueryRowContext(ctx, `
		SELECT id, name, country, continent
		FROM destinations
		WHERE id = ?
	`, id).Scan(&d.ID, &d.Name, &d.Country, &d.Continent)
	if errors.Is(err, sql.ErrNoRows) {
		return d, quiz.ErrDestinationNotFound
	}
	if err != nil {
		return d, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, text, is_funny FROM facts WHERE destination_id = ?
	`, id)
	if err != nil {
		return d, err
	}
	defer rows.Close()
	d.Facts = []quiz.Fact{}
	for rows.Next() {
		var f quiz.Fact
		if err := rows.Scan(&f.ID, &f.Text, &f.IsFunny); err != nil {
			return d, err
		}
		d.Facts = append(d.Facts, f)
	}
	return d, rows.Err()
}

func (s *SQLiteStore) FindUserByUsername(ctx context.Context, username string) (quiz.User, error) {
	var u quiz.User
	err := s.db.QueryRowContext(ctx, `
		SELECT id, username, score FROM users WHERE username = ?
	`, username).Scan(&u.ID, &u.Username, &u.Score)
	if errors.Is(err, sql.ErrNoRows) {
		return u, quiz.ErrUserNotFound
	}
	return u, err
}

// CreateUser inserts the user and its zeroed stat row in one transaction.
// A concurrent or earlier insert of the same username wins: the existing
// record is returned, never a duplicate.
func (s *SQLiteStore) CreateUser(ctx context.Context, username string) (quiz.User, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return quiz.User{}, err
	}
	defer tx.Rollback()

	var u quiz.User
	err = tx.QueryRowContext(ctx, `
		INSERT INTO users (username) VALUES (?)
		ON CONFLICT(username) DO NOTHING
		RETURNING id, username, score
	`, username).Scan(&u.ID, &u.Username, &u.Score)
	if errors.Is(err, sql.ErrNoRows) {
		err = tx.QueryRowContext(ctx, `
			SELECT id, username, score FROM users WHERE username = ?
		`, username).Scan(&u.ID, &u.Username, &u.Score)
		if err != nil {
			return quiz.User{}, err
		}
		return u, tx.Commit()
	}
	if err != nil {
		return quiz.User{}, err
	}

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO game_stats (user_id) VALUES (?)
	`, u.ID); err != nil {
		return quiz.User{}, err
	}
	return u, tx.Commit()
}

// ApplyAnswer runs the user-score update and the stat upsert in one
// transaction so concurrent submissions never leave a partial update. The
// increments are relative (score = score + ?), so interleaved writers
// cannot lose each other's updates either.
func (s *SQLiteStore) ApplyAnswer(ctx context.Context, userID string, delta quiz.AnswerDelta) (quiz.User, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return quiz.User{}, err
	}
	defer tx.Rollback()

	var u quiz.User
	err = tx.QueryRowContext(ctx, `
		UPDATE users SET score = score + ?
		WHERE id = ?
		RETURNING id, username, score
	`, delta.Score, userID).Scan(&u.ID, &u.Username, &u.Score)
	if errors.Is(err, sql.ErrNoRows) {
		return quiz.User{}, quiz.ErrUserNotFound
	}
	if err != nil {
		return quiz.User{}, err
	}

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO game_stats (user_id, score, correct, incorrect)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(user_id) DO UPDATE SET
			score = game_stats.score + excluded.score,
			correct = game_stats.correct + excluded.correct,
			incorrect = game_stats.incorrect + excluded.incorrect
	`, userID, delta.Score, delta.Correct, delta.Incorrect); err != nil {
		return quiz.User{}, fmt.Errorf("upserting game stat: %w", err)
	}
	return u, tx.Commit()
}

func (s *SQLiteStore) GameStatByUser(ctx context.Context, userID string) (quiz.GameStat, error) {
	var stat quiz.GameStat
	err := s.db.QueryRowContext(ctx, `
		SELECT id, user_id, score, correct, incorrect
		FROM game_stats
		WHERE user_id = ?
	`, userID).Scan(&stat.ID, &stat.UserID, &stat.Score, &stat.Correct, &stat.Incorrect)
	if errors.Is(err, sql.ErrNoRows) {
		return quiz.GameStat{UserID: userID}, nil
	}
	return stat, err
}

func (s *SQLiteStore) TopUsers(ctx context.Context, limit int) ([]quiz.User, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, username, score
		FROM users
		ORDER BY score DESC, username ASC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := []quiz.User{}
	for rows.Next() {
		var u quiz.User
		if err := rows.Scan(&u.ID, &u.Username, &u.Score); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

// CountDestinations reports the catalog size; used by the seeder.
func (s *SQLiteStore) CountDestinations(ctx context.Context) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM destinations`).Scan(&count)
	return count, err
}

// InsertDestination writes a destination with its clues and facts in one
// transaction and returns the generated ID.
func (s *SQLiteStore) InsertDestination(ctx context.Context, d quiz.Destination) (string, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", err
	}
	defer tx.Rollback()

	var id string
	err = tx.QueryRowContext(ctx, `
		INSERT INTO destinations (name, country, continent)
		VALUES (?, ?, ?)
		RETURNING id
	`, d.Name, d.Country, d.Continent).Scan(&id)
	if err != nil {
		return "", fmt.Errorf("inserting destination %q: %w", d.Name, err)
	}

	for _, c := range d.Clues {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO clues (destination_id, text, difficulty)
			VALUES (?, ?, ?)
		`, id, c.Text, c.Difficulty); err != nil {
			return "", fmt.Errorf("inserting clue for %q: %w", d.Name, err)
		}
	}
	for _, f := range d.Facts {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO facts (destination_id, text, is_funny)
			VALUES (?, ?, ?)
		`, id, f.Text, f.IsFunny); err != nil {
			return "", fmt.Errorf("inserting fact for %q: %w", d.Name, err)
		}
	}
	return id, tx.Commit()
}
