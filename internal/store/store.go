// Package store persists user data in a local SQLite database: saved
// exercises, searched-food history, and the daily calorie ledger.
package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"
	_ "modernc.org/sqlite"

	"github.com/smokifit/smokifit/internal/session"
)

// Retention limits. History and ledger rows beyond these are pruned on
// every write so the database never grows past what the CLI displays.
const (
	historyLimit   = 10
	ledgerDaysKept = 7
)

const dateLayout = "2006-01-02"

// DayEntry is one row of the calorie ledger.
type DayEntry struct {
	Date     string
	Consumed float64
	Goal     int
}

// Store wraps the SQLite database. It satisfies session.Store.
type Store struct {
	db     *sql.DB
	logger zerolog.Logger
}

// Open opens (creating if needed) the database at path, bootstraps the
// schema, and ensures today's ledger row exists. A brand-new ledger is
// seeded with defaultGoal.
func Open(path string, defaultGoal int, logger zerolog.Logger) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	s := &Store{db: db, logger: logger}
	if err := s.initSchema(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("initialize schema: %w", err)
	}
	if err := s.ensureToday(defaultGoal); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("prepare calorie ledger: %w", err)
	}
	return s, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS saved_exercises (
		name    TEXT PRIMARY KEY,
		details TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS food_history (
		id         TEXT PRIMARY KEY,
		details    TEXT NOT NULL,
		created_at DATETIME NOT NULL
	);

	CREATE TABLE IF NOT EXISTS daily_calories (
		date     TEXT PRIMARY KEY,
		consumed REAL NOT NULL DEFAULT 0,
		goal     INTEGER NOT NULL
	);
	`
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}

// ensureToday creates today's ledger row if missing, carrying the most
// recent goal forward (or seeding defaultGoal on first run), and prunes
// rows older than the retention window.
func (s *Store) ensureToday(defaultGoal int) error {
	goal := defaultGoal
	err := s.db.QueryRow(
		`SELECT goal FROM daily_calories ORDER BY date DESC LIMIT 1`,
	).Scan(&goal)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("read latest goal: %w", err)
	}

	if _, err := s.db.Exec(
		`INSERT OR IGNORE INTO daily_calories (date, consumed, goal) VALUES (?, 0, ?)`,
		today(), goal,
	); err != nil {
		return fmt.Errorf("insert today's ledger row: %w", err)
	}

	if _, err := s.db.Exec(
		`DELETE FROM daily_calories WHERE date NOT IN (
			SELECT date FROM daily_calories ORDER BY date DESC LIMIT ?
		)`, ledgerDaysKept,
	); err != nil {
		return fmt.Errorf("prune ledger: %w", err)
	}
	return nil
}

// IsSaved reports whether an exercise with the given name is persisted.
func (s *Store) IsSaved(name string) (bool, error) {
	var count int
	err := s.db.QueryRow(
		`SELECT COUNT(*) FROM saved_exercises WHERE name = ?`, name,
	).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("query saved exercise: %w", err)
	}
	return count > 0, nil
}

// SaveExercise persists (or replaces) an exercise record under its name.
func (s *Store) SaveExercise(name string, record session.ExerciseRecord) error {
	details, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("encode exercise: %w", err)
	}
	if _, err := s.db.Exec(
		`INSERT OR REPLACE INTO saved_exercises (name, details) VALUES (?, ?)`,
		name, string(details),
	); err != nil {
		return fmt.Errorf("insert saved exercise: %w", err)
	}
	return nil
}

// DeleteExercise removes a saved exercise. Deleting an absent name is
// not an error.
func (s *Store) DeleteExercise(name string) error {
	if _, err := s.db.Exec(
		`DELETE FROM saved_exercises WHERE name = ?`, name,
	); err != nil {
		return fmt.Errorf("delete saved exercise: %w", err)
	}
	return nil
}

// ListSaved returns all saved exercises ordered by name.
func (s *Store) ListSaved() ([]session.ExerciseRecord, error) {
	rows, err := s.db.Query(`SELECT details FROM saved_exercises ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("query saved exercises: %w", err)
	}
	defer rows.Close()

	var records []session.ExerciseRecord
	for rows.Next() {
		var details string
		if err := rows.Scan(&details); err != nil {
			return nil, fmt.Errorf("scan saved exercise: %w", err)
		}
		var record session.ExerciseRecord
		if err := json.Unmarshal([]byte(details), &record); err != nil {
			return nil, fmt.Errorf("decode saved exercise: %w", err)
		}
		records = append(records, record)
	}
	return records, rows.Err()
}

// RemoveAllSaved deletes every saved exercise.
func (s *Store) RemoveAllSaved() error {
	if _, err := s.db.Exec(`DELETE FROM saved_exercises`); err != nil {
		return fmt.Errorf("clear saved exercises: %w", err)
	}
	return nil
}

// AddHistory appends searched foods to the history and trims it to the
// newest entries. ULID keys give the rows a stable time order.
func (s *Store) AddHistory(foods []session.NutritionRecord) error {
	if len(foods) == 0 {
		return nil
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin history transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	now := time.Now().UTC()
	for _, food := range foods {
		details, err := json.Marshal(food)
		if err != nil {
			return fmt.Errorf("encode food: %w", err)
		}
		if _, err := tx.Exec(
			`INSERT INTO food_history (id, details, created_at) VALUES (?, ?, ?)`,
			ulid.Make().String(), string(details), now.Format(time.RFC3339),
		); err != nil {
			return fmt.Errorf("insert history entry: %w", err)
		}
	}

	if _, err := tx.Exec(
		`DELETE FROM food_history WHERE id NOT IN (
			SELECT id FROM food_history ORDER BY id DESC LIMIT ?
		)`, historyLimit,
	); err != nil {
		return fmt.Errorf("prune history: %w", err)
	}

	return tx.Commit()
}

// History returns the searched-food history, newest first.
func (s *Store) History() ([]session.NutritionRecord, error) {
	rows, err := s.db.Query(`SELECT details FROM food_history ORDER BY id DESC`)
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}
	defer rows.Close()

	var records []session.NutritionRecord
	for rows.Next() {
		var details string
		if err := rows.Scan(&details); err != nil {
			return nil, fmt.Errorf("scan history entry: %w", err)
		}
		var record session.NutritionRecord
		if err := json.Unmarshal([]byte(details), &record); err != nil {
			return nil, fmt.Errorf("decode history entry: %w", err)
		}
		records = append(records, record)
	}
	return records, rows.Err()
}

// ClearHistory deletes the searched-food history.
func (s *Store) ClearHistory() error {
	if _, err := s.db.Exec(`DELETE FROM food_history`); err != nil {
		return fmt.Errorf("clear history: %w", err)
	}
	return nil
}

// ApplyCalories adds delta (rounded to one decimal, may be negative) to
// today's consumed total and reports whether the new total is still
// strictly under the goal, along with the total.
func (s *Store) ApplyCalories(delta float64) (bool, float64, error) {
	delta = math.Round(delta*10) / 10

	res, err := s.db.Exec(
		`UPDATE daily_calories SET consumed = ROUND(consumed + ?, 1) WHERE date = ?`,
		delta, today(),
	)
	if err != nil {
		return false, 0, fmt.Errorf("update consumed calories: %w", err)
	}

	// The process may outlive the day it was started on; roll the
	// ledger forward and retry once.
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		goal, goalErr := s.latestGoal()
		if goalErr != nil {
			return false, 0, goalErr
		}
		if err := s.ensureToday(goal); err != nil {
			return false, 0, err
		}
		if _, err := s.db.Exec(
			`UPDATE daily_calories SET consumed = ROUND(consumed + ?, 1) WHERE date = ?`,
			delta, today(),
		); err != nil {
			return false, 0, fmt.Errorf("update consumed calories: %w", err)
		}
	}

	var consumed float64
	var goal int
	if err := s.db.QueryRow(
		`SELECT consumed, goal FROM daily_calories WHERE date = ?`, today(),
	).Scan(&consumed, &goal); err != nil {
		return false, 0, fmt.Errorf("read today's ledger row: %w", err)
	}
	return consumed < float64(goal), consumed, nil
}

// Consumed returns today's consumed calories.
func (s *Store) Consumed() (float64, error) {
	var consumed float64
	err := s.db.QueryRow(
		`SELECT consumed FROM daily_calories WHERE date = ?`, today(),
	).Scan(&consumed)
	if err != nil {
		return 0, fmt.Errorf("read consumed calories: %w", err)
	}
	return math.Round(consumed*10) / 10, nil
}

// Goal returns today's calorie goal.
func (s *Store) Goal() (int, error) {
	var goal int
	err := s.db.QueryRow(
		`SELECT goal FROM daily_calories WHERE date = ?`, today(),
	).Scan(&goal)
	if err != nil {
		return 0, fmt.Errorf("read goal: %w", err)
	}
	return goal, nil
}

// SetGoal changes today's calorie goal. Future days inherit it via
// ensureToday's carry-forward.
func (s *Store) SetGoal(goal int) error {
	if _, err := s.db.Exec(
		`UPDATE daily_calories SET goal = ? WHERE date = ?`, goal, today(),
	); err != nil {
		return fmt.Errorf("update goal: %w", err)
	}
	return nil
}

// TrackerHistory returns the retained ledger rows, newest first.
func (s *Store) TrackerHistory() ([]DayEntry, error) {
	rows, err := s.db.Query(
		`SELECT date, consumed, goal FROM daily_calories ORDER BY date DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("query ledger: %w", err)
	}
	defer rows.Close()

	var entries []DayEntry
	for rows.Next() {
		var entry DayEntry
		if err := rows.Scan(&entry.Date, &entry.Consumed, &entry.Goal); err != nil {
			return nil, fmt.Errorf("scan ledger row: %w", err)
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

func (s *Store) latestGoal() (int, error) {
	var goal int
	err := s.db.QueryRow(
		`SELECT goal FROM daily_calories ORDER BY date DESC LIMIT 1`,
	).Scan(&goal)
	if err != nil {
		return 0, fmt.Errorf("read latest goal: %w", err)
	}
	return goal, nil
}

func today() string {
	return time.Now().Format(dateLayout)
}
