// Package storage provides SQLite-based persistence for solved levels.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for result persistence.
type Store struct {
	db *sql.DB
}

// Result is one solved level.
type Result struct {
	ID       int64
	Pack     string
	Level    string
	Moves    int
	Par      int
	Solution string // Move notation, e.g. "0:3:0,4:5:0"
	Player   string // SSH user, empty for local play
	// CreatedAt is set by the database.
	CreatedAt time.Time
}

// Bonus reports whether the level was solved within par.
func (r Result) Bonus() bool {
	return r.Moves <= r.Par
}

// LevelProgress summarises the solves of one level in one pack.
type LevelProgress struct {
	Level  string
	Best   int
	Bonus  bool
	Solves int
}

// PackStats contains aggregated statistics for a pack.
type PackStats struct {
	Pack       string
	Solves     int
	Levels     int
	Bonuses    int
	AvgMoves   float64
	LastPlayed time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS results (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			pack TEXT NOT NULL,
			level_id TEXT NOT NULL,
			moves INTEGER NOT NULL,
			par INTEGER NOT NULL,
			solution TEXT NOT NULL DEFAULT '',
			player TEXT NOT NULL DEFAULT '',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_results_pack ON results(pack);
		CREATE INDEX IF NOT EXISTS idx_results_best ON results(pack, level_id, moves ASC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveResult records a solved level.
// Returns the ID of the inserted record.
func (s *Store) SaveResult(r Result) (int64, error) {
	if r.Pack == "" || r.Level == "" {
		return 0, errors.New("storage: result needs a pack and a level")
	}

	res, err := s.db.Exec(
		"INSERT INTO results (pack, level_id, moves, par, solution, player) VALUES (?, ?, ?, ?, ?, ?)",
		r.Pack, r.Level, r.Moves, r.Par, r.Solution, r.Player,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save result: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// BestMoves returns the fewest moves a level was solved in.
// Returns 0 if the level was never solved.
func (s *Store) BestMoves(pack, level string) (int, error) {
	var best sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MIN(moves) FROM results WHERE pack = ? AND level_id = ?",
		pack, level,
	).Scan(&best)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query best moves: %w", err)
	}

	if !best.Valid {
		return 0, nil
	}
	return int(best.Int64), nil
}

// TopResults retrieves the best N results for a level of a pack.
// Results are ordered by moves, earliest first on ties. An empty level
// lists the whole pack.
func (s *Store) TopResults(pack, level string, limit int) ([]Result, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, pack, level_id, moves, par, solution, player, created_at
		 FROM results
		 WHERE pack = ? AND (? = '' OR level_id = ?)
		 ORDER BY moves ASC, id ASC
		 LIMIT ?`,
		pack, level, level, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query results: %w", err)
	}
	defer rows.Close()

	var results []Result
	for rows.Next() {
		var r Result
		var createdAt any
		if err := rows.Scan(&r.ID, &r.Pack, &r.Level, &r.Moves, &r.Par, &r.Solution, &r.Player, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseTime(createdAt)
		results = append(results, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return results, nil
}

// Progress returns the per-level summary of a pack, keyed by level ID.
func (s *Store) Progress(pack string) (map[string]LevelProgress, error) {
	rows, err := s.db.Query(
		`SELECT level_id, MIN(moves), MAX(moves <= par), COUNT(*)
		 FROM results
		 WHERE pack = ?
		 GROUP BY level_id`,
		pack,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query progress: %w", err)
	}
	defer rows.Close()

	progress := make(map[string]LevelProgress)
	for rows.Next() {
		var p LevelProgress
		if err := rows.Scan(&p.Level, &p.Best, &p.Bonus, &p.Solves); err != nil {
			return nil, fmt.Errorf("storage: cannot scan progress row: %w", err)
		}
		progress[p.Level] = p
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return progress, nil
}

// ClearResults deletes all results for the given pack.
func (s *Store) ClearResults(pack string) error {
	_, err := s.db.Exec("DELETE FROM results WHERE pack = ?", pack)
	if err != nil {
		return fmt.Errorf("storage: cannot clear results: %w", err)
	}
	return nil
}

// Stats retrieves aggregated statistics for every pack that has been played.
func (s *Store) Stats() (map[string]*PackStats, error) {
	rows, err := s.db.Query(
		`SELECT pack, COUNT(*), COUNT(DISTINCT level_id), SUM(moves <= par), AVG(moves), MAX(created_at)
		 FROM results
		 GROUP BY pack`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get pack stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*PackStats)
	for rows.Next() {
		var ps PackStats
		var lastPlayed any
		if err := rows.Scan(&ps.Pack, &ps.Solves, &ps.Levels, &ps.Bonuses, &ps.AvgMoves, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		ps.LastPlayed = parseTime(lastPlayed)
		stats[ps.Pack] = &ps
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
