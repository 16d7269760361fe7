// Package store keeps the local campaign log: every generated email and its
// delivery status, so a campaign can be resumed without double-contacting
// anyone.
package store

import (
	"database/sql"
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	_ "modernc.org/sqlite"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Store wraps a SQLite database holding the campaign log.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) a SQLite database in dataDir and runs pending
// migrations. Pass ":memory:" as dataDir for an in-memory database (used by
// tests).
func Open(dataDir string) (*Store, error) {
	var dsn string
	if dataDir == ":memory:" {
		dsn = ":memory:"
	} else {
		if err := os.MkdirAll(dataDir, 0o755); err != nil {
			return nil, fmt.Errorf("creating data directory: %w", err)
		}
		dsn = filepath.Join(dataDir, "outreach.db")
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	// Limit to single connection to avoid "database is locked" errors.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting busy timeout: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting journal mode: %w", err)
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	if _, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS schema_version (
		version INTEGER PRIMARY KEY,
		applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
	)`); err != nil {
		return fmt.Errorf("creating schema_version table: %w", err)
	}

	entries, err := migrationsFS.ReadDir("migrations")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name() < entries[j].Name()
	})

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".sql") {
			continue
		}

		version, err := parseMigrationVersion(entry.Name())
		if err != nil {
			return err
		}

		var exists int
		if err := s.db.QueryRow("SELECT COUNT(*) FROM schema_version WHERE version = ?", version).Scan(&exists); err != nil {
			return fmt.Errorf("checking migration %d: %w", version, err)
		}
		if exists > 0 {
			continue
		}

		content, err := migrationsFS.ReadFile("migrations/" + entry.Name())
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", entry.Name(), err)
		}

		tx, err := s.db.Begin()
		if err != nil {
			return fmt.Errorf("beginning transaction for migration %d: %w", version, err)
		}

		if _, err := tx.Exec(string(content)); err != nil {
			tx.Rollback()
			return fmt.Errorf("applying migration %d: %w", version, err)
		}

		if _, err := tx.Exec("INSERT INTO schema_version (version) VALUES (?)", version); err != nil {
			tx.Rollback()
			return fmt.Errorf("recording migration %d: %w", version, err)
		}

		if err := tx.Commit(); err != nil {
			return fmt.Errorf("committing migration %d: %w", version, err)
		}
	}

	return nil
}

func parseMigrationVersion(filename string) (int, error) {
	var version int
	if _, err := fmt.Sscanf(filename, "%d_", &version); err != nil {
		return 0, fmt.Errorf("parsing migration version from %q: %w", filename, err)
	}
	return version, nil
}

// RecordOutreach inserts a new campaign log entry and returns its ID.
func (s *Store) RecordOutreach(o *Outreach) (int64, error) {
	if strings.TrimSpace(o.ProspectEmail) == "" {
		return 0, fmt.Errorf("prospect email is required")
	}

	status := o.Status
	if status == "" {
		status = StatusDraft
	}

	result, err := s.db.Exec(`
		INSERT INTO outreach (prospect_name, prospect_email, company, subject, body, model, status, error)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		o.ProspectName, o.ProspectEmail, o.Company, o.Subject, o.Body, o.Model, status, o.Error,
	)
	if err != nil {
		return 0, fmt.Errorf("inserting outreach: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading outreach id: %w", err)
	}

	return id, nil
}

// MarkStatus updates the status (and optional error) of a log entry.
func (s *Store) MarkStatus(id int64, status, errMsg string) error {
	result, err := s.db.Exec("UPDATE outreach SET status = ?, error = ? WHERE id = ?", status, errMsg, id)
	if err != nil {
		return fmt.Errorf("updating outreach status: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking outreach update: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}

	return nil
}

// HasContacted reports whether a sent email is already recorded for the
// address.
func (s *Store) HasContacted(email string) (bool, error) {
	var count int
	err := s.db.QueryRow(
		"SELECT COUNT(*) FROM outreach WHERE prospect_email = ? AND status = ?",
		email, StatusSent,
	).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("querying contacted: %w", err)
	}
	return count > 0, nil
}

// ListOutreach returns the most recent entries, newest first.
func (s *Store) ListOutreach(limit int) ([]*Outreach, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := s.db.Query(`
		SELECT id, created_at, prospect_name, prospect_email, company, subject, body, model, status, error
		FROM outreach ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("listing outreach: %w", err)
	}
	defer rows.Close()

	var entries []*Outreach
	for rows.Next() {
		var o Outreach
		if err := rows.Scan(
			&o.ID, &o.CreatedAt, &o.ProspectName, &o.ProspectEmail, &o.Company,
			&o.Subject, &o.Body, &o.Model, &o.Status, &o.Error,
		); err != nil {
			return nil, fmt.Errorf("scanning outreach row: %w", err)
		}
		entries = append(entries, &o)
	}

	return entries, rows.Err()
}

// AppliedMigrations returns the applied schema versions in ascending order.
func (s *Store) AppliedMigrations() ([]int, error) {
	rows, err := s.db.Query("SELECT version FROM schema_version ORDER BY version")
	if err != nil {
		return nil, fmt.Errorf("querying schema versions: %w", err)
	}
	defer rows.Close()

	var versions []int
	for rows.Next() {
		var v int
		if err := rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("scanning schema version: %w", err)
		}
		versions = append(versions, v)
	}

	return versions, rows.Err()
}
