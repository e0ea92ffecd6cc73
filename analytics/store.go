package analytics

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// Store provides database operations for analytics.
type Store struct {
	db *sql.DB
}

// Timestamps are stored as ISO text so SQLite's date() and lexicographic
// comparisons both work on the column.
const sqliteTimeLayout = "2006-01-02 15:04:05"

func sqliteTime(t time.Time) string {
	return t.UTC().Format(sqliteTimeLayout)
}

// NewStore opens the analytics database, enabling WAL and creating the
// schema on first run.
func NewStore(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open analytics db: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(time.Hour)

	if _, err := db.Exec("PRAGMA journal_mode=WAL;"); err != nil {
		return nil, fmt.Errorf("enable WAL: %w", err)
	}

	s := &Store{db: db}
	if err := s.ensureSchema(); err != nil {
		return nil, fmt.Errorf("ensure schema: %w", err)
	}
	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) ensureSchema() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS visits (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			visitor_id TEXT NOT NULL,
			ip_hash TEXT NOT NULL,
			browser TEXT NOT NULL,
			os TEXT NOT NULL,
			device TEXT NOT NULL,
			path TEXT NOT NULL,
			review_id INTEGER NOT NULL DEFAULT 0,
			referrer TEXT,
			timestamp DATETIME NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_visits_timestamp ON visits(timestamp);
		CREATE INDEX IF NOT EXISTS idx_visits_review ON visits(review_id);

		CREATE TABLE IF NOT EXISTS settings (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
	`)
	return err
}

// GetSetting returns the value for key, or "" when unset.
func (s *Store) GetSetting(key string) (string, error) {
	var value string
	err := s.db.QueryRow("SELECT value FROM settings WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return value, nil
}

// SetSetting stores or replaces a setting.
func (s *Store) SetSetting(key, value string) error {
	_, err := s.db.Exec(
		"INSERT INTO settings (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value",
		key, value,
	)
	return err
}

// SaveVisit records one page view.
func (s *Store) SaveVisit(v *Visit) error {
	_, err := s.db.Exec(`
		INSERT INTO visits (visitor_id, ip_hash, browser, os, device, path, review_id, referrer, timestamp)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		v.VisitorID, v.IPHash, v.Browser, v.OS, v.Device, v.Path, v.ReviewID, v.Referrer, sqliteTime(v.Timestamp),
	)
	if err != nil {
		return fmt.Errorf("save visit: %w", err)
	}
	return nil
}

// Stats aggregates visits over the trailing number of days.
func (s *Store) Stats(days int) (*Stats, error) {
	since := sqliteTime(time.Now().UTC().AddDate(0, 0, -days))
	stats := &Stats{Days: days}

	err := s.db.QueryRow(
		"SELECT COUNT(*), COUNT(DISTINCT visitor_id) FROM visits WHERE timestamp >= ?", since,
	).Scan(&stats.TotalViews, &stats.UniqueVisitors)
	if err != nil {
		return nil, fmt.Errorf("count visits: %w", err)
	}

	rows, err := s.db.Query(`
		SELECT review_id, COUNT(*) AS views FROM visits
		WHERE timestamp >= ? AND review_id > 0
		GROUP BY review_id ORDER BY views DESC LIMIT 10`, since)
	if err != nil {
		return nil, fmt.Errorf("top reviews: %w", err)
	}
	for rows.Next() {
		var rs ReviewStat
		if err := rows.Scan(&rs.ReviewID, &rs.Views); err != nil {
			rows.Close()
			return nil, err
		}
		stats.TopReviews = append(stats.TopReviews, rs)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}

	rows, err = s.db.Query(`
		SELECT path, COUNT(*) AS views FROM visits
		WHERE timestamp >= ?
		GROUP BY path ORDER BY views DESC LIMIT 10`, since)
	if err != nil {
		return nil, fmt.Errorf("top pages: %w", err)
	}
	for rows.Next() {
		var ps PageStat
		if err := rows.Scan(&ps.Path, &ps.Views); err != nil {
			rows.Close()
			return nil, err
		}
		stats.TopPages = append(stats.TopPages, ps)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}

	stats.ReferrerStats, err = s.dimension("referrer", since)
	if err != nil {
		return nil, err
	}
	stats.DeviceStats, err = s.dimension("device", since)
	if err != nil {
		return nil, err
	}

	rows, err = s.db.Query(`
		SELECT date(timestamp) AS day, COUNT(*) FROM visits
		WHERE timestamp >= ?
		GROUP BY day ORDER BY day`, since)
	if err != nil {
		return nil, fmt.Errorf("daily views: %w", err)
	}
	for rows.Next() {
		var dv DailyView
		if err := rows.Scan(&dv.Date, &dv.Views); err != nil {
			rows.Close()
			return nil, err
		}
		stats.DailyViews = append(stats.DailyViews, dv)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return stats, nil
}

func (s *Store) dimension(column string, since string) ([]DimensionStat, error) {
	// column comes from a fixed internal caller set, never user input.
	rows, err := s.db.Query(
		"SELECT "+column+", COUNT(*) AS n FROM visits WHERE timestamp >= ? GROUP BY "+column+" ORDER BY n DESC LIMIT 10",
		since,
	)
	if err != nil {
		return nil, fmt.Errorf("%s breakdown: %w", column, err)
	}
	defer rows.Close()

	var out []DimensionStat
	for rows.Next() {
		var d DimensionStat
		if err := rows.Scan(&d.Name, &d.Count); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

// DeleteOlderThan removes visits past the retention window.
func (s *Store) DeleteOlderThan(days int) (int64, error) {
	cutoff := sqliteTime(time.Now().UTC().AddDate(0, 0, -days))
	res, err := s.db.Exec("DELETE FROM visits WHERE timestamp < ?", cutoff)
	if err != nil {
		return 0, fmt.Errorf("delete old visits: %w", err)
	}
	return res.RowsAffected()
}

// StartCleanupScheduler deletes visits older than retainDays every interval.
// The returned function stops the scheduler.
func (s *Store) StartCleanupScheduler(retainDays int, interval time.Duration) func() {
	ticker := time.NewTicker(interval)
	done := make(chan struct{})
	go func() {
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				s.DeleteOlderThan(retainDays)
			}
		}
	}()
	return func() {
		ticker.Stop()
		close(done)
	}
}
