package delivery

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/afcrichmond/believe-api/internal/core/hooks"
	"github.com/afcrichmond/believe-api/internal/telemetry"

	_ "modernc.org/sqlite"
)

const (
	maxStoreBytes  int64   = 64 << 20 // 64 MiB
	evictPct       float64 = 0.10     // evict oldest 10% of rows
	vacuumInterval         = 10       // incremental vacuum every N evictions
)

// Store persists delivery attempts in a FIFO SQLite database capped at
// ~64 MiB. Oldest rows are evicted when the budget is exceeded.
type Store struct {
	db           *sql.DB
	mu           sync.Mutex
	cachedSize   int64
	rowCount     int64
	evictCounter int
}

func OpenStore(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create delivery store dir: %w", err)
	}

	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(wal)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	db.SetMaxOpenConns(1)

	var avMode int
	if err := db.QueryRow(`PRAGMA auto_vacuum`).Scan(&avMode); err != nil {
		db.Close()
		return nil, fmt.Errorf("read auto_vacuum: %w", err)
	}
	if avMode != 2 {
		if _, err := db.Exec(`PRAGMA auto_vacuum = INCREMENTAL`); err != nil {
			db.Close()
			return nil, fmt.Errorf("set auto_vacuum: %w", err)
		}
		if _, err := db.Exec(`VACUUM`); err != nil {
			telemetry.Warnf("delivery store: VACUUM to enable auto_vacuum failed: %v", err)
		}
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("init delivery schema: %w", err)
	}
	if _, err := db.Exec(`CREATE INDEX IF NOT EXISTS idx_deliveries_webhook ON deliveries(webhook_id, id)`); err != nil {
		db.Close()
		return nil, fmt.Errorf("init delivery index: %w", err)
	}

	var size int64
	db.QueryRow(`SELECT COALESCE(page_count * page_size, 0) FROM pragma_page_count(), pragma_page_size()`).Scan(&size)
	var rowCount int64
	db.QueryRow(`SELECT COUNT(*) FROM deliveries`).Scan(&rowCount)

	telemetry.Plainf("delivery store: opened %s  size=%d  rows=%d", path, size, rowCount)
	return &Store{db: db, cachedSize: size, rowCount: rowCount}, nil
}

const schema = `CREATE TABLE IF NOT EXISTS deliveries (
	id           INTEGER PRIMARY KEY AUTOINCREMENT,
	webhook_id   TEXT    NOT NULL,
	message_id   TEXT    NOT NULL DEFAULT '',
	event_type   TEXT    NOT NULL,
	url          TEXT    NOT NULL,
	status_code  INTEGER NOT NULL DEFAULT 0,
	success      INTEGER NOT NULL DEFAULT 0,
	error        TEXT    NOT NULL DEFAULT '',
	attempted_at TEXT    NOT NULL
)`

// Insert stores one delivery attempt.
func (s *Store) Insert(res hooks.DeliveryResult) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec(
		`INSERT INTO deliveries (webhook_id, message_id, event_type, url, status_code, success, error, attempted_at)
		 VALUES (?,?,?,?,?,?,?,?)`,
		res.WebhookID, res.MessageID, res.EventType, res.URL,
		res.StatusCode, boolToInt(res.Success), res.Error, res.AttemptedAt,
	)
	if err != nil {
		return fmt.Errorf("insert delivery: %w", err)
	}

	s.rowCount++
	s.refreshSize()
	if s.cachedSize > maxStoreBytes {
		s.evict()
	}
	return nil
}

// Recent returns up to limit attempts for a webhook, newest first.
// Safe on a nil store (delivery logging disabled).
func (s *Store) Recent(webhookID string, limit int) ([]hooks.DeliveryResult, error) {
	if s == nil || s.db == nil {
		return []hooks.DeliveryResult{}, nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.db.Query(
		`SELECT webhook_id, message_id, event_type, url, status_code, success, error, attempted_at
		 FROM deliveries WHERE webhook_id = ? ORDER BY id DESC LIMIT ?`,
		webhookID, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []hooks.DeliveryResult{}
	for rows.Next() {
		var r hooks.DeliveryResult
		var success int
		if err := rows.Scan(&r.WebhookID, &r.MessageID, &r.EventType, &r.URL,
			&r.StatusCode, &success, &r.Error, &r.AttemptedAt); err != nil {
			return nil, err
		}
		r.Success = success != 0
		out = append(out, r)
	}
	return out, rows.Err()
}

// refreshSize re-reads the database file size from SQLite pragmas.
// Must be called with s.mu held.
func (s *Store) refreshSize() {
	var size int64
	row := s.db.QueryRow(`SELECT COALESCE(page_count * page_size, 0) FROM pragma_page_count(), pragma_page_size()`)
	if err := row.Scan(&size); err == nil {
		s.cachedSize = size
	}
}

// evict deletes the oldest 10% of rows by count.
// Must be called with s.mu held.
func (s *Store) evict() {
	toDelete := int64(float64(s.rowCount) * evictPct)
	if toDelete < 1 {
		toDelete = 1
	}

	res, err := s.db.Exec(
		`DELETE FROM deliveries WHERE id IN (
			SELECT id FROM deliveries ORDER BY id ASC LIMIT ?
		)`, toDelete,
	)
	if err != nil {
		telemetry.Warnf("delivery store evict: %v", err)
		return
	}

	deleted, _ := res.RowsAffected()
	s.rowCount -= deleted
	s.evictCounter++

	telemetry.Infof("delivery store: evicted %d rows (target %d)", deleted, toDelete)

	if s.evictCounter%vacuumInterval == 0 {
		s.db.Exec(`PRAGMA incremental_vacuum`)
	}

	s.refreshSize()
}

func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
