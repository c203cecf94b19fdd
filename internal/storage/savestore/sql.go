package savestore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	_ "github.com/lib/pq"  // PostgreSQL driver
	_ "modernc.org/sqlite" // SQLite driver
)

// dialect holds the statements that differ between SQL engines.
type dialect struct {
	driver string
	schema string
	upsert string
	get    string
	exists string
	delete string
	list   string
}

var (
	sqliteDialect = dialect{
		driver: "sqlite",
		schema: `CREATE TABLE IF NOT EXISTS saves (
			slot       TEXT PRIMARY KEY,
			data       BLOB NOT NULL,
			updated_at INTEGER NOT NULL
		)`,
		upsert: `INSERT INTO saves (slot, data, updated_at) VALUES (?, ?, ?)
			ON CONFLICT (slot) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`,
		get:    `SELECT data FROM saves WHERE slot = ?`,
		exists: `SELECT 1 FROM saves WHERE slot = ?`,
		delete: `DELETE FROM saves WHERE slot = ?`,
		list:   `SELECT slot FROM saves ORDER BY slot`,
	}

	postgresDialect = dialect{
		driver: "postgres",
		schema: `CREATE TABLE IF NOT EXISTS saves (
			slot       TEXT PRIMARY KEY,
			data       BYTEA NOT NULL,
			updated_at BIGINT NOT NULL
		)`,
		upsert: `INSERT INTO saves (slot, data, updated_at) VALUES ($1, $2, $3)
			ON CONFLICT (slot) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`,
		get:    `SELECT data FROM saves WHERE slot = $1`,
		exists: `SELECT 1 FROM saves WHERE slot = $1`,
		delete: `DELETE FROM saves WHERE slot = $1`,
		list:   `SELECT slot FROM saves ORDER BY slot`,
	}
)

// SQLStore keeps saves in a single table of an SQL database.
type SQLStore struct {
	mu      sync.RWMutex
	db      *sql.DB
	dialect dialect
	now     func() time.Time
}

// NewSQLiteStore opens or creates the SQLite database file at path.
func NewSQLiteStore(ctx context.Context, path string) (*SQLStore, error) {
	return openSQL(ctx, sqliteDialect, path, 1)
}

// NewPostgresStore connects to PostgreSQL with dsn.
func NewPostgresStore(ctx context.Context, dsn string) (*SQLStore, error) {
	return openSQL(ctx, postgresDialect, dsn, 4)
}

func openSQL(ctx context.Context, d dialect, dsn string, maxConns int) (*SQLStore, error) {
	db, err := sql.Open(d.driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s store: %w", d.driver, err)
	}
	db.SetMaxOpenConns(maxConns)

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping %s store: %w", d.driver, err)
	}
	if _, err := db.ExecContext(ctx, d.schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize %s schema: %w", d.driver, err)
	}
	return &SQLStore{db: db, dialect: d, now: time.Now}, nil
}

func (s *SQLStore) Name() string { return s.dialect.driver }

func (s *SQLStore) Put(ctx context.Context, slot string, data []byte) error {
	if err := ValidateSlot(slot); err != nil {
		return err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.db == nil {
		return ErrStoreClosed
	}
	if _, err := s.db.ExecContext(ctx, s.dialect.upsert, slot, data, s.now().UnixMilli()); err != nil {
		return fmt.Errorf("failed to write slot %s: %w", slot, err)
	}
	return nil
}

func (s *SQLStore) Get(ctx context.Context, slot string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.db == nil {
		return nil, ErrStoreClosed
	}
	var data []byte
	err := s.db.QueryRowContext(ctx, s.dialect.get, slot).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSlotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read slot %s: %w", slot, err)
	}
	return data, nil
}

func (s *SQLStore) Delete(ctx context.Context, slot string) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.db == nil {
		return ErrStoreClosed
	}
	res, err := s.db.ExecContext(ctx, s.dialect.delete, slot)
	if err != nil {
		return fmt.Errorf("failed to delete slot %s: %w", slot, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrSlotNotFound
	}
	return nil
}

// Has reports whether slot exists without reading it.
func (s *SQLStore) Has(ctx context.Context, slot string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.db == nil {
		return false, ErrStoreClosed
	}
	var one int
	err := s.db.QueryRowContext(ctx, s.dialect.exists, slot).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	return err == nil, err
}

func (s *SQLStore) List(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.db == nil {
		return nil, ErrStoreClosed
	}
	rows, err := s.db.QueryContext(ctx, s.dialect.list)
	if err != nil {
		return nil, fmt.Errorf("failed to list slots: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

func (s *SQLStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}
