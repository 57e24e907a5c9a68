package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib" // driver: pgx
	_ "modernc.org/sqlite"             // driver: sqlite
)

type Driver string

const (
	DriverFS       Driver = "fs"
	DriverSQLite   Driver = "sqlite"
	DriverPostgres Driver = "postgres"
)

// SQLStore backs the KV with a single kv table. SQLite suits the usual
// single-machine install; Postgres is for shared deployments where
// several gateway instances serve the same install.
type SQLStore struct {
	db *sql.DB
}

// OpenSQL opens the DB and ensures the kv schema exists.
func OpenSQL(ctx context.Context, driver Driver, dsn string) (*SQLStore, error) {
	var drvName string
	switch driver {
	case DriverSQLite:
		drvName = "sqlite" // modernc driver
		if dsn == "" {
			dsn = "file:lexcard.db?cache=shared&mode=rwc&_pragma=busy_timeout(5000)"
		}
	case DriverPostgres:
		drvName = "pgx" // pgx stdlib driver
		if dsn == "" {
			dsn = "postgres://localhost:5432/lexcard?sslmode=disable"
		}
	default:
		return nil, fmt.Errorf("unsupported driver: %s", driver)
	}

	db, err := sql.Open(drvName, dsn)
	if err != nil {
		return nil, err
	}
	if err := db.PingContext(ctx); err != nil {
		return nil, err
	}
	if _, err := db.ExecContext(ctx, schemaKV); err != nil {
		return nil, err
	}
	return &SQLStore{db: db}, nil
}

const schemaKV = `
CREATE TABLE IF NOT EXISTS kv (
  key TEXT PRIMARY KEY,
  value TEXT NOT NULL
);
`

func (s *SQLStore) Get(key string) (string, bool, error) {
	var v string
	err := s.db.QueryRow(`SELECT value FROM kv WHERE key = $1`, key).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return v, true, nil
}

func (s *SQLStore) Set(key, value string) error {
	_, err := s.db.Exec(
		`INSERT INTO kv (key, value) VALUES ($1, $2)
		 ON CONFLICT (key) DO UPDATE SET value = excluded.value`, key, value)
	return err
}

func (s *SQLStore) Delete(key string) error {
	_, err := s.db.Exec(`DELETE FROM kv WHERE key = $1`, key)
	return err
}

func (s *SQLStore) Clear() error {
	_, err := s.db.Exec(`DELETE FROM kv`)
	return err
}

func (s *SQLStore) Close() error { return s.db.Close() }
