package storage

import (
	"database/sql"
	"errors"
	"fmt"
)

// SQLKV persists keys in a single kv table. It works against both supported
// drivers; only the upsert statement differs.
type SQLKV struct {
	db     *sql.DB
	driver string
}

// NewSQLKV creates the kv table if needed and returns the store. driver is
// the database/sql driver name the connection was opened with ("sqlite" or
// "mysql").
func NewSQLKV(db *sql.DB, driver string) (*SQLKV, error) {
	schema := `CREATE TABLE IF NOT EXISTS kv (
		k VARCHAR(64) PRIMARY KEY,
		v MEDIUMTEXT NOT NULL
	)`
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("failed to create kv table: %w", err)
	}
	return &SQLKV{db: db, driver: driver}, nil
}

func (s *SQLKV) Get(key string) ([]byte, bool, error) {
	var value string
	err := s.db.QueryRow("SELECT v FROM kv WHERE k = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return []byte(value), true, nil
}

func (s *SQLKV) Put(key string, value []byte) error {
	query := "INSERT INTO kv (k, v) VALUES (?, ?) ON CONFLICT(k) DO UPDATE SET v = excluded.v"
	if s.driver == "mysql" {
		query = "INSERT INTO kv (k, v) VALUES (?, ?) ON DUPLICATE KEY UPDATE v = VALUES(v)"
	}
	_, err := s.db.Exec(query, key, string(value))
	return err
}

func (s *SQLKV) Delete(key string) error {
	_, err := s.db.Exec("DELETE FROM kv WHERE k = ?", key)
	return err
}
