package repository

import (
	"database/sql"
	"errors"
	"log"

	"brandsgate/models"
)

type SQLiteRepo struct {
	db *sql.DB
}

// NewSQLiteRepository stores each namespace record as a row in a single
// key/value table. This is the default backend: a local file, one process,
// no server.
func NewSQLiteRepository(conn *sql.DB) (StateRepository, error) {
	if conn == nil {
		return nil, errors.New("conn must be non-nil")
	}
	if err := conn.Ping(); err != nil {
		return nil, err
	}
	_, err := conn.Exec(`CREATE TABLE IF NOT EXISTS state (
		Namespace TEXT PRIMARY KEY,
		Payload TEXT NOT NULL
	)`)
	if err != nil {
		return nil, err
	}
	return &SQLiteRepo{db: conn}, nil
}

func (s *SQLiteRepo) Read(namespace string) (payload []byte, found bool, err error) {
	var value string
	e := s.db.QueryRow("SELECT Payload FROM state WHERE Namespace = ?", namespace).Scan(&value)
	if e != nil {
		if e == sql.ErrNoRows {
			return
		}
		log.Printf("Read: %v", e)
		err = models.ErrStorageError
		return
	}
	payload = []byte(value)
	found = true
	return
}

func (s *SQLiteRepo) Write(namespace string, payload []byte) (err error) {
	_, e := s.db.Exec(
		"INSERT INTO state (Namespace, Payload) VALUES (?, ?) ON CONFLICT(Namespace) DO UPDATE SET Payload = excluded.Payload",
		namespace, string(payload))
	if e != nil {
		log.Printf("Write: %v", e)
		err = models.ErrStorageError
	}
	return
}
