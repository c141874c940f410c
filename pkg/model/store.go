package model

import (
	"database/sql"
	"errors"

	"xidach-server/pkg/db"
)

// ErrDuplicateKey happens if a record with the same key already exists
var ErrDuplicateKey = errors.New("duplicate key constraint violation")

// UserError is an error that is safe to return in a response
type UserError string

func (u UserError) Error() string {
	return string(u)
}

// Store reads and writes accounts and archived rounds
type Store struct {
	db *sql.DB
}

// NewStore returns a store over the database handle
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// DefaultStore returns a store over the configured database instance
func DefaultStore() *Store {
	return NewStore(db.Instance())
}
