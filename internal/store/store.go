package store

import (
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

type Store struct {
	db *sqlx.DB
}

// NewStore creates a new database store
func NewStore(databaseURL string) (*Store, error) {
	db, err := sqlx.Connect("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database connection
func (s *Store) Close() error {
	return s.db.Close()
}

// GetDB returns the underlying database connection
func (s *Store) GetDB() *sqlx.DB {
	return s.db
}

// IsConstraintViolation reports whether err is a storage-level integrity
// rejection (class 23: not-null, foreign key, unique, check).
func IsConstraintViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code.Class() == "23"
	}
	return false
}

// Filter narrows inventory, sales and orders listings. A non-zero
// LocationID filters by location and takes precedence over RegionID; a
// non-zero RegionID alone filters by the location's region; zero means
// unfiltered. A supplied id that matches no row narrows the listing to
// empty, it never widens it.
type Filter struct {
	LocationID int64
	RegionID   int64
}

// clause renders the filter as a WHERE fragment against the given table
// alias. All callers join locations under the alias "l".
func (f Filter) clause(alias string) (string, []interface{}) {
	switch {
	case f.LocationID != 0:
		return fmt.Sprintf(" WHERE %s.location_id = $1", alias), []interface{}{f.LocationID}
	case f.RegionID != 0:
		return " WHERE l.region_id = $1", []interface{}{f.RegionID}
	}
	return "", nil
}
