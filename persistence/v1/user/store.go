// Package user persists user records. Emails are stored lowercased and are
// unique; lookups never return the password hash to the wire, that filtering
// happens in the business layer.
package user

import (
	"database/sql"
	"time"

	"go.uber.org/zap"
)

// Store holds the database handle for user records.
type Store struct {
	log       *zap.SugaredLogger
	db        *sql.DB
	opTimeout time.Duration
}

func NewStore(log *zap.SugaredLogger, db *sql.DB, opTimeout time.Duration) *Store {
	return &Store{
		log:       log,
		db:        db,
		opTimeout: opTimeout,
	}
}
