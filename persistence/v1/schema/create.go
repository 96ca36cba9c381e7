package schema

import (
	"context"
	"database/sql"
	"errors"
)

func Create(ctx context.Context, db *sql.DB) error {
	for _, stmt := range createStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return errors.New("create schema: " + err.Error())
		}
	}

	return nil
}

// Constraints applies the mysql-only constraints on top of Create.
func Constraints(ctx context.Context, db *sql.DB) error {
	for _, stmt := range constraintStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return errors.New("create constraints: " + err.Error())
		}
	}

	return nil
}
