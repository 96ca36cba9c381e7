package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
	"github.com/ribgsilva/notes-app/platform/fault"
)

// Insert stores a new user. Registering an email that already exists fails
// with a conflict fault and leaves the store untouched. The pre-check is a
// fast path only; the unique key on users.email settles concurrent
// registrations of the same email.
func (s *Store) Insert(ctx context.Context, newU NewUser) (User, error) {
	dbCtx, dbCancel := context.WithTimeout(ctx, s.opTimeout)
	defer dbCancel()

	row := s.db.QueryRowContext(dbCtx, "SELECT id FROM users WHERE email = ?", newU.Email)
	var existing string
	err := row.Scan(&existing)
	switch {
	case err == nil:
		return User{}, fault.New(fault.Conflict, "email already registered")
	case !errors.Is(err, sql.ErrNoRows):
		return User{}, fmt.Errorf("failed to check existing email: %w", err)
	}

	u := User{
		Id:           uuid.NewString(),
		Name:         newU.Name,
		Email:        newU.Email,
		PasswordHash: newU.PasswordHash,
		CreatedAt:    time.Now().UTC(),
	}

	stmt, err := s.db.PrepareContext(dbCtx, "INSERT INTO users (id, name, email, passwordHash, createdAt) VALUES (?, ?, ?, ?, ?)")
	if err != nil {
		return User{}, fmt.Errorf("failed to prepare insert stmt: %w", err)
	}
	if _, err := stmt.ExecContext(dbCtx, u.Id, u.Name, u.Email, u.PasswordHash, u.CreatedAt); err != nil {
		if duplicateKey(err) {
			return User{}, fault.New(fault.Conflict, "email already registered")
		}
		return User{}, fmt.Errorf("failed to exec insert stmt: %w", err)
	}

	return u, nil
}

// duplicateKey reports whether err is the mysql duplicate-entry error
// raised by the unique key on users.email.
func duplicateKey(err error) bool {
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == 1062
}
