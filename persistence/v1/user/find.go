package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// FindByEmail returns the stored user for an email, or a zero User when the
// email is unknown. Absence is not an error here; the business layer decides
// what an unknown email means.
func (s *Store) FindByEmail(ctx context.Context, email string) (User, error) {
	dbCtx, dbCancel := context.WithTimeout(ctx, s.opTimeout)
	defer dbCancel()

	stmt, err := s.db.PrepareContext(dbCtx, "SELECT id, name, email, passwordHash, createdAt FROM users WHERE email = ?")
	if err != nil {
		return User{}, fmt.Errorf("failed to prepare find stmt: %w", err)
	}

	var u User
	row := stmt.QueryRowContext(dbCtx, email)
	if err := row.Scan(&u.Id, &u.Name, &u.Email, &u.PasswordHash, &u.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return User{}, nil
		}
		return User{}, fmt.Errorf("error parsing db data: %w", err)
	}

	return u, nil
}
