package note

import (
	"context"
	"fmt"
)

// Delete removes the note only when it is both identified by noteID and owned
// by userID. Matching nothing (wrong owner or wrong id) is not an error: the
// caller gets the same success either way.
func (s *Store) Delete(ctx context.Context, userID, noteID string) error {
	dbCtx, dbCancel := context.WithTimeout(ctx, s.opTimeout)
	defer dbCancel()
	stmt, err := s.db.PrepareContext(dbCtx, "DELETE FROM notes WHERE id = ? AND userId = ?")
	if err != nil {
		return fmt.Errorf("failed to prepare delete stmt: %w", err)
	}
	if _, err := stmt.ExecContext(dbCtx, noteID, userID); err != nil {
		return fmt.Errorf("failed to exec delete stmt: %w", err)
	}

	s.invalidate(ctx, userID)

	return nil
}
