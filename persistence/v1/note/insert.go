package note

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Insert stores a new note owned by newN.UserId and returns it with the
// server-assigned id and creation timestamp.
func (s *Store) Insert(ctx context.Context, newN NewNote) (Note, error) {
	n := Note{
		Id:        uuid.NewString(),
		UserId:    newN.UserId,
		Title:     newN.Title,
		Content:   newN.Content,
		CreatedAt: time.Now().UTC(),
	}

	dbCtx, dbCancel := context.WithTimeout(ctx, s.opTimeout)
	defer dbCancel()
	stmt, err := s.db.PrepareContext(dbCtx, "INSERT INTO notes (id, userId, title, content, createdAt) VALUES (?, ?, ?, ?, ?)")
	if err != nil {
		return Note{}, fmt.Errorf("failed to prepare insert stmt: %w", err)
	}
	if _, err := stmt.ExecContext(dbCtx, n.Id, n.UserId, n.Title, n.Content, n.CreatedAt); err != nil {
		return Note{}, fmt.Errorf("failed to exec insert stmt: %w", err)
	}

	s.invalidate(ctx, n.UserId)

	return n, nil
}
