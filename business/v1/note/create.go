package note

import (
	"context"
	"strings"

	"github.com/ribgsilva/notes-app/persistence/v1/note"
	"github.com/ribgsilva/notes-app/platform/fault"
)

// Create persists a new note owned by userID and returns it with the
// server-assigned id and creation timestamp.
func (c *Core) Create(ctx context.Context, userID string, newN NewNote) (Note, error) {
	if userID == "" {
		return Note{}, fault.New(fault.Unauthenticated, "unauthorized")
	}
	if strings.TrimSpace(newN.Title) == "" || strings.TrimSpace(newN.Content) == "" {
		return Note{}, fault.New(fault.Validation, "title and content required")
	}

	created, err := c.store.Insert(ctx, note.NewNote{
		UserId:  userID,
		Title:   newN.Title,
		Content: newN.Content,
	})
	if err != nil {
		return Note{}, err
	}

	return Note(created), nil
}
