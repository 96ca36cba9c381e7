package note

import (
	"context"

	"github.com/ribgsilva/notes-app/platform/fault"
)

// List returns every note owned by userID, most recent first. An empty
// collection is a valid result, never an error.
func (c *Core) List(ctx context.Context, userID string) ([]Note, error) {
	if userID == "" {
		return nil, fault.New(fault.Unauthenticated, "unauthorized")
	}

	found, err := c.store.FindByOwner(ctx, userID)
	if err != nil {
		return nil, err
	}

	notes := make([]Note, 0, len(found))
	for _, n := range found {
		notes = append(notes, Note(n))
	}

	return notes, nil
}
