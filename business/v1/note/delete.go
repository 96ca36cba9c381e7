package note

import (
	"context"

	"github.com/ribgsilva/notes-app/platform/fault"
)

// Delete removes the note when noteID exists and is owned by userID.
// When nothing matches, it still succeeds: the caller learns nothing about
// other users' note ids.
func (c *Core) Delete(ctx context.Context, userID, noteID string) error {
	if userID == "" {
		return fault.New(fault.Unauthenticated, "unauthorized")
	}

	return c.store.Delete(ctx, userID, noteID)
}
