// Package note implements note operations. Every operation takes the
// authenticated user id and only ever touches that user's notes; ownership is
// the sole authorization check.
package note

import (
	"context"

	"github.com/ribgsilva/notes-app/persistence/v1/note"
	"go.uber.org/zap"
)

// Storer is what the core needs from the note store.
type Storer interface {
	Insert(ctx context.Context, newN note.NewNote) (note.Note, error)
	FindByOwner(ctx context.Context, userID string) ([]note.Note, error)
	Delete(ctx context.Context, userID, noteID string) error
}

type Core struct {
	log   *zap.SugaredLogger
	store Storer
}

func NewCore(log *zap.SugaredLogger, store Storer) *Core {
	return &Core{
		log:   log,
		store: store,
	}
}
