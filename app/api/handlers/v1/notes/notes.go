package notes

import (
	"github.com/ribgsilva/notes-app/business/v1/note"
)

// Handlers serves the protected note routes. Every operation reads the
// authenticated identity that the auth middleware attached to the request.
type Handlers struct {
	notes *note.Core
}

func New(notes *note.Core) *Handlers {
	return &Handlers{notes: notes}
}
