package auth

import (
	"github.com/ribgsilva/notes-app/business/v1/user"
)

// Handlers serves the unauthenticated credential routes.
type Handlers struct {
	users *user.Core
}

func New(users *user.Core) *Handlers {
	return &Handlers{users: users}
}
