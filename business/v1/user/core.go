// Package user implements registration and login. Passwords are stored only
// as one-way salted hashes; a successful login mints a signed token carrying
// the user id.
package user

import (
	"context"

	"github.com/ribgsilva/notes-app/persistence/v1/user"
	"go.uber.org/zap"
)

// Storer is what the core needs from the credential store.
type Storer interface {
	Insert(ctx context.Context, newU user.NewUser) (user.User, error)
	FindByEmail(ctx context.Context, email string) (user.User, error)
}

// Issuer mints a signed token for a user id.
type Issuer interface {
	Issue(userID string) (string, error)
}

type Core struct {
	log    *zap.SugaredLogger
	store  Storer
	tokens Issuer
}

func NewCore(log *zap.SugaredLogger, store Storer, tokens Issuer) *Core {
	return &Core{
		log:    log,
		store:  store,
		tokens: tokens,
	}
}
