package user

import (
	"context"
	"fmt"
	"strings"

	"github.com/ribgsilva/notes-app/persistence/v1/user"
	"github.com/ribgsilva/notes-app/platform/fault"
	"golang.org/x/crypto/bcrypt"
)

// Register creates a user from the given credentials. The email is compared
// case-insensitively, so it is lowercased here before it reaches the store.
func (c *Core) Register(ctx context.Context, newU NewUser) (User, error) {
	name := strings.TrimSpace(newU.Name)
	email := strings.ToLower(strings.TrimSpace(newU.Email))
	if name == "" || email == "" || newU.Password == "" {
		return User{}, fault.New(fault.Validation, "name, email and password required")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newU.Password), bcrypt.DefaultCost)
	if err != nil {
		return User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	created, err := c.store.Insert(ctx, user.NewUser{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
	})
	if err != nil {
		return User{}, err
	}

	return User{
		Id:        created.Id,
		Name:      created.Name,
		Email:     created.Email,
		CreatedAt: created.CreatedAt,
	}, nil
}
