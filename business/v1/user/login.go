package user

import (
	"context"
	"fmt"
	"strings"

	"github.com/ribgsilva/notes-app/platform/fault"
	"golang.org/x/crypto/bcrypt"
)

// Login verifies the credentials and returns a freshly issued token. Unknown
// email and wrong password surface as the same unauthenticated fault, so the
// caller cannot tell which one failed.
func (c *Core) Login(ctx context.Context, creds Credentials) (string, error) {
	email := strings.ToLower(strings.TrimSpace(creds.Email))
	if email == "" || creds.Password == "" {
		return "", fault.New(fault.Unauthenticated, "unauthorized")
	}

	u, err := c.store.FindByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if u.Id == "" {
		return "", fault.New(fault.Unauthenticated, "unauthorized")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(creds.Password)); err != nil {
		return "", fault.New(fault.Unauthenticated, "unauthorized")
	}

	tok, err := c.tokens.Issue(u.Id)
	if err != nil {
		return "", fmt.Errorf("failed to issue token: %w", err)
	}

	return tok, nil
}
