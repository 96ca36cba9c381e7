package user

import (
	"context"
	"testing"
	"time"

	persistence "github.com/ribgsilva/notes-app/persistence/v1/user"
	"github.com/ribgsilva/notes-app/platform/fault"
	"github.com/ribgsilva/notes-app/platform/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type stubStore struct {
	byEmail map[string]persistence.User
}

func newStubStore() *stubStore {
	return &stubStore{byEmail: make(map[string]persistence.User)}
}

func (s *stubStore) Insert(_ context.Context, newU persistence.NewUser) (persistence.User, error) {
	if _, ok := s.byEmail[newU.Email]; ok {
		return persistence.User{}, fault.New(fault.Conflict, "email already registered")
	}
	u := persistence.User{
		Id:           "user-" + newU.Email,
		Name:         newU.Name,
		Email:        newU.Email,
		PasswordHash: newU.PasswordHash,
		CreatedAt:    time.Now().UTC(),
	}
	s.byEmail[newU.Email] = u
	return u, nil
}

func (s *stubStore) FindByEmail(_ context.Context, email string) (persistence.User, error) {
	return s.byEmail[email], nil
}

func newTestCore(store Storer) *Core {
	return NewCore(zap.NewNop().Sugar(), store, token.New("test-secret", time.Hour))
}

func TestRegisterHashesPassword(t *testing.T) {
	t.Parallel()

	store := newStubStore()
	core := newTestCore(store)

	created, err := core.Register(context.Background(), NewUser{Name: "A", Email: "A@X.com", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", created.Email, "email must be lowercased")
	assert.NotEmpty(t, created.Id)

	stored := store.byEmail["a@x.com"]
	assert.NotEqual(t, "secret1", stored.PasswordHash, "plaintext must never be stored")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secret1")))
}

func TestRegisterValidation(t *testing.T) {
	t.Parallel()

	core := newTestCore(newStubStore())

	tests := []NewUser{
		{Name: "", Email: "a@x.com", Password: "p"},
		{Name: "A", Email: "", Password: "p"},
		{Name: "A", Email: "a@x.com", Password: ""},
		{Name: "   ", Email: "a@x.com", Password: "p"},
	}
	for _, tt := range tests {
		_, err := core.Register(context.Background(), tt)
		kind, ok := fault.KindOf(err)
		require.True(t, ok, "expected a taxonomy fault, got %v", err)
		assert.Equal(t, fault.Validation, kind)
	}
}

func TestRegisterDuplicateConflict(t *testing.T) {
	t.Parallel()

	core := newTestCore(newStubStore())

	_, err := core.Register(context.Background(), NewUser{Name: "A", Email: "a@x.com", Password: "secret1"})
	require.NoError(t, err)

	// same email, different case: still a duplicate
	_, err = core.Register(context.Background(), NewUser{Name: "B", Email: "A@X.COM", Password: "secret2"})
	kind, ok := fault.KindOf(err)
	require.True(t, ok)
	assert.Equal(t, fault.Conflict, kind)
}

func TestLoginIssuesVerifiableToken(t *testing.T) {
	t.Parallel()

	store := newStubStore()
	tokens := token.New("test-secret", time.Hour)
	core := NewCore(zap.NewNop().Sugar(), store, tokens)

	created, err := core.Register(context.Background(), NewUser{Name: "A", Email: "a@x.com", Password: "secret1"})
	require.NoError(t, err)

	tok, err := core.Login(context.Background(), Credentials{Email: "a@x.com", Password: "secret1"})
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	userID, err := tokens.Verify(tok)
	require.NoError(t, err)
	assert.Equal(t, created.Id, userID)
}

func TestLoginRejects(t *testing.T) {
	t.Parallel()

	core := newTestCore(newStubStore())
	_, err := core.Register(context.Background(), NewUser{Name: "A", Email: "a@x.com", Password: "secret1"})
	require.NoError(t, err)

	tests := []struct {
		name  string
		creds Credentials
	}{
		{name: "wrong password", creds: Credentials{Email: "a@x.com", Password: "wrong"}},
		{name: "unknown email", creds: Credentials{Email: "b@x.com", Password: "secret1"}},
		{name: "empty password", creds: Credentials{Email: "a@x.com", Password: ""}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := core.Login(context.Background(), tt.creds)
			kind, ok := fault.KindOf(err)
			require.True(t, ok, "expected a taxonomy fault, got %v", err)
			assert.Equal(t, fault.Unauthenticated, kind)
		})
	}
}
