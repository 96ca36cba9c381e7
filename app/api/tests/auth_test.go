package tests

import (
	"net/http"
	"testing"

	"github.com/ribgsilva/notes-app/business/v1/user"
)

type AuthTests struct {
	*testApp
}

func TestAuth(t *testing.T) {
	tests := AuthTests{newTestApp(t, "AuthTest")}

	tests.register201(t)
	tests.registerDuplicate409(t)
	tests.registerMissingFields400(t)
	tests.login200(t)
	tests.loginWrongPassword401(t)
	tests.loginUnknownEmail401(t)
}

func (at *AuthTests) register201(t *testing.T) {
	w := at.do(t, http.MethodPost, "/register", "", user.NewUser{Name: "A", Email: "a@x.com", Password: "secret1"})

	if w.Code != http.StatusCreated {
		t.Fatalf("Test register201: Should receive a status code of 201 for the response: %v", w.Code)
	}

	var resp user.User
	decode(t, w, &resp)
	if resp.Id == "" {
		t.Fatalf("Test register201: Should have received a generated id in the response: %v", resp)
	}
	if resp.Email != "a@x.com" {
		t.Fatalf("Test register201: Should have received \"a@x.com\" as email in the response: %v", resp)
	}
	if resp.CreatedAt.IsZero() {
		t.Fatalf("Test register201: Should have received a creation timestamp in the response: %v", resp)
	}
}

func (at *AuthTests) registerDuplicate409(t *testing.T) {
	// same email, different case: registration is case-insensitive on email
	w := at.do(t, http.MethodPost, "/register", "", user.NewUser{Name: "B", Email: "A@X.COM", Password: "secret2"})

	if w.Code != http.StatusConflict {
		t.Fatalf("Test registerDuplicate409: Should receive a status code of 409 for the response: %v", w.Code)
	}

	row := at.db.QueryRow("SELECT count(id) FROM users WHERE email = ?", "a@x.com")
	var count int
	if err := row.Scan(&count); err != nil {
		t.Fatalf("Test registerDuplicate409: Should be able to count user rows: %v", err)
	}
	if count != 1 {
		t.Fatalf("Test registerDuplicate409: Should have exactly one user row for the email, got: %v", count)
	}
}

func (at *AuthTests) registerMissingFields400(t *testing.T) {
	w := at.do(t, http.MethodPost, "/register", "", user.NewUser{Name: "C", Email: "", Password: "secret3"})

	if w.Code != http.StatusBadRequest {
		t.Fatalf("Test registerMissingFields400: Should receive a status code of 400 for the response: %v", w.Code)
	}
}

func (at *AuthTests) login200(t *testing.T) {
	w := at.do(t, http.MethodPost, "/login", "", user.Credentials{Email: "a@x.com", Password: "secret1"})

	if w.Code != http.StatusOK {
		t.Fatalf("Test login200: Should receive a status code of 200 for the response: %v", w.Code)
	}

	var resp user.Token
	decode(t, w, &resp)
	if resp.Token == "" {
		t.Fatalf("Test login200: Should have received a non-empty token in the response: %v", resp)
	}

	userID, err := at.tokens.Verify(resp.Token)
	if err != nil || userID == "" {
		t.Fatalf("Test login200: Should have received a verifiable token in the response: %v", err)
	}
}

func (at *AuthTests) loginWrongPassword401(t *testing.T) {
	w := at.do(t, http.MethodPost, "/login", "", user.Credentials{Email: "a@x.com", Password: "wrong"})

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("Test loginWrongPassword401: Should receive a status code of 401 for the response: %v", w.Code)
	}
}

func (at *AuthTests) loginUnknownEmail401(t *testing.T) {
	w := at.do(t, http.MethodPost, "/login", "", user.Credentials{Email: "nobody@x.com", Password: "secret1"})

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("Test loginUnknownEmail401: Should receive a status code of 401 for the response: %v", w.Code)
	}
}
