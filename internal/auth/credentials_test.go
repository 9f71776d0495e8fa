package auth

import (
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/spec-kit/bloodbank-service/internal/config"
	"github.com/spec-kit/bloodbank-service/internal/domain"
)

func testAuthConfig() config.AuthConfig {
	return config.AuthConfig{
		BcryptCost:    bcrypt.MinCost,
		StaffUsername: "staff",
		StaffPassword: "password",
		DonorUsername: "donor",
		DonorPassword: "donorpass",
	}
}

func TestAuthenticateStaffPair(t *testing.T) {
	store, err := NewStaticCredentialStore(testAuthConfig())
	if err != nil {
		t.Fatalf("build store: %v", err)
	}

	account, err := store.Authenticate("staff", "password")
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if account.Identity != domain.IdentityStaff {
		t.Fatalf("expected identity staff, got %q", account.Identity)
	}
	if account.Role != domain.RoleAdmin {
		t.Fatalf("expected role admin, got %q", account.Role)
	}
}

func TestAuthenticateDonorPair(t *testing.T) {
	store, err := NewStaticCredentialStore(testAuthConfig())
	if err != nil {
		t.Fatalf("build store: %v", err)
	}

	account, err := store.Authenticate("donor", "donorpass")
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if account.Identity != domain.IdentityDonor {
		t.Fatalf("expected identity donor, got %q", account.Identity)
	}
	if account.Role != domain.RoleDonor {
		t.Fatalf("expected role donor, got %q", account.Role)
	}
}

func TestAuthenticateRejectsUnknownPairs(t *testing.T) {
	store, err := NewStaticCredentialStore(testAuthConfig())
	if err != nil {
		t.Fatalf("build store: %v", err)
	}

	cases := []struct {
		name     string
		username string
		password string
	}{
		{"wrong password", "staff", "wrong"},
		{"unknown user", "nobody", "password"},
		{"crossed pair", "staff", "donorpass"},
		{"empty username", "", "password"},
		{"empty password", "staff", ""},
	}
	for _, tc := range cases {
		if _, err := store.Authenticate(tc.username, tc.password); !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("%s: expected ErrInvalidCredentials, got %v", tc.name, err)
		}
	}
}
