package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/spec-kit/bloodbank-service/internal/config"
	"github.com/spec-kit/bloodbank-service/internal/domain"
)

// ErrInvalidCredentials reports an unrecognized username/password pair.
var ErrInvalidCredentials = errors.New("invalid credentials")

// CredentialStore resolves a username/password pair to an account. The
// static implementation below stands in for a real identity store.
type CredentialStore interface {
	Authenticate(username, password string) (*domain.Account, error)
}

type staticAccount struct {
	passwordHash []byte
	account      domain.Account
}

// StaticCredentialStore recognizes exactly the two configured accounts.
// Passwords are bcrypt-hashed at construction so only hashes are held
// in memory afterwards.
type StaticCredentialStore struct {
	accounts map[string]staticAccount
}

// NewStaticCredentialStore builds the store from configuration.
func NewStaticCredentialStore(cfg config.AuthConfig) (*StaticCredentialStore, error) {
	cost := cfg.BcryptCost
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}

	store := &StaticCredentialStore{accounts: make(map[string]staticAccount, 2)}

	entries := []struct {
		username string
		password string
		account  domain.Account
	}{
		{cfg.StaffUsername, cfg.StaffPassword, domain.Account{Identity: domain.IdentityStaff, Role: domain.RoleAdmin}},
		{cfg.DonorUsername, cfg.DonorPassword, domain.Account{Identity: domain.IdentityDonor, Role: domain.RoleDonor}},
	}
	for _, entry := range entries {
		hash, err := bcrypt.GenerateFromPassword([]byte(entry.password), cost)
		if err != nil {
			return nil, err
		}
		store.accounts[entry.username] = staticAccount{passwordHash: hash, account: entry.account}
	}

	return store, nil
}

// Authenticate checks the pair against the two known accounts.
func (s *StaticCredentialStore) Authenticate(username, password string) (*domain.Account, error) {
	entry, ok := s.accounts[username]
	if !ok {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(entry.passwordHash, []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	account := entry.account
	return &account, nil
}
