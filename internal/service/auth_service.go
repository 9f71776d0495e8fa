package service

import (
	"github.com/spec-kit/bloodbank-service/internal/auth"
	"github.com/spec-kit/bloodbank-service/internal/config"
	apperrors "github.com/spec-kit/bloodbank-service/pkg/util"
)

// AuthService coordinates the login flow: credential lookup followed by
// token issuance.
type AuthService struct {
	credentials auth.CredentialStore
	tokenMgr    *auth.TokenManager
}

// NewAuthService builds the service.
func NewAuthService(cfg config.Config, credentials auth.CredentialStore) *AuthService {
	return &AuthService{
		credentials: credentials,
		tokenMgr:    auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTLMinutes),
	}
}

// Login validates the pair and returns a signed token carrying the
// account's identity and role. A missing username or password falls
// through to the same invalid-credentials outcome as a wrong pair.
func (s *AuthService) Login(username, password string) (string, error) {
	account, err := s.credentials.Authenticate(username, password)
	if err != nil {
		return "", apperrors.NewInvalidCredentials()
	}

	token, _, err := s.tokenMgr.GenerateToken(account.Identity, account.Role)
	if err != nil {
		return "", apperrors.NewInternalError(err)
	}
	return token, nil
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}
