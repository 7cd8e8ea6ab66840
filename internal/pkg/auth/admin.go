// internal/pkg/auth/admin.go
package auth

import (
	"errors"
	"strings"
	"time"

	"github.com/verve-shop/storefront/internal/config"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAdminLoginDisabled = errors.New("admin login is not configured")
)

// LoginRequest represents the admin login body
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries an issued admin token
type LoginResponse struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// AdminAuthenticator checks the single configured admin account
type AdminAuthenticator struct {
	email     string
	hash      string
	passwords *PasswordManager
	tokens    *JWTManager
}

// NewAdminAuthenticator creates an authenticator from config
func NewAdminAuthenticator(cfg *config.Config) *AdminAuthenticator {
	return &AdminAuthenticator{
		email:     strings.ToLower(cfg.Security.AdminEmail),
		hash:      cfg.Security.AdminPasswordHash,
		passwords: NewPasswordManager(cfg.Security.BcryptCost),
		tokens:    NewJWTManager(cfg),
	}
}

// Login verifies the credentials and issues an access token
func (a *AdminAuthenticator) Login(req *LoginRequest) (*LoginResponse, error) {
	if a.hash == "" {
		return nil, ErrAdminLoginDisabled
	}
	if strings.ToLower(req.Email) != a.email {
		return nil, ErrInvalidCredentials
	}
	if err := a.passwords.VerifyPassword(req.Password, a.hash); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, expiresAt, err := a.tokens.GenerateAccessToken(a.email, true)
	if err != nil {
		return nil, err
	}
	return &LoginResponse{AccessToken: token, TokenType: "Bearer", ExpiresAt: expiresAt}, nil
}

// Tokens exposes the JWT manager used for issued tokens
func (a *AdminAuthenticator) Tokens() *JWTManager {
	return a.tokens
}
