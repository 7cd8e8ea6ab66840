package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/verve-shop/storefront/internal/config"
	"golang.org/x/crypto/bcrypt"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("Sunrise!Mat9"), bcrypt.MinCost)
	require.NoError(t, err)

	return &config.Config{
		App: config.AppConfig{Name: "VERVE Storefront"},
		JWT: config.JWTConfig{
			Secret:            "test-secret-that-is-at-least-32-chars",
			AccessTokenExpiry: time.Hour,
		},
		Security: config.SecurityConfig{
			BcryptCost:        bcrypt.MinCost,
			AdminEmail:        "admin@verve.shop",
			AdminPasswordHash: string(hash),
		},
	}
}

func TestJWTManager_RoundTrip(t *testing.T) {
	m := NewJWTManager(testConfig(t))

	token, expiresAt, err := m.GenerateAccessToken("admin@verve.shop", true)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, time.Minute)

	claims, err := m.ValidateAccessToken(token)
	require.NoError(t, err)
	assert.True(t, claims.IsAdmin)
	assert.Equal(t, "admin@verve.shop", claims.Email)
}

func TestJWTManager_Rejects(t *testing.T) {
	cfg := testConfig(t)
	m := NewJWTManager(cfg)

	t.Run("expired", func(t *testing.T) {
		token, _, err := m.GenerateAccessToken("admin@verve.shop", true)
		require.NoError(t, err)

		later := NewJWTManager(cfg)
		later.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
		_, err = later.ValidateAccessToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("wrong secret", func(t *testing.T) {
		other := *cfg
		other.JWT.Secret = "another-secret-that-is-32-chars-long!"
		token, _, err := NewJWTManager(&other).GenerateAccessToken("admin@verve.shop", true)
		require.NoError(t, err)

		_, err = m.ValidateAccessToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := m.ValidateAccessToken("not.a.token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestExtractTokenFromHeader(t *testing.T) {
	assert.Equal(t, "abc", ExtractTokenFromHeader("Bearer abc"))
	assert.Equal(t, "", ExtractTokenFromHeader("Basic abc"))
	assert.Equal(t, "", ExtractTokenFromHeader(""))
}

func TestPasswordManager(t *testing.T) {
	p := NewPasswordManager(bcrypt.MinCost)

	hash, err := p.HashPassword("Sunrise!Mat9")
	require.NoError(t, err)
	assert.NoError(t, p.VerifyPassword("Sunrise!Mat9", hash))
	assert.Error(t, p.VerifyPassword("sunrise!mat9", hash))

	for _, weak := range []string{"short1!", "alllowercase1!", "NoNumbers!!", "NoSpecial123", "Password1!"} {
		_, err := p.HashPassword(weak)
		assert.Error(t, err, weak)
	}
}

func TestAdminAuthenticator_Login(t *testing.T) {
	a := NewAdminAuthenticator(testConfig(t))

	resp, err := a.Login(&LoginRequest{Email: "Admin@Verve.shop", Password: "Sunrise!Mat9"})
	require.NoError(t, err)
	assert.Equal(t, "Bearer", resp.TokenType)

	claims, err := a.Tokens().ValidateAccessToken(resp.AccessToken)
	require.NoError(t, err)
	assert.True(t, claims.IsAdmin)

	_, err = a.Login(&LoginRequest{Email: "admin@verve.shop", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = a.Login(&LoginRequest{Email: "someone@verve.shop", Password: "Sunrise!Mat9"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAdminAuthenticator_Disabled(t *testing.T) {
	cfg := testConfig(t)
	cfg.Security.AdminPasswordHash = ""

	_, err := NewAdminAuthenticator(cfg).Login(&LoginRequest{Email: "admin@verve.shop", Password: "x"})
	assert.ErrorIs(t, err, ErrAdminLoginDisabled)
}
