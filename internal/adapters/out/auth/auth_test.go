package auth_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"cargo/internal/adapters/out/auth"
	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/core/domain/model/user"
	"cargo/internal/core/ports"
	"cargo/internal/pkg/errs"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher(t *testing.T) {
	hasher := auth.NewBcryptHasher(bcrypt.MinCost)

	hash, err := hasher.Hash("admin123")
	require.NoError(t, err)
	assert.NotEqual(t, "admin123", hash)

	require.NoError(t, hasher.Compare(hash, "admin123"))
	require.ErrorIs(t, hasher.Compare(hash, "admin124"), bcrypt.ErrMismatchedHashAndPassword)
}

func TestJWTService_RoundTrip(t *testing.T) {
	service, err := auth.NewJWTService("secret", "cargo", "cargo-ui", time.Hour)
	require.NoError(t, err)
	principal := ports.Principal{UserID: kernel.NewUUID(), Username: "admin", Role: user.Admin}

	token, err := service.Issue(context.Background(), principal)
	require.NoError(t, err)

	got, err := service.Verify(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, principal, got)
}

func TestJWTService_ExpiresAfterTTL(t *testing.T) {
	issuedAt := time.Date(2026, 1, 1, 8, 0, 0, 0, time.UTC)
	clock := issuedAt
	service, err := auth.NewJWTService("secret", "cargo", "cargo-ui", 0, auth.WithClock(func() time.Time { return clock }))
	require.NoError(t, err)

	token, err := service.Issue(context.Background(), ports.Principal{UserID: kernel.NewUUID(), Username: "m", Role: user.Manager})
	require.NoError(t, err)

	clock = issuedAt.Add(auth.DefaultTokenTTL - time.Minute)
	_, err = service.Verify(context.Background(), token)
	require.NoError(t, err)

	clock = issuedAt.Add(auth.DefaultTokenTTL + time.Minute)
	_, err = service.Verify(context.Background(), token)
	require.ErrorIs(t, err, errs.ErrAuthFailure)
	require.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestJWTService_RejectsForeignTokens(t *testing.T) {
	service, err := auth.NewJWTService("secret", "cargo", "cargo-ui", time.Hour)
	require.NoError(t, err)
	principal := ports.Principal{UserID: kernel.NewUUID(), Username: "admin", Role: user.Admin}

	otherSecret, _ := auth.NewJWTService("other", "cargo", "cargo-ui", time.Hour)
	otherIssuer, _ := auth.NewJWTService("secret", "someone-else", "cargo-ui", time.Hour)
	otherAudience, _ := auth.NewJWTService("secret", "cargo", "mobile", time.Hour)

	for name, issuer := range map[string]*auth.JWTService{
		"secret":   otherSecret,
		"issuer":   otherIssuer,
		"audience": otherAudience,
	} {
		t.Run(name, func(t *testing.T) {
			token, issueErr := issuer.Issue(context.Background(), principal)
			require.NoError(t, issueErr)

			_, err := service.Verify(context.Background(), token)
			require.ErrorIs(t, err, errs.ErrAuthFailure)
		})
	}

	t.Run("none algorithm", func(t *testing.T) {
		unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, auth.Claims{Username: "admin", Role: "Admin"})
		token, signErr := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, signErr)

		_, err := service.Verify(context.Background(), token)
		require.ErrorIs(t, err, errs.ErrAuthFailure)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := service.Verify(context.Background(), strings.Repeat("x", 20))
		require.ErrorIs(t, err, errs.ErrAuthFailure)
	})
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	_, err := auth.NewJWTService("", "cargo", "cargo-ui", time.Hour)

	require.ErrorIs(t, err, auth.ErrSecretIsRequired)
}
