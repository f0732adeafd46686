package auth

import (
	"context"
	"fmt"
	"time"

	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/core/domain/model/user"
	"cargo/internal/core/ports"
	"cargo/internal/pkg/errs"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultTokenTTL is how long an access token stays valid.
const DefaultTokenTTL = 4 * time.Hour

var (
	_ ports.TokenIssuer   = (*JWTService)(nil)
	_ ports.TokenVerifier = (*JWTService)(nil)

	ErrSecretIsRequired = errs.NewValueIsRequiredError("jwt secret")
)

// Claims is the payload of an access token. The subject carries the user ID.
type Claims struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// JWTService signs and verifies HS256 access tokens.
type JWTService struct {
	secret   []byte
	issuer   string
	audience string
	ttl      time.Duration
	now      func() time.Time
}

// JWTOption customises a JWTService.
type JWTOption func(*JWTService)

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) JWTOption {
	return func(s *JWTService) {
		s.now = now
	}
}

// NewJWTService returns ErrSecretIsRequired for an empty secret. A
// non-positive ttl falls back to DefaultTokenTTL.
func NewJWTService(secret, issuer, audience string, ttl time.Duration, opts ...JWTOption) (*JWTService, error) {
	if secret == "" {
		return nil, ErrSecretIsRequired
	}
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}

	s := &JWTService{
		secret:   []byte(secret),
		issuer:   issuer,
		audience: audience,
		ttl:      ttl,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Issue signs a token for principal.
func (s *JWTService) Issue(_ context.Context, principal ports.Principal) (string, error) {
	if err := principal.Role.Validate(); err != nil {
		return "", err
	}

	now := s.now()
	claims := Claims{
		Username: principal.Username,
		Role:     principal.Role.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   principal.UserID.String(),
			Issuer:    s.issuer,
			Audience:  jwt.ClaimStrings{s.audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Verify checks signature, algorithm, issuer, audience and expiry. Every
// failure wraps errs.ErrAuthFailure.
func (s *JWTService) Verify(_ context.Context, token string) (ports.Principal, error) {
	parserOpts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(s.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	}
	if s.audience != "" {
		parserOpts = append(parserOpts, jwt.WithAudience(s.audience))
	}

	var claims Claims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return s.secret, nil
	}, parserOpts...)
	if err != nil {
		return ports.Principal{}, fmt.Errorf("%w: %w", errs.ErrAuthFailure, err)
	}
	if !parsed.Valid {
		return ports.Principal{}, fmt.Errorf("%w: token is not valid", errs.ErrAuthFailure)
	}

	userID, err := kernel.UUIDFromString(claims.Subject)
	if err != nil {
		return ports.Principal{}, fmt.Errorf("%w: bad subject: %w", errs.ErrAuthFailure, err)
	}
	role, err := user.ParseRole(claims.Role)
	if err != nil {
		return ports.Principal{}, fmt.Errorf("%w: bad role: %w", errs.ErrAuthFailure, err)
	}

	return ports.Principal{
		UserID:   userID,
		Username: claims.Username,
		Role:     role,
	}, nil
}
