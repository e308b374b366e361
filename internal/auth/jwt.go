package auth

import (
	"errors"
	"fmt"
	"time"

	"nodebird-api/internal/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenLifetime is fixed for every issued token.
const TokenLifetime = 60 * time.Second

// Manager signs and verifies tokens with the process-wide HMAC secret.
// It holds no mutable state and is safe for concurrent use.
type Manager struct {
	secret []byte
	issuer string
	clock  func() time.Time
}

type Option func(*Manager)

// WithClock overrides the time source used for iat/exp and expiry checks.
func WithClock(clock func() time.Time) Option {
	return func(m *Manager) {
		if clock != nil {
			m.clock = clock
		}
	}
}

func NewManager(cfg config.AuthConfig, opts ...Option) (*Manager, error) {
	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET is required")
	}
	if cfg.JWTIssuer == "" {
		return nil, errors.New("JWT_ISSUER is required")
	}

	m := &Manager{
		secret: []byte(cfg.JWTSecret),
		issuer: cfg.JWTIssuer,
		clock:  time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m, nil
}

func (m *Manager) Issuer() string { return m.issuer }

/* ===================== SIGN ===================== */

// Sign builds claims for the given identity and returns the signed token.
// iat is truncated to the second so the embedded claims compare equal after a round trip.
func (m *Manager) Sign(userID int64, userNick string) (string, Claims, error) {
	now := m.clock().Truncate(time.Second)

	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    m.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenLifetime)),
			ID:        uuid.NewString(),
		},
		UserID:   userID,
		UserNick: userNick,
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := t.SignedString(m.secret)
	if err != nil {
		return "", Claims{}, err
	}
	return s, claims, nil
}

/* ===================== VERIFY ===================== */

var (
	errMissingExpiry = errors.New("exp missing")
	errMissingUserID = errors.New("id missing")
)

// Verify classifies tokenString as valid, expired or invalid.
//
// Only the signature and structure are checked by the parser; time-based
// validation is done here so that an authentic token past exp is reported as
// expired rather than invalid, and so a token is still valid at exactly exp.
func (m *Manager) Verify(tokenString string) Result {
	if tokenString == "" {
		return invalid(errors.New("token missing"))
	}

	var claims Claims
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithStrictDecoding(),
		jwt.WithoutClaimsValidation(),
	)
	if _, err := parser.ParseWithClaims(tokenString, &claims, func(*jwt.Token) (any, error) {
		return m.secret, nil
	}); err != nil {
		return invalid(err)
	}

	if claims.ExpiresAt == nil {
		return invalid(errMissingExpiry)
	}
	if claims.Issuer != m.issuer {
		return invalid(fmt.Errorf("issuer mismatch: %q", claims.Issuer))
	}
	if claims.UserID == 0 {
		return invalid(errMissingUserID)
	}

	now := m.clock()
	if now.After(claims.ExpiresAt.Time) {
		return expired(jwt.ErrTokenExpired)
	}
	return valid(claims)
}
