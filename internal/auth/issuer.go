package auth

import (
	"context"
	"errors"
	"fmt"

	"nodebird-api/internal/tenant"
)

var (
	// ErrUnregisteredDomain means no tenant matches the presented secret.
	// Not retryable without registering the domain first.
	ErrUnregisteredDomain = errors.New("auth: unregistered domain")
	// ErrSystemFailure wraps store or signing faults. Retryable by the
	// client after backoff; the cause must not be shown to callers.
	ErrSystemFailure = errors.New("auth: system failure")
)

// TokenIssuer exchanges a domain secret for a signed token bound to the
// tenant's user. It writes no state.
type TokenIssuer struct {
	store   tenant.Store
	manager *Manager
}

func NewTokenIssuer(store tenant.Store, m *Manager) *TokenIssuer {
	return &TokenIssuer{store: store, manager: m}
}

// Issue looks up secret and, on a match, returns a token for the bound user.
// The store lookup is the only blocking call and is bounded by ctx.
func (i *TokenIssuer) Issue(ctx context.Context, secret string) (string, error) {
	if secret == "" {
		return "", ErrUnregisteredDomain
	}

	t, err := i.store.FindBySecret(ctx, secret)
	if err != nil {
		if errors.Is(err, tenant.ErrNotFound) {
			return "", ErrUnregisteredDomain
		}
		return "", fmt.Errorf("%w: tenant lookup: %w", ErrSystemFailure, err)
	}

	token, _, err := i.manager.Sign(t.UserID, t.UserNick)
	if err != nil {
		return "", fmt.Errorf("%w: sign: %w", ErrSystemFailure, err)
	}
	return token, nil
}
