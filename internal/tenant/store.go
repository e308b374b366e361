package tenant

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("tenant: not found")

// Store resolves a domain secret to its tenant record.
//
// Implementations must match the secret exactly and return ErrNotFound on a
// miss. Any other error is treated as an infrastructure fault by callers.
// No timeout is imposed here; callers bound the lookup through ctx.
type Store interface {
	FindBySecret(ctx context.Context, secret string) (Tenant, error)
}
