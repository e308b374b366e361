package tenant

import (
	"context"
	"sync"
)

// MemoryRepo is a simple in-memory tenant store for tests and local runs.
type MemoryRepo struct {
	mu       sync.RWMutex
	bySecret map[string]Tenant
}

func NewMemoryRepo(tenants ...Tenant) *MemoryRepo {
	r := &MemoryRepo{bySecret: make(map[string]Tenant, len(tenants))}
	for _, t := range tenants {
		r.bySecret[t.ClientSecret] = t
	}
	return r
}

// Put registers or replaces the tenant for t.ClientSecret.
func (r *MemoryRepo) Put(t Tenant) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.bySecret[t.ClientSecret] = t
}

func (r *MemoryRepo) FindBySecret(ctx context.Context, secret string) (Tenant, error) {
	if err := ctx.Err(); err != nil {
		return Tenant{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.bySecret[secret]
	if !ok {
		return Tenant{}, ErrNotFound
	}
	return t, nil
}

// Delete removes the tenant registered under secret, if any.
func (r *MemoryRepo) Delete(secret string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.bySecret, secret)
}
