package tenant

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"time"

	"nodebird-api/pkg/logger"

	"github.com/redis/go-redis/v9"
)

const defaultKeyPrefix = "nodebird:tenant:"

// MaxCacheTTL bounds how long a deleted or re-bound tenant can still be served
// from cache. It is kept well under the token lifetime.
const MaxCacheTTL = 15 * time.Second

// CachedStore is a read-through cache in front of another Store.
//
// Keys are derived from a SHA-256 of the secret so raw secrets never reach
// redis. Misses are not cached: a domain registered after a failed lookup is
// visible on the next call. A hit is not re-checked against the backing store,
// so a tenant deleted or re-bound upstream is served for at most the entry TTL
// (never more than MaxCacheTTL) unless Invalidate is called. Cache faults are
// logged and fall through to the backing store.
type CachedStore struct {
	next   Store
	rdb    redis.Cmdable
	prefix string
	ttl    time.Duration
}

// NewCachedStore wraps next. A nil rdb disables caching. ttl is clamped to
// (0, MaxCacheTTL]; zero or negative means MaxCacheTTL.
func NewCachedStore(next Store, rdb redis.Cmdable, ttl time.Duration) *CachedStore {
	if ttl <= 0 || ttl > MaxCacheTTL {
		ttl = MaxCacheTTL
	}
	return &CachedStore{next: next, rdb: rdb, prefix: defaultKeyPrefix, ttl: ttl}
}

func (s *CachedStore) key(secret string) string {
	sum := sha256.Sum256([]byte(secret))
	return s.prefix + hex.EncodeToString(sum[:])
}

type cachedTenant struct {
	ID       int64  `json:"id"`
	Host     string `json:"host"`
	UserID   int64  `json:"user_id"`
	UserNick string `json:"user_nick"`
}

func (s *CachedStore) FindBySecret(ctx context.Context, secret string) (Tenant, error) {
	if s.rdb == nil {
		return s.next.FindBySecret(ctx, secret)
	}

	log := logger.From(ctx)
	key := s.key(secret)
	raw, err := s.rdb.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var ct cachedTenant
		if err := json.Unmarshal(raw, &ct); err == nil {
			return Tenant{ID: ct.ID, Host: ct.Host, ClientSecret: secret, UserID: ct.UserID, UserNick: ct.UserNick}, nil
		}
		log.WarnContext(ctx, "tenant cache entry corrupt", "key", key)
	case errors.Is(err, redis.Nil):
	default:
		log.WarnContext(ctx, "tenant cache read failed", "err", err)
	}

	t, err := s.next.FindBySecret(ctx, secret)
	if err != nil {
		return Tenant{}, err
	}

	b, err := json.Marshal(cachedTenant{ID: t.ID, Host: t.Host, UserID: t.UserID, UserNick: t.UserNick})
	if err == nil {
		if err := s.rdb.Set(ctx, key, b, s.ttl).Err(); err != nil {
			log.WarnContext(ctx, "tenant cache write failed", "err", err)
		}
	}
	return t, nil
}

// Invalidate drops the cached entry for secret.
func (s *CachedStore) Invalidate(ctx context.Context, secret string) error {
	if s.rdb == nil {
		return nil
	}
	return s.rdb.Del(ctx, s.key(secret)).Err()
}
