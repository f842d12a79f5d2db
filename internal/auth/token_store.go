package auth

import (
	"context"
	"time"

	"portfolio/internal/cache"
)

const deniedTokenKeyPrefix = "denied_token:"

// TokenStoreInterface is the revocation denylist. Logout puts both token IDs
// on it with TTL equal to the remaining token lifetime; a token stays valid
// until natural expiry otherwise.
type TokenStoreInterface interface {
	DenyToken(ctx context.Context, tokenID string, ttl time.Duration) error
	IsTokenDenied(ctx context.Context, tokenID string) (bool, error)
}

// TokenStore keeps the denylist in Redis.
type TokenStore struct {
	cache *cache.Client
}

var _ TokenStoreInterface = (*TokenStore)(nil)

// NewTokenStore creates a Redis-backed token denylist.
func NewTokenStore(cache *cache.Client) *TokenStore {
	return &TokenStore{cache: cache}
}

// DenyToken marks a token ID as revoked until its natural expiry.
func (s *TokenStore) DenyToken(ctx context.Context, tokenID string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	return s.cache.Set(ctx, deniedTokenKeyPrefix+tokenID, []byte("1"), ttl)
}

// IsTokenDenied checks whether a token ID has been revoked. With Redis
// unavailable this reports false, degrading to expiry-only invalidation.
func (s *TokenStore) IsTokenDenied(ctx context.Context, tokenID string) (bool, error) {
	data, err := s.cache.Get(ctx, deniedTokenKeyPrefix+tokenID)
	if err != nil {
		return false, nil
	}
	return data != nil, nil
}
