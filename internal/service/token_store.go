package service

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// TokenStore is the revocation list behind logout. Tokens live in the store
// only until their natural expiry, after which the JWT itself is rejected.
type TokenStore interface {
	Revoke(ctx context.Context, token string, ttl time.Duration) error
	IsRevoked(ctx context.Context, token string) (bool, error)
}

const revokedKeyPrefix = "revoked:"

type redisTokenStore struct{ rdb *redis.Client }

func NewTokenStore(rdb *redis.Client) TokenStore { return &redisTokenStore{rdb: rdb} }

func (s *redisTokenStore) Revoke(ctx context.Context, token string, ttl time.Duration) error {
	if ttl <= 0 {
		// Already expired — nothing to revoke.
		return nil
	}
	return s.rdb.Set(ctx, revokedKeyPrefix+token, "1", ttl).Err()
}

func (s *redisTokenStore) IsRevoked(ctx context.Context, token string) (bool, error) {
	n, err := s.rdb.Exists(ctx, revokedKeyPrefix+token).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
