package redis

import (
	"clinic-service/internal/app/contracts"
	"clinic-service/internal/pkg/constvars"
	"context"
	"fmt"
	"time"
)

type tokenDenylist struct {
	repository RedisRepository
}

// NewTokenDenylist stores revoked token ids until their natural expiry.
func NewTokenDenylist(repository RedisRepository) contracts.TokenDenylist {
	return &tokenDenylist{repository: repository}
}

func (d *tokenDenylist) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	return d.repository.Set(ctx, revokedTokenKey(tokenID), time.Now().UTC().Unix(), ttl)
}

func (d *tokenDenylist) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	return d.repository.Exists(ctx, revokedTokenKey(tokenID))
}

func revokedTokenKey(tokenID string) string {
	return fmt.Sprintf(constvars.RedisRevokedTokenKeyFormat, tokenID)
}

type noopDenylist struct{}

// NewNoopDenylist is used when Redis is disabled. Logout is then client-side only.
func NewNoopDenylist() contracts.TokenDenylist {
	return noopDenylist{}
}

func (noopDenylist) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	return nil
}

func (noopDenylist) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	return false, nil
}
