package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/slot-exchange/internal/domain/exchange"
	"github.com/BruksfildServices01/slot-exchange/internal/models"
)

const policyKeyPrefix = "slotx:policy:"

// PolicyCache is a read-through cache in front of a PolicyStore. Redis
// being unavailable only costs a trip to the underlying store.
type PolicyCache struct {
	next exchange.PolicyStore
	rdb  *redis.Client
	ttl  time.Duration
	log  *zap.Logger
}

func NewPolicyCache(
	next exchange.PolicyStore,
	rdb *redis.Client,
	ttl time.Duration,
	log *zap.Logger,
) *PolicyCache {
	if log == nil {
		log = zap.NewNop()
	}
	return &PolicyCache{next: next, rdb: rdb, ttl: ttl, log: log}
}

func policyKey(providerID string) string {
	return policyKeyPrefix + providerID
}

func (c *PolicyCache) GetPolicy(
	ctx context.Context,
	providerID string,
) (*models.ProviderPolicy, error) {

	raw, err := c.rdb.Get(ctx, policyKey(providerID)).Bytes()
	switch {
	case err == nil:
		var p models.ProviderPolicy
		if jerr := json.Unmarshal(raw, &p); jerr == nil {
			return &p, nil
		}
		c.log.Warn("discarding unreadable cached policy", zap.String("provider_id", providerID))
	case !errors.Is(err, redis.Nil):
		c.log.Warn("policy cache read failed", zap.String("provider_id", providerID), zap.Error(err))
	}

	p, err := c.next.GetPolicy(ctx, providerID)
	if err != nil {
		return nil, err
	}

	if b, jerr := json.Marshal(p); jerr == nil {
		if serr := c.rdb.Set(ctx, policyKey(providerID), b, c.ttl).Err(); serr != nil {
			c.log.Debug("policy cache write failed", zap.String("provider_id", providerID), zap.Error(serr))
		}
	}

	return p, nil
}

// Invalidate drops the cached entry for a provider.
func (c *PolicyCache) Invalidate(ctx context.Context, providerID string) error {
	return c.rdb.Del(ctx, policyKey(providerID)).Err()
}

// Compile-time check
var _ exchange.PolicyStore = (*PolicyCache)(nil)
