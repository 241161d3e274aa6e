// util/cache_service.go

package util

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/viper"

	"github.com/aegisd/aegis/db"
	"github.com/aegisd/aegis/model"
)

const policyCacheKeyPrefix = "cache:policy:"

// CacheService keeps a TTL-bounded copy of policy condition lists for the
// decision read path. Mutating policy operations overwrite the entry
// synchronously, so readers never see a stale policy after an update
// returns.
type CacheService struct {
	store db.Store
}

func NewCacheService(store db.Store) *CacheService {
	return &CacheService{store: store}
}

// GetPolicy returns the cached policy, or (nil, nil) on a cache miss.
func (c *CacheService) GetPolicy(ctx context.Context, policyID string) (*model.Policy, error) {
	raw, err := c.store.Get(ctx, policyCacheKeyPrefix+policyID)
	if errors.Is(err, db.ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get policy from cache: %w", err)
	}

	var conditions []model.Condition
	if err := json.Unmarshal([]byte(raw), &conditions); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cached policy: %w", err)
	}
	return &model.Policy{ID: policyID, Conditions: conditions}, nil
}

func (c *CacheService) SetPolicy(ctx context.Context, policy model.Policy) error {
	encoded, err := json.Marshal(policy.Conditions)
	if err != nil {
		return fmt.Errorf("failed to marshal policy: %w", err)
	}
	ttl := viper.GetDuration("redis.defaultCacheTTL")
	if err := c.store.SetWithTTL(ctx, policyCacheKeyPrefix+policy.ID, string(encoded), ttl); err != nil {
		return fmt.Errorf("failed to cache policy: %w", err)
	}
	return nil
}

func (c *CacheService) DeletePolicy(ctx context.Context, policyID string) error {
	if err := c.store.Delete(ctx, policyCacheKeyPrefix+policyID); err != nil {
		return fmt.Errorf("failed to delete policy from cache: %w", err)
	}
	return nil
}
