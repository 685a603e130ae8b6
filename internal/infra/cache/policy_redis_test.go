package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/slot-exchange/internal/domain/exchange"
	"github.com/BruksfildServices01/slot-exchange/internal/models"
)

type stubStore struct {
	calls int
	err   error
}

func (s *stubStore) GetPolicy(_ context.Context, providerID string) (*models.ProviderPolicy, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	p := exchange.DefaultPolicy(providerID)
	p.MinAdvanceHours = 12
	return p, nil
}

// unreachable points at a port nothing listens on.
func unreachable(t *testing.T) *redis.Client {
	rdb := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { _ = rdb.Close() })
	return rdb
}

func TestPolicyCacheFallsBackWhenRedisIsDown(t *testing.T) {
	store := &stubStore{}
	c := NewPolicyCache(store, unreachable(t), time.Minute, nil)

	p, err := c.GetPolicy(context.Background(), "p-1")

	require.NoError(t, err)
	assert.Equal(t, 12, p.MinAdvanceHours)
	assert.Equal(t, 1, store.calls)
}

func TestPolicyCachePropagatesStoreErrors(t *testing.T) {
	boom := errors.New("db down")
	c := NewPolicyCache(&stubStore{err: boom}, unreachable(t), time.Minute, nil)

	_, err := c.GetPolicy(context.Background(), "p-1")

	assert.ErrorIs(t, err, boom)
}

func TestPolicyKey(t *testing.T) {
	assert.Equal(t, "slotx:policy:p-1", policyKey("p-1"))
}
