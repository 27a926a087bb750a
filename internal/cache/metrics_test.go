package cache

import (
	"context"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

// Counters are process-global, so assertions work on deltas.
func TestStoreOperationsUpdateCounters(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	hitsBefore := testutil.ToFloat64(hitsTotal)
	missesBefore := testutil.ToFloat64(missesTotal)
	setsBefore := testutil.ToFloat64(setsTotal)
	deletesBefore := testutil.ToFloat64(deletesTotal)
	invalidationsBefore := testutil.ToFloat64(invalidationsTotal)

	store.Set(ctx, "properties:list:A", 1, time.Minute)
	store.Set(ctx, "properties:list:B", 2, time.Minute)
	store.Set(ctx, "properties:42", 3, time.Minute)
	store.Get(ctx, "properties:list:A")
	store.Get(ctx, "properties:absent")
	store.Delete(ctx, "properties:42")
	store.DeletePattern(ctx, "properties:list:")

	assert.Equal(t, 3.0, testutil.ToFloat64(setsTotal)-setsBefore)
	assert.Equal(t, 1.0, testutil.ToFloat64(hitsTotal)-hitsBefore)
	assert.Equal(t, 1.0, testutil.ToFloat64(missesTotal)-missesBefore)
	assert.Equal(t, 1.0, testutil.ToFloat64(deletesTotal)-deletesBefore)
	assert.Equal(t, 2.0, testutil.ToFloat64(invalidationsTotal)-invalidationsBefore)
}

func TestExpiredReadCountsAsMiss(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	store.Set(ctx, "reviews:rating:9", 4.5, 20*time.Millisecond)
	time.Sleep(40 * time.Millisecond)

	missesBefore := testutil.ToFloat64(missesTotal)
	_, ok := store.Get(ctx, "reviews:rating:9")
	assert.False(t, ok)
	assert.Equal(t, 1.0, testutil.ToFloat64(missesTotal)-missesBefore)
}
