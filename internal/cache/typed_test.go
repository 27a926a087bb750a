package cache

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cachedListing struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

func TestGetTypedAssertsMemoryValues(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	want := cachedListing{ID: "p1", Title: "Harbor Loft"}
	store.Set(ctx, "properties:p1", want, time.Minute)

	got, ok := GetTyped[cachedListing](ctx, store, "properties:p1")
	require.True(t, ok)
	assert.Equal(t, want, got)
}

func TestGetTypedDecodesJSONBytes(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	// The redis backend stores values as JSON bytes.
	want := cachedListing{ID: "p2", Title: "Garden Studio"}
	data, err := json.Marshal(want)
	require.NoError(t, err)
	store.Set(ctx, "properties:p2", data, time.Minute)

	got, ok := GetTyped[cachedListing](ctx, store, "properties:p2")
	require.True(t, ok)
	assert.Equal(t, want, got)
}

func TestGetTypedMissOnAbsentKey(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	got, ok := GetTyped[cachedListing](ctx, store, "properties:absent")
	assert.False(t, ok)
	assert.Equal(t, cachedListing{}, got)
}

func TestGetTypedMissOnTypeMismatch(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	store.Set(ctx, "accounts:stats", "not a listing", time.Minute)

	_, ok := GetTyped[cachedListing](ctx, store, "accounts:stats")
	assert.False(t, ok)
}
