package service

import (
	"context"
	"net/http"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testMapping = `[
  {"id": 1234, "name": "Dragon bones", "members": true},
  {"id": 4151, "name": "Abyssal whip"},
  {"id": 5, "name": "  "}
]`

func TestItemMappingResolveName(t *testing.T) {
	u := newUpstreams(t, testMapping, nil)
	s := newTestServices(t, u, nil)
	ctx := context.Background()

	assert.False(t, s.itemMapping.Loaded())

	name, err := s.itemMapping.ResolveName(ctx, 1234)
	require.NoError(t, err)
	assert.Equal(t, "Dragon bones", name)

	name, err = s.itemMapping.ResolveName(ctx, 9999)
	require.NoError(t, err)
	assert.Equal(t, "Item_9999", name)

	name, err = s.itemMapping.ResolveName(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, "Item_5", name, "blank names are dropped from the mapping")

	assert.True(t, s.itemMapping.Loaded())
	assert.Equal(t, int32(1), u.mappingHits.Load())
}

func TestItemMappingConcurrentFirstLoad(t *testing.T) {
	u := newUpstreams(t, testMapping, nil)
	s := newTestServices(t, u, nil)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			names, err := s.itemMapping.GetNames(context.Background())
			assert.NoError(t, err)
			assert.Equal(t, "Abyssal whip", names[4151])
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), u.mappingHits.Load())
}

func TestItemMappingFailureIsRetriedOnNextCall(t *testing.T) {
	u := newUpstreams(t, testMapping, nil)
	u.mappingStatus.Store(http.StatusServiceUnavailable)
	s := newTestServices(t, u, nil)

	_, err := s.itemMapping.ResolveName(context.Background(), 1234)
	require.Error(t, err)
	assert.False(t, s.itemMapping.Loaded())

	u.mappingStatus.Store(http.StatusOK)
	name, err := s.itemMapping.ResolveName(context.Background(), 1234)
	require.NoError(t, err)
	assert.Equal(t, "Dragon bones", name)
	assert.Equal(t, int32(2), u.mappingHits.Load())
}
