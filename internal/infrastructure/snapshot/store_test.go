package snapshot

import (
	"testing"

	"github.com/saradorri/flipside/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreLatest(t *testing.T) {
	store := NewStore()

	_, ok := store.Latest()
	assert.False(t, ok)

	store.Put(nil)
	_, ok = store.Latest()
	assert.False(t, ok)

	first := &domain.GameSnapshot{Round: "1"}
	second := &domain.GameSnapshot{Round: "2"}
	store.Put(first)
	store.Put(second)

	latest, ok := store.Latest()
	require.True(t, ok)
	assert.Same(t, second, latest)
}

func TestStoreSubscribeKeepsNewest(t *testing.T) {
	store := NewStore()
	ch, unsubscribe := store.Subscribe()
	defer unsubscribe()

	store.Put(&domain.GameSnapshot{Round: "1"})
	store.Put(&domain.GameSnapshot{Round: "2"})

	got := <-ch
	assert.Equal(t, "2", got.Round)
	assert.Len(t, ch, 0)
}

func TestStoreUnsubscribe(t *testing.T) {
	store := NewStore()
	ch, unsubscribe := store.Subscribe()

	unsubscribe()
	unsubscribe()
	store.Put(&domain.GameSnapshot{Round: "1"})

	assert.Len(t, ch, 0)
	assert.Empty(t, store.subscribers)
}
