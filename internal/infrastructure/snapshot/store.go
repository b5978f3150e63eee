package snapshot

import (
	"sync"

	"github.com/saradorri/flipside/internal/domain"
)

// Store implements domain.SnapshotStore in memory
type Store struct {
	mu          sync.RWMutex
	latest      *domain.GameSnapshot
	subscribers map[chan *domain.GameSnapshot]struct{}
}

// NewStore creates an empty snapshot store
func NewStore() *Store {
	return &Store{subscribers: make(map[chan *domain.GameSnapshot]struct{})}
}

// Latest returns the most recent snapshot, if any arrived yet
func (s *Store) Latest() (*domain.GameSnapshot, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.latest, s.latest != nil
}

// Put replaces the latest snapshot and notifies subscribers. A subscriber
// that has not consumed the previous notification only sees the newest one.
func (s *Store) Put(snapshot *domain.GameSnapshot) {
	if snapshot == nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.latest = snapshot
	for ch := range s.subscribers {
		select {
		case <-ch:
		default:
		}
		ch <- snapshot
	}
}

// Subscribe returns a channel receiving every new snapshot and a function
// that ends the subscription
func (s *Store) Subscribe() (<-chan *domain.GameSnapshot, func()) {
	ch := make(chan *domain.GameSnapshot, 1)

	s.mu.Lock()
	s.subscribers[ch] = struct{}{}
	s.mu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.subscribers, ch)
			s.mu.Unlock()
		})
	}
}
