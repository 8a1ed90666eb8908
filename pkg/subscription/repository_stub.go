package subscription

import (
	"context"
	"sync"
)

type RepositoryStub struct {
	mu      sync.RWMutex
	entries map[string]Subscription
	writes  int
}

func NewRepositoryStub() *RepositoryStub {
	return &RepositoryStub{entries: map[string]Subscription{}}
}

func (s *RepositoryStub) Store(ctx context.Context, key string, sub Subscription) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = sub
	s.writes++
	return nil
}

func (s *RepositoryStub) Load(ctx context.Context, key string) (Subscription, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sub, ok := s.entries[key]
	if !ok {
		return Subscription{}, ErrSubscriptionNotFound
	}
	return sub, nil
}

func (s *RepositoryStub) Writes() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.writes
}
