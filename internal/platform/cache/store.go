package cache

import (
	"context"
	"fmt"
	"strings"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/sync/singleflight"
)

const DefaultMaxEntries = 1024

type entry struct {
	value    any
	storedAt time.Time
}

// Store is a bounded TTL cache. An entry is valid while now-storedAt < ttl;
// stale and absent entries are both misses. The least recently used entry
// is evicted once maxEntries is reached.
type Store struct {
	entries *lru.Cache[string, entry]
	ttl     time.Duration
	now     func() time.Time
	flight  singleflight.Group
}

type StoreOption func(*Store)

// WithClock replaces time.Now, used to step past the TTL in tests.
func WithClock(now func() time.Time) StoreOption {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

func NewStore(ttl time.Duration, maxEntries int, opts ...StoreOption) *Store {
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}
	// lru.New only fails for a non-positive size.
	entries, _ := lru.New[string, entry](maxEntries)

	s := &Store{
		entries: entries,
		ttl:     ttl,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) Get(_ context.Context, key string) (any, bool) {
	if key == "" {
		return nil, false
	}

	e, ok := s.entries.Get(key)
	if !ok {
		return nil, false
	}
	if s.ttl > 0 && s.now().Sub(e.storedAt) >= s.ttl {
		s.entries.Remove(key)
		return nil, false
	}

	return e.value, true
}

func (s *Store) Set(_ context.Context, key string, value any) {
	if key == "" {
		return
	}
	s.entries.Add(key, entry{value: value, storedAt: s.now()})
}

func (s *Store) Delete(_ context.Context, key string) {
	if key == "" {
		return
	}
	s.entries.Remove(key)
}

func (s *Store) DeletePrefix(_ context.Context, prefix string) {
	if prefix == "" {
		return
	}
	for _, key := range s.entries.Keys() {
		if strings.HasPrefix(key, prefix) {
			s.entries.Remove(key)
		}
	}
}

func (s *Store) Clear(_ context.Context) {
	s.entries.Purge()
}

func (s *Store) Len() int {
	return s.entries.Len()
}

func (s *Store) GetOrLoad(ctx context.Context, key string, loader func(context.Context) (any, error)) (any, error) {
	if loader == nil {
		return nil, fmt.Errorf("loader is required")
	}
	if key == "" {
		return loader(ctx)
	}

	if value, ok := s.Get(ctx, key); ok {
		return value, nil
	}

	value, err, _ := s.flight.Do(key, func() (any, error) {
		if cached, ok := s.Get(ctx, key); ok {
			return cached, nil
		}

		loaded, loadErr := loader(ctx)
		if loadErr != nil {
			return nil, loadErr
		}
		s.Set(ctx, key, loaded)
		return loaded, nil
	})
	if err != nil {
		return nil, err
	}

	return value, nil
}
