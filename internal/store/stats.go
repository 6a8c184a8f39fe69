package store

import (
	"context"
	"fmt"

	"codeberg.org/gruf/go-mutexes"
	"github.com/rs/zerolog/log"
	"github.com/sidereusnuntius/neonprofile/internal/domain"
	"github.com/sidereusnuntius/neonprofile/internal/storage"
)

// IncrementStat returns current with counter c increased by one. Unknown counters fail with
// domain.ErrInvalidCounterKey and return current unchanged.
func IncrementStat(current domain.Stats, c domain.Counter) (domain.Stats, error) {
	next := current
	switch c {
	case domain.Followers:
		next.Followers++
	case domain.Projects:
		next.Projects++
	case domain.Likes:
		next.Likes++
	default:
		return current, fmt.Errorf("%w: %q", domain.ErrInvalidCounterKey, c)
	}
	return next, nil
}

type StatsStore struct {
	kv        storage.KV
	locks     *mutexes.MutexMap
	current   domain.Stats
	observers []Observer[domain.Stats]
}

// NewStatsStore builds a store holding the default stats. Changes are persisted to kv, then passed to observers.
func NewStatsStore(kv storage.KV, locks *mutexes.MutexMap, observers ...Observer[domain.Stats]) *StatsStore {
	if locks == nil {
		locks = &mutexes.MutexMap{}
	}
	return &StatsStore{
		kv:        kv,
		locks:     locks,
		current:   domain.DefaultStats(),
		observers: append([]Observer[domain.Stats]{Persist[domain.Stats](kv, StatsKey)}, observers...),
	}
}

// Load hydrates the store from storage. Missing, malformed or negative counters yield the defaults.
func (s *StatsStore) Load(ctx context.Context) domain.Stats {
	unlock := s.locks.Lock(StatsKey)
	defer unlock()

	s.current = load(ctx, s.kv, StatsKey, domain.DefaultStats(), domain.Stats.Valid)
	return s.current
}

func (s *StatsStore) Current() domain.Stats {
	unlock := s.locks.RLock(StatsKey)
	defer unlock()
	return s.current
}

// Increment adds one to counter c and writes the full stats record once. An invalid counter changes nothing and
// writes nothing.
func (s *StatsStore) Increment(ctx context.Context, c domain.Counter) (domain.Stats, error) {
	unlock := s.locks.Lock(StatsKey)
	defer unlock()

	prev := s.current
	next, err := IncrementStat(prev, c)
	if err != nil {
		return prev, err
	}
	s.current = next

	if err = notify(ctx, s.observers, prev, next); err != nil {
		return next, fmt.Errorf("incrementing %s: %w", c, err)
	}
	return next, nil
}

// LogStatsChanges logs the new counter values at debug level.
func LogStatsChanges(ctx context.Context, prev, next domain.Stats) error {
	log.Debug().
		Int("followers", next.Followers).
		Int("projects", next.Projects).
		Int("likes", next.Likes).
		Msg("stats updated")
	return nil
}
