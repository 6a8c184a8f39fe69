package store

import (
	"context"
	"fmt"

	"codeberg.org/gruf/go-mutexes"
	"github.com/rs/zerolog/log"
	"github.com/sidereusnuntius/neonprofile/internal/diff"
	"github.com/sidereusnuntius/neonprofile/internal/domain"
	"github.com/sidereusnuntius/neonprofile/internal/storage"
)

// MergeProfile returns current with every field present in patch replaced by the patch's value.
func MergeProfile(current domain.Profile, patch domain.ProfilePatch) domain.Profile {
	return patch.Apply(current)
}

type ProfileStore struct {
	kv        storage.KV
	locks     *mutexes.MutexMap
	current   domain.Profile
	observers []Observer[domain.Profile]
}

// NewProfileStore builds a store holding the default profile. Changes are persisted to kv, then passed to
// observers. locks may be shared with other stores; the store only locks ProfileKey.
func NewProfileStore(kv storage.KV, locks *mutexes.MutexMap, observers ...Observer[domain.Profile]) *ProfileStore {
	if locks == nil {
		locks = &mutexes.MutexMap{}
	}
	return &ProfileStore{
		kv:        kv,
		locks:     locks,
		current:   domain.DefaultProfile(),
		observers: append([]Observer[domain.Profile]{Persist[domain.Profile](kv, ProfileKey)}, observers...),
	}
}

// Load hydrates the store from storage and returns the loaded profile. A missing or malformed record yields
// the default profile.
func (s *ProfileStore) Load(ctx context.Context) domain.Profile {
	unlock := s.locks.Lock(ProfileKey)
	defer unlock()

	s.current = load(ctx, s.kv, ProfileKey, domain.DefaultProfile(), nil)
	return s.current
}

func (s *ProfileStore) Current() domain.Profile {
	unlock := s.locks.RLock(ProfileKey)
	defer unlock()
	return s.current
}

// Save merges patch over the current profile and writes the result to storage once. The in-memory record is
// replaced even if the write fails; the write error is returned with the merged profile.
func (s *ProfileStore) Save(ctx context.Context, patch domain.ProfilePatch) (domain.Profile, error) {
	unlock := s.locks.Lock(ProfileKey)
	defer unlock()

	prev := s.current
	s.current = MergeProfile(prev, patch)

	if err := notify(ctx, s.observers, prev, s.current); err != nil {
		return s.current, fmt.Errorf("saving profile: %w", err)
	}
	return s.current, nil
}

// LogProfileChanges logs the patch of every changed field at debug level.
func LogProfileChanges(ctx context.Context, prev, next domain.Profile) error {
	changes := diff.Profile(prev, next)
	if len(changes) == 0 {
		return nil
	}

	fields := make(map[string]any, len(changes))
	for k, v := range changes {
		fields[k] = v
	}
	log.Debug().Fields(fields).Msg("profile updated")
	return nil
}
