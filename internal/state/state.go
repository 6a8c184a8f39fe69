// Package state is the application's composition root: it owns the single instance of each store and is passed
// explicitly to the layers that need them.
package state

import (
	"context"

	"codeberg.org/gruf/go-mutexes"
	"github.com/sidereusnuntius/neonprofile/internal/config"
	"github.com/sidereusnuntius/neonprofile/internal/storage"
	"github.com/sidereusnuntius/neonprofile/internal/store"
)

type State struct {
	Config   config.Configuration
	Storage  storage.KV
	Profiles *store.ProfileStore
	Stats    *store.StatsStore
}

// New builds both stores on top of kv and hydrates them from it.
func New(ctx context.Context, cfg config.Configuration, kv storage.KV) *State {
	locks := &mutexes.MutexMap{}
	s := &State{
		Config:   cfg,
		Storage:  kv,
		Profiles: store.NewProfileStore(kv, locks, store.LogProfileChanges),
		Stats:    store.NewStatsStore(kv, locks, store.LogStatsChanges),
	}
	s.Profiles.Load(ctx)
	s.Stats.Load(ctx)
	return s
}
