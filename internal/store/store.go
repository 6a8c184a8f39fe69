// Package store holds the dashboard's two records in memory and mirrors every change to durable storage.
//
// Each store pairs a pure reducer (MergeProfile, IncrementStat) with a list of observers registered when the store
// is built. The first observer persists the new record; mutations write through it and nowhere else.
package store

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/rs/zerolog/log"
	"github.com/sidereusnuntius/neonprofile/internal/storage"
)

// Storage keys. The payloads stored under them are the JSON encodings of domain.Profile and domain.Stats.
const (
	ProfileKey = "profile"
	StatsKey   = "stats"
)

// Observer is notified after a record changed in memory. Observers run in registration order while the store's
// lock is held, so they must not call back into the store.
type Observer[T any] func(ctx context.Context, prev, next T) error

// Persist returns an observer writing the full new record under key.
func Persist[T any](kv storage.KV, key string) Observer[T] {
	return func(ctx context.Context, _, next T) error {
		data, err := json.Marshal(next)
		if err != nil {
			return err
		}
		if err = kv.Set(ctx, key, data); err != nil {
			log.Error().Err(err).Str("key", key).Msg("failed to persist record")
		}
		return err
	}
}

func notify[T any](ctx context.Context, observers []Observer[T], prev, next T) error {
	var errs []error
	for _, o := range observers {
		if err := o(ctx, prev, next); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// load reads and decodes the record stored under key. Any failure, including a record rejected by valid, yields
// fallback.
func load[T any](ctx context.Context, kv storage.KV, key string, fallback T, valid func(T) bool) T {
	data, err := kv.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, storage.ErrNotExist) {
			log.Warn().Err(err).Str("key", key).Msg("failed to read record, using defaults")
		}
		return fallback
	}

	var record *T
	if err = json.Unmarshal(data, &record); err != nil || record == nil {
		if err == nil {
			err = errors.New("null record")
		}
		log.Warn().Err(err).Str("key", key).Msg("malformed record, using defaults")
		return fallback
	}

	if valid != nil && !valid(*record) {
		log.Warn().Str("key", key).Msg("invalid record, using defaults")
		return fallback
	}
	return *record
}
