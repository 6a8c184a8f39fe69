// Package sqlitekv stores values in the kv table of an SQLite database. The schema is created by the migrations
// under the migrations folder.
package sqlitekv

import (
	"context"
	"database/sql"

	"github.com/rs/zerolog/log"
	"github.com/sidereusnuntius/neonprofile/internal/storage"
)

const (
	getValue = `SELECT value FROM kv WHERE key = ?`
	setValue = `INSERT INTO kv(key, value, updated) VALUES (?, ?, strftime('%s', 'now'))
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated = excluded.updated`
)

type kvImpl struct {
	db *sql.DB
}

func New(d *sql.DB) storage.KV {
	return &kvImpl{
		db: d,
	}
}

// HandleError takes a database error and returns a storage error that hides the driver specific details, so
// callers can match it with errors.Is.
func (k *kvImpl) HandleError(err error) error {
	switch err {
	case nil:
		return nil
	case sql.ErrNoRows:
		return storage.ErrNotExist
	case sql.ErrConnDone:
		log.Error().Err(err).Msg("database connection closed")
		return storage.ErrUnavailable
	default:
		log.Error().Err(err).Msg("database error")
		return storage.ErrInternal
	}
}

func (k *kvImpl) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := k.db.QueryRowContext(ctx, getValue, key).Scan(&value)
	if err != nil {
		return nil, k.HandleError(err)
	}
	return value, nil
}

func (k *kvImpl) Set(ctx context.Context, key string, value []byte) error {
	if key == "" {
		return storage.ErrInvalidKey
	}
	_, err := k.db.ExecContext(ctx, setValue, key, string(value))
	return k.HandleError(err)
}
