package storage

import (
	"context"
	"errors"
)

var (
	ErrNotDir      = errors.New("given root is not a directory")
	ErrInternal    = errors.New("internal error")
	ErrNotExist    = errors.New("key does not exist")
	ErrInvalidKey  = errors.New("invalid key")
	ErrUnavailable = errors.New("storage unavailable")
)

// KV is a durable key-value store holding the serialized dashboard records. Values are opaque bytes; callers
// own the encoding.
type KV interface {
	// Get returns the value stored under key, or ErrNotExist.
	Get(ctx context.Context, key string) ([]byte, error)
	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error
}
