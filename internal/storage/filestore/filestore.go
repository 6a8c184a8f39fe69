package filestore

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/natefinch/atomic"
	"github.com/rs/zerolog/log"
	"github.com/sidereusnuntius/neonprofile/internal/storage"
)

const Ext = ".json"

// FileStore keeps every key in its own file under Root.
type FileStore struct {
	Root string
}

func New(root string) (fs storage.KV, err error) {
	fs = &FileStore{
		Root: root,
	}

	info, err := os.Stat(root)
	if err == nil {
		if !info.IsDir() {
			log.Error().Str("root", root).Msg("not a directory")
			err = storage.ErrNotDir
		}
		return
	}

	if errors.Is(err, os.ErrNotExist) {
		err = os.MkdirAll(root, os.ModePerm)
	}

	if err != nil {
		log.Error().Err(err).Msg("internal error when setting up storage")
		err = storage.ErrInternal
	}

	return
}

func (s *FileStore) path(key string) (string, error) {
	if key == "" || key != filepath.Base(key) || strings.HasPrefix(key, ".") {
		return "", storage.ErrInvalidKey
	}
	return filepath.Join(s.Root, key+Ext), nil
}

func (s *FileStore) Get(ctx context.Context, key string) (content []byte, err error) {
	path, err := s.path(key)
	if err != nil {
		return
	}

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			err = storage.ErrNotExist
		} else {
			log.Error().Err(err).Str("path", path).Msg("failed to open file")
			err = storage.ErrInternal
		}
		return
	}
	defer f.Close()

	content, err = io.ReadAll(f)
	if err != nil {
		log.Error().Err(err).Str("path", path).Msg("failed to read file")
		err = storage.ErrInternal
	}
	return
}

// Set replaces the file for key in a single rename, so readers never observe a partial write.
func (s *FileStore) Set(ctx context.Context, key string, value []byte) error {
	path, err := s.path(key)
	if err != nil {
		return err
	}

	if err = atomic.WriteFile(path, bytes.NewReader(value)); err != nil {
		log.Error().Err(err).Str("path", path).Msg("failed to write file")
		return storage.ErrInternal
	}
	return nil
}
