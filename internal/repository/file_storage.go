package repository

import (
	"context"
	"errors"
	"fmt"
	"github.com/nikolayk812/luxe-storefront/internal/port"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// FileStorage keeps one file per key inside dir, the on-disk counterpart of
// browser local storage. Writes go through a temp file and rename so a
// snapshot is replaced whole or not at all.
type FileStorage struct {
	dir string
}

var _ port.SnapshotStorage = (*FileStorage)(nil)

func NewFile(dir string) (*FileStorage, error) {
	if dir == "" {
		return nil, fmt.Errorf("dir is empty")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("os.MkdirAll: %w", err)
	}

	return &FileStorage{dir: dir}, nil
}

func (s *FileStorage) Load(_ context.Context, key string) ([]byte, error) {
	path, err := s.path(key)
	if err != nil {
		return nil, err
	}

	value, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, port.ErrKeyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("os.ReadFile: %w", err)
	}

	return value, nil
}

func (s *FileStorage) Save(_ context.Context, key string, value []byte) (err error) {
	path, err := s.path(key)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(s.dir, "."+key+"-*")
	if err != nil {
		return fmt.Errorf("os.CreateTemp: %w", err)
	}
	defer func() {
		if err != nil {
			_ = os.Remove(tmp.Name())
		}
	}()

	if _, err := tmp.Write(value); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("tmp.Write: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("tmp.Close: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("os.Rename: %w", err)
	}

	return nil
}

func (s *FileStorage) path(key string) (string, error) {
	if key == "" {
		return "", fmt.Errorf("key is empty")
	}
	if strings.ContainsAny(key, `/\`) || key == "." || key == ".." {
		return "", fmt.Errorf("key[%s] is not valid", key)
	}

	return filepath.Join(s.dir, key+".json"), nil
}
