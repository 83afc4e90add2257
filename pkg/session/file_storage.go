package session

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// FileStorage persists records as files under a directory, one file per
// key. Writes go through a temp file followed by a rename so a crash mid
// write never leaves a torn record behind.
type FileStorage struct {
	dir string
}

// NewFileStorage creates a file-backed storage rooted at dir. The directory
// is created on demand with owner-only permissions since it holds
// credentials.
func NewFileStorage(dir string) *FileStorage {
	return &FileStorage{dir: dir}
}

func (f *FileStorage) path(key string) string {
	return filepath.Join(f.dir, key+".json")
}

func (f *FileStorage) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := os.ReadFile(f.path(key))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrRecordNotFound
		}
		return nil, errors.Join(ErrStorageFailure, err)
	}
	return data, nil
}

func (f *FileStorage) Set(ctx context.Context, key string, value []byte) error {
	if err := os.MkdirAll(f.dir, 0o700); err != nil {
		return errors.Join(ErrStorageFailure, err)
	}

	tmp, err := os.CreateTemp(f.dir, key+".*.tmp")
	if err != nil {
		return errors.Join(ErrStorageFailure, err)
	}
	tmpName := tmp.Name()

	cleanup := func(cause error) error {
		tmp.Close()
		os.Remove(tmpName)
		return errors.Join(ErrStorageFailure, cause)
	}

	if err := tmp.Chmod(0o600); err != nil {
		return cleanup(err)
	}
	if _, err := tmp.Write(value); err != nil {
		return cleanup(err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return errors.Join(ErrStorageFailure, err)
	}

	if err := os.Rename(tmpName, f.path(key)); err != nil {
		os.Remove(tmpName)
		return errors.Join(ErrStorageFailure, err)
	}
	return nil
}

func (f *FileStorage) Delete(ctx context.Context, key string) error {
	if err := os.Remove(f.path(key)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %w", ErrStorageFailure, err)
	}
	return nil
}
