package services

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// KeyValueStore is a small local blob store keyed by name.
type KeyValueStore interface {
	// Get returns the stored value and false when the key has never been written.
	Get(key string) ([]byte, bool, error)
	Set(key string, value []byte) error
}

// FileKeyValueStore keeps each key in its own JSON file inside Dir.
type FileKeyValueStore struct {
	Dir string // The absolute path to the storage directory
}

func NewFileKeyValueStore(dir string) (*FileKeyValueStore, error) {
	absPath, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("could not determine absolute path for store dir: %w", err)
	}
	return &FileKeyValueStore{Dir: absPath}, nil
}

// PathFor returns the file backing key.
func (s *FileKeyValueStore) PathFor(key string) (string, error) {
	if key == "" || strings.ContainsAny(key, `/\`) || key == "." || key == ".." {
		return "", fmt.Errorf("invalid storage key %q", key)
	}
	return filepath.Join(s.Dir, key+".json"), nil
}

func (s *FileKeyValueStore) Get(key string) ([]byte, bool, error) {
	path, err := s.PathFor(key)
	if err != nil {
		return nil, false, err
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read key %q: %w", key, err)
	}
	return data, true, nil
}

// Set overwrites the value in place. A crash mid-write can leave a truncated file behind.
func (s *FileKeyValueStore) Set(key string, value []byte) error {
	path, err := s.PathFor(key)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return fmt.Errorf("failed to create store dir: %w", err)
	}
	if err := os.WriteFile(path, value, 0o644); err != nil {
		return fmt.Errorf("failed to write key %q: %w", key, err)
	}
	return nil
}
