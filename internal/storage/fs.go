package storage

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// FSStore keeps one file per key under a base directory. It is the
// default driver for single-machine deployments.
type FSStore struct{ base string }

func NewFSStore(base string) (*FSStore, error) {
	if base == "" {
		base = "./data"
	}
	if err := os.MkdirAll(base, 0o755); err != nil {
		return nil, err
	}
	return &FSStore{base: base}, nil
}

func (s *FSStore) path(key string) string {
	// keys are flat names like "reviewedQuestions"; strip anything
	// that would escape the base dir
	return filepath.Join(s.base, filepath.Base(filepath.Clean(key))+".json")
}

func (s *FSStore) Get(key string) (string, bool, error) {
	if key == "" {
		return "", false, errors.New("empty key")
	}
	b, err := os.ReadFile(s.path(key))
	if errors.Is(err, os.ErrNotExist) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return string(b), true, nil
}

func (s *FSStore) Set(key, value string) error {
	if key == "" {
		return errors.New("empty key")
	}
	return os.WriteFile(s.path(key), []byte(value), 0o644)
}

func (s *FSStore) Delete(key string) error {
	err := os.Remove(s.path(key))
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

func (s *FSStore) Clear() error {
	entries, err := os.ReadDir(s.base)
	if err != nil {
		return err
	}
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		if err := os.Remove(filepath.Join(s.base, e.Name())); err != nil {
			return err
		}
	}
	return nil
}
