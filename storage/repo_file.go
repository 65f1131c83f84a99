package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// FileRepo keeps every key in a single JSON document on disk, in the manner of
// browser local storage. Values are stored base64-encoded so binary (sealed)
// values survive the round trip. The whole document is rewritten on each mutation.
type FileRepo struct {
	mu     sync.RWMutex
	path   string
	values map[string][]byte
}

var _ Repo = (*FileRepo)(nil)

// NewFileRepo opens (or creates on first write) the JSON document at path.
func NewFileRepo(path string) (*FileRepo, error) {
	r := &FileRepo{path: path, values: make(map[string][]byte)}

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		return r, nil
	case err != nil:
		return nil, fmt.Errorf("[FileRepo] read %s: %w", path, err)
	}
	if len(data) == 0 {
		return r, nil
	}
	if err := json.Unmarshal(data, &r.values); err != nil {
		return nil, fmt.Errorf("[FileRepo] decode %s: %w", path, err)
	}
	return r, nil
}

func (r *FileRepo) Get(_ context.Context, key string) ([]byte, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	v, ok := r.values[key]
	if !ok {
		return nil, ErrNotFound
	}
	return append([]byte(nil), v...), nil
}

func (r *FileRepo) Set(_ context.Context, key string, value []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	previous, existed := r.values[key]
	r.values[key] = append([]byte(nil), value...)
	if err := r.flush(); err != nil {
		if existed {
			r.values[key] = previous
		} else {
			delete(r.values, key)
		}
		return err
	}
	return nil
}

func (r *FileRepo) Delete(_ context.Context, key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	previous, existed := r.values[key]
	if !existed {
		return nil
	}
	delete(r.values, key)
	if err := r.flush(); err != nil {
		r.values[key] = previous
		return err
	}
	return nil
}

func (r *FileRepo) Close() error {
	return nil
}

// flush writes to a temp file and renames it over the document. Caller holds mu.
func (r *FileRepo) flush() error {
	data, err := json.MarshalIndent(r.values, "", "  ")
	if err != nil {
		return fmt.Errorf("[FileRepo] encode: %w", err)
	}
	dir := filepath.Dir(r.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("[FileRepo] create %s: %w", dir, err)
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(r.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("[FileRepo] temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("[FileRepo] write: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("[FileRepo] close: %w", err)
	}
	if err := os.Rename(tmp.Name(), r.path); err != nil {
		return fmt.Errorf("[FileRepo] rename: %w", err)
	}
	return nil
}
