package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/watchfire-io/cubetimer/internal/config"
)

// FileSlots stores each slot as <dir>/<key>.json.
type FileSlots struct {
	dir string

	mu     sync.Mutex
	closed bool
}

// NewFileSlots creates a file backend rooted at dir. The directory is
// created on first write.
func NewFileSlots(dir string) *FileSlots {
	return &FileSlots{dir: dir}
}

// Dir returns the backend's root directory.
func (f *FileSlots) Dir() string {
	return f.dir
}

// Path returns the file holding the given slot.
func (f *FileSlots) Path(key string) string {
	return filepath.Join(f.dir, key+".json")
}

func (f *FileSlots) Get(key string) ([]byte, bool, error) {
	if err := f.check(key); err != nil {
		return nil, false, err
	}
	data, err := os.ReadFile(f.Path(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to read slot %s: %w", key, err)
	}
	return data, true, nil
}

func (f *FileSlots) Set(key string, value []byte) error {
	if err := f.check(key); err != nil {
		return err
	}
	return config.WriteFileAtomic(f.Path(key), value)
}

func (f *FileSlots) Remove(key string) error {
	if err := f.check(key); err != nil {
		return err
	}
	if err := os.Remove(f.Path(key)); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove slot %s: %w", key, err)
	}
	return nil
}

func (f *FileSlots) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	return nil
}

func (f *FileSlots) check(key string) error {
	f.mu.Lock()
	closed := f.closed
	f.mu.Unlock()
	if closed {
		return ErrClosed
	}
	return validateKey(key)
}
