// Package storage provides the JSON-array file store backing every
// collection. Each store file gets its own mutex, so writers to the same
// collection are serialized and id assignment cannot race.
package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	apperrors "eventflow/internal/errors"
)

const filePermissions = 0644

// Collection is a single JSON-array-backed collection of one record type.
type Collection[T any] struct {
	path string
	mu   sync.Mutex
}

func NewCollection[T any](path string) *Collection[T] {
	return &Collection[T]{path: path}
}

// Path returns the backing file path
func (c *Collection[T]) Path() string {
	return c.path
}

// ReadAll returns every record in the collection. A missing file reads as an
// empty collection.
func (c *Collection[T]) ReadAll() ([]T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.readLocked(false)
}

// ReadAllStrict is ReadAll except that a missing file is an error. The
// aggregation queries use it because they must propagate store absence
// instead of treating it as "no data".
func (c *Collection[T]) ReadAllStrict() ([]T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.readLocked(true)
}

// WriteAll overwrites the collection with the given records
func (c *Collection[T]) WriteAll(records []T) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.writeLocked(records)
}

// Update applies fn to the current records and, when fn asks for it, writes
// the result back. The lock is held across the whole read-mutate-write cycle.
func (c *Collection[T]) Update(fn func(records []T) (updated []T, write bool, err error)) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	records, err := c.readLocked(false)
	if err != nil {
		return err
	}

	updated, write, err := fn(records)
	if err != nil {
		return err
	}
	if !write {
		return nil
	}

	return c.writeLocked(updated)
}

func (c *Collection[T]) readLocked(strict bool) ([]T, error) {
	data, err := os.ReadFile(c.path)
	if err != nil {
		if os.IsNotExist(err) {
			if strict {
				return nil, fmt.Errorf("%w: %s", apperrors.ErrStoreNotFound, c.path)
			}
			return []T{}, nil
		}
		return nil, fmt.Errorf("read %s: %w", c.path, err)
	}

	var records []T
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", apperrors.ErrDecode, c.path, err)
	}

	return records, nil
}

func (c *Collection[T]) writeLocked(records []T) error {
	if records == nil {
		records = []T{}
	}

	data, err := json.MarshalIndent(records, "", "    ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", c.path, err)
	}

	// Write to a temp file first so a crash mid-write cannot leave a
	// truncated store behind, then rename into place.
	tmpFile := c.path + ".tmp"
	if err := os.WriteFile(tmpFile, data, filePermissions); err != nil {
		return fmt.Errorf("write %s: %w", tmpFile, err)
	}

	return os.Rename(tmpFile, c.path)
}
