// Package storage persists record collections as JSON array files.
// Each store owns one file holding the whole collection; saves overwrite
// the file atomically and are serialized by a per-store mutex.
package storage

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
)

const (
	// AppName is the application name used for the data directory
	AppName = "estimator"
	// ProjectsFile is the name of the projects collection file
	ProjectsFile = "projects.json"
	// TemplatesFile is the name of the templates collection file
	TemplatesFile = "templates.json"
)

// Store persists a collection of records of type T to a single JSON file.
// Load is tolerant (a broken file degrades to an empty collection); Save
// propagates errors because silently losing a save is unacceptable.
type Store[T any] struct {
	path string
	mu   sync.Mutex
}

// New creates a store bound to the given file path. The parent directory
// is created if missing and an empty collection file is written if absent.
// Either failure is fatal to initialization.
func New[T any](path string) (*Store[T], error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("create data directory %s: %w", filepath.Dir(path), err)
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := os.WriteFile(path, []byte("[]"), 0644); err != nil {
			return nil, fmt.Errorf("create collection file %s: %w", path, err)
		}
	}
	return &Store[T]{path: path}, nil
}

// Path returns the file path backing this store.
func (s *Store[T]) Path() string {
	return s.path
}

// Load reads the whole collection. It never fails to the caller: a missing,
// unreadable, or malformed file yields an empty slice with a logged warning.
// A legacy object-shaped file is probed for a "projects" key holding the
// array; anything else is treated as empty.
func (s *Store[T]) Load() []T {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("storage: reading %s: %v", s.path, err)
		}
		return []T{}
	}

	var records []T
	if err := json.Unmarshal(data, &records); err == nil {
		return records
	}

	// Older builds wrote an object wrapping the array
	var wrapper struct {
		Projects []T `json:"projects"`
	}
	if err := json.Unmarshal(data, &wrapper); err == nil && wrapper.Projects != nil {
		log.Printf("storage: %s contains a legacy object wrapper, using its projects array", s.path)
		return wrapper.Projects
	}

	log.Printf("storage: %s is malformed, treating as empty", s.path)
	return []T{}
}

// Save overwrites the collection file with the given records. Concurrent
// saves are mutually exclusive; the write goes to a temp file first and is
// renamed into place so a crash never leaves a partial collection.
func (s *Store[T]) Save(records []T) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if records == nil {
		records = []T{}
	}

	data, err := json.MarshalIndent(records, "", "    ")
	if err != nil {
		return fmt.Errorf("encode collection: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("write collection %s: %w", s.path, err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("write collection %s: %w", s.path, err)
	}
	return nil
}
