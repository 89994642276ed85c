// internal/featurelog/file.go
package featurelog

import (
	"context"
	"fmt"
	"os"
	"sync"
)

// FileStore appends entries to a UTF-8 text file, creating it on first use.
// Each entry is written with a single Write call on an O_APPEND descriptor,
// serialized by a mutex, so lines never interleave.
type FileStore struct {
	path string
	mu   sync.Mutex
	file *os.File
}

// NewFileStore opens (or creates) the log file at path.
func NewFileStore(path string) (*FileStore, error) {
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open feature log %s: %w", path, err)
	}
	return &FileStore{path: path, file: file}, nil
}

func (s *FileStore) Append(_ context.Context, entry Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.file == nil {
		return fmt.Errorf("feature log %s is closed", s.path)
	}

	if _, err := s.file.WriteString(entry.Line()); err != nil {
		return fmt.Errorf("append feature log %s: %w", s.path, err)
	}
	return nil
}

func (s *FileStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.file == nil {
		return nil
	}
	err := s.file.Close()
	s.file = nil
	return err
}
