package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/Mohdivswa-71124/Queue-Reporter/models"
)

// ErrStorageUnavailable marks any persistence read or write failure.
// Callers must propagate it rather than drop the report on the floor.
var ErrStorageUnavailable = errors.New("storage unavailable")

// document is the on-disk layout. The queues array is the full source
// of truth and is rewritten in full on every append.
type document struct {
	Queues []models.QueueReport `json:"queues"`
}

// Store is an append-only collection of queue reports backed by a
// single JSON document. Existing entries are never reordered, mutated
// or deleted.
type Store struct {
	path string

	mu      sync.Mutex
	reports []models.QueueReport
}

// New opens the document at path, creating parent directories as
// needed. A missing file starts an empty collection; an unreadable or
// corrupt file surfaces ErrStorageUnavailable.
func New(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("%w: create store directory: %v", ErrStorageUnavailable, err)
	}

	s := &Store{path: path}

	raw, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", ErrStorageUnavailable, path, err)
	}

	var doc document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("%w: decode %s: %v", ErrStorageUnavailable, path, err)
	}
	s.reports = doc.Queues
	return s, nil
}

// Append durably adds one report. The write hits disk before Append
// returns success, so an acknowledged report is never lost.
func (s *Store) Append(report models.QueueReport) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := append(append([]models.QueueReport{}, s.reports...), report)
	if err := s.write(next); err != nil {
		return err
	}
	s.reports = next
	return nil
}

// ListAll returns a snapshot of every report in insertion order.
func (s *Store) ListAll() ([]models.QueueReport, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.QueueReport, len(s.reports))
	copy(out, s.reports)
	return out, nil
}

// CountByLocation counts stored reports whose location exactly matches
// the given string. No trimming or case folding.
func (s *Store) CountByLocation(location string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0
	for _, r := range s.reports {
		if r.Location == location {
			count++
		}
	}
	return count, nil
}

// write rewrites the whole document through a temp file and rename so
// a crash mid-write never leaves a truncated document behind.
func (s *Store) write(reports []models.QueueReport) error {
	raw, err := json.MarshalIndent(document{Queues: reports}, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: encode document: %v", ErrStorageUnavailable, err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return fmt.Errorf("%w: write %s: %v", ErrStorageUnavailable, tmp, err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("%w: rename %s: %v", ErrStorageUnavailable, tmp, err)
	}
	return nil
}
