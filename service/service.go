// Package service turns raw submissions into the ordered, per-location
// report sequence and answers queries over the stored collection.
package service

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/apex/log"

	"github.com/Mohdivswa-71124/Queue-Reporter/models"
)

// ValidationError rejects a submission with a missing or blank
// required field. The offending field name is part of the message.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing or empty field: %s", e.Field)
}

// ReportStore is the persistence contract the service depends on.
type ReportStore interface {
	Append(report models.QueueReport) error
	ListAll() ([]models.QueueReport, error)
	CountByLocation(location string) (int, error)
}

// Service implements report ingestion and querying over a ReportStore.
type Service struct {
	store ReportStore
	now   func() time.Time

	// submitMu serializes the count-then-append step so two
	// concurrent submissions for the same location can never
	// compute the same sequence number.
	submitMu sync.Mutex
}

// New creates a Service using the wall clock for timestamps.
func New(store ReportStore) *Service {
	return &Service{store: store, now: time.Now}
}

// NewWithClock creates a Service with an injected clock, for tests.
func NewWithClock(store ReportStore, now func() time.Time) *Service {
	return &Service{store: store, now: now}
}

// Submit validates a submission, assigns its timestamp and per-location
// sequence number, and durably appends it. No partial writes: a
// rejected submission leaves the store untouched.
func (s *Service) Submit(args models.ReportArgs) (models.QueueReport, error) {
	if err := validate(args); err != nil {
		return models.QueueReport{}, err
	}

	s.submitMu.Lock()
	defer s.submitMu.Unlock()

	// Sequence number is count+1 over exact location matches at the
	// moment of insertion. The date is recorded as the client sent it.
	count, err := s.store.CountByLocation(args.Location)
	if err != nil {
		return models.QueueReport{}, err
	}

	report := models.QueueReport{
		Location:     args.Location,
		Minutes:      args.Minutes,
		ReporterName: args.Category,
		Report:       count + 1,
		Timestamp:    s.now().UTC().Format(time.RFC3339),
		Date:         args.Date,
	}

	if err := s.store.Append(report); err != nil {
		return models.QueueReport{}, err
	}

	log.Infof("saved report %d for %q by %q", report.Report, report.Location, report.ReporterName)
	return report, nil
}

// ListReports returns every stored report, oldest first.
func (s *Service) ListReports() ([]models.QueueReport, error) {
	return s.store.ListAll()
}

func validate(args models.ReportArgs) error {
	for _, f := range []struct {
		name  string
		value string
	}{
		{"location", args.Location},
		{"minutes", args.Minutes},
		{"category", args.Category},
	} {
		if strings.TrimSpace(f.value) == "" {
			return &ValidationError{Field: f.name}
		}
	}
	return nil
}
