// Package leads forwards captured contacts to external systems: a spreadsheet
// webhook (Apps Script web app) and a Kafka topic.
package leads

import (
	"context"
	"errors"
	"time"

	"github.com/david/scholarship-hunter/internal/models"
)

// Event is the payload published for each captured lead.
type Event struct {
	Timestamp    string   `json:"timestamp"`
	LeadID       string   `json:"lead_id"`
	ReportID     string   `json:"report_id"`
	Name         string   `json:"name"`
	Email        string   `json:"email"`
	Phone        string   `json:"phone"`
	Major        string   `json:"major,omitempty"`
	GPA          string   `json:"gpa,omitempty"`
	Countries    []string `json:"countries"`
	TotalValue   string   `json:"total_value,omitempty"`
	Scholarships int      `json:"scholarships"`
}

// NewEvent builds the event for lead. profile may be nil.
func NewEvent(lead models.Lead, profile *models.Profile, totalLabel string, scholarships int, now time.Time) Event {
	ev := Event{
		Timestamp:    now.UTC().Format("2006-01-02 15:04:05"),
		LeadID:       lead.ID.String(),
		ReportID:     lead.ReportID.String(),
		Name:         lead.Name,
		Email:        lead.Email,
		Phone:        lead.WhatsApp,
		Countries:    []string{},
		TotalValue:   totalLabel,
		Scholarships: scholarships,
	}
	if profile != nil {
		ev.Major = profile.Major
		if profile.GPA > 0 {
			ev.GPA = formatGPA(profile.GPA)
		}
		if len(profile.TargetCountries) > 0 {
			ev.Countries = profile.TargetCountries
		}
	}
	return ev
}

// Sink receives lead events.
type Sink interface {
	Name() string
	Publish(ctx context.Context, ev Event) error
	Close() error
}

// SinkError names the sink that failed.
type SinkError struct {
	Sink string
	Err  error
}

func (e *SinkError) Error() string { return e.Sink + ": " + e.Err.Error() }
func (e *SinkError) Unwrap() error { return e.Err }

// MultiSink publishes to every sink and joins the failures.
type MultiSink struct {
	sinks []Sink
}

func NewMultiSink(sinks ...Sink) *MultiSink {
	var active []Sink
	for _, s := range sinks {
		if s != nil {
			active = append(active, s)
		}
	}
	return &MultiSink{sinks: active}
}

func (m *MultiSink) Name() string { return "multi" }

// Publish tries every sink even after a failure.
func (m *MultiSink) Publish(ctx context.Context, ev Event) error {
	var errs []error
	for _, s := range m.sinks {
		if err := s.Publish(ctx, ev); err != nil {
			errs = append(errs, &SinkError{Sink: s.Name(), Err: err})
		}
	}
	return errors.Join(errs...)
}

func (m *MultiSink) Close() error {
	var errs []error
	for _, s := range m.sinks {
		if err := s.Close(); err != nil {
			errs = append(errs, &SinkError{Sink: s.Name(), Err: err})
		}
	}
	return errors.Join(errs...)
}

// Len reports how many sinks are configured.
func (m *MultiSink) Len() int { return len(m.sinks) }

// FailedSinks lists the sink names inside an error returned by Publish.
func FailedSinks(err error) []string {
	if err == nil {
		return nil
	}
	var names []string
	var joined interface{ Unwrap() []error }
	if errors.As(err, &joined) {
		for _, e := range joined.Unwrap() {
			names = append(names, FailedSinks(e)...)
		}
		return names
	}
	var se *SinkError
	if errors.As(err, &se) {
		return []string{se.Sink}
	}
	return []string{"unknown"}
}
