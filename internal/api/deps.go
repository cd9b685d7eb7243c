package api

import (
	"context"
	"time"

	"github.com/david/scholarship-hunter/internal/ai"
	"github.com/david/scholarship-hunter/internal/db"
	"github.com/david/scholarship-hunter/internal/leads"
	"github.com/david/scholarship-hunter/internal/models"
	"github.com/david/scholarship-hunter/internal/notify"
	"github.com/google/uuid"
)

//go:generate mockgen -destination=mocks/mock_deps.go -package=mocks -source=deps.go

// ReportStore persists reports and leads.
type ReportStore interface {
	CreateReport(ctx context.Context, r db.NewReport) (uuid.UUID, error)
	GetReport(ctx context.Context, id uuid.UUID) (*models.ReportRecord, error)
	CreateLead(ctx context.Context, l models.Lead) (models.Lead, error)
	AttachLead(ctx context.Context, reportID, leadID uuid.UUID) error
}

// Hunter generates scholarships for a profile.
type Hunter interface {
	HuntScholarships(ctx context.Context, profile models.Profile, now time.Time) (*ai.HuntResult, error)
}

// Mailer delivers rendered email.
type Mailer interface {
	Send(ctx context.Context, msg notify.Message) (string, error)
}

// LeadPublisher forwards captured leads.
type LeadPublisher interface {
	Publish(ctx context.Context, ev leads.Event) error
}
