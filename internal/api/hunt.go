package api

import (
	"net/http"
	"time"

	"github.com/david/scholarship-hunter/internal/db"
	"github.com/david/scholarship-hunter/internal/models"
	"github.com/david/scholarship-hunter/internal/report"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type startHuntResponse struct {
	ID       string `json:"id"`
	Redirect string `json:"redirect"`
	Count    int    `json:"count"`
}

func (s *Server) handleStartHunt(c echo.Context) error {
	var profile models.Profile
	if err := c.Bind(&profile); err != nil {
		return errorJSON(c, http.StatusBadRequest, "Invalid or empty JSON body")
	}
	if len(profile.TargetCountries) == 0 || profile.Major == "" || profile.GPA <= 0 {
		return errorJSON(c, http.StatusBadRequest, "Missing required fields: targetCountries, major, and gpa are required")
	}
	if profile.Name == "" {
		profile.Name = "Anonymous"
	}
	if profile.GradYear == "" {
		profile.GradYear = "Not specified"
	}

	ctx := c.Request().Context()
	now := s.now()

	started := time.Now()
	result, err := s.hunter.HuntScholarships(ctx, profile, now)
	s.metrics.HuntDurationSec.Observe(time.Since(started).Seconds())
	if err != nil {
		s.metrics.Hunts.WithLabelValues("llm_error").Inc()
		s.logger.Error("scholarship hunt failed", zap.Error(err), zap.String("major", profile.Major))
		return errorJSON(c, http.StatusBadGateway, "Scholarship hunt failed")
	}

	active := activeScholarships(result.Scholarships, now)
	if len(active) == 0 {
		s.metrics.Hunts.WithLabelValues("empty").Inc()
		s.logger.Info("hunt returned no active scholarships", zap.Int("generated", len(result.Scholarships)))
		return errorJSON(c, http.StatusNotFound, "No active scholarships found for this profile")
	}

	id, err := s.store.CreateReport(ctx, db.NewReport{
		Input:           profile,
		TotalValueFound: result.TotalValueFound,
		Scholarships:    active,
	})
	if err != nil {
		s.metrics.Hunts.WithLabelValues("db_error").Inc()
		s.logger.Error("failed to store report", zap.Error(err))
		return errorJSON(c, http.StatusInternalServerError, "Database insert failed")
	}

	s.metrics.Hunts.WithLabelValues("ok").Inc()
	s.logger.Info("report stored",
		zap.String("report_id", id.String()),
		zap.Int("generated", len(result.Scholarships)),
		zap.Int("active", len(active)),
	)
	return c.JSON(http.StatusOK, startHuntResponse{
		ID:       id.String(),
		Redirect: "/gate/" + id.String(),
		Count:    len(active),
	})
}

// activeScholarships normalizes each deadline for storage and drops entries whose
// deadline date lies before today.
func activeScholarships(in []models.ScholarshipRecord, now time.Time) []models.ScholarshipRecord {
	out := make([]models.ScholarshipRecord, 0, len(in))
	for _, rec := range in {
		rec.Deadline = report.NormalizeDeadline(rec.Deadline)
		if report.IsExpired(rec.Deadline, now) {
			continue
		}
		out = append(out, rec)
	}
	return out
}
