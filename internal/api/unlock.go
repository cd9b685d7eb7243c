package api

import (
	"context"
	"errors"
	"net/http"
	"net/mail"
	"net/url"
	"strings"

	"github.com/david/scholarship-hunter/internal/db"
	"github.com/david/scholarship-hunter/internal/leads"
	"github.com/david/scholarship-hunter/internal/models"
	"github.com/david/scholarship-hunter/internal/notify"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type unlockRequest struct {
	ReportID string `json:"reportId"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	WhatsApp string `json:"whatsapp"`
}

type unlockResponse struct {
	LeadID    string `json:"leadId"`
	Token     string `json:"token"`
	MagicLink string `json:"magicLink"`
}

func (s *Server) handleUnlock(c echo.Context) error {
	var req unlockRequest
	if err := c.Bind(&req); err != nil {
		return errorJSON(c, http.StatusBadRequest, "Invalid request")
	}
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.WhatsApp = strings.TrimSpace(req.WhatsApp)

	if req.ReportID == "" || req.Name == "" || req.Email == "" || req.WhatsApp == "" {
		return errorJSON(c, http.StatusBadRequest, "Missing required fields")
	}
	reportID, err := uuid.Parse(strings.TrimSpace(req.ReportID))
	if err != nil {
		return errorJSON(c, http.StatusBadRequest, "Invalid report id")
	}
	if _, err := mail.ParseAddress(req.Email); err != nil {
		return errorJSON(c, http.StatusBadRequest, "Invalid email address")
	}

	if s.unlocker == nil {
		return errorJSON(c, http.StatusServiceUnavailable, "Unlock is not configured")
	}

	ctx := c.Request().Context()
	rec, err := s.store.GetReport(ctx, reportID)
	if errors.Is(err, db.ErrNotFound) {
		return errorJSON(c, http.StatusNotFound, "Report not found")
	}
	if err != nil {
		s.logger.Error("failed to load report for unlock", zap.Error(err))
		return errorJSON(c, http.StatusInternalServerError, "Report lookup error")
	}

	lead, err := s.store.CreateLead(ctx, models.Lead{
		ReportID: reportID,
		Name:     req.Name,
		Email:    req.Email,
		WhatsApp: req.WhatsApp,
	})
	if err != nil {
		s.logger.Error("lead insert failed", zap.Error(err))
		return errorJSON(c, http.StatusInternalServerError, "Lead error")
	}
	if err := s.store.AttachLead(ctx, reportID, lead.ID); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return errorJSON(c, http.StatusNotFound, "Report not found")
		}
		s.logger.Error("report update failed", zap.String("report_id", reportID.String()), zap.Error(err))
		return errorJSON(c, http.StatusInternalServerError, "Report update error")
	}
	s.metrics.LeadsCaptured.Inc()

	token, err := s.unlocker.Issue(reportID, lead.ID)
	if err != nil {
		s.logger.Error("failed to issue unlock token", zap.Error(err))
		return errorJSON(c, http.StatusInternalServerError, "Server error")
	}
	link := s.magicLink(reportID, token)

	rep := s.assembler.AssembleRecord(*rec, s.now())
	s.publishLead(ctx, leads.NewEvent(lead, rec.Input, rep.TotalValueLabel, len(rep.Scholarships), s.now()))
	s.sendReportReady(ctx, lead, link, rep.TotalValueLabel)

	return c.JSON(http.StatusOK, unlockResponse{
		LeadID:    lead.ID.String(),
		Token:     token,
		MagicLink: link,
	})
}

func (s *Server) magicLink(reportID uuid.UUID, token string) string {
	return s.baseURL + "/report/" + reportID.String() + "?token=" + url.QueryEscape(token)
}

// publishLead and sendReportReady only log failures; the lead is already stored.
func (s *Server) publishLead(ctx context.Context, ev leads.Event) {
	if s.leads == nil {
		return
	}
	if err := s.leads.Publish(ctx, ev); err != nil {
		for _, name := range leads.FailedSinks(err) {
			s.metrics.LeadSinkErrors.WithLabelValues(name).Inc()
		}
		s.logger.Warn("lead sink publish failed", zap.String("lead_id", ev.LeadID), zap.Error(err))
	}
}

func (s *Server) sendReportReady(ctx context.Context, lead models.Lead, link, total string) {
	if s.mailer == nil {
		return
	}
	msg, err := notify.ReportReadyEmail(lead.Email, notify.EmailData{Name: lead.Name, ReportLink: link, TotalValue: total})
	if err != nil {
		s.logger.Error("failed to render report email", zap.Error(err))
		return
	}
	if _, err := s.mailer.Send(ctx, msg); err != nil {
		s.metrics.EmailsSent.WithLabelValues("error").Inc()
		s.logger.Warn("report email failed", zap.String("lead_id", lead.ID.String()), zap.Error(err))
		return
	}
	s.metrics.EmailsSent.WithLabelValues("ok").Inc()
}
