package api

import (
	"net/http"
	"strings"

	"github.com/david/scholarship-hunter/internal/notify"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type notificationRequest struct {
	Type       string `json:"type"`
	Email      string `json:"email"`
	Name       string `json:"name"`
	ReportLink string `json:"reportLink"`
}

func notificationError(c echo.Context, status int, msg string) error {
	return c.JSON(status, map[string]interface{}{"success": false, "error": msg})
}

func (s *Server) handleSendNotification(c echo.Context) error {
	var req notificationRequest
	if err := c.Bind(&req); err != nil {
		return notificationError(c, http.StatusBadRequest, "Invalid JSON body")
	}

	switch {
	case strings.TrimSpace(req.Email) == "":
		return notificationError(c, http.StatusBadRequest, "Missing email")
	case strings.TrimSpace(req.Type) == "":
		return notificationError(c, http.StatusBadRequest, "Missing type")
	case strings.TrimSpace(req.Name) == "":
		return notificationError(c, http.StatusBadRequest, "Missing name")
	case strings.TrimSpace(req.ReportLink) == "":
		return notificationError(c, http.StatusBadRequest, "Missing reportLink")
	}

	if req.Type != "welcome" {
		return notificationError(c, http.StatusBadRequest, "Unknown email type")
	}
	if s.mailer == nil {
		return notificationError(c, http.StatusInternalServerError, "Failed to send email")
	}

	msg, err := notify.WelcomeEmail(strings.TrimSpace(req.Email), notify.EmailData{Name: req.Name, ReportLink: req.ReportLink})
	if err != nil {
		s.logger.Error("failed to render welcome email", zap.Error(err))
		return notificationError(c, http.StatusInternalServerError, "Failed to send email")
	}
	if _, err := s.mailer.Send(c.Request().Context(), msg); err != nil {
		s.metrics.EmailsSent.WithLabelValues("error").Inc()
		s.logger.Warn("welcome email failed", zap.String("type", req.Type), zap.Error(err))
		return notificationError(c, http.StatusInternalServerError, "Failed to send email")
	}
	s.metrics.EmailsSent.WithLabelValues("ok").Inc()

	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}
