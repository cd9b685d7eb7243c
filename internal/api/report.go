package api

import (
	"errors"
	"net/http"

	"github.com/david/scholarship-hunter/internal/auth"
	"github.com/david/scholarship-hunter/internal/db"
	"github.com/david/scholarship-hunter/internal/report"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type reportResponse struct {
	ID              string                         `json:"id"`
	TotalValueLabel string                         `json:"totalValueLabel"`
	Scholarships    []report.NormalizedScholarship `json:"scholarships"`
	Unlocked        bool                           `json:"unlocked"`
	LockedCount     int                            `json:"lockedCount"`
}

func (s *Server) handleGetReport(c echo.Context) error {
	rawID := c.Param("id")
	if rawID == "" {
		rawID = c.QueryParam("id")
	}
	if rawID == "" {
		return errorJSON(c, http.StatusBadRequest, "Missing report id")
	}
	id, err := uuid.Parse(rawID)
	if err != nil {
		return errorJSON(c, http.StatusBadRequest, "Invalid report id")
	}

	rec, err := s.store.GetReport(c.Request().Context(), id)
	if errors.Is(err, db.ErrNotFound) {
		return errorJSON(c, http.StatusNotFound, "Report not found")
	}
	if err != nil {
		s.logger.Error("failed to load report", zap.String("report_id", id.String()), zap.Error(err))
		return errorJSON(c, http.StatusInternalServerError, "Failed to load report")
	}

	rep := s.assembler.AssembleRecord(*rec, s.now())
	s.recordAssembly(rep)

	unlocked := auth.Unlocks(c, id)
	locked := 0
	if !unlocked {
		locked = lockBeyondPreview(rep.Scholarships, s.previewCount)
	}

	return c.JSON(http.StatusOK, reportResponse{
		ID:              rep.ID,
		TotalValueLabel: rep.TotalValueLabel,
		Scholarships:    rep.Scholarships,
		Unlocked:        unlocked,
		LockedCount:     locked,
	})
}

func (s *Server) recordAssembly(rep report.Report) {
	s.metrics.ReportsAssembled.Inc()
	for _, sch := range rep.Scholarships {
		if report.IsSentinel(sch.DeadlineNormalized) {
			s.metrics.DeadlineSentinel.WithLabelValues(sch.DeadlineNormalized).Inc()
		}
	}
}

// lockBeyondPreview redacts every entry after the first preview entries in place and
// returns how many were locked. The list keeps its length and order.
func lockBeyondPreview(list []report.NormalizedScholarship, preview int) int {
	locked := 0
	for i := range list {
		if i < preview {
			continue
		}
		e := &list[i]
		e.Locked = true
		e.AmountDisplay = ""
		e.AmountInrLakhs = 0
		e.DeadlineRaw = ""
		e.WhyItFits = ""
		e.StrategyTip = ""
		e.Description = ""
		locked++
	}
	return locked
}
