package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/david/scholarship-hunter/internal/auth"
	"github.com/david/scholarship-hunter/internal/metrics"
	"github.com/david/scholarship-hunter/internal/report"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

// Deps wires the server to its collaborators. Mailer and Leads may be nil. Without an
// Unlocker every report is served locked and unlock requests fail.
type Deps struct {
	Store     ReportStore
	Hunter    Hunter
	Mailer    Mailer
	Leads     LeadPublisher
	Assembler *report.Assembler
	Unlocker  *auth.Unlocker
	Metrics   *metrics.Registry
	Logger    *zap.Logger
}

// Options are the tunables read from configuration.
type Options struct {
	BaseURL      string
	CORSOrigins  []string
	PreviewCount int
	Now          func() time.Time
}

type Server struct {
	Echo *echo.Echo

	store     ReportStore
	hunter    Hunter
	mailer    Mailer
	leads     LeadPublisher
	assembler *report.Assembler
	unlocker  *auth.Unlocker
	metrics   *metrics.Registry
	logger    *zap.Logger

	baseURL      string
	previewCount int
	now          func() time.Time
}

func NewServer(deps Deps, opts Options) *Server {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	allowedOrigins := opts.CORSOrigins
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"http://localhost:3000"}
	}
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: allowedOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))

	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	reg := deps.Metrics
	if reg == nil {
		reg = metrics.NewRegistry()
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	previewCount := opts.PreviewCount
	if previewCount < 0 {
		previewCount = 0
	}

	s := &Server{
		Echo:         e,
		store:        deps.Store,
		hunter:       deps.Hunter,
		mailer:       deps.Mailer,
		leads:        deps.Leads,
		assembler:    deps.Assembler,
		unlocker:     deps.Unlocker,
		metrics:      reg,
		logger:       logger,
		baseURL:      strings.TrimRight(opts.BaseURL, "/"),
		previewCount: previewCount,
		now:          now,
	}

	s.routes()
	return s
}

func (s *Server) routes() {
	s.Echo.GET("/health", s.handleHealth)
	s.Echo.GET("/metrics", echo.WrapHandler(s.metrics.Handler()))

	api := s.Echo.Group("/api")
	api.POST("/start-hunt", s.handleStartHunt)
	api.POST("/unlock", s.handleUnlock)
	api.POST("/notifications/send", s.handleSendNotification)

	reports := api.Group("")
	if s.unlocker != nil {
		reports.Use(s.unlocker.Middleware)
	}
	reports.GET("/report", s.handleGetReport)
	reports.GET("/reports/:id", s.handleGetReport)
}

func (s *Server) handleHealth(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

func (s *Server) Start(port string) error {
	return s.Echo.Start(":" + port)
}

func errorJSON(c echo.Context, status int, msg string) error {
	return c.JSON(status, map[string]string{"error": msg})
}
