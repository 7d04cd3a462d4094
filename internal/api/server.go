package api

import (
	"context"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/yt-insights/channel-report/internal/apperrors"
	"github.com/yt-insights/channel-report/internal/config"
	"github.com/yt-insights/channel-report/internal/logging"
	"github.com/yt-insights/channel-report/internal/metrics"
	"github.com/yt-insights/channel-report/internal/models"
	"go.uber.org/zap"
)

const defaultLookupTimeout = 10 * time.Second

// Server represents the API server
type Server struct {
	router  *gin.Engine
	lookup  ChannelLookup
	logger  *zap.Logger
	timeout time.Duration
	static  http.FileSystem
}

// NewServer creates a new API server
func NewServer(cfg *config.Config, lookup ChannelLookup, logger *zap.Logger) *Server {
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	router := gin.New()
	router.Use(gin.Recovery(), logging.RequestLogger(logger))
	router.Use(cors.New(corsConfig(cfg.AllowedOrigins)))
	router.SetHTMLTemplate(loadTemplates())

	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = defaultLookupTimeout
	}

	server := &Server{
		router:  router,
		lookup:  lookup,
		logger:  logger,
		timeout: timeout,
		static:  http.Dir(cfg.StaticDir),
	}

	// Setup routes
	server.setupRoutes()

	return server
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "HEAD", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Cache-Control", "Pragma"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 {
		cfg.AllowAllOrigins = true
		return cfg
	}
	for _, o := range origins {
		if o == "*" {
			cfg.AllowAllOrigins = true
			return cfg
		}
	}
	cfg.AllowOrigins = origins
	cfg.AllowCredentials = true
	return cfg
}

// setupRoutes configures all the routes for the server
func (s *Server) setupRoutes() {
	// Health check
	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})

	// Report endpoints
	s.router.GET("/tool/report", s.getReport)
	s.router.GET("/api/report", s.getReport)

	// Everything else is the static site
	s.router.NoRoute(s.serveStatic)
}

// Handler exposes the router, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.router
}

// getReport resolves the username, fetches statistics and renders the report
func (s *Server) getReport(c *gin.Context) {
	username := strings.TrimSpace(c.Query("username"))
	asJSON := wantsJSON(c)

	if username == "" {
		s.respondError(c, apperrors.NewMissingParameter("username"), "", asJSON)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), s.timeout)
	defer cancel()

	stats, err := s.lookup.Lookup(ctx, username)
	if err != nil {
		s.respondError(c, apperrors.Classify(err), username, asJSON)
		return
	}

	report := metrics.ComputeReport(*stats)
	s.logger.Info("Report generated",
		zap.String("query", username),
		zap.String("channelId", report.ChannelID),
		zap.Bool("authentic", report.IsAudienceAuthentic))

	if asJSON {
		c.JSON(http.StatusOK, report)
		return
	}
	renderReport(c, report, models.ParseReportView(c.Query("view")))
}

func (s *Server) respondError(c *gin.Context, appErr *apperrors.AppError, query string, asJSON bool) {
	fields := []zap.Field{
		zap.String("code", appErr.Code),
		zap.String("query", query),
		zap.Any("context", appErr.Context),
	}
	if appErr.Cause != nil {
		fields = append(fields, zap.Error(appErr.Cause))
	}
	if appErr.StatusCode >= http.StatusInternalServerError {
		s.logger.Error("Report request failed", fields...)
	} else {
		s.logger.Info("Report request rejected", fields...)
	}
	_ = c.Error(appErr)

	if asJSON {
		c.JSON(appErr.StatusCode, gin.H{
			"error": gin.H{
				"code":    appErr.Code,
				"message": appErr.Message,
			},
		})
		return
	}
	renderError(c, appErr, query)
}

// wantsJSON honours an explicit format parameter first, then the route,
// then the Accept header. HTML is the default.
func wantsJSON(c *gin.Context) bool {
	switch strings.ToLower(c.Query("format")) {
	case "json":
		return true
	case "html":
		return false
	}
	if c.FullPath() == "/api/report" {
		return true
	}
	return c.NegotiateFormat(gin.MIMEHTML, gin.MIMEJSON) == gin.MIMEJSON
}

// serveStatic serves files from the static directory and falls back to
// index.html for anything that does not exist.
func (s *Server) serveStatic(c *gin.Context) {
	if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		return
	}

	name := path.Clean("/" + c.Request.URL.Path)
	if name != "/" && s.exists(name) {
		if strings.HasSuffix(name, ".html") {
			c.Header("Cache-Control", noCacheHeader)
		}
		c.FileFromFS(name, s.static)
		return
	}

	if !s.exists("/index.html") {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		return
	}
	// serving the directory picks up index.html; naming the file would redirect to "/"
	c.Header("Cache-Control", noCacheHeader)
	c.FileFromFS("/", s.static)
}

func (s *Server) exists(name string) bool {
	f, err := s.static.Open(name)
	if err != nil {
		return false
	}
	defer f.Close()
	info, err := f.Stat()
	return err == nil && !info.IsDir()
}

// Start starts the server on the specified port
func (s *Server) Start(port string) error {
	return s.router.Run(":" + port)
}
