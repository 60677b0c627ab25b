// Package server exposes the HTTP API: auth, food catalog, food log,
// progress, stats and photo analysis.
package server

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Thecodingpm/calories-counterr/internal/apperrors"
	"github.com/Thecodingpm/calories-counterr/internal/domain"
	"github.com/Thecodingpm/calories-counterr/internal/logger"
	"github.com/Thecodingpm/calories-counterr/internal/session"
)

type Server struct {
	sessions   *session.Manager
	foods      domain.FoodService
	entries    domain.EntryService
	analyzer   domain.Analyzer
	jwtSecret  []byte
	errHandler *apperrors.Handler
}

func New(sessions *session.Manager, foods domain.FoodService, entries domain.EntryService, analyzer domain.Analyzer, jwtSecret string) *Server {
	return &Server{
		sessions:   sessions,
		foods:      foods,
		entries:    entries,
		analyzer:   analyzer,
		jwtSecret:  []byte(jwtSecret),
		errHandler: apperrors.NewHandler(logger.GetLogger()),
	}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger())

	r.GET("/healthz", func(c *gin.Context) {
		c.String(200, "ok")
	})

	auth := r.Group("/api/auth")
	{
		auth.POST("/register", s.register)
		auth.POST("/login", s.login)
		auth.POST("/logout", s.authMiddleware(), s.logout)
	}

	api := r.Group("/api")
	api.Use(s.authMiddleware())
	{
		api.GET("/foods", s.getFoods)
		api.POST("/foods", s.addFood)
		api.POST("/entries", s.addEntry)
		api.DELETE("/entries/:id", s.deleteEntry)
		api.GET("/entries", s.getEntries)
		api.GET("/progress", s.getProgress)
		api.GET("/stats", s.getStats)
		api.PUT("/user/goal", s.updateGoal)
		api.POST("/analyze", s.analyze)
		api.POST("/analyze/accept", s.acceptAnalysis)
	}

	return r
}

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Info("Request handled",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration_ms", time.Since(start).Milliseconds(),
		)
	}
}
