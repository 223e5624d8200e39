// Package server exposes the quest API over HTTP.
package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/devika/mathquest/internal/quest"
	"github.com/devika/mathquest/internal/session"
	"github.com/devika/mathquest/internal/store"
)

// Config holds the HTTP server settings.
type Config struct {
	Addr         string
	AllowOrigins []string
	Release      bool
}

// DefaultConfig returns sensible defaults for local use.
func DefaultConfig() Config {
	return Config{
		Addr:         ":8080",
		AllowOrigins: []string{"http://localhost:5173"},
	}
}

// Server routes quest API requests.
type Server struct {
	engine   *gin.Engine
	cfg      Config
	log      *slog.Logger
	sessions *session.Service
	quests   *quest.Service
	users    store.AppUserRepo
	events   store.EventRepo
}

// New builds the server and its routes. users may be nil; the free-tier
// daily limit is then not enforced. events may be nil; purchases and the
// quest log are then not recorded.
func New(cfg Config, log *slog.Logger, sessions *session.Service, quests *quest.Service, users store.AppUserRepo, events store.EventRepo) *Server {
	if cfg.Release {
		gin.SetMode(gin.ReleaseMode)
	}
	if log == nil {
		log = slog.Default()
	}

	engine := gin.New()
	engine.Use(gin.Recovery())

	s := &Server{
		engine:   engine,
		cfg:      cfg,
		log:      log,
		sessions: sessions,
		quests:   quests,
		users:    users,
		events:   events,
	}

	engine.Use(s.requestLogger())
	engine.Use(cors.New(cors.Config{
		AllowOrigins:  cfg.AllowOrigins,
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}))

	engine.GET("/healthz", s.handleHealth)

	api := engine.Group("/api")
	api.GET("/characters", s.handleCharacters)
	api.GET("/shop", s.handleShop)
	api.GET("/session/:id", s.handleSession)
	api.GET("/session/:id/quests", s.handleQuestLog)
	api.POST("/story", s.dailyLimit(), s.handleStory)
	api.POST("/shop/buy", s.handleBuy)
	api.POST("/minigame/complete", s.handleMiniGameComplete)

	return s
}

// Handler returns the http.Handler, for tests and custom servers.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves until the listener fails.
func (s *Server) Run() error {
	s.log.Info("server listening", "addr", s.cfg.Addr)
	return s.engine.Run(s.cfg.Addr)
}

// requestLogger emits one structured line per request.
func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.log.Info("http request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
		)
	}
}
