package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"mascot-chat/config"
	"mascot-chat/internal/handler"
	"mascot-chat/internal/middleware"
	"mascot-chat/internal/ratelimit"
	"mascot-chat/internal/services"
	"mascot-chat/pkg/logger"

	"github.com/gin-gonic/gin"
)

type Server struct {
	httpServer *http.Server
	engine     *gin.Engine
	config     *config.Config
	logger     *logger.Logger
}

var (
	ReleaseMode = "release"
	DebugMode   = "debug"
	TestMode    = "test"
)

type Handlers struct {
	System *handler.SystemHandler
	Chat   *handler.ChatHandler
	Upload *handler.UploadHandler
}

// jsonBodyLimit caps chat request bodies; uploadBodyLimit leaves headroom
// for the multipart envelope around a max-size file.
const (
	jsonBodyLimit   = 1 << 20
	uploadBodyLimit = services.MaxUploadBytes + 10*1024
)

func New(cfg *config.Config, l *logger.Logger) *Server {
	if cfg.AppMode == ReleaseMode {
		gin.SetMode(gin.ReleaseMode)
	} else if cfg.AppMode == TestMode {
		gin.SetMode(gin.TestMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	engine := gin.New()
	engine.Use(gin.Recovery())

	return &Server{
		httpServer: &http.Server{
			Addr:    fmt.Sprintf(":%s", cfg.AppPort),
			Handler: engine,
		},
		engine: engine,
		config: cfg,
		logger: l,
	}
}

// SetupRoutes wires the middleware chain and the route table. The rate limit
// stores are injected so /chat and /mascot/upload count independently and
// tests get a fresh window per case.
func (s *Server) SetupRoutes(handlers *Handlers, chatLimiter, uploadLimiter ratelimit.Store) {
	s.engine.Use(middleware.SecurityHeaders())
	s.engine.Use(middleware.RequestIDMiddleware())
	s.engine.Use(middleware.CORSMiddleware(s.config.CORSOrigin))
	s.engine.Use(middleware.LoggingMiddleware(s.logger))
	s.engine.Use(middleware.ErrorHandler(s.logger))

	s.engine.GET("/", handlers.System.Root)
	s.engine.GET("/health", handlers.System.Health)
	s.engine.GET("/openai/ping", handlers.Chat.Ping)

	s.engine.GET("/chat", handlers.Chat.ChatUsage)
	s.engine.POST("/chat",
		middleware.BodyLimit(jsonBodyLimit),
		middleware.RateLimitMiddleware(chatLimiter),
		handlers.Chat.Chat)

	s.engine.POST("/mascot/upload",
		middleware.BodyLimit(uploadBodyLimit),
		middleware.RateLimitMiddleware(uploadLimiter),
		handlers.Upload.Upload)
	s.engine.GET("/uploads/:name", handlers.Upload.Serve)
}

// Engine exposes the router for tests.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func (s *Server) Start() error {
	go func() {
		if s.logger != nil {
			s.logger.Infof("Starting the server on port %s...", s.config.AppPort)
		}
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			if s.logger != nil {
				s.logger.Errorf("Error in starting the server: %s", err)
			}
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	if s.logger != nil {
		s.logger.Infof("Server is running on :%s", s.config.AppPort)
	}

	<-quit

	if s.logger != nil {
		s.logger.Infof("Quitting signal received.. Shutting down after 5 seconds")
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		if s.logger != nil {
			s.logger.Infof("Error in the graceful shutdown of the server: %s", err)
		}
		return err
	}

	if s.logger != nil {
		s.logger.Infof("Server stopped gracefully")
	}

	return nil
}
