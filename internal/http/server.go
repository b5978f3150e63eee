package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/saradorri/flipside/internal/http/handlers"
	"github.com/saradorri/flipside/internal/http/middleware"
	"github.com/saradorri/flipside/internal/infrastructure/auth"
	"github.com/saradorri/flipside/internal/infrastructure/logger"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// Server represents the HTTP server
type Server struct {
	router           *gin.Engine
	httpServer       *http.Server
	jwtService       auth.JWTService
	userHandler      *handlers.UserHandler
	inventoryHandler *handlers.InventoryHandler
	betsHandler      *handlers.BetsHandler
	errorHandler     *middleware.ErrorHandler
	logger           *logger.Logger
}

// NewServer creates a new HTTP server listening on addr
func NewServer(
	jwtService auth.JWTService,
	userHandler *handlers.UserHandler,
	inventoryHandler *handlers.InventoryHandler,
	betsHandler *handlers.BetsHandler,
	errorHandler *middleware.ErrorHandler,
	log *logger.Logger,
	addr string,
	requestTimeout time.Duration,
) *Server {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()

	router.Use(errorHandler.RequestIDMiddleware())
	router.Use(errorHandler.ErrorHandlerMiddleware())
	router.Use(errorHandler.TimeoutMiddleware(requestTimeout))
	router.Use(middleware.LoggerMiddleware(log))

	server := &Server{
		router: router,
		httpServer: &http.Server{
			Addr:              addr,
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
		},
		jwtService:       jwtService,
		userHandler:      userHandler,
		inventoryHandler: inventoryHandler,
		betsHandler:      betsHandler,
		errorHandler:     errorHandler,
		logger:           log.Named("http"),
	}

	server.setupRoutes()
	return server
}

// setupRoutes configures all the routes
func (s *Server) setupRoutes() {
	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	s.router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := s.router.Group("/api/v1")
	{
		protected := v1.Group("/users")
		protected.Use(middleware.JWTMiddleware(s.jwtService))
		{
			protected.GET("/me", s.userHandler.GetMe)
		}

		userRoutes := v1.Group("/users")
		userRoutes.Use(middleware.OptionalJWTMiddleware(s.jwtService))
		{
			userRoutes.GET("/:id", s.userHandler.GetProfile)
			userRoutes.GET("/:id/inventory", s.inventoryHandler.GetInventory)
		}

		coinflipRoutes := v1.Group("/coinflip")
		{
			coinflipRoutes.GET("/bets/:side", s.betsHandler.GetSide)
			coinflipRoutes.GET("/live", s.betsHandler.Live)
		}
	}
}

// Handler returns the routed handler
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start serves until Shutdown is called
func (s *Server) Start() error {
	s.logger.Info("HTTP server listening", zap.String("addr", s.httpServer.Addr))
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown gracefully stops the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("HTTP server shutting down")
	return s.httpServer.Shutdown(ctx)
}
