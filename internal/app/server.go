package app

import (
	"context"

	"github.com/saradorri/flipside/internal/domain"
	"github.com/saradorri/flipside/internal/http"
	"github.com/saradorri/flipside/internal/http/handlers"
	"github.com/saradorri/flipside/internal/http/middleware"
	"github.com/saradorri/flipside/internal/infrastructure/auth"
	"github.com/saradorri/flipside/internal/infrastructure/logger"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// InitHTTPServer initializes the HTTP server with all dependencies
func (a *application) InitHTTPServer(
	userHandler *handlers.UserHandler,
	inventoryHandler *handlers.InventoryHandler,
	betsHandler *handlers.BetsHandler,
	jwtService auth.JWTService,
	errorHandler *middleware.ErrorHandler,
	log *logger.Logger,
) *http.Server {
	return http.NewServer(
		jwtService,
		userHandler,
		inventoryHandler,
		betsHandler,
		errorHandler,
		log,
		a.config.GetServerAddress(),
		a.config.Server.RequestTimeout,
	)
}

// RegisterHooks ties the HTTP server and the snapshot feed to the fx lifecycle
func (a *application) RegisterHooks(lc fx.Lifecycle, server *http.Server, snapshotFeed domain.SnapshotFeed, log *logger.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			snapshotFeed.StartBackgroundProcessing()
			go func() {
				if err := server.Start(); err != nil {
					log.Fatal("HTTP server failed", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			snapshotFeed.StopBackgroundProcessing()
			err := server.Shutdown(ctx)
			_ = log.Sync()
			return err
		},
	})
}
