package app

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/saradorri/flipside/internal/config"
	"go.uber.org/fx"
)

// Application provides application level setup
type Application interface {
	Setup()
	GetContext() context.Context
}

// application represents context and configure file
type application struct {
	ctx    context.Context
	config *config.Config
}

// NewApplication creates a new application
func NewApplication(ctx context.Context) Application {
	return &application{ctx: ctx}
}

// GetContext returns application context
func (a *application) GetContext() context.Context {
	return a.ctx
}

// Setup creates a new fx application with all modules
func (a *application) Setup() {
	fmt.Println("[x] Starting Flipside Service...")

	path := flag.String("e", "./config", "env file directory")
	flag.Parse()

	err := a.setupConfig(*path)
	if err != nil {
		log.Panic(err.Error())
	}

	app := fx.New(
		fx.Provide(
			a.InitLogger,
			a.InitDatabase,
			a.InitRepository,
			a.InitJWTService,
			a.InitUserUseCase,
			a.InitInventoryUseCase,
			a.InitGameServer,
			a.InitSubscriber,
			a.InitSnapshotStore,
			a.InitSnapshotFeed,
			a.InitUserHandler,
			a.InitInventoryHandler,
			a.InitBetsHandler,
			a.InitErrorHandler,
			a.InitHTTPServer,
		),
		fx.Invoke(a.RegisterHooks),
	)

	app.Run()
}
