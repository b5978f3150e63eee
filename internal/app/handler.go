package app

import (
	"github.com/saradorri/flipside/internal/domain"
	"github.com/saradorri/flipside/internal/http/handlers"
	"github.com/saradorri/flipside/internal/infrastructure/logger"
)

func (a *application) InitUserHandler(uc domain.UserUseCase) *handlers.UserHandler {
	return handlers.NewUserHandler(uc)
}

func (a *application) InitInventoryHandler(ic domain.InventoryUseCase) *handlers.InventoryHandler {
	return handlers.NewInventoryHandler(ic)
}

func (a *application) InitBetsHandler(store domain.SnapshotStore, log *logger.Logger) *handlers.BetsHandler {
	return handlers.NewBetsHandler(store, log)
}
