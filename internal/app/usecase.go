package app

import (
	"github.com/saradorri/flipside/internal/domain"
	"github.com/saradorri/flipside/internal/infrastructure/logger"
	"github.com/saradorri/flipside/internal/usecase/inventory"
	"github.com/saradorri/flipside/internal/usecase/user"
)

func (a *application) InitUserUseCase(ur domain.UserRepository, log *logger.Logger) domain.UserUseCase {
	return user.NewUserUseCase(ur, log)
}

func (a *application) InitInventoryUseCase(
	ur domain.UserRepository,
	ir domain.InventoryRepository,
	log *logger.Logger,
) domain.InventoryUseCase {
	return inventory.NewInventoryUseCase(ur, ir, a.config.Inventory.PageSize, log)
}
