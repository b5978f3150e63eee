package app

import (
	"github.com/saradorri/flipside/internal/domain"
	"github.com/saradorri/flipside/internal/infrastructure/repository"
	"gorm.io/gorm"
)

func (a *application) InitRepository(db *gorm.DB) (domain.UserRepository, domain.InventoryRepository) {
	return repository.NewUserRepository(db), repository.NewInventoryRepository(db)
}
