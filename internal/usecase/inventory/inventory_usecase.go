package inventory

import (
	"context"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/saradorri/flipside/internal/domain"
	"github.com/saradorri/flipside/internal/infrastructure/logger"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// DefaultPageSize is used when no page size is configured
const DefaultPageSize = 20

// InventoryUseCase implements domain.InventoryUseCase
type InventoryUseCase struct {
	userRepo      domain.UserRepository
	inventoryRepo domain.InventoryRepository
	pageSize      int
	logger        *logger.Logger
}

// NewInventoryUseCase creates a new inventory use case
func NewInventoryUseCase(
	userRepo domain.UserRepository,
	inventoryRepo domain.InventoryRepository,
	pageSize int,
	logger *logger.Logger,
) domain.InventoryUseCase {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &InventoryUseCase{
		userRepo:      userRepo,
		inventoryRepo: inventoryRepo,
		pageSize:      pageSize,
		logger:        logger,
	}
}

// TotalPages returns the number of pages needed for count items. An empty
// inventory still has one (empty) page.
func TotalPages(count int64, pageSize int) int {
	if count <= 0 {
		return 1
	}
	return int((count + int64(pageSize) - 1) / int64(pageSize))
}

// GetInventory returns one page of the user's inventory matching filters
func (uc *InventoryUseCase) GetInventory(ctx context.Context, userID string, page int, filters domain.InventoryFilters) (*domain.InventoryPage, error) {
	uc.logger.Debug("Retrieving inventory",
		zap.String("user_id", userID),
		zap.Int("page", page),
		zap.Any("filters", filters))

	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.NewAppError(domain.ErrCodeInvalidFormat, "Invalid user ID", http.StatusBadRequest, err)
	}
	if page < 1 {
		return nil, domain.NewValidationError("page", "must be at least 1")
	}

	filters = filters.Normalize()
	rarity, err := filters.Validate()
	if err != nil {
		uc.logger.Warn("Invalid inventory filters",
			zap.String("user_id", userID),
			zap.Error(err))
		return nil, err
	}

	q := domain.InventoryQuery{
		UserID:   id,
		Name:     filters.Name,
		Rarity:   rarity,
		SortBy:   filters.SortBy,
		Order:    filters.Order,
		Offset:   (page - 1) * uc.pageSize,
		PageSize: uc.pageSize,
	}

	var (
		user  *domain.User
		count int64
		items []domain.Item
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		user, err = uc.userRepo.GetByID(gctx, id)
		return err
	})
	g.Go(func() error {
		var err error
		count, err = uc.inventoryRepo.Count(gctx, q)
		return err
	})
	g.Go(func() error {
		var err error
		items, err = uc.inventoryRepo.List(gctx, q)
		return err
	})
	if err := g.Wait(); err != nil {
		uc.logger.Error("Failed to query inventory",
			zap.String("user_id", userID),
			zap.Int("page", page),
			zap.Error(err))
		return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to get inventory", http.StatusInternalServerError, err)
	}

	if user == nil {
		return nil, domain.NewAppError(domain.ErrCodeUserNotFound, "User not found", http.StatusNotFound, nil)
	}

	totalPages := TotalPages(count, uc.pageSize)
	if page > totalPages {
		return nil, domain.NewAppError(
			domain.ErrCodeInvalidRange,
			fmt.Sprintf("Page %d is beyond the last page %d", page, totalPages),
			http.StatusBadRequest,
			nil,
		)
	}

	if items == nil {
		items = []domain.Item{}
	}

	uc.logger.Info("Inventory retrieved successfully",
		zap.String("user_id", userID),
		zap.Int("page", page),
		zap.Int("total_pages", totalPages),
		zap.Int("items", len(items)))

	return &domain.InventoryPage{
		Items:       items,
		CurrentPage: page,
		TotalPages:  totalPages,
	}, nil
}
