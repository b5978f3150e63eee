package repository

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/saradorri/flipside/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// InventoryRepository implements domain.InventoryRepository
type InventoryRepository struct {
	db *gorm.DB
}

// NewInventoryRepository creates a new inventory repository
func NewInventoryRepository(db *gorm.DB) *InventoryRepository {
	return &InventoryRepository{db: db}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike makes a user supplied substring safe inside a LIKE pattern
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

// orderColumns maps the requested sort onto columns; inventory position
// always breaks ties so pages are stable
func orderColumns(sortBy, order string) []clause.OrderByColumn {
	desc := order == domain.OrderDesc
	position := clause.OrderByColumn{Column: clause.Column{Table: "user_inventory", Name: "position"}}

	var primary clause.Column
	switch sortBy {
	case domain.SortByName:
		primary = clause.Column{Table: "items", Name: "name"}
	case domain.SortByRarity:
		primary = clause.Column{Table: "items", Name: "rarity"}
	case domain.SortByAcquired:
		primary = clause.Column{Table: "user_inventory", Name: "acquired_at"}
	default:
		position.Desc = desc
		return []clause.OrderByColumn{position}
	}
	return []clause.OrderByColumn{{Column: primary, Desc: desc}, position}
}

// scoped returns the filtered join of a user's inventory with items
func (r *InventoryRepository) scoped(ctx context.Context, q domain.InventoryQuery) *gorm.DB {
	db := r.db.WithContext(ctx).
		Model(&domain.InventoryEntry{}).
		Joins("JOIN items ON items.id = user_inventory.item_id").
		Where("user_inventory.user_id = ?", q.UserID)

	if q.Name != "" {
		db = db.Where(`items.name ILIKE ? ESCAPE '\'`, "%"+escapeLike(q.Name)+"%")
	}
	if q.Rarity != nil {
		db = db.Where("items.rarity = ?", *q.Rarity)
	}
	return db
}

// Count returns the number of inventory entries matching q
func (r *InventoryRepository) Count(ctx context.Context, q domain.InventoryQuery) (int64, error) {
	var count int64
	err := r.countQuery(ctx, q, &count).Error
	return count, err
}

func (r *InventoryRepository) countQuery(ctx context.Context, q domain.InventoryQuery, count *int64) *gorm.DB {
	return r.scoped(ctx, q).Count(count)
}

// List returns one page of items matching q
func (r *InventoryRepository) List(ctx context.Context, q domain.InventoryQuery) ([]domain.Item, error) {
	items := []domain.Item{}
	err := r.listQuery(ctx, q, &items).Error
	return items, err
}

func (r *InventoryRepository) listQuery(ctx context.Context, q domain.InventoryQuery, items *[]domain.Item) *gorm.DB {
	db := r.scoped(ctx, q).Select("items.*")
	for _, column := range orderColumns(q.SortBy, q.Order) {
		db = db.Order(column)
	}
	return db.Offset(q.Offset).Limit(q.PageSize).Scan(items)
}

// CreateItem stores a new item definition
func (r *InventoryRepository) CreateItem(ctx context.Context, item *domain.Item) error {
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	item.CreatedAt = time.Now()
	return r.db.WithContext(ctx).Create(item).Error
}

// Append adds an item at the end of a user's inventory. Appends for the same
// user are serialised on the owning users row.
func (r *InventoryRepository) Append(ctx context.Context, userID, itemID uuid.UUID, acquiredAt time.Time) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockOwner(tx, userID, &domain.User{}).Error; err != nil {
			return err
		}

		var last int
		if err := lastPosition(tx, userID, &last).Error; err != nil {
			return err
		}

		return tx.Create(&domain.InventoryEntry{
			UserID:     userID,
			Position:   last + 1,
			ItemID:     itemID,
			AcquiredAt: acquiredAt,
		}).Error
	})
}

func lockOwner(tx *gorm.DB, userID uuid.UUID, owner *domain.User) *gorm.DB {
	return tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Select("id").
		Where("id = ?", userID).
		Take(owner)
}

func lastPosition(tx *gorm.DB, userID uuid.UUID, last *int) *gorm.DB {
	return tx.Model(&domain.InventoryEntry{}).
		Select("COALESCE(MAX(position), 0)").
		Where("user_id = ?", userID).
		Scan(last)
}
