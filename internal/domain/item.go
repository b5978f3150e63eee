package domain

//go:generate mockgen -source=item.go -destination=mocks/mock_item.go -package=mocks

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Item represents a collectible that can sit in a user's inventory
type Item struct {
	ID          uuid.UUID `json:"id" gorm:"primaryKey;column:id;type:uuid;default:gen_random_uuid()"`
	Name        string    `json:"name" gorm:"not null;type:varchar(128)"`
	Image       string    `json:"image" gorm:"type:varchar(512)"`
	Rarity      int       `json:"rarity" gorm:"not null;default:0"`
	Description string    `json:"description" gorm:"type:text"`
	CreatedAt   time.Time `json:"-" gorm:"not null"`
}

// TableName specifies the table name for Item
func (i Item) TableName() string {
	return "items"
}

// InventoryEntry places an item at a position of a user's inventory
type InventoryEntry struct {
	UserID     uuid.UUID `gorm:"primaryKey;type:uuid"`
	Position   int       `gorm:"primaryKey"`
	ItemID     uuid.UUID `gorm:"not null;type:uuid;index"`
	AcquiredAt time.Time `gorm:"not null"`

	Item Item `gorm:"foreignKey:ItemID"`
}

// TableName specifies the table name for InventoryEntry
func (e InventoryEntry) TableName() string {
	return "user_inventory"
}

// InventoryPage is one page of a user's filtered inventory
type InventoryPage struct {
	Items       []Item `json:"items"`
	CurrentPage int    `json:"currentPage" example:"1"`
	TotalPages  int    `json:"totalPages" example:"3"`
}

// Validate checks the page invariants
func (p *InventoryPage) Validate() error {
	if p.Items == nil {
		return NewMalformedPayloadError("inventory", "items is missing")
	}
	if p.CurrentPage < 1 {
		return NewMalformedPayloadError("inventory", "currentPage must be at least 1")
	}
	if p.CurrentPage > p.TotalPages {
		return NewMalformedPayloadError("inventory", "currentPage exceeds totalPages")
	}
	return nil
}

// Sort fields accepted by the inventory listing
const (
	SortByPosition = ""
	SortByName     = "name"
	SortByRarity   = "rarity"
	SortByAcquired = "acquired"
)

// Sort orders accepted by the inventory listing
const (
	OrderAsc  = "asc"
	OrderDesc = "desc"
)

// InventoryFilters narrows and orders an inventory listing. The zero value
// matches everything in inventory order.
type InventoryFilters struct {
	Name   string `json:"name" form:"name"`
	Rarity string `json:"rarity" form:"rarity"`
	SortBy string `json:"sortBy" form:"sortBy"`
	Order  string `json:"order" form:"order"`
}

// DefaultInventoryFilters are the filters the profile page starts with
func DefaultInventoryFilters() InventoryFilters {
	return InventoryFilters{Order: OrderAsc}
}

// Normalize trims the filters and fills the default order
func (f InventoryFilters) Normalize() InventoryFilters {
	f.Name = strings.TrimSpace(f.Name)
	f.Rarity = strings.TrimSpace(f.Rarity)
	f.SortBy = strings.ToLower(strings.TrimSpace(f.SortBy))
	f.Order = strings.ToLower(strings.TrimSpace(f.Order))
	if f.Order == "" {
		f.Order = OrderAsc
	}
	return f
}

// Validate checks the filter values and returns the parsed rarity, if any
func (f InventoryFilters) Validate() (*int, error) {
	switch f.SortBy {
	case SortByPosition, SortByName, SortByRarity, SortByAcquired:
	default:
		return nil, NewValidationError("sortBy", "must be one of name, rarity, acquired")
	}

	switch f.Order {
	case OrderAsc, OrderDesc:
	default:
		return nil, NewValidationError("order", "must be asc or desc")
	}

	if f.Rarity == "" {
		return nil, nil
	}
	rarity, err := strconv.Atoi(f.Rarity)
	if err != nil || rarity < 0 {
		return nil, NewValidationError("rarity", "must be a non-negative integer")
	}
	return &rarity, nil
}

// InventoryQuery is a validated inventory listing request
type InventoryQuery struct {
	UserID   uuid.UUID
	Name     string
	Rarity   *int
	SortBy   string
	Order    string
	Offset   int
	PageSize int
}

// InventoryRepository defines the interface for inventory data
type InventoryRepository interface {
	Count(ctx context.Context, q InventoryQuery) (int64, error)
	List(ctx context.Context, q InventoryQuery) ([]Item, error)
}

// InventoryUseCase defines the interface for inventory business logic
type InventoryUseCase interface {
	GetInventory(ctx context.Context, userID string, page int, filters InventoryFilters) (*InventoryPage, error)
}
