package domain

//go:generate mockgen -source=user.go -destination=mocks/mock_user.go -package=mocks

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// User represents a player account
type User struct {
	ID             uuid.UUID       `json:"id" gorm:"primaryKey;column:id;type:uuid;default:gen_random_uuid()"`
	GoogleID       *string         `json:"-" gorm:"uniqueIndex;type:varchar(64)"`
	Username       string          `json:"username" gorm:"uniqueIndex;not null;type:varchar(64)"`
	Email          string          `json:"-" gorm:"uniqueIndex;not null;type:varchar(255)"`
	Password       *string         `json:"-" gorm:"type:varchar(128)"`
	WalletBalance  decimal.Decimal `json:"walletBalance" gorm:"type:numeric(20,2);not null;default:0"`
	XP             int64           `json:"xp" gorm:"column:xp;not null;default:0"`
	Level          int             `json:"level" gorm:"not null;default:1"`
	ProfilePicture string          `json:"profilePicture" gorm:"type:varchar(512)"`
	FixedItemID    *uuid.UUID      `json:"-" gorm:"type:uuid"`
	CreatedAt      time.Time       `json:"-" gorm:"not null"`
	UpdatedAt      time.Time       `json:"-" gorm:"not null"`

	FixedItem *Item            `json:"-" gorm:"foreignKey:FixedItemID"`
	Inventory []InventoryEntry `json:"-" gorm:"foreignKey:UserID"`
}

// TableName specifies the table name for User
func (u User) TableName() string {
	return "users"
}

// Profile is the public view of a user served to the profile page
type Profile struct {
	ID             string           `json:"id" example:"8f8e3c1a-2b7d-4b8e-9a55-0c1d2e3f4a5b"`
	Username       string           `json:"username" example:"lucky_larry"`
	ProfilePicture string           `json:"profilePicture" example:"https://cdn.example.com/avatars/1.png"`
	Level          int              `json:"level" example:"3"`
	XP             int64            `json:"xp" example:"1250"`
	FixedItem      *Item            `json:"fixedItem,omitempty"`
	WalletBalance  *decimal.Decimal `json:"walletBalance,omitempty" swaggertype:"string" example:"42.50"`
}

// ToProfile builds the public profile of u; the wallet balance is only
// disclosed to its owner
func (u *User) ToProfile(includeBalance bool) *Profile {
	p := &Profile{
		ID:             u.ID.String(),
		Username:       u.Username,
		ProfilePicture: u.ProfilePicture,
		Level:          u.Level,
		XP:             u.XP,
		FixedItem:      u.FixedItem,
	}
	if includeBalance {
		balance := u.WalletBalance
		p.WalletBalance = &balance
	}
	return p
}

// UserRepository defines the interface for user data
type UserRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)
	Create(ctx context.Context, user *User) error
}

// UserUseCase defines the interface for user business logic
type UserUseCase interface {
	GetProfile(ctx context.Context, userID string, viewerID string) (*Profile, error)
}
