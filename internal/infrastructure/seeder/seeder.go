package seeder

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/saradorri/flipside/internal/domain"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

// ItemStore creates items and places them in inventories
type ItemStore interface {
	CreateItem(ctx context.Context, item *domain.Item) error
	Append(ctx context.Context, userID, itemID uuid.UUID, acquiredAt time.Time) error
}

// Seeder handles database seeding operations
type Seeder struct {
	userRepo  domain.UserRepository
	itemStore ItemStore
	now       func() time.Time
}

// NewSeeder creates a new seeder instance
func NewSeeder(userRepo domain.UserRepository, itemStore ItemStore) *Seeder {
	return &Seeder{
		userRepo:  userRepo,
		itemStore: itemStore,
		now:       time.Now,
	}
}

var catalog = []domain.Item{
	{Name: "Copper Coin", Rarity: 0, Image: "/items/copper-coin.png", Description: "A well-worn coin."},
	{Name: "Silver Coin", Rarity: 1, Image: "/items/silver-coin.png", Description: "Shiny on both sides."},
	{Name: "Lucky Clover", Rarity: 2, Image: "/items/lucky-clover.png", Description: "Four leaves, no guarantees."},
	{Name: "Golden Die", Rarity: 3, Image: "/items/golden-die.png", Description: "Rolls a six more often than it should."},
	{Name: "Dragon Scale", Rarity: 4, Image: "/items/dragon-scale.png", Description: "Still warm."},
}

type seedUser struct {
	username  string
	email     string
	balance   string
	xp        int64
	level     int
	itemCount int
}

var users = []seedUser{
	{username: "user1", email: "user1@flipside.local", balance: "1000.00", xp: 5400, level: 7, itemCount: 45},
	{username: "user2", email: "user2@flipside.local", balance: "250.50", xp: 1200, level: 3, itemCount: 12},
	{username: "user3", email: "user3@flipside.local", balance: "0", xp: 0, level: 1, itemCount: 0},
}

// SeededUser is a user created (or found) by the seeder
type SeededUser struct {
	ID       uuid.UUID
	Username string
	Created  bool
}

// Seed creates the item catalog and the fixture users with their
// inventories. Users that already exist are left untouched.
func (s *Seeder) Seed(ctx context.Context, password string) ([]SeededUser, error) {
	log.Printf("Seeding users...")

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	passwordHash := string(hash)

	var items []domain.Item
	seeded := make([]SeededUser, 0, len(users))

	for _, u := range users {
		existingUser, err := s.userRepo.GetByUsername(ctx, u.username)
		if err != nil {
			return nil, fmt.Errorf("failed to look up %s: %w", u.username, err)
		}

		if existingUser != nil {
			log.Printf("User %s already exists, skipping.", u.username)
			seeded = append(seeded, SeededUser{ID: existingUser.ID, Username: existingUser.Username})
			continue
		}

		if items == nil {
			if items, err = s.seedCatalog(ctx); err != nil {
				return nil, err
			}
		}

		user := &domain.User{
			Username:       u.username,
			Email:          u.email,
			Password:       &passwordHash,
			WalletBalance:  decimal.RequireFromString(u.balance),
			XP:             u.xp,
			Level:          u.level,
			ProfilePicture: fmt.Sprintf("/avatars/%s.png", u.username),
		}
		if u.itemCount > 0 {
			user.FixedItemID = &items[len(items)-1].ID
		}

		if err := s.userRepo.Create(ctx, user); err != nil {
			return nil, fmt.Errorf("failed to create %s: %w", u.username, err)
		}

		acquired := s.now().Add(-time.Duration(u.itemCount) * time.Hour)
		for i := 0; i < u.itemCount; i++ {
			item := items[i%len(items)]
			if err := s.itemStore.Append(ctx, user.ID, item.ID, acquired.Add(time.Duration(i)*time.Hour)); err != nil {
				return nil, fmt.Errorf("failed to fill inventory of %s: %w", u.username, err)
			}
		}

		log.Printf("Created user %s with %d items.", u.username, u.itemCount)
		seeded = append(seeded, SeededUser{ID: user.ID, Username: user.Username, Created: true})
	}

	log.Printf("User seeding completed successfully")
	return seeded, nil
}

func (s *Seeder) seedCatalog(ctx context.Context) ([]domain.Item, error) {
	items := make([]domain.Item, len(catalog))
	for i, item := range catalog {
		item := item
		if err := s.itemStore.CreateItem(ctx, &item); err != nil {
			return nil, fmt.Errorf("failed to create item %s: %w", item.Name, err)
		}
		items[i] = item
	}
	return items, nil
}
