package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/saradorri/flipside/internal/config"
	"github.com/saradorri/flipside/internal/infrastructure/auth"
	"github.com/saradorri/flipside/internal/infrastructure/database"
	"github.com/saradorri/flipside/internal/infrastructure/repository"
	"github.com/saradorri/flipside/internal/infrastructure/seeder"
)

func main() {
	var (
		configPath = flag.String("config", "./config", "Path to config directory")
		configFile = flag.String("env", config.GetEnvironment(), "Environment")
		password   = flag.String("password", "password123", "Password given to every seeded user")
	)
	flag.Parse()

	cfg, err := config.Load(*configPath, *configFile)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := database.NewDatabase(&database.Config{
		Host:            cfg.Database.Host,
		Port:            cfg.Database.Port,
		User:            cfg.Database.User,
		Password:        cfg.Database.Password,
		Name:            cfg.Database.Name,
		SSLMode:         cfg.Database.SSLMode,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	userRepo := repository.NewUserRepository(db.DB)
	inventoryRepo := repository.NewInventoryRepository(db.DB)
	newSeeder := seeder.NewSeeder(userRepo, inventoryRepo)

	log.Println("Starting database seeding...")
	seeded, err := newSeeder.Seed(context.Background(), *password)
	if err != nil {
		log.Fatalf("Failed to seed users: %v", err)
	}
	log.Println("Database seeding completed successfully")

	// Development tokens so the profile client can view a page as its owner
	jwtService := auth.NewJWTService(&cfg.JWT)
	for _, u := range seeded {
		token, err := jwtService.IssueToken(u.ID)
		if err != nil {
			log.Fatalf("Failed to issue token for %s: %v", u.Username, err)
		}
		fmt.Printf("%s\t%s\t%s\n", u.Username, u.ID, token)
	}
}
