package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/saradorri/flipside/internal/config"
)

func main() {
	var (
		configPath     = flag.String("config", "./config", "Path to config directory")
		configFile     = flag.String("env", config.GetEnvironment(), "Environment (development, production)")
		action         = flag.String("action", "up", "Migration action: up, down")
		migrationsPath = flag.String("path", "./migrations", "Path to migrations directory")
	)
	flag.Parse()

	cfg, err := config.Load(*configPath, *configFile)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := validateMigrationsPath(*migrationsPath); err != nil {
		log.Fatalf("Failed to validate migrations path: %v", err)
	}

	m, err := migrate.New(
		fmt.Sprintf("file://%s", *migrationsPath),
		cfg.Database.MigrateURL(),
	)
	if err != nil {
		log.Fatalf("Failed to create migration instance: %v", err)
	}
	defer m.Close()

	switch *action {
	case "up":
		if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			log.Fatalf("Failed to migrate up: %v", err)
		}
		fmt.Println("Successfully migrated up")
	case "down":
		if err := m.Down(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			log.Fatalf("Failed to migrate down: %v", err)
		}
		fmt.Println("Successfully migrated down")
	default:
		log.Fatalf("Unknown action: %s. Valid actions: up, down", *action)
	}
}

// validateMigrationsPath checks if the migrations directory exists and contains migration files
func validateMigrationsPath(migrationsPath string) error {
	if _, err := os.Stat(migrationsPath); os.IsNotExist(err) {
		return fmt.Errorf("migrations directory does not exist: %s", migrationsPath)
	}

	files, err := filepath.Glob(filepath.Join(migrationsPath, "*.sql"))
	if err != nil {
		return fmt.Errorf("failed to read migrations directory: %w", err)
	}

	if len(files) == 0 {
		return fmt.Errorf("no migration files found in directory: %s", migrationsPath)
	}

	fmt.Printf("Found %d migration files in %s\n", len(files), migrationsPath)
	return nil
}
