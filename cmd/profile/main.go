package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"text/tabwriter"

	"github.com/saradorri/flipside/internal/config"
	"github.com/saradorri/flipside/internal/debounce"
	"github.com/saradorri/flipside/internal/domain"
	"github.com/saradorri/flipside/internal/infrastructure/auth"
	"github.com/saradorri/flipside/internal/infrastructure/external/userservice"
	"github.com/saradorri/flipside/internal/infrastructure/logger"
	"github.com/saradorri/flipside/internal/profile"
)

func main() {
	var (
		configPath = flag.String("config", "./config", "Path to config directory")
		configFile = flag.String("env", config.GetEnvironment(), "Environment")
		path       = flag.String("path", "", "Profile route, e.g. /profile/<id>")
		token      = flag.String("token", "", "Bearer token of the viewer (optional)")
		name       = flag.String("name", "", "Filter items by name")
		rarity     = flag.String("rarity", "", "Filter items by rarity")
		sortBy     = flag.String("sort", "", "Sort by name, rarity or acquired")
		order      = flag.String("order", domain.OrderAsc, "Sort order: asc or desc")
		pages      = flag.Int("pages", 1, "Pages to load through load more")
	)
	flag.Parse()

	cfg, err := config.Load(*configPath, *configFile)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	appLogger := logger.NewLogger(*configFile, cfg.Log.Level)
	defer appLogger.Sync()

	viewer := profile.Viewer{}
	if *token != "" {
		identity, err := auth.NewJWTService(&cfg.JWT).Verify(*token)
		if err != nil {
			log.Fatalf("Invalid token: %v", err)
		}
		viewer.ID = identity.UserID
	}

	client := userservice.NewProfileClient(cfg.Profile, *token, appLogger)

	view, err := profile.NewView(*path, viewer, client, client, debounce.RealClock(), appLogger, profile.Options{
		FilterDebounce:    cfg.Profile.FilterDebounce,
		LoadMoreThreshold: cfg.Profile.LoadMoreThreshold,
	})
	if err != nil {
		log.Fatalf("Failed to open profile: %v", err)
	}
	defer view.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	view.Mount(ctx)
	view.Wait()

	filters := domain.InventoryFilters{Name: *name, Rarity: *rarity, SortBy: *sortBy, Order: *order}
	view.SetFilters(filters)
	if view.FlushFilters() {
		view.Wait()
	}

	for loaded := 1; loaded < *pages && view.LoadMore(); loaded++ {
		view.Wait()
	}

	render(view.State())
}

func render(s profile.State) {
	if s.UserErr != nil {
		fmt.Printf("user: %v\n", s.UserErr)
	} else if s.User != nil {
		fmt.Printf("%s (level %d, %d xp)\n", s.User.Username, s.User.Level, s.User.XP)
		if s.User.WalletBalance != nil {
			fmt.Printf("wallet: %s\n", s.User.WalletBalance.StringFixed(2))
		}
		if s.User.FixedItem != nil {
			fmt.Printf("fixed item: %s\n", s.User.FixedItem.Name)
		}
	}

	if s.InventoryErr != nil {
		fmt.Printf("inventory: %v\n", s.InventoryErr)
		return
	}

	fmt.Printf("\ninventory page %d/%d, %d items\n", s.CurrentPage, s.TotalPages, len(s.Items))
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tRARITY\tID")
	for _, item := range s.Items {
		fmt.Fprintf(w, "%s\t%s\t%s\n", item.Name, strings.Repeat("*", item.Rarity+1), item.ID)
	}
	_ = w.Flush()

	if s.CanLoadMore {
		fmt.Println("\n[load more]")
	}
	if s.IsSameUser {
		fmt.Println("items are fixable; profile is editable")
	}
}
