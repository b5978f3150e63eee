package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"text/tabwriter"

	"github.com/saradorri/flipside/internal/config"
	"github.com/saradorri/flipside/internal/debounce"
	"github.com/saradorri/flipside/internal/domain"
	"github.com/saradorri/flipside/internal/infrastructure/external/gameserver"
	"github.com/saradorri/flipside/internal/infrastructure/feed"
	"github.com/saradorri/flipside/internal/infrastructure/logger"
	"github.com/saradorri/flipside/internal/infrastructure/snapshot"
	"github.com/saradorri/flipside/internal/livebets"
)

func main() {
	var (
		configPath = flag.String("config", "./config", "Path to config directory")
		configFile = flag.String("env", config.GetEnvironment(), "Environment")
		sideName   = flag.String("side", "heads", "Side to watch: heads or tails")
	)
	flag.Parse()

	cfg, err := config.Load(*configPath, *configFile)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	side, err := domain.ParseSide(*sideName)
	if err != nil {
		log.Fatalf("Invalid side: %v", err)
	}

	appLogger := logger.NewLogger(*configFile, cfg.Log.Level)
	defer appLogger.Sync()

	store := snapshot.NewStore()
	processor := feed.NewProcessor(
		gameserver.NewGameServer(cfg.GameServer, appLogger),
		gameserver.NewSubscriber(cfg.GameServer, appLogger),
		store,
		cfg.Feed,
		appLogger,
	)

	panel := livebets.NewPanel(side, debounce.RealClock(), livebets.Options{HoverDelay: cfg.LiveBets.HoverDelay})
	defer panel.Close()

	updates, unsubscribe := store.Subscribe()
	defer unsubscribe()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	processor.StartBackgroundProcessing()
	defer processor.StopBackgroundProcessing()

	for {
		select {
		case <-ctx.Done():
			return
		case snap := <-updates:
			if err := panel.Apply(snap); err != nil {
				fmt.Printf("round %s: %v\n", snap.Round, err)
				continue
			}
			render(snap.Round, panel)
		}
	}
}

func render(round string, panel *livebets.Panel) {
	state, _ := panel.State()
	summary := panel.Summary()

	fmt.Printf("\nround %s  %s  total %s  (%s)\n", round, summary.Side, summary.Total.StringFixed(2), state)
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "PLAYER\tWAGER\tPROFILE")
	for _, row := range summary.Rows {
		fmt.Fprintf(w, "%s\t%s\t%s\n", row.Username, row.Wager.StringFixed(2), row.ProfileURL)
	}
	_ = w.Flush()
}
