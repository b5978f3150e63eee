package app

import (
	"github.com/saradorri/flipside/internal/domain"
	"github.com/saradorri/flipside/internal/infrastructure/feed"
	"github.com/saradorri/flipside/internal/infrastructure/logger"
	"github.com/saradorri/flipside/internal/infrastructure/snapshot"
)

func (a *application) InitSnapshotStore() domain.SnapshotStore {
	return snapshot.NewStore()
}

func (a *application) InitSnapshotFeed(
	gameServer domain.GameServer,
	push feed.PushSource,
	store domain.SnapshotStore,
	logger *logger.Logger,
) domain.SnapshotFeed {
	return feed.NewProcessor(gameServer, push, store, a.config.Feed, logger)
}
