package app

import (
	"github.com/saradorri/flipside/internal/domain"
	"github.com/saradorri/flipside/internal/infrastructure/external/gameserver"
	"github.com/saradorri/flipside/internal/infrastructure/feed"
	"github.com/saradorri/flipside/internal/infrastructure/logger"
)

func (a *application) InitGameServer(log *logger.Logger) domain.GameServer {
	return gameserver.NewGameServer(a.config.GameServer, log)
}

func (a *application) InitSubscriber(log *logger.Logger) feed.PushSource {
	return gameserver.NewSubscriber(a.config.GameServer, log)
}
