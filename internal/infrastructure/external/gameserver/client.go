package gameserver

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/saradorri/flipside/internal/config"
	"github.com/saradorri/flipside/internal/domain"
	"github.com/saradorri/flipside/internal/infrastructure/external/restclient"
	"github.com/saradorri/flipside/internal/infrastructure/logger"
)

// StatePath is where the game server publishes the live snapshot
const StatePath = "/api/v1/coinflip/state"

type gameServerImpl struct {
	rest *restclient.Client
	now  func() time.Time
}

// NewGameServer creates a client for the coin-flip game server
func NewGameServer(cfg config.GameServerConfig, log *logger.Logger) domain.GameServer {
	headers := http.Header{}
	headers.Set("x-api-key", cfg.APIKey)

	return &gameServerImpl{
		rest: restclient.New(cfg.URL, headers, restclient.Options{
			Timeout:  cfg.Timeout,
			RetryMax: cfg.RetryMax,
		}, log.Named("gameserver")),
		now: time.Now,
	}
}

// GetSnapshot fetches and validates the current bet snapshot
func (g *gameServerImpl) GetSnapshot(ctx context.Context) (*domain.GameSnapshot, error) {
	var snapshot domain.GameSnapshot
	if err := g.rest.Get(ctx, StatePath, nil, nil, &snapshot); err != nil {
		return nil, toGameServerError(err)
	}

	if err := snapshot.Validate(); err != nil {
		return nil, err
	}
	snapshot.ReceivedAt = g.now()
	return &snapshot, nil
}

// toGameServerError converts a status error into a GAME_SERVER_ERROR
// wrapping the domain.GameServerError
func toGameServerError(err error) error {
	var statusErr *restclient.StatusError
	if !errors.As(err, &statusErr) {
		return domain.NewExternalServiceError("gameserver", "get snapshot", err)
	}

	gsErr := &domain.GameServerError{
		StatusCode: statusErr.StatusCode,
		Message:    string(statusErr.Body),
	}
	var errResp domain.GameServerErrorResponse
	if json.Unmarshal(statusErr.Body, &errResp) == nil && errResp.Msg != "" {
		gsErr.Code = errResp.Code
		gsErr.Message = errResp.Msg
	}
	return domain.NewAppError(domain.ErrCodeGameServerError, "Game server request failed", http.StatusBadGateway, gsErr)
}

// DecodeSnapshot parses and validates a snapshot pushed by the game server
func DecodeSnapshot(data []byte, receivedAt time.Time) (*domain.GameSnapshot, error) {
	var snapshot domain.GameSnapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, domain.NewMalformedSnapshotError(err.Error())
	}
	if err := snapshot.Validate(); err != nil {
		return nil, err
	}
	snapshot.ReceivedAt = receivedAt
	return &snapshot, nil
}
