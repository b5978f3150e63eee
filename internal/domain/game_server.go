package domain

//go:generate mockgen -source=game_server.go -destination=mocks/mock_game_server.go -package=mocks

import (
	"context"
	"fmt"
)

// GameServer is the external coin-flip engine that owns the live snapshot
type GameServer interface {
	GetSnapshot(ctx context.Context) (*GameSnapshot, error)
}

// GameServerErrorResponse represents error responses from the game server
type GameServerErrorResponse struct {
	Code string `json:"code"`
	Msg  string `json:"msg"`
}

// GameServerError represents a game server error with status code
type GameServerError struct {
	StatusCode int
	Code       string
	Message    string
}

// Error implements the error interface
func (e *GameServerError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("game server error %d (%s): %s", e.StatusCode, e.Code, e.Message)
	}
	return fmt.Sprintf("game server error %d: %s", e.StatusCode, e.Message)
}

// Is4xxError checks if the error is a 4xx client error
func (e *GameServerError) Is4xxError() bool {
	return e.StatusCode >= 400 && e.StatusCode < 500
}
