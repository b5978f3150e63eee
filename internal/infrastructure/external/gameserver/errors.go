package gameserver

import (
	"errors"

	"github.com/saradorri/flipside/internal/domain"
)

// Is4xxError checks if the error is a 4xx client error
func Is4xxError(err error) bool {
	var gsErr *domain.GameServerError
	if errors.As(err, &gsErr) {
		return gsErr.Is4xxError()
	}
	return false
}

// Is5xxError checks if the error is a 5xx server error
func Is5xxError(err error) bool {
	var gsErr *domain.GameServerError
	if errors.As(err, &gsErr) {
		return gsErr.StatusCode >= 500 && gsErr.StatusCode < 600
	}
	return false
}

// IsMalformed checks if the game server sent a snapshot that failed validation
func IsMalformed(err error) bool {
	appErr, ok := domain.IsAppError(err)
	return ok && appErr.Code == domain.ErrCodeMalformedSnapshot
}
