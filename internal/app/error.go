package app

import (
	"github.com/saradorri/flipside/internal/http/middleware"
	"github.com/saradorri/flipside/internal/infrastructure/logger"
)

func (a *application) InitErrorHandler(log *logger.Logger) *middleware.ErrorHandler {
	return middleware.NewErrorHandler(log)
}
