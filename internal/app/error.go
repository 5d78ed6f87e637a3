package app

import (
	"github.com/saradorri/predictor/internal/http/middleware"
	"github.com/saradorri/predictor/internal/infrastructure/logger"
)

func (a *application) InitErrorHandler(log *logger.Logger) *middleware.ErrorHandler {
	return middleware.NewErrorHandler(log)
}
