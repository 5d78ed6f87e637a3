package app

import (
	"github.com/saradorri/predictor/internal/http"
	"github.com/saradorri/predictor/internal/http/handlers"
	"github.com/saradorri/predictor/internal/http/middleware"
	"github.com/saradorri/predictor/internal/infrastructure/logger"
)

// InitHTTPServer initializes the HTTP server with all dependencies
func (a *application) InitHTTPServer(
	depositHandler *handlers.DepositHandler,
	playerHandler *handlers.PlayerHandler,
	energyHandler *handlers.EnergyHandler,
	errorHandler *middleware.ErrorHandler,
	log *logger.Logger,
) *http.Server {
	return http.NewServer(depositHandler, playerHandler, energyHandler, errorHandler, log, http.Options{
		Address:        a.config.GetServerAddress(),
		RequestTimeout: a.config.Server.RequestTimeout,
		AllowOrigins:   a.config.CORS.AllowOrigins,
	})
}
