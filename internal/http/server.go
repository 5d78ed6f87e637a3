package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/saradorri/predictor/internal/http/handlers"
	"github.com/saradorri/predictor/internal/http/middleware"
	"github.com/saradorri/predictor/internal/infrastructure/logger"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// Options holds the HTTP server settings
type Options struct {
	Address        string
	RequestTimeout time.Duration
	AllowOrigins   []string
}

// Server represents the HTTP server
type Server struct {
	router         *gin.Engine
	httpServer     *http.Server
	depositHandler *handlers.DepositHandler
	playerHandler  *handlers.PlayerHandler
	energyHandler  *handlers.EnergyHandler
	errorHandler   *middleware.ErrorHandler
	logger         *logger.Logger
	address        string
}

// NewServer creates a new HTTP server
func NewServer(
	depositHandler *handlers.DepositHandler,
	playerHandler *handlers.PlayerHandler,
	energyHandler *handlers.EnergyHandler,
	errorHandler *middleware.ErrorHandler,
	log *logger.Logger,
	opts Options,
) *Server {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()

	if opts.RequestTimeout <= 0 {
		opts.RequestTimeout = 30 * time.Second
	}

	router.Use(errorHandler.RequestIDMiddleware())
	router.Use(errorHandler.ErrorHandlerMiddleware())
	router.Use(middleware.LoggerMiddleware(log))
	router.Use(cors.New(corsConfig(opts.AllowOrigins)))
	router.Use(errorHandler.TimeoutMiddleware(opts.RequestTimeout))

	server := &Server{
		router:         router,
		depositHandler: depositHandler,
		playerHandler:  playerHandler,
		energyHandler:  energyHandler,
		errorHandler:   errorHandler,
		logger:         log,
		address:        opts.Address,
	}

	server.setupRoutes()
	return server
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.DefaultConfig()
	if len(origins) == 0 {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	cfg.AllowHeaders = append(cfg.AllowHeaders, middleware.RequestIDHeader)
	cfg.ExposeHeaders = []string{middleware.RequestIDHeader}
	return cfg
}

// setupRoutes configures all the routes
func (s *Server) setupRoutes() {
	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	s.router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := s.router.Group("/api/v1")
	{
		v1.POST("/deposit", s.depositHandler.Deposit)
		v1.GET("/postback", s.depositHandler.Postback)
		v1.POST("/postback", s.depositHandler.PostbackPost)

		energyRoutes := v1.Group("/energy")
		{
			energyRoutes.POST("/cycles", s.energyHandler.RunCycle)
		}

		playerRoutes := v1.Group("/players")
		{
			playerRoutes.GET("/:external_id", s.playerHandler.GetPlayer)
			playerRoutes.POST("/:external_id/login", s.playerHandler.Login)
			playerRoutes.POST("/:external_id/draw", s.playerHandler.Draw)
		}
	}
}

// Router exposes the gin engine
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Start serves HTTP in the background until Shutdown is called
func (s *Server) Start() error {
	s.httpServer = &http.Server{
		Addr:              s.address,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		s.logger.Info("HTTP server listening", zap.String("address", s.address))
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("HTTP server stopped unexpectedly", zap.Error(err))
		}
	}()
	return nil
}

// Shutdown gracefully stops the server
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	s.logger.Info("Shutting down HTTP server")
	return s.httpServer.Shutdown(ctx)
}
