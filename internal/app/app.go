package app

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/saradorri/predictor/internal/config"
	"github.com/saradorri/predictor/internal/infrastructure/logger"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
)

// Application provides application level setup
type Application interface {
	Setup()
	GetContext() context.Context
}

// application represents context and configure file
type application struct {
	ctx    context.Context
	config *config.Config
}

// NewApplication creates a new application
func NewApplication(ctx context.Context) Application {
	return &application{ctx: ctx}
}

// GetContext returns application context
func (a *application) GetContext() context.Context {
	return a.ctx
}

// Setup creates a new fx application with all modules
func (a *application) Setup() {
	fmt.Println("[x] Starting Predictor Service...")

	path := flag.String("e", "./config", "env file directory")
	flag.Parse()

	err := a.setupViper(*path)
	if err != nil {
		log.Panic(err.Error())
	}

	app := fx.New(
		fx.WithLogger(func(l *logger.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: l.Zap()}
		}),
		a.Options(),
		fx.Invoke(a.RegisterHooks),
	)

	app.Run()
}

// Options returns every provider of the service
func (a *application) Options() fx.Option {
	return fx.Options(
		fx.Provide(
			a.InitLogger,
			a.InitDatabase,
			a.InitPlayerRepository,
			a.InitEnergyCycleRepository,
			a.InitClock,
			a.InitEnergyPolicy,
			a.InitPredictionGenerator,
			a.InitCycleLock,
			a.InitPlayerUseCase,
			a.InitEnergyCycleUseCase,
			a.InitDepositHandler,
			a.InitPlayerHandler,
			a.InitEnergyHandler,
			a.InitErrorHandler,
			a.InitHTTPServer,
			a.InitScheduler,
		),
	)
}
