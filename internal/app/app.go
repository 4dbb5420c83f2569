package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/dauletm/pickup-share/config"
	"github.com/dauletm/pickup-share/internal/adapter/http/server"
	wshandler "github.com/dauletm/pickup-share/internal/adapter/http/ws"
	"github.com/dauletm/pickup-share/internal/adapter/locationIQ"
	repo "github.com/dauletm/pickup-share/internal/adapter/postgres"
	broker "github.com/dauletm/pickup-share/internal/adapter/rabbit"
	"github.com/dauletm/pickup-share/internal/service/passenger"
	"github.com/dauletm/pickup-share/internal/service/transfer"
	"github.com/dauletm/pickup-share/pkg/logger"
	"github.com/dauletm/pickup-share/pkg/postgres"
	"github.com/dauletm/pickup-share/pkg/rabbit"
	"github.com/dauletm/pickup-share/pkg/trm"
	ws "github.com/dauletm/pickup-share/pkg/wsHub"
)

type App struct {
	postgresDB *postgres.PostgreDB
	rabbitMQ   *rabbit.RabbitMQ
	httpServer *server.API
	rosterHub  *wshandler.RosterHub

	cfg config.Config
	log logger.Logger
}

func NewApplication(ctx context.Context, cfg config.Config, log logger.Logger) (*App, error) {
	postgresDB, err := postgres.New(ctx, cfg.Database)
	if err != nil {
		log.Error(ctx, "Failed to setup database", err)
		return nil, err
	}

	// Broker is best-effort. Events are dropped when RabbitMQ is unreachable.
	var (
		rabbitMQ        *rabbit.RabbitMQ
		passengerEvents passenger.EventPublisher
		transferEvents  transfer.EventPublisher
	)
	rabbitMQ, err = rabbit.New(ctx, cfg.RabbitMQ.GetDSN(), log)
	if err != nil {
		log.Warn(ctx, "Failed to connect to RabbitMQ, events disabled", "error", err.Error())
		rabbitMQ = nil
	} else {
		events := broker.NewTransferBroker(rabbitMQ, log)
		passengerEvents = events
		transferEvents = events
	}

	passengerRepo := repo.NewPassengerRepo(postgresDB.Pool)
	transferRepo := repo.NewTransferRepo(postgresDB.Pool)
	txManager := trm.New(postgresDB.Pool)

	geocoder := locationIQ.New(cfg.LocationIQ.APIKey, cfg.LocationIQ.Timeout)

	rosterHub := wshandler.NewRosterHub(ws.NewConnHub(log), log)

	passengerService := passenger.New(passengerRepo, geocoder, passengerEvents, rosterHub, log)
	transferService := transfer.New(transferRepo, passengerRepo, txManager, transferEvents, rosterHub, log)

	httpServer, err := server.New(cfg, passengerService, transferService, rosterHub, log)
	if err != nil {
		log.Error(ctx, "Failed to setup http server", err)
		return nil, err
	}

	return &App{
		postgresDB: postgresDB,
		rabbitMQ:   rabbitMQ,
		httpServer: httpServer,
		rosterHub:  rosterHub,
		cfg:        cfg,
		log:        log,
	}, nil
}

func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	a.httpServer.Run(ctx, errCh)
	defer func() {
		a.close(ctx)
		a.log.Info(ctx, "application closed")
	}()

	// Waiting signal
	shutdownCh := make(chan os.Signal, 1)
	signal.Notify(shutdownCh, syscall.SIGINT, syscall.SIGTERM)

	a.log.Info(ctx, "application started")

	select {
	case errRun := <-errCh:
		return errRun
	case sig := <-shutdownCh:
		a.log.Info(ctx, "shutting down application", "signal", sig.String())
		return nil
	}
}

func (a *App) close(ctx context.Context) {
	if a.httpServer != nil {
		if err := a.httpServer.Stop(ctx); err != nil {
			a.log.Warn(ctx, "Failed to gracefully close http server", "error", err.Error())
		}
	}

	if a.rosterHub != nil {
		a.rosterHub.Close()
	}

	if a.rabbitMQ != nil {
		if err := a.rabbitMQ.Close(ctx); err != nil {
			a.log.Warn(ctx, "Failed to gracefully close rabbitmq connection", "error", err.Error())
		}
	}

	if a.postgresDB != nil && a.postgresDB.Pool != nil {
		a.postgresDB.Pool.Close()
	}
}
