package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/dauletm/pickup-share/config"
	"github.com/dauletm/pickup-share/internal/adapter/http/handler"
	"github.com/dauletm/pickup-share/internal/adapter/http/middleware"
	wshandler "github.com/dauletm/pickup-share/internal/adapter/http/ws"
	"github.com/dauletm/pickup-share/pkg/logger"
	wrap "github.com/dauletm/pickup-share/pkg/logger/wrapper"
)

const serverIPAddress = "%s:%s"

type API struct {
	mux    *http.ServeMux
	server *http.Server
	routes *handlers
	m      *middleware.Middleware

	addr string
	cfg  config.Config
	log  logger.Logger
}

type handlers struct {
	passenger *handler.Passenger
	transfer  *handler.Transfer
	health    *handler.Health
	roster    *wshandler.RosterHub
}

func New(
	cfg config.Config,
	passengerService handler.PassengerService,
	transferService handler.TransferService,
	roster *wshandler.RosterHub,
	logger logger.Logger,
) (*API, error) {
	if passengerService == nil {
		return nil, errors.New("passenger service is required")
	}
	if transferService == nil {
		return nil, errors.New("transfer service is required")
	}

	routes := &handlers{
		passenger: handler.NewPassenger(passengerService, logger),
		transfer:  handler.NewTransfer(transferService, logger),
		health:    handler.NewHealth(cfg.Server.Name, logger),
		roster:    roster,
	}

	mid := middleware.NewMiddleware(logger)

	api := &API{
		mux:    http.NewServeMux(),
		routes: routes,
		m:      mid,
		addr:   fmt.Sprintf(serverIPAddress, "0.0.0.0", cfg.Server.Port),
		cfg:    cfg,
		log:    logger,
	}

	setupRoutes(api.mux, api.routes)

	api.server = &http.Server{
		Addr:    api.addr,
		Handler: api.withMiddleware(),
	}

	return api, nil
}

func (a *API) Stop(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	ctx = wrap.WithAction(ctx, "http_server_stop")

	a.log.Debug(ctx, "shutting down HTTP server...", "address", a.addr)
	if err := a.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("error shutting down server: %w", err)
	}
	a.log.Debug(ctx, "shutting down HTTP server completed")

	return nil
}

func (a *API) Run(ctx context.Context, errCh chan<- error) {
	go func() {
		ctx = wrap.WithAction(ctx, "http_server_start")
		a.log.Info(ctx, "started http server", "address", a.addr)
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("failed to start HTTP server: %w", err)
			return
		}
	}()
}

// withMiddleware applies middlewares to the mux
func (a *API) withMiddleware() http.Handler {
	return a.m.Recover(a.m.RequestID(a.m.Logging(a.m.Metrics(a.cfg.Server.Name)(a.mux))))
}
