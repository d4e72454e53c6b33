package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	handlers "github.com/zyphery/cfo-core/pkg/handlers/company"
	cfomiddleware "github.com/zyphery/cfo-core/pkg/server/middleware"
	"github.com/zyphery/cfo-core/pkg/services/company"
	"github.com/zyphery/cfo-core/pkg/services/credit"
	"github.com/zyphery/cfo-core/pkg/services/session"
	"github.com/zyphery/cfo-core/pkg/store/duckdb/scenarios"
)

type Dependencies struct {
	Registry  *company.Registry
	Sessions  *session.Manager
	Credit    *credit.Service
	Scenarios scenarios.Store
	Logger    zerolog.Logger
}

type Config struct {
	Addr            string
	ShutdownTimeout time.Duration
	Dependencies    Dependencies
}

type WebAPI struct {
	router          *chi.Mux
	logger          *zerolog.Logger
	server          *http.Server
	shutdownTimeout time.Duration
}

// ConfigureRouter wires the API routes; exposed separately so tests can
// mount the router on an httptest server.
func ConfigureRouter(config Config) *chi.Mux {
	deps := config.Dependencies
	handler := handlers.NewHandler(deps.Registry, deps.Sessions, deps.Credit, deps.Scenarios)

	router := chi.NewRouter()
	router.Use(cfomiddleware.Logger(&deps.Logger))
	router.Use(middleware.Recoverer)

	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/companies", handler.ListCompanies)
		r.Get("/companies/{company}/baseline", handler.GetBaseline)
		r.Get("/companies/{company}/current", handler.GetCurrent)
		r.Post("/companies/{company}/forecast", handler.Forecast)
		r.Post("/companies/{company}/reset", handler.Reset)
		r.Get("/companies/{company}/credit-score", handler.GetCreditScore)
		r.Get("/companies/{company}/credit-score/history", handler.GetScoreHistory)
		r.Post("/companies/{company}/credit-score/recalculate", handler.RecalculateCreditScore)
		r.Get("/companies/{company}/forecast/history", handler.GetScenarioRuns)
		r.Get("/companies/{company}/funding-readiness", handler.GetFundingReadiness)
		r.Get("/companies/{company}/pnl", handler.GetProfitAndLoss)
		r.Get("/investor/ranked", handler.GetRankedCompanies)
	})

	return router
}

func NewWebAPI(config Config) *WebAPI {
	router := ConfigureRouter(config)
	logger := config.Dependencies.Logger

	timeout := config.ShutdownTimeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}

	return &WebAPI{
		router: router,
		logger: &logger,
		server: &http.Server{
			Addr:    config.Addr,
			Handler: router,
		},
		shutdownTimeout: timeout,
	}
}

func (w *WebAPI) Start() error {
	serverErrors := make(chan error, 1)
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	go func() {
		w.logger.Info().Str("addr", w.server.Addr).Msg("starting server")
		serverErrors <- w.server.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-shutdown:
		w.logger.Info().Msg("shutdown initiated")

		// Give outstanding requests a deadline for completion.
		ctx, cancel := context.WithTimeout(context.Background(), w.shutdownTimeout)
		defer cancel()

		err := w.server.Shutdown(ctx)
		if err != nil {
			w.logger.Error().Err(err).Msg("graceful shutdown failed")
			err = w.server.Close()
		}

		if err != nil {
			return err
		}
	}

	return nil
}
