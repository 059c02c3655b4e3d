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
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"

	"github.com/transit-tools/station-insights/pkg/handlers/analytics"
	stationmiddleware "github.com/transit-tools/station-insights/pkg/server/middleware"
)

type WebAPI struct {
	router          *chi.Mux
	logger          *zerolog.Logger
	server          *http.Server
	shutdownTimeout time.Duration
}

type Dependencies struct {
	Reports analytics.ReportService
}

type Config struct {
	Addr            string
	ShutdownTimeout time.Duration
	Dependencies    Dependencies
}

func NewWebAPI(logger zerolog.Logger, config Config) *WebAPI {
	handler := analytics.NewHandler(config.Dependencies.Reports)
	router := ConfigureRouter(logger, handler)

	return &WebAPI{
		router:          router,
		logger:          &logger,
		shutdownTimeout: config.ShutdownTimeout,
		server: &http.Server{
			Addr:    config.Addr,
			Handler: router,
		},
	}
}

// ConfigureRouter wires the middleware chain and route table. Split out so
// tests can mount the router on an httptest server.
func ConfigureRouter(logger zerolog.Logger, handler *analytics.Handler) *chi.Mux {
	router := chi.NewRouter()

	router.Use(stationmiddleware.Logger(&logger))
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: false,
	}))

	router.Get("/health", handler.Health)
	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/operational-efficiency", handler.OperationalEfficiency)
		r.Get("/demografi", handler.Demographics)
		r.Get("/segmentasi-perjalanan", handler.TripSegmentation)
		r.Get("/segmentasi-loyaltas", handler.LoyaltySegmentation)
		r.Get("/behavior-correlation", handler.BehaviorCorrelation)
		r.Get("/all-data", handler.AllData)
	})

	return router
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
