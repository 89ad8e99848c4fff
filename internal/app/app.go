package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/SergeyBogomolovv/payment-reconciler/internal/config"
	"github.com/SergeyBogomolovv/payment-reconciler/internal/middleware"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

type application struct {
	logger *slog.Logger

	router    chi.Router
	jwtSecret string
	httpSrv   *http.Server
	consumers []Consumer
	starters  []Starter
	closers   []io.Closer
}

func New(logger *slog.Logger, cfg config.Config) *application {
	router := chi.NewRouter()
	router.Use(chimw.RequestID)
	router.Use(chimw.RealIP)
	router.Use(middleware.Tracing)
	router.Use(middleware.Logger(logger))
	router.Use(middleware.Metrics)
	router.Use(chimw.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.Cors.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}))

	router.Handle("/metrics", promhttp.Handler())
	router.Get("/swagger/*", httpSwagger.WrapHandler)

	httpSrv := &http.Server{
		Handler:           router,
		Addr:              net.JoinHostPort(cfg.Http.Host, cfg.Http.Port),
		ReadHeaderTimeout: 5 * time.Second,
	}

	return &application{
		logger:    logger,
		httpSrv:   httpSrv,
		router:    router,
		jwtSecret: cfg.Auth.JWTSecret,
	}
}

type HttpHandler interface {
	Init(r chi.Router)
}

// SetHTTPHandlers монтирует обработчики со своей проверкой подлинности, например вебхук.
func (a *application) SetHTTPHandlers(handlers ...HttpHandler) {
	for _, h := range handlers {
		h.Init(a.router)
	}
}

// SetAuthHTTPHandlers монтирует обработчики за bearer авторизацией.
func (a *application) SetAuthHTTPHandlers(handlers ...HttpHandler) {
	a.router.Group(func(r chi.Router) {
		r.Use(middleware.Authenticate(a.jwtSecret))
		for _, h := range handlers {
			h.Init(r)
		}
	})
}

// SetAdminHTTPHandlers монтирует обработчики только для админов.
func (a *application) SetAdminHTTPHandlers(handlers ...HttpHandler) {
	a.router.Group(func(r chi.Router) {
		r.Use(middleware.Authenticate(a.jwtSecret), middleware.RequireAdmin)
		for _, h := range handlers {
			h.Init(r)
		}
	})
}

type Consumer interface {
	Consume(ctx context.Context)
	Close() error
}

func (a *application) SetConsumers(consumers ...Consumer) {
	a.consumers = consumers
}

type Starter interface {
	Start(ctx context.Context) error
}

func (a *application) SetStarters(starters ...Starter) {
	a.starters = starters
}

// SetClosers регистрирует ресурсы, которые Stop закрывает после сервера и консьюмеров.
func (a *application) SetClosers(closers ...io.Closer) {
	a.closers = closers
}

func (a *application) Start(ctx context.Context) error {
	for _, s := range a.starters {
		if err := s.Start(ctx); err != nil {
			return fmt.Errorf("failed to start %T: %w", s, err)
		}
	}

	for _, c := range a.consumers {
		go c.Consume(ctx)
	}

	go a.startServer()

	a.logger.Info("application started")
	return nil
}

func (a *application) startServer() {
	a.logger.Info("starting http server", slog.String("addr", a.httpSrv.Addr))
	if err := a.httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		a.logger.Error("failed to start http server", slog.Any("error", err))
		os.Exit(1)
	}
}

const gracefulShutdownTimeout = 5 * time.Second

func (a *application) Stop() error {
	ctx, cancel := context.WithTimeout(context.Background(), gracefulShutdownTimeout)
	defer cancel()

	var errs []error
	if err := a.httpSrv.Shutdown(ctx); err != nil {
		errs = append(errs, fmt.Errorf("failed to shutdown http server: %w", err))
	}

	for _, c := range a.consumers {
		if err := c.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close kafka consumer: %w", err))
		}
	}

	for _, c := range a.closers {
		if err := c.Close(); err != nil {
			errs = append(errs, err)
		}
	}

	a.logger.Info("application stopped")
	return errors.Join(errs...)
}
