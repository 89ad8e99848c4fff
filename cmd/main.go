package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/SergeyBogomolovv/payment-reconciler/docs"
	"github.com/SergeyBogomolovv/payment-reconciler/internal/app"
	"github.com/SergeyBogomolovv/payment-reconciler/internal/config"
	"github.com/SergeyBogomolovv/payment-reconciler/internal/events"
	"github.com/SergeyBogomolovv/payment-reconciler/internal/gateway"
	"github.com/SergeyBogomolovv/payment-reconciler/internal/handler"
	"github.com/SergeyBogomolovv/payment-reconciler/internal/postgres"
	"github.com/SergeyBogomolovv/payment-reconciler/internal/repo"
	"github.com/SergeyBogomolovv/payment-reconciler/internal/service"
	"github.com/SergeyBogomolovv/payment-reconciler/internal/signature"
	"github.com/SergeyBogomolovv/payment-reconciler/internal/telemetry"
	"github.com/SergeyBogomolovv/payment-reconciler/internal/worker"
	"github.com/SergeyBogomolovv/payment-reconciler/pkg/cache"
	"github.com/SergeyBogomolovv/payment-reconciler/pkg/trm"

	"github.com/joho/godotenv"
)

const deliveryCacheCapacity = 10_000

// @title           Payment Reconciler API
// @version         1.0
// @description     Сверка заказов с платёжным шлюзом: webhook, опрос статуса и фоновая сверка
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	conf := config.New()
	logger := newLogger(conf.Env)
	panicIfErr("invalid config", conf.Validate())

	shutdownTracing, err := telemetry.SetupTracing(context.Background(), conf.Telemetry)
	panicIfErr("failed to setup tracing", err)

	db, err := postgres.New(conf.Postgres)
	panicIfErr("failed to connect to db", err)
	defer db.Close()
	logger.Info("postgres connected")

	panicIfErr("failed to apply migrations", postgres.Migrate(db, conf.Postgres.MigrationsPath))

	orderRepo := repo.NewPostgresRepo(db)
	txManager := trm.NewManager(db)
	gatewayClient := gateway.NewClient(conf.Gateway)

	var (
		sink      service.FailureSink
		publisher *events.Publisher
	)
	if conf.Kafka.Enabled {
		publisher = events.NewPublisher(logger, conf.Kafka)
		sink = publisher
	}

	reconciler := service.NewReconciler(logger, orderRepo, sink,
		service.NewStockCoordinator(logger, txManager, orderRepo),
		service.NewCouponCoordinator(logger, txManager, orderRepo),
	)
	paymentService := service.NewPaymentService(logger, gatewayClient, orderRepo, reconciler)
	batch := worker.NewBatchReconciler(logger, orderRepo, paymentService, conf.Batch)

	deliveries := cache.NewLRUCache[struct{}](deliveryCacheCapacity, conf.Webhook.ReplayWindow)
	verifier := signature.NewVerifier(conf.Webhook.Secret, conf.Webhook.ReplayWindow)

	app := app.New(logger, conf)

	app.SetHTTPHandlers(
		handler.NewWebhookHandler(logger, verifier, paymentService, deliveries, conf.Webhook.ProcessTimeout),
		handler.NewHealthHandler(logger, db),
	)
	app.SetAuthHTTPHandlers(handler.NewPaymentHandler(logger, paymentService))
	app.SetAdminHTTPHandlers(handler.NewAdminHandler(logger, paymentService, batch))
	app.SetStarters(deliveries, batch)
	if publisher != nil {
		app.SetConsumers(handler.NewRetryConsumer(logger, conf.Kafka, reconciler, publisher))
		app.SetClosers(publisher)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	panicIfErr("failed to start app", app.Start(ctx))
	<-ctx.Done()
	panicIfErr("failed to stop app", app.Stop())
	panicIfErr("failed to flush traces", shutdownTracing(context.Background()))
}

func init() {
	godotenv.Load()
}

func newLogger(env string) *slog.Logger {
	var h slog.Handler
	switch env {
	case "production":
		h = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	default:
		h = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug})
	}
	return slog.New(telemetry.NewLogHandler(h))
}

func panicIfErr(prefix string, err error) {
	if err != nil {
		panic(prefix + ": " + err.Error())
	}
}
