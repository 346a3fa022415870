package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/customer-service/internal/api/http"
	"github.com/spec-kit/customer-service/internal/api/http/handlers"
	"github.com/spec-kit/customer-service/internal/config"
	"github.com/spec-kit/customer-service/internal/events"
	"github.com/spec-kit/customer-service/internal/observability"
	"github.com/spec-kit/customer-service/internal/seed"
	"github.com/spec-kit/customer-service/internal/service"
	"github.com/spec-kit/customer-service/internal/store"
	"github.com/spec-kit/customer-service/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	entityStore := store.New()
	if cfg.Seed.Enabled {
		seed.Load(entityStore)
		logger.Info("seeded demo dataset",
			zap.Int("tickets", entityStore.TicketCount()))
	}

	dispatcher := events.NewInMemoryDispatcher()
	metrics := observability.NewMetrics()

	orderService := service.NewOrderService(service.OrderDependencies{
		Store:      entityStore,
		Dispatcher: dispatcher,
	})
	ticketService := service.NewTicketService(service.TicketDependencies{
		Store:      entityStore,
		Dispatcher: dispatcher,
	})
	customerService := service.NewCustomerService(entityStore)

	notificationService := service.NewNotificationService(dispatcher, logger, cfg.Notification)
	worker.StartNotificationWorker(notificationService)

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	healthHandler := handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, entityStore)
	toolsHandler := handlers.NewToolsHandler(orderService, ticketService, customerService)

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health: healthHandler,
		Tools:  toolsHandler,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
