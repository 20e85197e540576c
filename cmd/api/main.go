package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	request "fulfillment_service/internal/adapter/http/dto/request"
	"fulfillment_service/internal/adapter/http/routes"
	"fulfillment_service/internal/infrastructure/config"
	"fulfillment_service/internal/infrastructure/logger"
	"fulfillment_service/internal/infrastructure/metrics"
	"fulfillment_service/internal/usecase"
)

// @title           Fulfillment Service API
// @version         1.0
// @description     Order fulfillment tracking and payment reconciliation backed by DynamoDB.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

const serviceName = "fulfillment-api"

func main() {
	logg := logger.New(logger.Options{ServiceName: serviceName})

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: serviceName,
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		Format:      cfg.App.LogFormat,
		WarnStack:   cfg.App.LogWarnStack,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)

	stores, err := openStores(ctx, cfg, logg)
	if err != nil {
		logg.Error(ctx, "failed to open document store", err)
		os.Exit(1)
	}

	locker, closeLocker, err := openLocker(ctx, cfg, m, logg)
	if err != nil {
		logg.Error(ctx, "failed to create order locker", err)
		os.Exit(1)
	}
	defer closeLocker()

	if err := request.RegisterValidators(); err != nil {
		logg.Error(ctx, "failed to register request validators", err)
		os.Exit(1)
	}

	router := routes.NewRouter(routes.Dependencies{
		JWT:            cfg.JWT,
		Logger:         logg,
		Gatherer:       reg,
		Orders:         usecase.NewOrderUseCase(stores.orders, logg),
		Tracker:        usecase.NewStageTrackerUseCase(stores.orders, locker, logg, m),
		Ledger:         usecase.NewPaymentLedgerUseCase(stores.orders, stores.methods, logg, m),
		PaymentMethods: usecase.NewPaymentMethodUseCase(stores.methods, logg),
		Reports:        usecase.NewReportUseCase(stores.orders, stores.methods, logg),
	})

	ctx = logg.WithFields(ctx, map[string]any{
		"env":          cfg.App.Env,
		"store_driver": cfg.Store.Driver,
		"lock_driver":  cfg.Store.LockDriver,
	})
	if err := routes.Run(ctx, ":"+cfg.App.Port, router, logg); err != nil {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
