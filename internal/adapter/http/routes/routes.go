package routes

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "fulfillment_service/docs" // generated by swag init
	"fulfillment_service/internal/adapter/http/handlers"
	"fulfillment_service/internal/adapter/http/middleware"
	"fulfillment_service/internal/infrastructure/config"
	"fulfillment_service/internal/infrastructure/logger"
	"fulfillment_service/internal/usecase"
)

const shutdownTimeout = 10 * time.Second

// Dependencies is everything the router needs to serve the API.
type Dependencies struct {
	JWT      config.JWTConfig
	Logger   *logger.Logger
	Gatherer prometheus.Gatherer

	Orders         usecase.IOrderUseCase
	Tracker        usecase.IStageTrackerUseCase
	Ledger         usecase.IPaymentLedgerUseCase
	PaymentMethods usecase.IPaymentMethodUseCase
	Reports        usecase.IReportUseCase
}

// NewRouter builds the gin engine with the middleware chain and every route.
func NewRouter(deps Dependencies) *gin.Engine {
	router := gin.New()
	setMiddlewares(router, deps.Logger)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	gatherer := deps.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	orderHandler := handlers.NewOrderHandler(deps.Orders, deps.Logger)
	trackerHandler := handlers.NewStageTrackerHandler(deps.Tracker, deps.Logger)
	ledgerHandler := handlers.NewPaymentLedgerHandler(deps.Ledger, deps.Logger)
	methodHandler := handlers.NewPaymentMethodHandler(deps.PaymentMethods, deps.Logger)
	reportHandler := handlers.NewReportHandler(deps.Reports)

	v1 := router.Group("/v1")
	addPingRoutes(v1)

	// Everything below requires a token from the identity provider.
	private := v1.Group("")
	private.Use(middleware.Auth(deps.JWT, deps.Logger))
	addOrderRoutes(private, orderHandler, trackerHandler, ledgerHandler)
	addPaymentMethodRoutes(private, methodHandler)
	addReportRoutes(private, reportHandler)

	return router
}

// Run serves router on addr until ctx is cancelled, then drains in-flight requests.
func Run(ctx context.Context, addr string, router http.Handler, logg *logger.Logger) error {
	server := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logg.Info(logg.WithField(ctx, "addr", addr), "http server listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	logg.Info(ctx, "http server shutting down")
	return server.Shutdown(shutdownCtx)
}

func setMiddlewares(router *gin.Engine, logg *logger.Logger) {
	router.Use(middleware.RequestID(logg))
	router.Use(middleware.Logging(logg))
	router.Use(middleware.Recoverer(logg))
}
