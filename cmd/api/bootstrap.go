package main

import (
	"context"
	"fmt"

	"fulfillment_service/internal/adapter/persistence/memory"
	"fulfillment_service/internal/adapter/persistence/repository"
	"fulfillment_service/internal/infrastructure/config"
	"fulfillment_service/internal/infrastructure/database"
	"fulfillment_service/internal/infrastructure/lock"
	"fulfillment_service/internal/infrastructure/logger"
	"fulfillment_service/internal/infrastructure/metrics"
	"fulfillment_service/internal/usecase/interfaces"
)

type stores struct {
	orders  interfaces.IOrderRepository
	methods interfaces.IPaymentMethodRepository
}

func openStores(ctx context.Context, cfg *config.Config, logg *logger.Logger) (stores, error) {
	switch cfg.Store.Driver {
	case config.StoreDriverMemory:
		logg.Warn(ctx, "using in-memory store; data is lost on restart")
		return stores{orders: memory.NewOrderStore(), methods: memory.NewPaymentMethodStore()}, nil
	case config.StoreDriverDynamoDB:
		ddb, err := database.ConnectDynamoDB(ctx, cfg.AWS)
		if err != nil {
			return stores{}, err
		}
		// Local endpoints (dynamodb-local, localstack) start empty.
		if cfg.AWS.DynamoDBEndpoint != "" {
			if err := database.EnsureTables(ctx, ddb, cfg.Tables.Orders, cfg.Tables.PaymentMethods); err != nil {
				return stores{}, err
			}
		}
		return stores{
			orders:  repository.NewOrderDynamoRepository(ddb, cfg.Tables.Orders),
			methods: repository.NewPaymentMethodDynamoRepository(ddb, cfg.Tables.PaymentMethods),
		}, nil
	}
	return stores{}, fmt.Errorf("unsupported store driver %q", cfg.Store.Driver)
}

func openLocker(ctx context.Context, cfg *config.Config, m *metrics.Metrics, logg *logger.Logger) (interfaces.IOrderLocker, func(), error) {
	if cfg.Store.LockDriver != config.LockDriverRedis {
		return lock.NewMemoryLocker(m), func() {}, nil
	}
	client, err := lock.NewRedisClient(ctx, cfg.Redis.URL)
	if err != nil {
		return nil, nil, err
	}
	locker, err := lock.NewRedisLocker(client, cfg.Store.LockTTL, m, logg)
	if err != nil {
		_ = client.Close()
		return nil, nil, err
	}
	return locker, func() { _ = client.Close() }, nil
}
