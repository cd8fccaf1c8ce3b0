// Package app wires configuration, storage and use cases into one
// container shared by the HTTP API and portalctl.
package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"alu_portal/internal/adapter/messaging"
	"alu_portal/internal/adapter/persistence/cartstore"
	"alu_portal/internal/adapter/persistence/repository"
	"alu_portal/internal/coordinator/sagalog/sqlite"
	"alu_portal/internal/infrastructure/config"
	"alu_portal/internal/infrastructure/database"
	"alu_portal/internal/infrastructure/metrics"
	"alu_portal/internal/usecase"
	"alu_portal/internal/usecase/interfaces"
)

type Container struct {
	Config      *config.Config
	Metrics     *metrics.Registry
	Products    usecase.IProductUseCase
	Carts       usecase.ICartUseCase
	Orders      usecase.IOrderUseCase
	OrderStatus usecase.IOrderStatusUseCase
	Documents   usecase.IDocumentUseCase

	closers []func() error
}

// New connects every backend named in cfg. On error the backends opened so
// far are closed again.
func New(ctx context.Context, cfg *config.Config) (*Container, error) {
	c := &Container{Config: cfg, Metrics: metrics.NewRegistry()}
	if err := c.wire(ctx); err != nil {
		_ = c.Close()
		return nil, err
	}
	return c, nil
}

func (c *Container) wire(ctx context.Context) error {
	cfg := c.Config
	ddb, err := database.ConnectDynamoDB(ctx, cfg.AWS)
	if err != nil {
		return fmt.Errorf("dynamodb: %w", err)
	}
	productRepo := repository.NewProductDynamoRepository(ddb, cfg.Tables.Products)
	orderRepo := repository.NewOrderDynamoRepository(ddb, repository.OrderTables{
		Orders:     cfg.Tables.Orders,
		OrderRefs:  cfg.Tables.OrderRefs,
		OrderItems: cfg.Tables.OrderItems,
	})

	storage, err := c.openCartStorage(cfg.Cart)
	if err != nil {
		return err
	}

	var publisher interfaces.IOrderEventPublisher
	if cfg.Kafka.Brokers != "" {
		p := messaging.NewKafkaOrderPublisher(cfg.Kafka.Brokers, cfg.Kafka.OrderTopic)
		c.closers = append(c.closers, p.Close)
		publisher = p
		log.Printf("[app] order events enabled topic=%s", cfg.Kafka.OrderTopic)
	}

	orderOpts := []usecase.OrderUseCaseOption{
		usecase.WithOrderEvents(publisher),
		usecase.WithOrderMetrics(c.Metrics),
		usecase.WithDefaultCustomer(cfg.DefaultCustomerName),
	}
	if cfg.SagaLogPath != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.SagaLogPath), 0o755); err != nil {
			return fmt.Errorf("saga log dir: %w", err)
		}
		sagaLog, err := sqlite.Open(cfg.SagaLogPath)
		if err != nil {
			return err
		}
		c.closers = append(c.closers, sagaLog.Close)
		orderOpts = append(orderOpts, usecase.WithSagaLog(sagaLog))
	}

	status := usecase.NewOrderStatusUseCase(orderRepo, publisher, c.Metrics,
		usecase.WithProjectionMaxAge(cfg.ProjectionTTL))
	orderOpts = append(orderOpts, usecase.WithOrderTracker(status))

	c.Products = usecase.NewProductUseCase(productRepo)
	c.Carts = usecase.NewCartUseCase(storage, productRepo, c.Metrics)
	c.Orders = usecase.NewOrderUseCase(orderRepo, c.Carts, orderOpts...)
	c.OrderStatus = status
	c.Documents = usecase.NewDocumentUseCase(c.Carts, c.Orders, cfg.ShipToAddress, cfg.DefaultCustomerName)
	return nil
}

func (c *Container) openCartStorage(cfg config.CartConfig) (interfaces.ICartStorage, error) {
	switch cfg.Backend {
	case config.CartBackendRedis:
		s := cartstore.NewRedisStorage(cfg.RedisAddr, cfg.TTL)
		c.closers = append(c.closers, s.Close)
		log.Printf("[app] cart storage redis addr=%s ttl=%s", cfg.RedisAddr, cfg.TTL)
		return s, nil
	case config.CartBackendMemory:
		log.Printf("[app] cart storage memory")
		return cartstore.NewMemoryStorage(), nil
	default:
		s, err := cartstore.NewPebbleStorage(cfg.PebbleDir)
		if err != nil {
			return nil, err
		}
		c.closers = append(c.closers, s.Close)
		log.Printf("[app] cart storage pebble dir=%s", cfg.PebbleDir)
		return s, nil
	}
}

// Close releases backends in reverse opening order.
func (c *Container) Close() error {
	var errs []error
	for i := len(c.closers) - 1; i >= 0; i-- {
		if err := c.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	c.closers = nil
	return errors.Join(errs...)
}
