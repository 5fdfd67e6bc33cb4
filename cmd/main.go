package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	appcart "github.com/breightend/mykonos-inventory/application/cart"
	appcatalog "github.com/breightend/mykonos-inventory/application/catalog"
	appledger "github.com/breightend/mykonos-inventory/application/ledger"
	appreservation "github.com/breightend/mykonos-inventory/application/reservation"
	"github.com/breightend/mykonos-inventory/cmd/config"
	redisclient "github.com/breightend/mykonos-inventory/cmd/redis"
	cartRepo "github.com/breightend/mykonos-inventory/repository/cart"
	ledgerRepo "github.com/breightend/mykonos-inventory/repository/ledger"
	redisRepo "github.com/breightend/mykonos-inventory/repository/redis"
	reservationRepo "github.com/breightend/mykonos-inventory/repository/reservation"
	txRepo "github.com/breightend/mykonos-inventory/repository/tx"
	variantRepo "github.com/breightend/mykonos-inventory/repository/variant"
	"github.com/breightend/mykonos-inventory/thirdparty/rabbitmq"
	"github.com/breightend/mykonos-inventory/transport"
	"github.com/breightend/mykonos-inventory/utils/logger"
)

// @title Mykonos Inventory API
// @version 1.0
// @description Inventory allocation and reservation engine for the Mykonos store
// @host localhost:8080
// @BasePath /
func main() {
	cfg := config.Load()

	if err := logger.Init(cfg.Environment); err != nil {
		panic(err)
	}
	defer logger.Close()

	logger.Info("Starting inventory service", zap.String("env", cfg.Environment))

	// Connect to database
	db, err := sqlx.Connect("mysql", cfg.GetDSN())
	if err != nil {
		logger.Fatal("err connect db", zap.Error(err))
	}
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	// Redis is optional: the displayed-stock hint degrades to DB-only.
	if err := redisclient.New(cfg); err != nil {
		logger.Warn("redis unavailable, stock hint cache disabled", zap.Error(err))
	}
	defer func() {
		_ = redisclient.Close()
	}()

	// Initialize repositories
	TxRepo := txRepo.NewTxRepository(db)
	VariantRepo := variantRepo.NewVariantRepository(db)
	LedgerRepo := ledgerRepo.NewLedgerRepository(db)
	ReservationRepo := reservationRepo.NewReservationRepository(db)
	CartRepo := cartRepo.NewCartRepository(db)
	RedisRepo := redisRepo.NewRepository()

	// RabbitMQ is optional too: the sweeper ticker below still expires
	// reservations when the broker is down.
	var publisher *rabbitmq.Publisher
	var consumer *rabbitmq.Consumer
	if cfg.RabbitMQ.Enabled {
		publisher, err = rabbitmq.NewPublisher(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password)
		if err != nil {
			logger.Warn("rabbitmq publisher unavailable", zap.Error(err))
			publisher = nil
		}
		apiURL := "http://localhost:" + cfg.Server.Port
		consumer, err = rabbitmq.NewConsumer(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password, apiURL, cfg.InternalAPIKey)
		if err != nil {
			logger.Warn("rabbitmq consumer unavailable", zap.Error(err))
			consumer = nil
		}
	}
	if publisher != nil {
		defer publisher.Close()
	}

	// Initialize application layers
	CatalogApp := appcatalog.NewCatalogApp(VariantRepo)
	LedgerApp := appledger.NewLedgerApp(TxRepo, LedgerRepo, VariantRepo, RedisRepo)
	ReservationApp := appreservation.NewReservationApp(cfg, TxRepo, LedgerRepo, ReservationRepo, VariantRepo, RedisRepo, publisher)
	CartApp := appcart.NewCartApp(CartRepo, CatalogApp, ReservationApp)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if consumer != nil {
		if err := consumer.Start(ctx); err != nil {
			logger.Warn("rabbitmq consumer start failed", zap.Error(err))
		}
		defer consumer.Close()
	}

	// Periodic sweep: the external scheduler role. Runs regardless of the
	// delayed-message path so abandoned holds always return to
	// availability.
	go func() {
		ticker := time.NewTicker(cfg.Reservation.SweepInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if _, err := ReservationApp.SweepExpired(ctx, time.Now()); err != nil {
					logger.Error("sweep expired reservations failed", zap.Error(err))
				}
			}
		}
	}()

	httpTransport := transport.NewTransport(ReservationApp, LedgerApp, CartApp, CatalogApp, cfg.InternalAPIKey)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:      httpTransport,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	logger.Info("HTTP server running", zap.String("port", cfg.Server.Port))
	if err := server.ListenAndServe(); err != nil {
		logger.Fatal("failed server", zap.Error(err))
	}
}
