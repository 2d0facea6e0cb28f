package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"storefront/internal/checkout"
	"storefront/internal/config"
	httpapi "storefront/internal/http"
	"storefront/internal/logging"
	"storefront/internal/repository"
	"storefront/internal/seed"
	"storefront/internal/service"
)

func main() {
	cfg := config.FromEnv()
	logger, err := logging.New(cfg.LogLevel, cfg.LogDevelopment)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	store := repository.NewMemoryStore()
	customersRepo := repository.NewMemoryCustomers(store)
	cartsRepo := repository.NewMemoryCarts(store)
	tx := repository.NewMemoryTx(store)

	engine := checkout.New(
		checkout.WithShippingFee(cfg.ShippingFee),
		checkout.WithLogger(logger.Named("checkout")),
	)

	productsSvc := service.NewProductService(store, tx, logger.Named("catalog"))
	customersSvc := service.NewCustomerService(customersRepo, logger.Named("customers"))
	cartsSvc := service.NewCartService(cartsRepo, store, customersRepo, tx, engine, logger.Named("carts"))

	if cfg.SeedDemo {
		res, err := seed.Demo(context.Background(), productsSvc, customersSvc, time.Now())
		if err != nil {
			logger.Fatal("seed demo data", zap.Error(err))
		}
		logger.Info("demo data loaded", zap.Any("products", res.Products), zap.String("customer_id", res.CustomerID))
	}

	srv := httpapi.NewServer(productsSvc, customersSvc, cartsSvc, logger.Named("http"))

	httpServer := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: srv.Engine(),
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("HTTP server listening", zap.String("addr", httpServer.Addr), zap.Stringer("shipping_fee", cfg.ShippingFee))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-quit:
		logger.Info("shutting down", zap.String("signal", sig.String()))
	case err := <-serverErr:
		logger.Error("server error", zap.Error(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		logger.Error("shutdown error", zap.Error(err))
	}
}
