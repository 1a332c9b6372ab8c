package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/kojoantwi/shoppoint-backend/api/routes"
	"github.com/kojoantwi/shoppoint-backend/internal/expenditures"
	"github.com/kojoantwi/shoppoint-backend/internal/inventory"
	"github.com/kojoantwi/shoppoint-backend/internal/pos"
	"github.com/kojoantwi/shoppoint-backend/internal/sales"
	"github.com/kojoantwi/shoppoint-backend/internal/stock"
	"github.com/kojoantwi/shoppoint-backend/internal/stockpayments"
	"github.com/kojoantwi/shoppoint-backend/pkg/config"
	"github.com/kojoantwi/shoppoint-backend/pkg/logger"
	"github.com/kojoantwi/shoppoint-backend/pkg/metrics"
	"github.com/kojoantwi/shoppoint-backend/pkg/redis"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	var redisClient *redis.Client
	if cfg.Redis.Enabled() {
		redisClient, err = redis.New(context.Background(), cfg.Redis)
		if err != nil {
			logg.Error(context.Background(), "failed to bootstrap redis", err)
			os.Exit(1)
		}
		defer func() {
			if err := redisClient.Close(); err != nil {
				logg.Error(context.Background(), "error closing redis", err)
			}
		}()
	} else {
		logg.Warn(context.Background(), "redis not configured, idempotency replay protection disabled")
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	saleMetrics := metrics.NewSaleMetrics(registry)

	ledger := inventory.NewLedger()
	sessions := pos.NewSessions(ledger, saleMetrics)

	salesService, err := sales.NewService(sales.ServiceParams{
		Sessions:      sessions,
		Repo:          sales.NewRepository(),
		SaleMetrics:   saleMetrics,
		Logger:        logg,
		ReceiptPrefix: cfg.Retail.ReceiptPrefix,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create sales service", err)
		os.Exit(1)
	}

	expenditureService, err := expenditures.NewService(expenditures.NewRepository(), logg)
	if err != nil {
		logg.Error(context.Background(), "failed to create expenditure service", err)
		os.Exit(1)
	}

	creditorRepo := stock.NewCreditorRepository()
	stockService, err := stock.NewService(stock.ServiceParams{
		Batches:   stock.NewBatchRepository(),
		Creditors: creditorRepo,
		Ledger:    ledger,
		Logger:    logg,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create stock service", err)
		os.Exit(1)
	}

	stockPaymentService, err := stockpayments.NewService(stockpayments.ServiceParams{
		Payments:  stockpayments.NewRepository(),
		Creditors: creditorRepo,
		Logger:    logg,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create stock payment service", err)
		os.Exit(1)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":      cfg.App.Env,
		"addr":     addr,
		"currency": cfg.Retail.Currency,
	})
	logg.Info(ctx, "starting api server")

	routerParams := routes.RouterParams{
		Config:        cfg,
		Logger:        logg,
		Ledger:        ledger,
		Sessions:      sessions,
		Sales:         salesService,
		Expenditures:  expenditureService,
		Stock:         stockService,
		StockPayments: stockPaymentService,
		Registry:      registry,
	}
	if redisClient != nil {
		routerParams.Idempotency = redisClient
		routerParams.Pinger = redisClient
	}

	server := &http.Server{
		Addr:    addr,
		Handler: routes.NewRouter(routerParams),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
