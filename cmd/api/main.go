package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/broger/storefront-backend/api/routes"
	"github.com/broger/storefront-backend/internal/cart"
	checkoutsvc "github.com/broger/storefront-backend/internal/checkout"
	"github.com/broger/storefront-backend/internal/menu"
	"github.com/broger/storefront-backend/internal/payments"
	"github.com/broger/storefront-backend/internal/reviews"
	"github.com/broger/storefront-backend/internal/serviceoptions"
	"github.com/broger/storefront-backend/internal/settings"
	"github.com/broger/storefront-backend/internal/sidebar"
	"github.com/broger/storefront-backend/pkg/config"
	"github.com/broger/storefront-backend/pkg/db"
	"github.com/broger/storefront-backend/pkg/logger"
	"github.com/broger/storefront-backend/pkg/metrics"
	"github.com/broger/storefront-backend/pkg/migrate"
	"github.com/broger/storefront-backend/pkg/money"
	"github.com/broger/storefront-backend/pkg/redis"
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

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing database", err)
		}
	}()

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	redisClient, err := redis.New(context.Background(), cfg.Redis, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap redis", err)
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing redis", err)
		}
	}()

	menuService, err := menu.NewService(menu.NewRepository(dbClient.DB()))
	if err != nil {
		logg.Error(context.Background(), "failed to create menu service", err)
		os.Exit(1)
	}

	reviewService, err := reviews.NewService(reviews.NewRepository(dbClient.DB()))
	if err != nil {
		logg.Error(context.Background(), "failed to create review service", err)
		os.Exit(1)
	}

	optionService, err := serviceoptions.NewService(serviceoptions.NewRepository(dbClient.DB()))
	if err != nil {
		logg.Error(context.Background(), "failed to create service option service", err)
		os.Exit(1)
	}

	paymentService, err := payments.NewService(payments.NewRepository(dbClient.DB()))
	if err != nil {
		logg.Error(context.Background(), "failed to create payment method service", err)
		os.Exit(1)
	}

	settingService, err := settings.NewService(
		settings.NewRepository(dbClient.DB()),
		money.MustFromString(cfg.Storefront.FreeDeliveryThreshold),
	)
	if err != nil {
		logg.Error(context.Background(), "failed to create settings service", err)
		os.Exit(1)
	}

	sidebarService, err := sidebar.NewService(sidebar.NewRepository(dbClient.DB()))
	if err != nil {
		logg.Error(context.Background(), "failed to create sidebar service", err)
		os.Exit(1)
	}

	cartStore, err := cart.NewRedisStore(redisClient, cfg.Cart.TTL)
	if err != nil {
		logg.Error(context.Background(), "failed to create cart store", err)
		os.Exit(1)
	}
	cartService, err := cart.NewService(cartStore, menuService)
	if err != nil {
		logg.Error(context.Background(), "failed to create cart service", err)
		os.Exit(1)
	}

	checkoutService, err := checkoutsvc.NewService(
		cartService,
		optionService,
		paymentService,
		settingService,
		checkoutsvc.Config{
			StoreName:       cfg.Storefront.StoreName,
			DeliveryFee:     money.MustFromString(cfg.Storefront.DeliveryFee),
			MessengerPageID: cfg.Storefront.MessengerPageID,
		},
	)
	if err != nil {
		logg.Error(context.Background(), "failed to create checkout service", err)
		os.Exit(1)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	httpMetrics := metrics.NewHTTPMetrics(registry)

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(cfg, logg, routes.Services{
			Menu:           menuService,
			Reviews:        reviewService,
			Cart:           cartService,
			Checkout:       checkoutService,
			ServiceOptions: optionService,
			Payments:       paymentService,
			Settings:       settingService,
			Sidebar:        sidebarService,
		}, routes.Deps{
			DB:          dbClient,
			Redis:       redisClient,
			HTTPMetrics: httpMetrics,
			Gatherer:    registry,
		}),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
