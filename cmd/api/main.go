package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"eventshop/internal/config"
	"eventshop/internal/db"
	"eventshop/internal/httpserver"
	"eventshop/internal/logger"
	cartstorerepo "eventshop/internal/repository/cartstore"
	orderrepo "eventshop/internal/repository/order"
	productrepo "eventshop/internal/repository/product"
	cartsvc "eventshop/internal/service/cart"
	checkoutsvc "eventshop/internal/service/checkout"
	productsvc "eventshop/internal/service/product"
)

func main() {
	cfg := config.Load()

	log, err := logger.New(cfg.Server.Env)
	if err != nil {
		panic(fmt.Sprintf("init logger: %v", err))
	}
	defer log.Sync()

	ctx := context.Background()
	dbpool, err := db.Connect(ctx, cfg.DB.DSN)
	if err != nil {
		log.Fatal("connect to db", zap.Error(err))
	}
	defer dbpool.Close()

	products := productrepo.NewPostgres(dbpool, log)
	carts := cartstorerepo.NewPostgres(dbpool, log)
	orders := orderrepo.NewPostgres(dbpool, log)

	productService := productsvc.New(products)
	cartService := cartsvc.New(carts, products, log)
	checkoutService := checkoutsvc.New(carts, orders, log)

	srv := httpserver.New(cfg.Server.Addr, log, dbpool, httpserver.Deps{
		ProductSvc:  productService,
		CartSvc:     cartService,
		CheckoutSvc: checkoutService,
		AdminSecret: cfg.Admin.Secret,
	}, cfg.CORS.AllowedOrigins)

	serverErr := make(chan error, 1)
	go func() {
		log.Info("starting http server", zap.String("addr", cfg.Server.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		log.Info("received signal, shutting down", zap.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server error", zap.Error(err))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", zap.Error(err))
	} else {
		log.Info("server stopped")
	}
}
