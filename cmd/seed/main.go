package main

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"eventshop/internal/config"
	"eventshop/internal/db"
	"eventshop/internal/logger"
	productrepo "eventshop/internal/repository/product"
	"eventshop/internal/seed"
)

func main() {
	cfg := config.Load()

	log, err := logger.New(cfg.Server.Env)
	if err != nil {
		panic(fmt.Sprintf("init logger: %v", err))
	}
	defer log.Sync()

	ctx := context.Background()
	pool, err := db.Connect(ctx, cfg.DB.DSN)
	if err != nil {
		log.Fatal("connect db", zap.Error(err))
	}
	defer pool.Close()

	if err := seed.Apply(ctx, productrepo.NewPostgres(pool, log)); err != nil {
		log.Fatal("apply seed", zap.Error(err))
	}

	log.Info("seed data applied")
}
