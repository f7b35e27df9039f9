package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"eventshop/internal/config"
	"eventshop/internal/db"
	"eventshop/internal/importer"
	"eventshop/internal/logger"
	productrepo "eventshop/internal/repository/product"
)

func main() {
	path := flag.String("file", "", "path to a JSON catalog export")
	flag.Parse()

	cfg := config.Load()

	log, err := logger.New(cfg.Server.Env)
	if err != nil {
		panic(fmt.Sprintf("init logger: %v", err))
	}
	defer log.Sync()

	if *path == "" {
		log.Fatal("missing -file flag")
	}

	f, err := os.Open(*path)
	if err != nil {
		log.Fatal("open catalog file", zap.Error(err))
	}
	defer f.Close()

	ctx := context.Background()
	pool, err := db.Connect(ctx, cfg.DB.DSN)
	if err != nil {
		log.Fatal("connect db", zap.Error(err))
	}
	defer pool.Close()

	imp := importer.NewJSONImporter(f, productrepo.NewPostgres(pool, log))
	count, err := imp.Run(ctx)
	if err != nil {
		log.Fatal("import failed", zap.Int("imported", count), zap.Error(err))
	}

	log.Info("import complete", zap.Int("imported", count))
}
