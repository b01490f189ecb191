package main

import (
	"errors"
	"flag"
	"math/rand/v2"
	"time"

	"go-stock-control/internal/config"
	"go-stock-control/internal/model"
	"go-stock-control/internal/seed"
	"go-stock-control/pkg/filestore"
	"go-stock-control/pkg/logger"

	"go.uber.org/zap"
)

func main() {
	count := flag.Int("count", 600, "number of products to generate")
	force := flag.Bool("force", false, "overwrite an existing inventory file")
	randSeed := flag.Uint64("seed", uint64(time.Now().UnixNano()), "random seed")
	flag.Parse()

	// 1. Load Env
	cfg, envLoaded := config.Load()
	logger.Init(cfg.Env)
	defer logger.Sync()
	log := logger.Log

	if !envLoaded {
		log.Warn(".env file not found, relying on system env")
	}

	// 2. Refuse to clobber real data
	store := filestore.New(cfg.InventoryFile, filestore.WithValidator(model.ValidateItems))
	existing, err := store.Load()
	if err != nil && !errors.Is(err, filestore.ErrColdStart) && !*force {
		log.Fatal("existing inventory file is unreadable, use -force to overwrite", zap.Error(err))
	}
	if len(existing) > 0 && !*force {
		log.Fatal("inventory file already has data, use -force to overwrite",
			zap.String("path", store.Path()), zap.Int("items", len(existing)))
	}

	// 3. Generate and write
	items := seed.Generate(*count, rand.New(rand.NewPCG(*randSeed, *randSeed)))
	if err := store.Save(items); err != nil {
		log.Fatal("failed to write inventory file", zap.Error(err))
	}

	log.Info("generated inventory", zap.String("path", store.Path()), zap.Int("items", len(items)), zap.Uint64("seed", *randSeed))
}
