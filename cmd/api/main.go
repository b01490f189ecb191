package main

import (
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-stock-control/internal/config"
	"go-stock-control/internal/handler"
	"go-stock-control/internal/middleware"
	"go-stock-control/internal/model"
	"go-stock-control/internal/repository"
	"go-stock-control/internal/service"
	"go-stock-control/internal/ws"
	"go-stock-control/pkg/filestore"
	"go-stock-control/pkg/logger"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"
)

func main() {
	// 1. Load Env
	cfg, envLoaded := config.Load()
	logger.Init(cfg.Env)
	defer logger.Sync()
	log := logger.Log

	if !envLoaded {
		log.Warn(".env file not found, relying on system env")
	}

	// 2. Load inventory file
	store := filestore.New(cfg.InventoryFile, filestore.WithValidator(model.ValidateItems))
	items, err := store.Load()
	switch {
	case errors.Is(err, filestore.ErrColdStart):
		log.Warn("inventory file not found, starting with empty inventory", zap.String("path", store.Path()))
	case err != nil:
		log.Fatal("failed to load inventory", zap.Error(err))
	}
	log.Info("inventory loaded", zap.String("path", store.Path()), zap.Int("items", len(items)))

	// 3. Setup WebSocket Hub
	wsHub := ws.NewHub()
	go wsHub.Run()

	// 4. Dependency Injection (Wiring Layers)
	invRepo, err := repository.NewInventoryRepo(items, store)
	if err != nil {
		log.Fatal("failed to build inventory store", zap.Error(err))
	}

	invService := service.NewInventoryService(invRepo, wsHub, cfg.ReorderQuantity)
	dashService := service.NewDashboardService(invRepo)

	invHandler := handler.NewInventoryHandler(invService)
	dashHandler := handler.NewDashboardHandler(dashService)

	// 5. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName:      "Stock Control v1.0",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(middleware.RequestID())
	app.Use(middleware.RequestLogger(log))
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowCredentials: true,
	}))

	// 6. Routes
	handler.RegisterRoutes(app, invHandler, dashHandler)

	// WebSocket Route
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return c.SendStatus(fiber.StatusUpgradeRequired)
	})
	app.Get("/ws", websocket.New(func(c *websocket.Conn) {
		wsHub.Join(c)
		defer wsHub.Leave(c)

		for {
			// Keep alive loop
			if _, _, err := c.ReadMessage(); err != nil {
				break
			}
		}
	}))

	// 7. Graceful Shutdown
	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Panic("server stopped", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server")
	if err := app.Shutdown(); err != nil {
		log.Error("server forced to shutdown", zap.Error(err))
	}
	wsHub.Stop()

	if err := invService.Flush(); err != nil {
		log.Error("unsaved inventory changes lost on shutdown", zap.Error(err))
	}

	log.Info("server exited")
}
