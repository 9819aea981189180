package main

import (
	"fmt"
	"os"

	"itemledger/internal/api"
	"itemledger/internal/config"
	"itemledger/internal/database"
	"itemledger/internal/database/repository"
	"itemledger/internal/database/service"
	"itemledger/internal/handler"
	"itemledger/internal/logger"
)

func main() {
	// 1. Config
	cfg := config.LoadConfig()

	// 2. Logger
	appLogger := logger.New(cfg)

	appLogger.Info("🚀 [Go] Starting itemledger...",
		"driver", cfg.DatabaseDriver,
		"environment", cfg.AppEnv,
	)

	// 3. Connect to Database
	if err := database.ConnectDatabase(cfg, appLogger); err != nil {
		appLogger.Error("❌ Failed to connect to database", "error", err)
		os.Exit(1)
	}

	db := database.GetDatabase()

	// 4. Initialize Repositories
	userRepo := repository.NewUserRepository(db)
	itemRepo := repository.NewItemRepository(db)

	// 5. Initialize Services
	userService := service.NewUserService(userRepo, appLogger)
	itemService := service.NewItemService(itemRepo, userRepo, appLogger)

	// 6. Initialize Handlers & Router
	userHandler := handler.NewUserHandler(userService, cfg, appLogger)
	itemHandler := handler.NewItemHandler(itemService, cfg, appLogger)

	r := api.SetupRouter(userHandler, itemHandler, database.SessionMiddleware(db), appLogger)

	// 7. Start HTTP Server
	addr := fmt.Sprintf(":%s", cfg.ApiServicePort)
	appLogger.Info("🌍 [Go] HTTP Server running on port...", "port", addr)
	if err := r.Run(addr); err != nil {
		appLogger.Error("❌ HTTP Server failed to start", "error", err)
		os.Exit(1)
	}
}
