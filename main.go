package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gyaandeepika/config"
	"gyaandeepika/database"
	"gyaandeepika/routers"
	"gyaandeepika/services"
	"gyaandeepika/utils"
	"gyaandeepika/utils/ai"
	"gyaandeepika/utils/logger"
)

func main() {
	config.LoadConfig()

	// Production always logs in JSON regardless of LOG_MODE
	logMode := config.AppConfig.LogMode
	if config.AppConfig.IsProduction() {
		logMode = "production"
	}
	if err := logger.Init(logMode); err != nil {
		panic(err)
	}
	defer logger.Log.Sync()

	if err := database.ConnectDb(); err != nil {
		logger.Log.Fatal("failed to connect to the database", "error", err)
	}

	completer := ai.NewFromConfig(config.AppConfig)
	app := routers.NewApp(completer)

	summaries := services.NewSummaryService(database.Database.Db, completer, config.AppConfig.SummaryTTL)
	scheduler, err := utils.InitializeSummaryScheduler(config.AppConfig.SummaryCleanupSpec, summaries)
	if err != nil {
		logger.Log.Fatal("failed to start summary scheduler", "error", err)
	}

	go func() {
		logger.Log.Info("server is running", "port", config.AppConfig.Port)
		if err := app.Listen(":" + config.AppConfig.Port); err != nil {
			logger.Log.Fatal("server stopped", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Log.Info("shutting down")
	<-scheduler.Stop().Done()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		logger.Log.Error("forced shutdown", "error", err)
	}
}
