// Command store runs a standalone JSON-file-backed record store for
// local development. It serves generic collection CRUD so the API can
// run without external infrastructure.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/mcproperty/invoicing/internal/store"
	"github.com/mcproperty/invoicing/pkg/config"
	"github.com/mcproperty/invoicing/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})

	s, err := store.New(cfg.DevStore.DBFile, "customers", "invoices")
	if err != nil {
		log.Fatal().Err(err).Str("file", cfg.DevStore.DBFile).Msg("open record store")
	}
	log.Info().
		Str("file", cfg.DevStore.DBFile).
		Int("port", cfg.DevStore.Port).
		Msg("starting record store")

	app := fiber.New(fiber.Config{
		AppName:      "record-store",
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	store.RegisterRoutes(app, s, log)

	go func() {
		addr := fmt.Sprintf(":%d", cfg.DevStore.Port)
		if err := app.Listen(addr); err != nil {
			log.Error().Err(err).Msg("record store stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutdown signal received, stopping record store...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("record store shutdown")
	}
}
