package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/mcproperty/invoicing/internal/application/billing"
	infrapdf "github.com/mcproperty/invoicing/internal/infrastructure/pdf"
	"github.com/mcproperty/invoicing/internal/infrastructure/recordstore"
	httpRouter "github.com/mcproperty/invoicing/internal/interfaces/http"
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
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("starting application")

	storeClient := recordstore.NewClient(cfg.Store.BaseURL, cfg.Store.Timeout())
	customerRepo := recordstore.NewCustomerRepository(storeClient)
	invoiceRepo := recordstore.NewInvoiceRepository(storeClient)

	customerUC := billing.NewCustomerUseCase(customerRepo)
	invoiceUC := billing.NewInvoiceUseCase(invoiceRepo, customerRepo)

	pdfRenderer := infrapdf.NewMarotoInvoiceRenderer()
	invoicePDFUC := billing.NewPDFUseCase(invoiceRepo, customerRepo, pdfRenderer, billing.BusinessInfo{
		Name:    cfg.Business.Name,
		Email:   cfg.Business.Email,
		Address: cfg.Business.Address,
		Phone:   cfg.Business.Phone,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI locally: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Invoicing API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CustomerUC: customerUC,
		InvoiceUC:  invoiceUC,
		InvoicePDF: invoicePDFUC,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("HTTP server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutdown signal received, stopping server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}

	log.Info().Msg("application stopped")
}
