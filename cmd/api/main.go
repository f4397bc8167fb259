package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jhoicas/billing-api/internal/application/billing"
	domainbilling "github.com/jhoicas/billing-api/internal/domain/billing"
	"github.com/jhoicas/billing-api/internal/infrastructure/notification"
	"github.com/jhoicas/billing-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/billing-api/internal/interfaces/http"
	"github.com/jhoicas/billing-api/pkg/config"
	"github.com/jhoicas/billing-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	customerRepo := postgres.NewCustomerRepository(pool)
	invoiceRepo := postgres.NewInvoiceRepository(pool)
	paymentRepo := postgres.NewPaymentRepository(pool)

	notifier := notification.NewLogNotifier(log)

	// Candado por cliente compartido entre los casos de uso que mutan
	// el límite de crédito o el estado de la cuenta.
	locks := billing.NewKeyedMutex()

	paymentUC := billing.NewPaymentUseCase(paymentRepo, notifier, log, cfg.Billing.ConfirmationTimeout())
	customerUC := billing.NewCustomerUseCase(customerRepo, invoiceRepo, locks, log)
	creditUC := billing.NewCreditUseCase(customerRepo, invoiceRepo, locks, log)
	invoiceUC := billing.NewInvoiceUseCase(invoiceRepo)
	calculator := domainbilling.NewCreditCalculator(customerRepo, invoiceRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		PaymentUC:  paymentUC,
		CustomerUC: customerUC,
		CreditUC:   creditUC,
		InvoiceUC:  invoiceUC,
		Calculator: calculator,
		JWTSecret:  cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
