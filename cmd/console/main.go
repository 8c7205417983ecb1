package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/algatrack/console/internal/application/auth"
	"github.com/algatrack/console/internal/application/simulacion"
	"github.com/algatrack/console/internal/application/usecase"
	"github.com/algatrack/console/internal/infrastructure/backend"
	httpRouter "github.com/algatrack/console/internal/interfaces/http"
	"github.com/algatrack/console/pkg/config"
	"github.com/algatrack/console/pkg/logger"
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
		Str("backend", cfg.Backend.BaseURL).
		Msg("iniciando consola")

	if cfg.Session.Secret == "" {
		log.Fatal().Msg("SESSION_SECRET es requerido")
	}

	gateway := backend.New(cfg.Backend)

	authUC := auth.NewAuthUseCase(gateway, auth.SessionConfig{
		Secret:     cfg.Session.Secret,
		ExpMinutes: cfg.Session.Expiration,
		Issuer:     cfg.Session.Issuer,
	})
	dashboardUC := usecase.NewDashboardUseCase(gateway)
	lotesUC := usecase.NewLotesUseCase(gateway)
	pedidosUC := usecase.NewPedidosUseCase(gateway)
	clientesUC := usecase.NewClientesUseCase(gateway)
	usuariosUC := usecase.NewUsuariosUseCase(gateway)
	configuracionUC := usecase.NewConfiguracionUseCase(gateway)
	calendarioUC := usecase.NewCalendarioUseCase(gateway)
	simulacionSvc := simulacion.NewService(gateway)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		Views:        httpRouter.NewViews(),
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.AccessLog(log))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:            authUC,
		DashboardUC:       dashboardUC,
		LotesUC:           lotesUC,
		PedidosUC:         pedidosUC,
		ClientesUC:        clientesUC,
		UsuariosUC:        usuariosUC,
		ConfiguracionUC:   configuracionUC,
		CalendarioUC:      calendarioUC,
		SimulacionSvc:     simulacionSvc,
		SessionSecret:     cfg.Session.Secret,
		SessionExpMinutes: cfg.Session.Expiration,
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

	log.Info().Msg("consola detenida")
}
