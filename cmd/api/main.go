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

	"github.com/jhoicas/Amenidades-api/internal/application/auth"
	appspotcheck "github.com/jhoicas/Amenidades-api/internal/application/spotcheck"
	"github.com/jhoicas/Amenidades-api/internal/application/usecase"
	"github.com/jhoicas/Amenidades-api/internal/infrastructure/bookings"
	infrapdf "github.com/jhoicas/Amenidades-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Amenidades-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/Amenidades-api/internal/interfaces/http"
	"github.com/jhoicas/Amenidades-api/pkg/config"
	"github.com/jhoicas/Amenidades-api/pkg/logger"
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

	userRepo := postgres.NewUserRepository(pool)
	itemRepo := postgres.NewInventoryItemRepository(pool)
	ruleRepo := postgres.NewConsumptionRuleRepository(pool)
	itemRuleRepo := postgres.NewItemRuleRepository(pool)
	alarmRepo := postgres.NewAlarmRepository(pool)
	spotCheckRepo := postgres.NewSpotCheckRepository(pool)

	bookingSource := bookings.NewHTTPClient(cfg.Bookings)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	itemUC := usecase.NewItemUseCase(itemRepo)
	ruleUC := usecase.NewRuleUseCase(ruleRepo, itemRuleRepo)
	alarmUC := usecase.NewAlarmUseCase(alarmRepo)
	dashboardUC := usecase.NewDashboardUseCase(itemRepo, alarmRepo, spotCheckRepo)

	spotCheckUC := appspotcheck.NewUseCase(
		itemRepo, ruleRepo, itemRuleRepo, alarmRepo, spotCheckRepo,
		bookingSource, log,
	)

	// PDF: reporte imprimible del spot check
	pdfGenerator := infrapdf.NewMarotoReportGenerator()
	reportUC := appspotcheck.NewReportUseCase(spotCheckRepo, itemRepo, pdfGenerator)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Amenidades API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		ItemUC:      itemUC,
		RuleUC:      ruleUC,
		AlarmUC:     alarmUC,
		DashboardUC: dashboardUC,
		SpotCheckUC: spotCheckUC,
		ReportUC:    reportUC,
		JWTSecret:   cfg.JWT.Secret,
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
