package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/serviya/serviya-api/internal/application/admin"
	"github.com/serviya/serviya-api/internal/application/auth"
	"github.com/serviya/serviya-api/internal/application/provider"
	"github.com/serviya/serviya-api/internal/application/usecase"
	"github.com/serviya/serviya-api/internal/infrastructure/postgres"
	"github.com/serviya/serviya-api/internal/infrastructure/storage"
	"github.com/serviya/serviya-api/internal/infrastructure/supabase"
	httpRouter "github.com/serviya/serviya-api/internal/interfaces/http"
	"github.com/serviya/serviya-api/pkg/config"
	"github.com/serviya/serviya-api/pkg/logger"
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

	userRepo := postgres.NewUserProfileRepository(pool)
	roleRepo := postgres.NewRoleRepository(pool)
	profileRepo := postgres.NewCompanyProfileRepository(pool)
	requestRepo := postgres.NewVerificationRequestRepository(pool)
	docRepo := postgres.NewDocumentRepository(pool)
	locationRepo := postgres.NewLocationRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	uploader, err := storage.NewS3Uploader(cfg.Storage)
	if err != nil {
		log.Fatal().Err(err).Msg("cliente de blob storage")
	}

	authClient := supabase.NewAuthClient(cfg.Supabase.URL, cfg.Supabase.AnonKey)
	verifier := supabase.NewTokenVerifier(cfg.Supabase.JWTSecret)

	authUC := auth.NewAuthUseCase(authClient, roleRepo)
	submitUC := provider.NewSubmitVerificationUseCase(txRunner, userRepo, profileRepo, uploader)
	reviewUC := admin.NewReviewUseCase(txRunner, userRepo, requestRepo, profileRepo, docRepo)
	locationUC := usecase.NewLocationUseCase(locationRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 30,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
		BodyLimit:    32 * 1024 * 1024, // documentos adjuntos en multipart
	})
	app.Use(recover.New())
	app.Use(cors.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Serviya API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:     authUC,
		SubmitUC:   submitUC,
		ReviewUC:   reviewUC,
		LocationUC: locationUC,
		Verifier:   verifier,
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
