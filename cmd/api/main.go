// @title                       Coolant Flow API
// @version                     1.0
// @description                 Distribuidores, clientes, empleados y lecturas de refrigerante con control de acceso por rol.
// @BasePath                    /
// @securityDefinitions.apikey  Bearer
// @in                          header
// @name                        Authorization
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

	"github.com/jhoicas/coolant-flow-api/docs"
	"github.com/jhoicas/coolant-flow-api/internal/application/auth"
	"github.com/jhoicas/coolant-flow-api/internal/application/usecase"
	infrapdf "github.com/jhoicas/coolant-flow-api/internal/infrastructure/pdf"
	"github.com/jhoicas/coolant-flow-api/internal/infrastructure/postgres"
	"github.com/jhoicas/coolant-flow-api/internal/infrastructure/storage"
	httpRouter "github.com/jhoicas/coolant-flow-api/internal/interfaces/http"
	"github.com/jhoicas/coolant-flow-api/pkg/config"
	"github.com/jhoicas/coolant-flow-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	level := "info"
	if cfg.App.IsDevelopment() {
		level = "debug"
	}
	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB, log.Component("postgres"))
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if cfg.DB.AutoMigrate {
		if err := postgres.EnsureSchema(ctx, pool, log.Component("schema")); err != nil {
			log.Fatal().Err(err).Msg("aplicar esquema")
		}
	}

	fs, err := storage.NewDiskFs(cfg.Storage.Root)
	if err != nil {
		log.Fatal().Err(err).Msg("almacén de adjuntos")
	}
	store, err := storage.NewAttachmentStore(fs, storage.Config{
		PublicPath: cfg.Storage.PublicPath,
		MaxBytes:   cfg.Storage.MaxBytes,
	}, log.Component("storage"))
	if err != nil {
		log.Fatal().Err(err).Msg("almacén de adjuntos")
	}

	repos := postgres.NewRepositories(pool)
	machineRepo := postgres.NewMachineRepository(pool)
	txRunner := postgres.NewTxRunner(pool)
	paging := usecase.Paging{DefaultSize: cfg.Paging.DefaultSize, MaxSize: cfg.Paging.MaxSize}

	verifier := auth.NewVerifier(cfg.JWT.Secret, repos.Users, cfg.Auth.RefreshIdentity, log.Component("auth"))
	authUC := auth.NewAuthUseCase(repos.Users, repos.PasswordResets, txRunner, store, auth.JWTConfig{
		Secret:       cfg.JWT.Secret,
		Issuer:       cfg.JWT.Issuer,
		ExpMinutes:   cfg.JWT.Expiration,
		ResetMinutes: cfg.JWT.ResetMinutes,
	}, auth.Options{
		ResetLinkBase: cfg.Auth.ResetLinkBase,
		ExposeLink:    cfg.App.IsDevelopment(),
	}, log.Component("auth"))

	distributorUC := usecase.NewDistributorUseCase(repos.Distributors, txRunner, store,
		infrapdf.NewQRCardGenerator(), paging, log.Component("distributors"))
	clientUC := usecase.NewClientUseCase(repos.Clients, txRunner, store, paging, log.Component("clients"))
	employeeUC := usecase.NewEmployeeUseCase(repos.Employees, repos.Users, txRunner, paging, log.Component("employees"))
	readingUC := usecase.NewReadingUseCase(repos.Readings, machineRepo, txRunner, log.Component("readings"))

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		BodyLimit:    int(cfg.Storage.MaxBytes)*4 + 1024*1024,
		ErrorHandler: httpRouter.ErrorHandler(log.Component("http")),
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestID())
	app.Use(httpRouter.RequestLogger(log.Component("http")))

	// Swagger UI en local: http://localhost:<port>/docs
	docs.SwaggerInfo.Title = cfg.App.Name
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Coolant Flow API",
	}))

	app.Static(cfg.Storage.PublicPath, cfg.Storage.Root)

	app.Get("/health", func(c *fiber.Ctx) error {
		if err := pool.Ping(c.UserContext()); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "degraded", "service": cfg.App.Name})
		}
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		Verifier:      verifier,
		AuthUC:        authUC,
		DistributorUC: distributorUC,
		ClientUC:      clientUC,
		EmployeeUC:    employeeUC,
		ReadingUC:     readingUC,
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
