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

	authuc "github.com/farmanet/farmacia-api/internal/application/auth"
	"github.com/farmanet/farmacia-api/internal/application/inventario"
	"github.com/farmanet/farmacia-api/internal/application/notificacion"
	"github.com/farmanet/farmacia-api/internal/application/usecase"
	"github.com/farmanet/farmacia-api/internal/application/ventas"
	"github.com/farmanet/farmacia-api/internal/infrastructure/email"
	"github.com/farmanet/farmacia-api/internal/infrastructure/postgres"
	infraredis "github.com/farmanet/farmacia-api/internal/infrastructure/redis"
	httpRouter "github.com/farmanet/farmacia-api/internal/interfaces/http"
	"github.com/farmanet/farmacia-api/pkg/config"
	"github.com/farmanet/farmacia-api/pkg/logger"
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

	if cfg.DB.AutoMigrate {
		if err := postgres.Migrate(pool); err != nil {
			log.Fatal().Err(err).Msg("migraciones")
		}
		log.Info().Msg("migraciones aplicadas")
	}

	productoRepo := postgres.NewProductoRepository(pool)
	ventaRepo := postgres.NewVentaRepository(pool)
	movRepo := postgres.NewMovimientoRepository(pool)
	clienteRepo := postgres.NewClienteRepository(pool)
	categoriaRepo := postgres.NewCategoriaRepository(pool)
	usuarioRepo := postgres.NewUsuarioRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Store de tokens revocados (logout). Sin REDIS_ADDR la revocación queda
	// deshabilitada y el logout solo invalida del lado del cliente.
	var tokenStore authuc.TokenStore
	if cfg.Redis.Addr != "" {
		store, err := infraredis.NewTokenStore(ctx, cfg.Redis)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a Redis")
		}
		defer store.Close()
		tokenStore = store
		log.Info().Str("addr", cfg.Redis.Addr).Msg("revocación de tokens habilitada")
	} else {
		log.Warn().Msg("REDIS_ADDR vacío: revocación de tokens deshabilitada")
	}

	// Alertas de stock bajo por correo. Sin SMTP_HOST no se envían.
	var notificador ventas.Notificador
	if cfg.SMTP.Host != "" && cfg.SMTP.AlertTo != "" {
		sender := email.NewGomailSender(cfg.SMTP)
		notificador = notificacion.NewLowStockNotifier(sender, cfg.SMTP.AlertTo, log)
		log.Info().Str("destinatario", cfg.SMTP.AlertTo).Msg("alertas de stock bajo habilitadas")
	} else {
		log.Warn().Msg("SMTP sin configurar: alertas de stock bajo deshabilitadas")
	}

	createVentaUC := ventas.NewCreateVentaUseCase(txRunner, notificador)
	getVentaUC := ventas.NewGetVentaUseCase(ventaRepo)
	ajusteStockUC := inventario.NewAjusteStockUseCase(txRunner, movRepo, notificador)
	productoUC := usecase.NewProductoUseCase(productoRepo)
	clienteUC := usecase.NewClienteUseCase(clienteRepo)
	categoriaUC := usecase.NewCategoriaUseCase(categoriaRepo)
	usuarioUC := usecase.NewUsuarioUseCase(usuarioRepo)
	authUC := authuc.NewUseCase(usuarioRepo, tokenStore, cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.Expiration)

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
		Title:    "Farmacia API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CreateVenta: createVentaUC,
		GetVenta:    getVentaUC,
		AjusteStock: ajusteStockUC,
		ProductoUC:  productoUC,
		ClienteUC:   clienteUC,
		CategoriaUC: categoriaUC,
		UsuarioUC:   usuarioUC,
		AuthUC:      authUC,
		TokenStore:  tokenStore,
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
