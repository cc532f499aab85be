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

	appanalytics "github.com/tu-usuario/stockpilot/internal/application/analytics"
	"github.com/tu-usuario/stockpilot/internal/application/auth"
	appexport "github.com/tu-usuario/stockpilot/internal/application/export"
	"github.com/tu-usuario/stockpilot/internal/application/inventory"
	"github.com/tu-usuario/stockpilot/internal/application/subscription"
	"github.com/tu-usuario/stockpilot/internal/application/usecase"
	infrapdf "github.com/tu-usuario/stockpilot/internal/infrastructure/pdf"
	"github.com/tu-usuario/stockpilot/internal/infrastructure/postgres"
	httpRouter "github.com/tu-usuario/stockpilot/internal/interfaces/http"
	"github.com/tu-usuario/stockpilot/pkg/config"
	"github.com/tu-usuario/stockpilot/pkg/csrf"
	"github.com/tu-usuario/stockpilot/pkg/logger"
	"github.com/tu-usuario/stockpilot/pkg/ratelimit"
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

	orgRepo := postgres.NewOrganizationRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	subRepo := postgres.NewSubscriptionRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	locationRepo := postgres.NewLocationRepository(pool)
	stockRepo := postgres.NewStockLevelRepository(pool)
	transferRepo := postgres.NewStockTransferRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	historyRepo := postgres.NewStockHistoryRepository(pool)
	poRepo := postgres.NewPurchaseOrderRepository(pool)
	alertRepo := postgres.NewAlertRepository(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)
	exportRepo := postgres.NewExportRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewAuthUseCase(userRepo, orgRepo, subRepo, locationRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	subscriptionUC := subscription.NewUseCase(subRepo, userRepo, productRepo, locationRepo)
	organizationUC := usecase.NewOrganizationUseCase(orgRepo, userRepo, subscriptionUC)
	productUC := usecase.NewProductUseCase(productRepo, subscriptionUC)
	locationUC := usecase.NewLocationUseCase(locationRepo, subscriptionUC)
	supplierUC := usecase.NewSupplierUseCase(supplierRepo)
	customerUC := usecase.NewCustomerUseCase(customerRepo)
	stockUC := inventory.NewStockUseCase(txRunner, productRepo, locationRepo, stockRepo, historyRepo)
	transferUC := inventory.NewTransferUseCase(txRunner, productRepo, locationRepo, transferRepo)
	purchaseUC := usecase.NewPurchaseOrderUseCase(txRunner, poRepo, supplierRepo, productRepo)
	alertUC := usecase.NewAlertUseCase(alertRepo)
	analyticsUC := appanalytics.NewUseCase(analyticsRepo, subscriptionUC)
	exportUC := appexport.NewUseCase(exportRepo)

	pdfGenerator := infrapdf.NewMarotoPOPDFGenerator()

	csrfSigner, err := csrf.New(cfg.Security.CSRFSecret)
	if err != nil {
		log.Fatal().Err(err).Msg("inicializar firmador CSRF")
	}
	limiter := ratelimit.New(cfg.Security.RateLimitMax, time.Duration(cfg.Security.RateLimitWindowS)*time.Second)

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
		Title:    "StockPilot API",
	}))

	app.Use(httpRouter.RateLimitMiddleware(limiter))
	app.Use(httpRouter.CSRFMiddleware(csrfSigner))

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:         authUC,
		OrganizationUC: organizationUC,
		SubscriptionUC: subscriptionUC,
		ProductUC:      productUC,
		LocationUC:     locationUC,
		SupplierUC:     supplierUC,
		CustomerUC:     customerUC,
		StockUC:        stockUC,
		TransferUC:     transferUC,
		PurchaseUC:     purchaseUC,
		AlertUC:        alertUC,
		AnalyticsUC:    analyticsUC,
		ExportUC:       exportUC,
		OrgRepo:        orgRepo,
		ProductRepo:    productRepo,
		PDFGen:         pdfGenerator,
		CSRFSigner:     csrfSigner,
		JWTSecret:      cfg.JWT.Secret,
		SessionTTL:     time.Duration(cfg.JWT.Expiration) * time.Minute,
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
