package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/stockpilot/internal/application/analytics"
	"github.com/tu-usuario/stockpilot/internal/application/auth"
	"github.com/tu-usuario/stockpilot/internal/application/export"
	"github.com/tu-usuario/stockpilot/internal/application/inventory"
	"github.com/tu-usuario/stockpilot/internal/application/subscription"
	"github.com/tu-usuario/stockpilot/internal/application/usecase"
	"github.com/tu-usuario/stockpilot/internal/domain/entity"
	"github.com/tu-usuario/stockpilot/internal/domain/repository"
	"github.com/tu-usuario/stockpilot/pkg/csrf"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC         *auth.AuthUseCase
	OrganizationUC *usecase.OrganizationUseCase
	SubscriptionUC *subscription.UseCase
	ProductUC      *usecase.ProductUseCase
	LocationUC     *usecase.LocationUseCase
	SupplierUC     *usecase.SupplierUseCase
	CustomerUC     *usecase.CustomerUseCase
	StockUC        *inventory.StockUseCase
	TransferUC     *inventory.TransferUseCase
	PurchaseUC     *usecase.PurchaseOrderUseCase
	AlertUC        *usecase.AlertUseCase
	AnalyticsUC    *analytics.UseCase
	ExportUC       *export.UseCase

	OrgRepo     repository.OrganizationRepository
	ProductRepo repository.ProductRepository
	PDFGen      PDFGenerator

	CSRFSigner *csrf.Signer
	JWTSecret  string
	SessionTTL time.Duration
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api")

	// Auth (público; register y login están exentos de CSRF)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC, deps.SessionTTL)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/logout", authHandler.Logout)

	// Token CSRF (público: el cliente lo pide antes de autenticarse)
	api.Get("/csrf-token", CSRFTokenHandler(deps.CSRFSigner))

	// Rutas protegidas (cookie de sesión o Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	adminOnly := RequireRole(entity.RoleOwner, entity.RoleAdmin)

	// Organization (protegido; mutaciones solo owner/admin)
	orgHandler := NewOrganizationHandler(deps.OrganizationUC)
	protected.Get("/organization", orgHandler.Get)
	protected.Put("/organization", adminOnly, orgHandler.Update)
	protected.Get("/organization/members", orgHandler.ListMembers)
	protected.Post("/organization/members", adminOnly, orgHandler.InviteMember)

	// Subscription (protegido, solo lectura)
	subHandler := NewSubscriptionHandler(deps.SubscriptionUC)
	protected.Get("/subscription", subHandler.Get)

	// Products (protegido)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Stock por producto (protegido)
	stockHandler := NewStockHandler(deps.StockUC)
	products.Get("/:id/stock", stockHandler.ListByProduct)
	products.Post("/:id/stock", stockHandler.ApplyChange)
	products.Get("/:id/history", stockHandler.History)

	// Locations (protegido)
	locations := protected.Group("/locations")
	locationHandler := NewLocationHandler(deps.LocationUC)
	locations.Post("/", locationHandler.Create)
	locations.Get("/", locationHandler.List)
	locations.Get("/:id", locationHandler.GetByID)
	locations.Put("/:id", locationHandler.Update)
	locations.Delete("/:id", locationHandler.Delete)

	// Suppliers (protegido)
	suppliers := protected.Group("/suppliers")
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Post("/", supplierHandler.Create)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Get("/:id", supplierHandler.GetByID)
	suppliers.Put("/:id", supplierHandler.Update)
	suppliers.Delete("/:id", supplierHandler.Delete)

	// Customers (protegido)
	customers := protected.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Post("/", customerHandler.Create)
	customers.Get("/", customerHandler.List)
	customers.Get("/:id", customerHandler.GetByID)
	customers.Put("/:id", customerHandler.Update)
	customers.Delete("/:id", customerHandler.Delete)

	// Stock transfers (protegido)
	transfers := protected.Group("/stock-transfers")
	transferHandler := NewTransferHandler(deps.TransferUC)
	transfers.Post("/", transferHandler.Create)
	transfers.Get("/", transferHandler.List)

	// Purchase orders (protegido)
	orders := protected.Group("/purchase-orders")
	poHandler := NewPurchaseOrderHandler(deps.PurchaseUC, deps.OrgRepo, deps.ProductRepo, deps.PDFGen)
	orders.Post("/", poHandler.Create)
	orders.Get("/", poHandler.List)
	orders.Get("/:id", poHandler.GetByID)
	orders.Patch("/:id/status", poHandler.UpdateStatus)
	orders.Get("/:id/pdf", poHandler.DownloadPDF)

	// Alerts (protegido)
	alertHandler := NewAlertHandler(deps.AlertUC)
	protected.Get("/alerts", alertHandler.List)
	protected.Patch("/alerts", alertHandler.MarkRead)

	// Dashboard (protegido)
	dashboardHandler := NewDashboardHandler(deps.AnalyticsUC)
	protected.Get("/dashboard/stats", dashboardHandler.Stats)

	// Export (protegido)
	exportHandler := NewExportHandler(deps.ExportUC)
	protected.Get("/export", exportHandler.Download)
}
