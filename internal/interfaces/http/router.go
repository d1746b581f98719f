package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jbglogistica/logistica-api/internal/application/auth"
	"github.com/jbglogistica/logistica-api/internal/application/reports"
	"github.com/jbglogistica/logistica-api/internal/application/shipping"
	"github.com/jbglogistica/logistica-api/internal/application/usecase"
	"github.com/jbglogistica/logistica-api/internal/domain/entity"
	"github.com/jbglogistica/logistica-api/internal/domain/repository"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC     *auth.AuthUseCase
	UserUC     *usecase.UserUseCase
	CustomerUC *usecase.CustomerUseCase
	CatalogUC  *usecase.CatalogUseCase
	BoxUC      *usecase.BoxUseCase
	DriverUC   *usecase.DriverUseCase
	OrderUC    *shipping.CreateOrderUseCase
	ShipmentUC *shipping.ShipmentUseCase
	ReportUC   *reports.ReportUseCase
	Finder     repository.EntityFinder
	JWTSecret  string
}

// Router registra las rutas de la API. Cada grupo protegido exige al menos
// uno de los permisos listados (semántica OR, igual que el menú del cliente).
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (login público; logout y me requieren token)
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup := api.Group("/auth")
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/logout", AuthMiddleware(deps.JWTSecret), authHandler.Logout)
	authGroup.Get("/me", AuthMiddleware(deps.JWTSecret), authHandler.CurrentUser)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Navegación (cualquier usuario autenticado; el filtrado lo hacen sus permisos)
	navHandler := NewNavHandler()
	protected.Get("/nav/menu", navHandler.Menu)

	// Usuarios y roles
	userHandler := NewUserHandler(deps.UserUC)
	users := protected.Group("/users", RequirePermission(entity.PermCanManageUsers))
	users.Post("/", userHandler.Create)
	users.Get("/", userHandler.List)
	users.Put("/:id", userHandler.Update)
	users.Patch("/:id/active", userHandler.SetActive)
	roles := protected.Group("/roles", RequirePermission(entity.PermCanManageUsers))
	roles.Get("/", userHandler.ListRoles)
	roles.Put("/", userHandler.UpsertRole)
	protected.Get("/permissions", RequirePermission(entity.PermCanManageUsers), userHandler.ListPermissions)

	// Clientes
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers := protected.Group("/customers", RequirePermission(entity.PermCanManageCustomers, entity.PermCanSell))
	customers.Post("/", customerHandler.Create)
	customers.Get("/", customerHandler.List)
	customers.Get("/:id", customerHandler.GetByID)
	customers.Put("/:id", customerHandler.Update)
	customers.Delete("/:id", customerHandler.Delete)

	// Catálogo de cajas + existencias
	boxHandler := NewBoxHandler(deps.BoxUC)
	boxes := protected.Group("/boxes", RequirePermission(entity.PermCanManageInventory, entity.PermCanSell))
	boxes.Post("/", boxHandler.Create)
	boxes.Get("/", boxHandler.List)
	boxes.Get("/:id", boxHandler.GetByID)
	boxes.Put("/:id/stock", RequirePermission(entity.PermCanManageInventory), boxHandler.SetStock)

	// Tiendas, zonas y tarifas
	catalogHandler := NewCatalogHandler(deps.CatalogUC)
	stores := protected.Group("/stores", RequirePermission(entity.PermCanManageStores, entity.PermCanManageInventory))
	stores.Post("/", RequirePermission(entity.PermCanManageStores), catalogHandler.CreateStore)
	stores.Get("/", catalogHandler.ListStores)
	stores.Get("/:id", catalogHandler.GetStore)
	stores.Get("/:id/stock", boxHandler.StockByStore)

	zones := protected.Group("/zones", RequirePermission(entity.PermCanManageZones, entity.PermCanShip, entity.PermCanSell))
	zones.Post("/", RequirePermission(entity.PermCanManageZones), catalogHandler.CreateZone)
	zones.Get("/", catalogHandler.ListZones)

	tariffs := protected.Group("/tariffs", RequirePermission(entity.PermCanManageTariffs, entity.PermCanShip, entity.PermCanSell))
	tariffs.Post("/", RequirePermission(entity.PermCanManageTariffs), catalogHandler.CreateTariff)
	tariffs.Get("/", catalogHandler.ListTariffs)
	tariffs.Post("/quote", catalogHandler.Quote)

	// Pedidos
	orderHandler := NewOrderHandler(deps.OrderUC)
	orders := protected.Group("/orders", RequirePermission(entity.PermCanSell, entity.PermCanShip))
	orders.Post("/", RequirePermission(entity.PermCanSell), orderHandler.Create)
	orders.Get("/", orderHandler.List)
	orders.Get("/:id", orderHandler.GetByID)

	// Envíos y conductores
	shipmentHandler := NewShipmentHandler(deps.ShipmentUC)
	shipments := protected.Group("/shipments", RequirePermission(entity.PermCanShip))
	shipments.Post("/", shipmentHandler.Create)
	shipments.Get("/", shipmentHandler.List)
	shipments.Get("/:id", shipmentHandler.GetByID)
	shipments.Post("/:id/assign", shipmentHandler.AssignDriver)
	shipments.Post("/:id/transition", shipmentHandler.Transition)
	shipments.Get("/:id/label", shipmentHandler.Label)

	driverHandler := NewDriverHandler(deps.DriverUC)
	drivers := protected.Group("/drivers", RequirePermission(entity.PermCanShip))
	drivers.Post("/", driverHandler.Create)
	drivers.Get("/", driverHandler.List)
	drivers.Get("/:id", driverHandler.GetByID)

	// Reportes
	reportHandler := NewReportHandler(deps.ReportUC)
	protected.Get("/reports/summary", RequirePermission(entity.PermCanViewReports), reportHandler.Summary)

	// Consulta genérica (cualquier autenticado; el esquema cerrado limita el alcance)
	findHandler := NewFindHandler(deps.Finder)
	protected.Get("/find/entities", findHandler.Entities)
	protected.Post("/:entity/find", findHandler.Find)
}
