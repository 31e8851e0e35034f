package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"

	"github.com/farmops/farm-api/internal/api/handler"
	"github.com/farmops/farm-api/internal/api/middleware"
	"github.com/farmops/farm-api/internal/core/ports"
)

// Dependencies carries the pre-built handlers and auth components the router
// wires together. Construction happens in main (or in tests, with in-memory
// implementations) so the router stays free of storage concerns.
type Dependencies struct {
	Tokens      ports.TokenService
	Credentials ports.CredentialStore

	Auth         *handler.AuthHandler
	Employees    *handler.EmployeeHandler
	Animals      *handler.AnimalHandler
	Milk         *handler.MilkHandler
	HealthReport *handler.HealthReportHandler
	Sales        *handler.SaleHandler
	Products     *handler.ProductHandler
	Orders       *handler.OrderHandler
	Finance      *handler.FinanceHandler
	Dashboard    *handler.DashboardHandler

	// Readiness is optional; when nil the /health/ready route is skipped.
	Readiness *handler.ReadinessHandler

	// Registry overrides the Prometheus registry for HTTP metrics. Tests
	// building multiple routers pass a fresh one to avoid duplicate
	// collector registration; when nil the default registry is used.
	Registry *prometheus.Registry

	Log zerolog.Logger
}

// NewRouter builds the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORS())

	var registerer prometheus.Registerer = prometheus.DefaultRegisterer
	var gatherer prometheus.Gatherer = prometheus.DefaultGatherer
	if deps.Registry != nil {
		registerer = deps.Registry
		gatherer = deps.Registry
	}
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  "farm",
		Registerer: registerer,
	}))

	authenticated := middleware.Authenticate(deps.Tokens, deps.Credentials)
	managerOnly := middleware.ManagerOnly
	employeeOnly := middleware.EmployeeOnly

	// --- Auth (public) ---
	e.POST("/api/auth/register", deps.Auth.Register)
	e.POST("/api/auth/login", deps.Auth.Login)
	e.POST("/api/auth/employee-login", deps.Auth.LoginEmployee)

	// --- Employees (manager only) ---
	employees := e.Group("/api/employees", authenticated, managerOnly)
	employees.POST("", deps.Employees.Create)
	employees.GET("", deps.Employees.List)
	employees.GET("/search", deps.Employees.Search)
	employees.GET("/:id", deps.Employees.Get)
	employees.PUT("/:id", deps.Employees.Update)
	employees.DELETE("/:id", deps.Employees.Delete)

	// --- Animals (any authenticated user) ---
	animals := e.Group("/api/animals", authenticated)
	animals.POST("", deps.Animals.Create)
	animals.GET("", deps.Animals.List)
	animals.GET("/search", deps.Animals.Search)

	// --- Milk production (writes: employee; reads: any authenticated user) ---
	milk := e.Group("/api/milk", authenticated)
	milk.POST("", deps.Milk.Create, employeeOnly)
	milk.GET("", deps.Milk.List)
	milk.GET("/stats", deps.Milk.Stats)

	// --- Health reports ---
	reports := e.Group("/api/health-reports", authenticated)
	reports.POST("", deps.HealthReport.Create, employeeOnly)
	reports.GET("", deps.HealthReport.List)

	// --- Sales ---
	sales := e.Group("/api/sales", authenticated)
	sales.POST("", deps.Sales.Create, employeeOnly)
	sales.GET("", deps.Sales.List)
	sales.GET("/stats", deps.Sales.Stats)

	// --- Products (employee only) ---
	products := e.Group("/api/products", authenticated, employeeOnly)
	products.POST("", deps.Products.Create)
	products.GET("", deps.Products.List)
	products.GET("/:id", deps.Products.Get)

	// --- Orders (placement is the public storefront flow) ---
	e.POST("/api/orders", deps.Orders.Place)
	orders := e.Group("/api/orders", authenticated, employeeOnly)
	orders.GET("", deps.Orders.List)
	orders.PUT("/:id/status", deps.Orders.UpdateStatus)

	// --- Finance (writes: employee; reads and stats: manager) ---
	finance := e.Group("/api/finance", authenticated)
	finance.POST("", deps.Finance.Create, employeeOnly)
	finance.GET("", deps.Finance.List, managerOnly)
	finance.GET("/stats", deps.Finance.Stats, managerOnly)

	// --- Dashboard (manager only) ---
	e.GET("/api/dashboard/stats", deps.Dashboard.Stats, authenticated, managerOnly)

	// --- Ops surface ---
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{
		Gatherer: gatherer,
	}))
	e.GET("/swagger/*", echoswagger.WrapHandler)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	e.GET("/health", healthHandler.Liveness)
	if deps.Readiness != nil {
		e.GET("/health/ready", deps.Readiness.Readiness)
	}

	return e
}
