package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/seerahverse/account-dashboard/internal/api/handler"
	"github.com/seerahverse/account-dashboard/internal/api/middleware"
	"github.com/seerahverse/account-dashboard/internal/core/domain"
	"github.com/seerahverse/account-dashboard/internal/core/ports"
)

// Deps carries everything the router needs. Mongo and Redis are nil unless
// the corresponding backend is configured.
type Deps struct {
	Guard     ports.SessionGuard
	Ledger    ports.LedgerService
	Reminders ports.ReminderService
	Budget    ports.BudgetService
	Audit     ports.AuditService
	Creds     ports.CredentialRepository

	JWTSecret string
	Mongo     *mongo.Database
	Redis     *redis.Client
	Log       zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("dashboard"))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(deps.Guard)
	ledgerHandler := handler.NewLedgerHandler(deps.Ledger, deps.Creds)
	reminderHandler := handler.NewReminderHandler(deps.Reminders, deps.Creds)
	budgetHandler := handler.NewBudgetHandler(deps.Budget, deps.Creds)
	auditHandler := handler.NewAuditHandler(deps.Audit)

	auth := middleware.Auth(deps.JWTSecret, deps.Guard)

	// --- Auth routes ---
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/logout", authHandler.Logout, auth)

	// --- Account routes ---
	v1 := e.Group("/v1", auth)

	accounts := v1.Group("/accounts/:account_id")
	accounts.GET("/balance", ledgerHandler.GetBalance, middleware.RequireCapability(domain.CapView))
	accounts.GET("/transactions", ledgerHandler.ListTransactions, middleware.RequireCapability(domain.CapView))
	accounts.POST("/transactions", ledgerHandler.Record, middleware.RequireCapability(domain.CapAdd))
	accounts.GET("/summary", ledgerHandler.Summary, middleware.RequireCapability(domain.CapView))
	accounts.POST("/reconcile", ledgerHandler.Reconcile, middleware.RequireCapability(domain.CapEdit))
	accounts.GET("/reminders", reminderHandler.List, middleware.RequireCapability(domain.CapView))
	accounts.POST("/reminders", reminderHandler.Add, middleware.RequireCapability(domain.CapAdd))
	accounts.GET("/budget", budgetHandler.Get, middleware.RequireCapability(domain.CapView))
	accounts.PUT("/budget", budgetHandler.Put, middleware.RequireCapability(domain.CapEdit))

	v1.GET("/audit", auditHandler.List, middleware.RequireCapability(domain.CapViewAudit))

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(deps.Mongo, deps.Redis)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
