package api

import (
	"net/http"
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/gymcore/admin-console/internal/api/handler"
	"github.com/gymcore/admin-console/internal/api/middleware"
	"github.com/gymcore/admin-console/internal/core/ports"
	"github.com/gymcore/admin-console/internal/core/session"
	"github.com/gymcore/admin-console/internal/core/store"
	"github.com/gymcore/admin-console/internal/gymapi"
)

// Dependencies carries everything the route surface needs, constructed once
// in main and injected here.
type Dependencies struct {
	API       *gymapi.Client
	Sessions  *session.Manager
	Audit     ports.AuditRepository
	Redis     *redis.Client
	Mongo     *mongo.Database
	CookieTTL time.Duration
	SecureEnv bool
	Log       zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("gymadmin"))

	// --- Auth + landing routes ---
	authHandler := handler.NewAuthHandler(deps.API, deps.Sessions, deps.CookieTTL, deps.SecureEnv)
	e.POST("/login", authHandler.Login)
	e.POST("/logout", authHandler.Logout)
	e.GET("/login", authHandler.LoginPage)
	e.GET("/unauthorized", authHandler.UnauthorizedPage)

	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"service": "gym admin console"})
	})

	// --- Admin console, Administrator role required ---
	admin := e.Group("/admin", middleware.AdminOnly(deps.Sessions))
	admin.GET("", func(c echo.Context) error {
		return c.Redirect(http.StatusFound, "/admin/users")
	})

	userStore := store.NewUserStore(deps.API, deps.Log)
	membershipStore := store.NewMembershipStore(deps.API, deps.Log)
	scheduleStore := store.NewScheduleStore(deps.API, deps.Log)
	exerciseStore := store.NewExerciseStore(deps.API, deps.Log)

	handler.NewResourceHandler("users", userStore, deps.Audit, deps.Log).Register(admin, "/users")
	handler.NewResourceHandler("memberships", membershipStore, deps.Audit, deps.Log).Register(admin, "/memberships")
	handler.NewResourceHandler("schedules", scheduleStore, deps.Audit, deps.Log).Register(admin, "/schedules")
	handler.NewResourceHandler("exercises", exerciseStore, deps.Audit, deps.Log).Register(admin, "/exercises")

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(deps.Redis, deps.Mongo, deps.API)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)

	// --- Observability + docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	// Unmatched paths fall back to the public root.
	e.RouteNotFound("/*", func(c echo.Context) error {
		return c.Redirect(http.StatusFound, "/")
	})

	return e
}
