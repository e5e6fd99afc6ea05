package app

import (
	"context"
	"net/http"
	"time"

	"github.com/WhitworthLegacy/carnetmariage-sub001/internal/auth"
	"github.com/WhitworthLegacy/carnetmariage-sub001/internal/config"
	"github.com/WhitworthLegacy/carnetmariage-sub001/internal/guest"
	"github.com/WhitworthLegacy/carnetmariage-sub001/internal/messaging/kafka"
	"github.com/WhitworthLegacy/carnetmariage-sub001/internal/middleware"
	"github.com/WhitworthLegacy/carnetmariage-sub001/internal/profile"
	"github.com/WhitworthLegacy/carnetmariage-sub001/internal/rbac"
	"github.com/WhitworthLegacy/carnetmariage-sub001/internal/shared/apperror"
	"github.com/WhitworthLegacy/carnetmariage-sub001/internal/shared/response"
	"github.com/WhitworthLegacy/carnetmariage-sub001/internal/shared/token"
	"github.com/WhitworthLegacy/carnetmariage-sub001/internal/tenant"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"gorm.io/gorm"
)

type Deps struct {
	Config   config.Config
	DB       *gorm.DB
	Redis    *redis.Client
	Logger   *zap.Logger
	Registry *prometheus.Registry
}

// NewRouter builds the engine: global middleware, probes, then every module
// under /api/v1.
func NewRouter(d Deps) (*gin.Engine, error) {
	if d.Config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.HandleMethodNotAllowed = true
	router.NoRoute(middleware.NoRoute())
	router.NoMethod(middleware.NoMethod())

	metrics := middleware.NewHTTPMetrics(d.Registry)
	d.Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	router.Use(
		middleware.RequestID(),
		middleware.ContextLogger(d.Logger),
		middleware.Recovery(),
		middleware.CORS(d.Config.AllowedOrigins),
		metrics.Handler(),
		middleware.RateLimitByIP(rate.Limit(d.Config.RateLimitRPS), d.Config.RateLimitBurst),
	)

	router.GET("/healthz", healthz(d.DB))
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(d.Registry, promhttp.HandlerOpts{})))

	if err := registerModules(router, d); err != nil {
		return nil, err
	}
	return router, nil
}

func registerModules(router *gin.Engine, d Deps) error {
	cfg, db, rdb, logger := d.Config, d.DB, d.Redis, d.Logger

	// --- Repositories ---
	authRepo := auth.NewRepository(db)
	tenantRepo := tenant.NewRepository(db)
	profileRepo := profile.NewRepository(db)
	guestRepo := guest.NewRepository(db)
	outboxRepo := kafka.NewOutboxRepository(db)

	// --- Security ---
	tokens := token.NewManager(cfg.JWTSecret, cfg.TokenTTL)
	enforcer, err := rbac.NewEnforcer()
	if err != nil {
		return err
	}

	// --- Services ---
	authService := auth.NewService(authRepo, tokens, logger)
	tenantService := tenant.NewService(tenantRepo)
	profileService := profile.NewService(db, profileRepo, tenantRepo, outboxRepo, rdb, logger)
	guestService := guest.NewService(db, guestRepo, tenantRepo, logger)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService, cfg.IsProduction(), logger)
	tenantHandler := tenant.NewHandler(tenantService, logger)
	profileHandler := profile.NewHandler(profileService, logger)
	guestHandler := guest.NewHandler(guestService, logger)
	rbacHandler := rbac.NewHandler(enforcer, logger)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		auth.RegisterRoutes(api, authHandler, tokens)
		tenant.RegisterRoutes(api, tenantHandler, tokens, enforcer)
		profile.RegisterRoutes(api, profileHandler, tokens, enforcer, rdb)
		guest.RegisterRoutes(api, guestHandler, tokens, enforcer, rdb)
		rbac.RegisterRoutes(api, rbacHandler, tokens)
	}

	return nil
}

func healthz(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		sqlDB, err := db.DB()
		if err == nil {
			err = sqlDB.PingContext(ctx)
		}
		if err != nil {
			response.FromError(c, apperror.Database(err))
			return
		}

		response.JSONOk(c, gin.H{"status": "ok"}, http.StatusOK)
	}
}
