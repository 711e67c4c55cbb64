package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/cms-preschool/checkin-api/api/swagger"
	"github.com/cms-preschool/checkin-api/internal/handler"
	"github.com/cms-preschool/checkin-api/internal/middleware"
	"github.com/cms-preschool/checkin-api/internal/repository"
	"github.com/cms-preschool/checkin-api/internal/roster"
	"github.com/cms-preschool/checkin-api/internal/service"
	"github.com/cms-preschool/checkin-api/internal/store"
	"github.com/cms-preschool/checkin-api/pkg/cache"
	"github.com/cms-preschool/checkin-api/pkg/config"
	"github.com/cms-preschool/checkin-api/pkg/database"
	appErrors "github.com/cms-preschool/checkin-api/pkg/errors"
	"github.com/cms-preschool/checkin-api/pkg/logger"
	corsmiddleware "github.com/cms-preschool/checkin-api/pkg/middleware/cors"
	reqidmiddleware "github.com/cms-preschool/checkin-api/pkg/middleware/requestid"
	"github.com/cms-preschool/checkin-api/pkg/response"
)

// @title Preschool Check-In API
// @version 1.0.0
// @description Shared backend for campus check-in kiosks and attendance dashboards
// @BasePath /api/v1
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	clock, err := service.NewClock(cfg.Attendance.Timezone)
	if err != nil {
		logr.Sugar().Fatalw("invalid attendance timezone", "error", err)
	}
	validate := validator.New()
	metrics := service.NewMetrics()

	// Attendance record store: Redis when reachable, in-memory otherwise.
	var recordStore store.Store
	if redisClient, redisErr := cache.NewRedis(cfg.Redis); redisErr != nil {
		logr.Warn("redis unavailable, using in-memory attendance store", zap.Error(redisErr))
		recordStore = store.NewMemoryStore()
	} else {
		recordStore = store.NewRedisStore(redisClient, logr)
	}

	var rosterSource roster.Source
	switch {
	case cfg.Roster.Endpoint != "":
		rosterSource = roster.NewHTTPSource(cfg.Roster.Endpoint, cfg.Roster.FetchTimeout)
	case cfg.Roster.ExcelPath != "":
		rosterSource = roster.NewExcelSource(cfg.Roster.ExcelPath)
	default:
		logr.Sugar().Fatalw("no roster source configured", "hint", "set ROSTER_ENDPOINT or ROSTER_EXCEL_PATH")
	}
	rosterSvc := roster.NewService(rosterSource, logr)
	{
		ctx, cancel := context.WithTimeout(context.Background(), cfg.Roster.FetchTimeout)
		if err := rosterSvc.Refresh(ctx); err != nil {
			logr.Warn("initial roster fetch failed, serving an empty roster until refresh", zap.Error(err))
			metrics.RosterRefreshed("failure", 0)
		} else {
			metrics.RosterRefreshed("success", len(rosterSvc.Students()))
		}
		cancel()
	}

	var auditRecorder service.AuditRecorder
	var auditSvc *service.AuditService
	if cfg.Audit.Enabled {
		db, dbErr := database.NewPostgres(cfg.Database)
		if dbErr != nil {
			logr.Sugar().Fatalw("failed to connect to postgres", "error", dbErr)
		}
		auditSvc = service.NewAuditService(repository.NewAuditRepository(db), logr)
		auditRecorder = auditSvc
	}

	authSvc, err := service.NewAuthService(cfg.Auth, clock, validate, logr)
	if err != nil {
		logr.Sugar().Fatalw("failed to init auth service", "error", err)
	}
	views := service.NewViewService()
	dashboards := service.NewDashboardService(recordStore, rosterSvc, views, clock)
	transitions := service.NewTransitionService(recordStore, rosterSvc, auditRecorder, clock, metrics, logr)
	feed := service.NewFeedService(recordStore, rosterSvc, views, clock, metrics, logr)
	exports := service.NewExportService()

	authHandler := handler.NewAuthHandler(authSvc, logr)
	kioskHandler := handler.NewKioskHandler(dashboards, transitions, metrics, clock)
	dashboardHandler := handler.NewDashboardHandler(dashboards, clock)
	rosterHandler := handler.NewRosterHandler(rosterSvc, metrics)
	eventsHandler := handler.NewEventsHandler(feed, clock)
	exportHandler := handler.NewExportHandler(dashboards, exports, clock)
	metricsHandler := handler.NewMetricsHandler(metrics)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metrics))

	r.GET("/health", metricsHandler.Health)
	r.GET("/ready", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if _, err := recordStore.Snapshot(ctx, clock.Day()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "store unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})
	r.GET("/metrics", metricsHandler.Prometheus)

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)
	api.POST("/auth/login", authHandler.Login)

	secured := api.Group("")
	secured.Use(middleware.Session(authSvc))
	secured.POST("/auth/logout", authHandler.Logout)
	secured.GET("/kiosk", kioskHandler.List)
	secured.POST("/kiosk/tap", kioskHandler.Tap)
	secured.GET("/dashboard/daily", dashboardHandler.Daily)
	secured.GET("/dashboard/roster", dashboardHandler.Roster)
	secured.GET("/stats", dashboardHandler.Stats)
	secured.GET("/roster", rosterHandler.Get)
	secured.POST("/roster/refresh", rosterHandler.Refresh)
	secured.GET("/events", eventsHandler.Stream)
	disabled := func(c *gin.Context) { response.Error(c, appErrors.ErrFeatureDisabled) }
	if cfg.Exports.Enabled {
		secured.GET("/exports/roster.csv", exportHandler.RosterCSV)
		secured.GET("/exports/roster.pdf", exportHandler.RosterPDF)
	} else {
		secured.GET("/exports/roster.csv", disabled)
		secured.GET("/exports/roster.pdf", disabled)
	}
	if auditSvc != nil {
		auditHandler := handler.NewAuditHandler(auditSvc, clock)
		secured.GET("/attendance/events", auditHandler.List)
	} else {
		secured.GET("/attendance/events", disabled)
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
