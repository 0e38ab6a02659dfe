package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	httpadp "reefer-backoffice/internal/adapter/http"
	idemp "reefer-backoffice/internal/adapter/middleware"
	"reefer-backoffice/internal/adapter/repository/mysql"
	"reefer-backoffice/internal/config"
	"reefer-backoffice/internal/infrastructure/cache"
	"reefer-backoffice/internal/infrastructure/db"
	auditUC "reefer-backoffice/internal/usecase/audit"
	"reefer-backoffice/internal/usecase/evidence"
	"reefer-backoffice/internal/usecase/settlement"
	"reefer-backoffice/internal/usecase/trip"
	"reefer-backoffice/pkg/logger"
	"reefer-backoffice/pkg/metrics"
)

func main() {
	cfg := config.Load()
	log := logger.NewLogger(cfg.LogLevel)
	defer func() { _ = log.Sync() }()

	if err := cfg.Validate(); err != nil {
		log.Fatal("invalid config", "error", err)
	}
	loc, err := cfg.Location()
	if err != nil {
		log.Fatal("invalid reference timezone", "error", err)
	}

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		log.Fatal("mysql unavailable", "error", err)
	}
	if err := mysql.AutoMigrate(gdb); err != nil {
		log.Fatal("migrate", "error", err)
	}
	sqlDB, err := gdb.DB()
	if err != nil {
		log.Fatal("mysql handle", "error", err)
	}

	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		log.Fatal("redis unavailable", "error", err)
	}
	defer rdb.Close()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	reg.MustRegister(collectors.NewDBStatsCollector(sqlDB, cfg.MySQLDB))
	m := metrics.NewMetrics("reefer", reg)

	// repositories + use cases
	trips := mysql.NewTripRepository(gdb)
	routes := cache.NewRouteCache(rdb, mysql.NewRouteRepository(gdb), cfg.RouteCacheTTL(), log)
	tx := mysql.NewGormUoW(gdb)
	auditRepo := mysql.NewAuditRepository(gdb)
	rec := auditUC.NewRecorder(auditUC.DefaultRegistry(cfg.AuditExcludedFields...), log, m)

	tripUC := trip.NewUsecase(trips, routes, tx, rec, m, log, trip.Options{
		Location:          loc,
		StrictTransitions: cfg.StrictTripTransitions,
	})
	settlementUC := settlement.NewUsecase(trips, mysql.NewSettlementRepository(gdb), tx, rec, m, log)
	evidenceUC := evidence.NewUsecase(trips, mysql.NewApprovalRepository(gdb), tx, rec, m)

	h := httpadp.NewHandler(map[string]httpadp.Check{
		"mysql": sqlDB.PingContext,
		"redis": func(ctx context.Context) error { return rdb.Ping(ctx).Err() },
	})

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod: true, LogURI: true, LogStatus: true, LogLatency: true, LogError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			log.Info("request", "method", v.Method, "uri", v.URI, "status", v.Status,
				"latency_ms", v.Latency.Milliseconds(), "error", v.Error)
			return nil
		},
	}), middleware.Recover())

	// routes
	e.GET("/health", h.Health)
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	api := e.Group("/api", idemp.Idempotency(rdb, cfg.IdempotencyTTL(), log))
	httpadp.RegisterRoutes(api,
		httpadp.NewTripHandler(tripUC, settlementUC, log),
		httpadp.NewEvidenceHandler(evidenceUC, log),
		httpadp.NewSettlementHandler(settlementUC, log),
		httpadp.NewAuditHandler(auditUC.NewQuery(auditRepo), log),
	)

	addr := ":" + cfg.AppPort
	go func() {
		log.Info("listening", "addr", addr)
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server stopped", "error", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown", "error", err)
	}
}
