package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"time"

	"go.uber.org/zap"

	"github.com/hardwin/shopfloor/internal/config"
	"github.com/hardwin/shopfloor/internal/repository/mongodb"
	sheetsrepo "github.com/hardwin/shopfloor/internal/repository/sheets"
	"github.com/hardwin/shopfloor/internal/scheduler"
	"github.com/hardwin/shopfloor/internal/server/handlers"
	"github.com/hardwin/shopfloor/internal/server/router"
	dashboardsvc "github.com/hardwin/shopfloor/internal/service/dashboard"
	worksheetsvc "github.com/hardwin/shopfloor/internal/service/worksheets"
	"github.com/hardwin/shopfloor/pkg/clients/notify"
	"github.com/hardwin/shopfloor/pkg/logger"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		panic(err)
	}

	baseLogger := logger.Must(logger.New())
	defer func() { _ = baseLogger.Sync() }()

	zap.ReplaceGlobals(baseLogger)

	mongoRepo, err := mongodb.NewMongoDBRepository(context.Background(), cfg.MongoDB.URI, cfg.MongoDB.DBName)
	if err != nil {
		baseLogger.Fatal("failed to init mongodb repository", zap.Error(err))
	}
	defer func() {
		if err := mongoRepo.Close(context.Background()); err != nil {
			baseLogger.Error("failed to close mongodb connection", zap.Error(err))
		}
	}()

	var exporter sheetsrepo.Exporter
	if cfg.Sheets.CredentialsPath != "" {
		exporter, err = sheetsrepo.NewGoogleSheetExporter(context.Background(), cfg.Sheets, baseLogger.Named("repo.sheets"))
		if err != nil {
			baseLogger.Fatal("failed to init sheets exporter", zap.Error(err))
		}
		baseLogger.Info("sheets digest export enabled")
	} else {
		baseLogger.Warn("sheets credentials missing, digest export disabled")
	}

	var notifier notify.Client
	if cfg.Notify.WebhookURL != "" {
		notifier = notify.NewClient(cfg.Notify)
		baseLogger.Info("digest webhook notifications enabled")
	} else {
		baseLogger.Warn("digest webhook url missing, notifications disabled")
	}

	worksheetSvc := worksheetsvc.NewService(mongoRepo, baseLogger.Named("svc.worksheets"))
	dashboardSvc := dashboardsvc.NewService(mongoRepo, baseLogger.Named("svc.dashboard"))

	worksheetHandler := handlers.NewWorksheetHandler(worksheetSvc, baseLogger.Named("handlers.worksheets"))
	metricsHandler := handlers.NewMetricsHandler(dashboardSvc, baseLogger.Named("handlers.metrics"))
	engine := router.New(worksheetHandler, metricsHandler, baseLogger.Named("router"))

	sched := scheduler.NewScheduler(*cfg, dashboardSvc, mongoRepo, exporter, notifier, baseLogger.Named("scheduler"))
	sched.Start()
	defer sched.Stop()

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	go func() {
		baseLogger.Info("server starting", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			baseLogger.Fatal("http server crashed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	baseLogger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		baseLogger.Error("graceful shutdown failed", zap.Error(err))
	}
}
