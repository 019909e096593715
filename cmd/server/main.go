package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"time"

	"go.uber.org/zap"

	"github.com/godhanfeeds/godhan/internal/config"
	"github.com/godhanfeeds/godhan/internal/repository/mongodb"
	"github.com/godhanfeeds/godhan/internal/repository/sheets"
	"github.com/godhanfeeds/godhan/internal/scheduler"
	"github.com/godhanfeeds/godhan/internal/server/handlers"
	"github.com/godhanfeeds/godhan/internal/server/router"
	catalogsvc "github.com/godhanfeeds/godhan/internal/service/catalog"
	dietchartsvc "github.com/godhanfeeds/godhan/internal/service/dietchart"
	leadssvc "github.com/godhanfeeds/godhan/internal/service/leads"
	reportingsvc "github.com/godhanfeeds/godhan/internal/service/reporting"
	"github.com/godhanfeeds/godhan/pkg/clients/translate"
	"github.com/godhanfeeds/godhan/pkg/logger"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		panic(err)
	}

	baseLogger := logger.Must(logger.New())
	defer func() { _ = baseLogger.Sync() }()

	zap.ReplaceGlobals(baseLogger)

	mongoRepo, err := mongodb.NewRepository(context.Background(), cfg.MongoDB.URI, cfg.MongoDB.DBName)
	if err != nil {
		baseLogger.Fatal("failed to init mongodb repository", zap.Error(err))
	}
	defer func() {
		if err := mongoRepo.Close(context.Background()); err != nil {
			baseLogger.Error("failed to close mongodb connection", zap.Error(err))
		}
	}()

	if err := mongoRepo.Seed(context.Background(), baseLogger.Named("repo.seed")); err != nil {
		baseLogger.Fatal("failed to seed catalog data", zap.Error(err))
	}

	var sheetsRepo sheets.Repository
	if cfg.Sheets.Enabled() {
		sheetsRepo, err = sheets.NewGoogleSheetRepository(context.Background(), cfg.Sheets, baseLogger.Named("repo.sheets"))
		if err != nil {
			baseLogger.Fatal("failed to init sheets repository", zap.Error(err))
		}
		baseLogger.Info("lead export to google sheets enabled")
	} else {
		baseLogger.Warn("lead export disabled, sheets credentials missing")
	}

	var translator translate.Client
	if cfg.Translate.Enabled() {
		translator = translate.NewClient(cfg.Translate)
		baseLogger.Info("catalog translation enabled")
	} else {
		baseLogger.Warn("translation api not configured, catalog served in english only")
	}

	dietChartSvc := dietchartsvc.NewService(baseLogger.Named("svc.dietchart"))
	catalogSvc := catalogsvc.NewService(mongoRepo, translator, baseLogger.Named("svc.catalog"))
	leadsSvc := leadssvc.NewService(mongoRepo, sheetsRepo, dietChartSvc, baseLogger.Named("svc.leads"))
	reportingSvc := reportingsvc.NewService(mongoRepo, sheetsRepo, baseLogger.Named("svc.reporting"))

	engine := router.New(router.Handlers{
		DietChart: handlers.NewDietChartHandler(dietChartSvc, baseLogger.Named("handlers.dietchart")),
		DietLog:   handlers.NewDietLogHandler(leadsSvc, baseLogger.Named("handlers.dietlog")),
		Catalog:   handlers.NewCatalogHandler(catalogSvc, baseLogger.Named("handlers.catalog")),
		Order:     handlers.NewOrderHandler(leadsSvc, baseLogger.Named("handlers.order")),
	}, cfg.CORS, baseLogger.Named("router"))

	sched := scheduler.NewScheduler(cfg.Reporting, reportingSvc, baseLogger.Named("scheduler"))
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
