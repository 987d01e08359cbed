package main

import (
	"context"
	"log"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	apiHandler "github.com/taskcal/backend/api/handler"
	"github.com/taskcal/backend/internal/config"
	"github.com/taskcal/backend/internal/infrastructure/holidayapi"
	"github.com/taskcal/backend/internal/infrastructure/storage"
	"github.com/taskcal/backend/internal/router"
	"github.com/taskcal/backend/internal/services/lifecycle"
	"github.com/taskcal/backend/pkg/httpcontext"
	"github.com/taskcal/backend/pkg/logger"
	boltRepo "github.com/taskcal/backend/repository/bolt"
	calendarUC "github.com/taskcal/backend/usecase/calendar"
	holidayUC "github.com/taskcal/backend/usecase/holiday"
	labelUC "github.com/taskcal/backend/usecase/label"
	taskUC "github.com/taskcal/backend/usecase/task"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	zapLogger, err := logger.New(logger.Config{
		Level:    cfg.Logger.Level,
		Encoding: cfg.Logger.Encoding,
	})
	if err != nil {
		log.Fatalf("logger error: %v", err)
	}
	defer zapLogger.Sync()

	appCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	manager := lifecycle.New(cfg.Context.ShutdownTimeout, zapLogger)
	manager.Listen(cancel)

	store, err := storage.Open(cfg.Storage.Path, cfg.Storage.Bucket)
	if err != nil {
		zapLogger.Fatal("failed to open storage", zap.Error(err))
	}
	manager.Register("storage", func(ctx context.Context) error {
		return store.Close()
	})

	taskRepo := boltRepo.NewTaskRepository(store, zapLogger)
	labelRepo := boltRepo.NewLabelRepository(store, zapLogger)
	holidayCache := boltRepo.NewHolidayCache(store, zapLogger)

	taskStore := taskUC.NewStore(taskRepo, zapLogger)
	if err := taskStore.Load(appCtx); err != nil {
		zapLogger.Fatal("failed to load tasks", zap.Error(err))
	}
	labelStore := labelUC.NewStore(labelRepo, zapLogger)
	if err := labelStore.Load(appCtx); err != nil {
		zapLogger.Fatal("failed to load labels", zap.Error(err))
	}

	holidayClient := holidayapi.NewClient(holidayapi.Config{
		CountriesURL: cfg.HolidayAPI.CountriesURL,
		HolidaysURL:  cfg.HolidayAPI.HolidaysURL,
		Timeout:      cfg.HolidayAPI.Timeout,
	})
	holidayService := holidayUC.New(holidayClient, holidayCache, zapLogger)

	calendarService := calendarUC.New(taskStore, labelStore, holidayService, cfg.Calendar.WeekStart, zapLogger)

	ctxAdapter := httpcontext.NewAdapter(cfg.Context.RequestTimeout)

	handlers := router.Handlers{
		Task:     apiHandler.NewTaskHandler(taskStore, ctxAdapter, zapLogger),
		Label:    apiHandler.NewLabelHandler(labelStore, ctxAdapter, zapLogger),
		Calendar: apiHandler.NewCalendarHandler(calendarService, holidayService, ctxAdapter, zapLogger),
		Health:   apiHandler.NewHealthHandler(store, ctxAdapter, zapLogger),
	}

	r := router.New(handlers)

	server := &fasthttp.Server{
		Handler:      r.Handler,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
		Name:         cfg.AppName,
	}

	go func() {
		zapLogger.Info("server started", zap.String("address", cfg.Address()))
		if err := server.ListenAndServe(cfg.Address()); err != nil {
			zapLogger.Fatal("server crashed", zap.Error(err))
		}
	}()

	manager.Register("http_server", func(ctx context.Context) error {
		return server.Shutdown()
	})

	<-appCtx.Done()

	if err := manager.Shutdown(context.Background()); err != nil {
		zapLogger.Error("graceful shutdown error", zap.Error(err))
	}
}
