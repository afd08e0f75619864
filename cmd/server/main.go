package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"event-lifecycle-service/config"
	"event-lifecycle-service/internal/cache"
	"event-lifecycle-service/internal/database"
	"event-lifecycle-service/internal/handler"
	"event-lifecycle-service/internal/notifier"
	"event-lifecycle-service/internal/repository"
	"event-lifecycle-service/internal/scheduler"
	"event-lifecycle-service/internal/service"
	"event-lifecycle-service/pkg/clock"
	"event-lifecycle-service/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	log := logger.WithComponent("main")
	defer logger.L.Sync()

	cfg := config.LoadConfig()

	pool, err := database.InitDatabase(&cfg.Database)
	if err != nil {
		log.Fatal("failed to initialize database", zap.Error(err))
	}
	defer pool.Close()

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		log.Fatal("failed to initialize redis", zap.Error(err))
	}
	defer rdb.Close()

	if err := handler.RegisterValidations(); err != nil {
		log.Fatal("failed to register validations", zap.Error(err))
	}

	clk := clock.New()

	eventRepo := repository.NewEventRepository(pool)
	locationRepo := repository.NewLocationRepository(pool)
	locationCache := cache.NewRedisLocationCache(rdb)

	dispatcher, err := notifier.NewAlertDispatcher(&http.Client{}, cfg.Fanout)
	if err != nil {
		log.Fatal("failed to create dispatcher", zap.Error(err))
	}

	validator := service.NewEventValidator(clk)
	resolver := service.NewLocationResolver(locationRepo, locationCache)
	eventService := service.NewEventService(eventRepo, validator, resolver, dispatcher)

	router := gin.New()
	router.Use(gin.Recovery(), handler.RequestID(), handler.RequestLogger())
	handler.NewEventHandler(eventService).RegisterRoutes(router)
	handler.NewStatusHandler(pool, rdb).RegisterRoutes(router)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	lifecycle := scheduler.NewLifecycleScheduler(eventRepo, clk, cfg.Scheduler)
	lifecycle.Start(ctx)

	server := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: router,
	}

	go func() {
		log.Info("server listening", zap.String("addr", cfg.Server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server failed", zap.Error(err))
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh
	log.Info("shutting down", zap.String("signal", sig.String()))

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("server shutdown failed", zap.Error(err))
	}
}
