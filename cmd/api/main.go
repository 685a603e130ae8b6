package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/slot-exchange/internal/audit"
	"github.com/BruksfildServices01/slot-exchange/internal/config"
	dbpkg "github.com/BruksfildServices01/slot-exchange/internal/db"
	"github.com/BruksfildServices01/slot-exchange/internal/infra/cache"
	"github.com/BruksfildServices01/slot-exchange/internal/infra/queue"
	infraRepo "github.com/BruksfildServices01/slot-exchange/internal/infra/repository"
	"github.com/BruksfildServices01/slot-exchange/internal/logger"
	"github.com/BruksfildServices01/slot-exchange/internal/routes"
	"github.com/BruksfildServices01/slot-exchange/internal/timezone"
)

func main() {

	cfg := config.Load()

	zlog, err := logger.New(cfg.Env)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer func() { _ = zlog.Sync() }()

	db := dbpkg.NewDB(cfg, zlog)

	dispatcher := audit.NewDispatcher(audit.New(db), zlog)
	defer dispatcher.Close()

	infra := routes.Infra{
		Log:   zlog,
		Clock: timezone.SystemClock{},
		Audit: dispatcher,
	}

	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		defer func() { _ = rdb.Close() }()

		if err := rdb.Ping(context.Background()).Err(); err != nil {
			zlog.Warn("redis unreachable, policy cache will fall through", zap.Error(err))
		}

		infra.Policies = cache.NewPolicyCache(
			infraRepo.NewPolicyGormRepository(db),
			rdb,
			cfg.PolicyCacheTTL,
			zlog,
		)

		if cfg.ReminderQueueEnabled {
			rq := queue.NewReminderQueue(cfg.RedisAddr, cfg.RedisPassword, cfg.ReminderQueueDB)
			defer func() { _ = rq.Close() }()
			infra.Reminders = rq
		}
	} else if cfg.ReminderQueueEnabled {
		zlog.Warn("REMINDER_QUEUE_ENABLED set without REDIS_ADDR; reminders are stored only")
	}

	if cfg.EventsEnabled {
		infra.Events = queue.NewRabbitPublisher(cfg.RabbitMQURL)
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()

	routes.RegisterRoutes(r, db, cfg, infra)

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		zlog.Info("server running", zap.String("addr", cfg.Addr()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Fatal("failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		zlog.Error("server shutdown failed", zap.Error(err))
	}
}
