package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/buildsense-ai/v0-buildsense/internal/auth"
	"github.com/buildsense-ai/v0-buildsense/internal/cards"
	"github.com/buildsense-ai/v0-buildsense/internal/client"
	"github.com/buildsense-ai/v0-buildsense/internal/config"
	httpapi "github.com/buildsense-ai/v0-buildsense/internal/http"
	"github.com/buildsense-ai/v0-buildsense/internal/logger"
	"github.com/buildsense-ai/v0-buildsense/internal/service"
)

func main() {
	cfg := config.Load()

	log, err := logger.New(cfg.Log.Level, cfg.Log.Format, "buildsense-issues")
	if err != nil {
		log, _ = zap.NewProduction()
	}
	defer log.Sync()

	// 凭证来源：启用 Redis 时从会话对象读取，否则用配置里的静态 token
	var redisClient *redis.Client
	var tokens auth.TokenProvider
	if cfg.Redis.Enabled {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		tokens = auth.NewSessionProvider(redisClient, cfg.Redis.SessionKey)
		log.Info("Using redis session credential provider", zap.String("key", cfg.Redis.SessionKey))
	} else {
		tokens = auth.NewStaticProvider(cfg.EventsAPI.Token, cfg.EventsAPI.TokenType)
	}

	eventsClient := client.NewEventsClient(client.Options{
		BaseURL:      cfg.EventsAPI.BaseURL,
		Timeout:      cfg.EventsAPI.Timeout,
		ProbeTimeout: cfg.EventsAPI.ProbeTimeout,
		RetryCount:   cfg.EventsAPI.RetryCount,
		RetryWait:    cfg.EventsAPI.RetryWait,
	}, log)

	issueService := service.NewIssueCardService(eventsClient, tokens, log)
	handler := httpapi.NewIssueHandler(issueService, eventsClient, cards.NewStateManager(), log)

	router := httpapi.NewRouter(log)
	router.RegisterIssueRoutes(handler)

	srv := service.NewServer(cfg.HTTP.Addr, router, log)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-sigCh:
	case <-errCh:
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	_ = srv.Stop(shutdownCtx)
	if redisClient != nil {
		_ = redisClient.Close()
	}
}
