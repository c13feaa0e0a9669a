package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/graphcommerce/graph-commerce-backend/config"
	"github.com/graphcommerce/graph-commerce-backend/internal/bootstrap"
	"github.com/graphcommerce/graph-commerce-backend/internal/statscache"
)

const serviceName = "graph-commerce-api"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	bootstrap.SetGinMode(cfg.App.Environment)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	graphClient, err := bootstrap.OpenGraph(ctx, cfg.Graph)
	if err != nil {
		log.Fatalf("open graph store: %v", err)
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := graphClient.Close(closeCtx); err != nil {
			log.Printf("close graph store: %v", err)
		}
	}()

	redisClient, err := bootstrap.OpenRedis(ctx, cfg.Cache.Addr)
	if err != nil {
		// The cache is an optimization; the API works without it.
		log.Printf("stats cache disabled: %v", err)
		redisClient = nil
	}
	if redisClient != nil {
		defer redisClient.Close()
	}

	router, cache := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName:    serviceName,
		Version:        cfg.App.Version,
		Graph:          graphClient,
		Redis:          redisClient,
		StatsTTL:       cfg.Cache.StatsTTL,
		RateLimitRPS:   cfg.Server.RateLimitRPS,
		RateLimitBurst: cfg.Server.RateLimitBurst,
	})

	if cache != nil && cfg.Cache.WarmSchedule != "" {
		warmer, err := statscache.NewWarmer(cache, cfg.Cache.WarmSchedule)
		if err != nil {
			log.Fatalf("stats warmer: %v", err)
		}
		warmer.Start()
		defer warmer.Stop()
	}

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	go func() {
		log.Printf("listening on :%s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("serve: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown: %v", err)
	}
}
