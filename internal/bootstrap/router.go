package bootstrap

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	httpapi "github.com/graphcommerce/graph-commerce-backend/internal/api/http"
	"github.com/graphcommerce/graph-commerce-backend/internal/api/http/catalog"
	"github.com/graphcommerce/graph-commerce-backend/internal/api/http/middleware"
	"github.com/graphcommerce/graph-commerce-backend/internal/catalog/repository"
	"github.com/graphcommerce/graph-commerce-backend/internal/graph"
	"github.com/graphcommerce/graph-commerce-backend/internal/recommend"
	"github.com/graphcommerce/graph-commerce-backend/internal/statscache"
)

// SetGinMode switches gin to release mode outside development.
func SetGinMode(env string) {
	if env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
}

type RouterDeps struct {
	ServiceName    string
	Version        string
	Graph          graph.Client
	Redis          *redis.Client
	StatsTTL       time.Duration
	RateLimitRPS   float64
	RateLimitBurst int
}

// BuildRouter wires repositories, the recommendation engine and the optional
// statistics cache into the gin engine. Also returns the cache service so the
// caller can hang a warmer on it; nil when Redis is disabled.
func BuildRouter(dep RouterDeps) (*gin.Engine, *statscache.Service) {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(cors.Default())
	r.Use(middleware.RequestIDMiddleware())
	if dep.RateLimitRPS > 0 {
		r.Use(middleware.RateLimitMiddleware(dep.RateLimitRPS, dep.RateLimitBurst))
	}

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.Graph)
	healthHandler.RegisterRoutes(r)

	repo := repository.New(dep.Graph)
	engine := recommend.NewEngine(dep.Graph)

	var stats catalog.StatsProvider = repo
	var cache *statscache.Service
	if dep.Redis != nil {
		cache = statscache.New(repo, dep.Redis, dep.StatsTTL)
		stats = cache
	}

	catalogHandler := catalog.New(repo, engine, stats, dep.Version)
	catalogHandler.Register(r)

	return r, cache
}
