package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/gjaolabs/boilerplate-project-exercisetracker/handlers"
	"github.com/gjaolabs/boilerplate-project-exercisetracker/internal/config"
	"github.com/gjaolabs/boilerplate-project-exercisetracker/internal/database"
	"github.com/gjaolabs/boilerplate-project-exercisetracker/internal/tracker/handler"
	"github.com/gjaolabs/boilerplate-project-exercisetracker/internal/tracker/repository"
	"github.com/gjaolabs/boilerplate-project-exercisetracker/internal/tracker/service"
	"github.com/gjaolabs/boilerplate-project-exercisetracker/pkg/logger"
	"github.com/gjaolabs/boilerplate-project-exercisetracker/pkg/metrics"
	"github.com/gjaolabs/boilerplate-project-exercisetracker/pkg/middleware"
)

var startTime = time.Now()

func main() {
	// initialize logging (can be controlled with LOG_LEVEL env: debug|info|warn|error|fatal)
	logger.Init(os.Getenv("LOG_LEVEL"))
	logger.Debugf("startup: LOG_LEVEL=%s", logger.LevelString())

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}

	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	// Lightweight CORS middleware: the browser-based API tester calls this
	// service cross-origin, so stay permissive.
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Accept")
		c.Writer.Header().Set("Access-Control-Expose-Headers", "Content-Length")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(200)
			return
		}
		c.Next()
	})

	ctx := context.Background()

	// Redis is optional: it only backs the distributed rate limiter.
	var redisClient *redis.Client
	if cfg.Redis.Host != "" {
		redisClient = redis.NewClient(&redis.Options{Addr: cfg.Redis.Host + ":" + cfg.Redis.Port, Password: cfg.Redis.Password})
		if err := redisClient.Ping(ctx).Err(); err != nil {
			logger.Warnf("failed to connect to Redis (%s:%s): %v", cfg.Redis.Host, cfg.Redis.Port, err)
			redisClient = nil
		} else {
			logger.Infof("Connected to Redis: %s:%s", cfg.Redis.Host, cfg.Redis.Port)
		}
	}

	// Optional global rate limiter, keyed per client IP
	if cfg.RateLimit.Enabled {
		if cfg.RateLimit.UseRedis && redisClient != nil {
			win := time.Duration(cfg.RateLimit.WindowSeconds) * time.Second
			r.Use(middleware.RedisRateLimitMiddleware(redisClient, cfg.RateLimit.RPS, cfg.RateLimit.Burst, win))
		} else {
			r.Use(middleware.RateLimitMiddleware(cfg.RateLimit.RPS, cfg.RateLimit.Burst))
		}
	}

	// Connect to MongoDB with retry/backoff to tolerate startup races. On
	// final failure the service keeps serving from the in-memory store
	// rather than exiting.
	var mongoClient *mongo.Client
	if cfg.MongoDB.URI != "" {
		const maxAttempts = 5
		backoff := time.Second
		var errConn error
		for attempt := 1; attempt <= maxAttempts; attempt++ {
			mongoClient, errConn = database.ConnectMongo(ctx, cfg.MongoDB.URI, cfg.MongoDB.Timeout)
			if errConn == nil {
				break
			}
			logger.Warnf("attempt %d/%d: failed to connect to MongoDB: %v", attempt, maxAttempts, errConn)
			if attempt < maxAttempts {
				time.Sleep(backoff)
				backoff *= 2
			}
		}
		if errConn != nil {
			logger.Warnf("could not connect to MongoDB after %d attempts: %v", maxAttempts, errConn)
			mongoClient = nil
		}
	}

	var users repository.UserRepository
	var exercises repository.ExerciseRepository
	if mongoClient != nil {
		defer func() { _ = mongoClient.Disconnect(ctx) }()
		db := mongoClient.Database(cfg.MongoDB.Database)
		users = repository.NewMongoUserRepository(db.Collection("users"))
		exercises = repository.NewMongoExerciseRepository(db.Collection("exercises"))
		logger.Infof("Using MongoDB storage (database=%s)", cfg.MongoDB.Database)
	} else {
		users = repository.NewMemoryUserRepository()
		exercises = repository.NewMemoryExerciseRepository()
		logger.Warnf("Using in-memory storage; records will not survive a restart")
	}
	svc := service.New(users, exercises)

	// static landing page
	r.StaticFile("/", "./public/index.html")

	// Basic health endpoint
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "healthy")
	})

	// store connection state, mongoose readyState numbering
	r.GET("/mongo-health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": database.State(c.Request.Context(), mongoClient)})
	})

	// readiness endpoint — storage is always ready (memory fallback); only a
	// configured-but-unreachable Redis limiter blocks readiness
	r.GET("/ready", func(c *gin.Context) {
		deps := map[string]bool{
			"storage": true,
			"mongodb": mongoClient != nil,
			"redis":   redisClient != nil,
		}
		if cfg.RateLimit.Enabled && cfg.RateLimit.UseRedis && redisClient == nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not_ready", "deps": deps, "uptime": time.Since(startTime).String()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready", "deps": deps, "uptime": time.Since(startTime).String()})
	})

	handler.RegisterRoutes(r, svc)
	handlers.RegisterSwagger(r)

	// Expose Prometheus metrics
	metrics.RegisterCollectors(prometheus.DefaultRegisterer)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	logger.Infof("Starting exercise tracker on %s", addr)
	if err := r.Run(addr); err != nil {
		logger.Fatalf("server failed: %v", err)
	}
}
