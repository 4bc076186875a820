package main

import (
	"bandisch/gym-tracker/internal/api"
	"bandisch/gym-tracker/internal/config"
	"bandisch/gym-tracker/internal/logging"
	"bandisch/gym-tracker/internal/metrics"
	"bandisch/gym-tracker/internal/repository"
	"bandisch/gym-tracker/internal/repository/memory"
	"bandisch/gym-tracker/internal/repository/mongo"
	"bandisch/gym-tracker/internal/service"
	"bandisch/gym-tracker/internal/storage"
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
)

const (
	metricsNamespace = "gym_tracker"
	metricsSubsystem = "server"
	exportURLExpiry  = 15 * time.Minute
)

func main() {
	// --- Configuration ---
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("could not load config: %s", err)
	}

	logging.Setup(logging.LoggerSetupParams{
		LogFileName:   cfg.Log.File,
		LogToStdout:   cfg.Log.Stdout,
		LogLevel:      cfg.Log.Level,
		LogFormatJSON: cfg.Log.JSON,
	})
	log.Infof("starting gym tracker server, storage driver: %s", cfg.Database.Driver)

	// --- Repositories ---
	gymGoerRepo, strengthTrackerRepo, closeDB, err := setupRepositories(cfg.Database)
	if err != nil {
		log.Fatalf("could not set up repositories: %s", err)
	}
	defer closeDB()

	// --- Metrics ---
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metricsManager := metrics.NewManager(metricsNamespace, metricsSubsystem, registry)

	// --- Services ---
	gymGoerService := service.NewGymGoerService(gymGoerRepo, metricsManager)
	services := api.Services{
		Auth:            service.NewAuthService(gymGoerService, cfg.JWT.Secret, cfg.JWT.Expiration),
		GymGoer:         gymGoerService,
		StrengthTracker: service.NewStrengthTrackerService(strengthTrackerRepo, metricsManager),
	}

	if cfg.S3.Enabled() {
		fileStorage, err := storage.NewS3Storage(context.Background(), cfg.S3)
		if err != nil {
			log.Fatalf("could not initialize S3 storage: %s", err)
		}
		services.Export = service.NewExportService(gymGoerService, fileStorage, exportURLExpiry)
	} else {
		log.Info("s3 not configured, training history export disabled")
	}

	if cfg.Redis.Addr != "" {
		rdb, err := connectRedis(cfg.Redis)
		if err != nil {
			log.Fatalf("could not connect to redis: %s", err)
		}
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Errorf("close redis: %s", err)
			}
		}()
		services.LoginRateLimiter = redis_rate.NewLimiter(rdb)
		services.LoginRateLimitPerMin = cfg.Server.LoginRateLimitPerMin
	} else {
		log.Info("redis not configured, login rate limiting disabled")
	}

	// --- Router ---
	if !log.IsLevelEnabled(log.DebugLevel) {
		gin.SetMode(gin.ReleaseMode)
	}
	router := api.NewRouter(services, metricsManager)
	if cfg.Metrics.Enabled {
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))
	}

	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Infof("server listening on %s", cfg.Server.Address)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("listen and serve: %s", err)
		}
	}()

	// --- Graceful Shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	receivedSig := <-quit
	log.Warnf("signal [%s] received, shutting down", receivedSig)

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		log.Errorf("server forced to shutdown: %s", err)
	}

	log.Info("server exiting")
}

func setupRepositories(dbCfg config.DatabaseConfig) (repository.GymGoerRepository, repository.StrengthTrackerRepository, func(), error) {
	if dbCfg.Driver == config.DriverMemory {
		log.Warn("using in-memory storage, data is lost on restart")
		return memory.NewGymGoerRepository(), memory.NewStrengthTrackerRepository(), func() {}, nil
	}

	client, err := mongo.ConnectDB(dbCfg.URI, dbCfg.Timeout)
	if err != nil {
		return nil, nil, nil, err
	}
	db := client.Database(dbCfg.Name)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()
	mongo.EnsureGymGoerIndexes(ctx, db.Collection(mongo.GymGoersCollection))
	mongo.EnsureStrengthTrackerIndexes(ctx, db.Collection(mongo.StrengthTrackerCollection))

	closeDB := func() {
		log.Info("disconnecting mongodb")
		if err := mongo.DisconnectDB(client); err != nil {
			log.Errorf("disconnect mongodb: %s", err)
		}
	}
	return mongo.NewMongoGymGoerRepository(db), mongo.NewMongoStrengthTrackerRepository(db), closeDB, nil
}

func connectRedis(redisCfg config.RedisConfig) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     redisCfg.Addr,
		Password: redisCfg.Password,
		DB:       redisCfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, err
	}
	return rdb, nil
}
