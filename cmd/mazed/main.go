// Command mazed serves the maze HTTP API. Settings come from the environment
// and an optional .env file; see package config.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/katalvlaran/labyrinth/api"
	"github.com/katalvlaran/labyrinth/config"
	"github.com/katalvlaran/labyrinth/generate"
	"github.com/katalvlaran/labyrinth/store"
)

const connectTimeout = 10 * time.Second

var log = logrus.New()

func main() {
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Fatalf("LOG_LEVEL: %v", err)
	}
	log.SetLevel(level)
	gin.SetMode(cfg.GinMode)

	algo, err := generate.ParseAlgorithm(cfg.DefaultAlgorithm)
	if err != nil {
		log.Fatalf("DEFAULT_ALGORITHM: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	repo, closeRepo, err := newRepository(ctx, cfg)
	cancel()
	if err != nil {
		log.Fatal(err)
	}
	defer closeRepo()
	log.WithField("store", cfg.Store).Info("repository initialized")

	router := api.NewRouter(api.Config{
		Addr:    cfg.Addr(),
		BaseURL: "/api",
		Controllers: []api.Controller{
			api.NewMazeController(repo, cfg.MaxDimension, algo, log),
		},
		Logger: log,
	})

	log.WithFields(logrus.Fields{
		"addr":          cfg.Addr(),
		"max_dimension": cfg.MaxDimension,
		"algorithm":     algo,
	}).Info("starting server")
	if err := router.Run(); err != nil {
		log.Errorf("server stopped: %v", err)
		closeRepo()
		os.Exit(1)
	}
}

// newRepository connects the configured backend. The returned func releases
// its connection.
func newRepository(ctx context.Context, cfg config.Config) (store.Repository, func(), error) {
	switch cfg.Store {
	case config.StoreRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			client.Close()
			return nil, nil, fmt.Errorf("redis ping %s: %w", cfg.RedisAddr, err)
		}
		log.WithField("addr", cfg.RedisAddr).Info("connected to Redis")
		return store.NewRedisRepository(client, "", cfg.RedisTTLSeconds), func() { _ = client.Close() }, nil

	case config.StoreMongo:
		client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI()))
		if err != nil {
			return nil, nil, fmt.Errorf("connect to MongoDB: %w", err)
		}
		if err := client.Ping(ctx, nil); err != nil {
			_ = client.Disconnect(context.Background())
			return nil, nil, fmt.Errorf("MongoDB ping failed: %w", err)
		}
		log.WithField("db", cfg.DBName).Info("connected to MongoDB")
		closeFn := func() {
			ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
			defer cancel()
			_ = client.Disconnect(ctx)
		}
		return store.NewMongoRepository(client, cfg.DBName, store.DefaultCollection), closeFn, nil
	}

	return store.NewMemoryRepository(), func() {}, nil
}
