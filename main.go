package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/beka-birhanu/wallmaze/api"
	api_i "github.com/beka-birhanu/wallmaze/api/i"
	"github.com/beka-birhanu/wallmaze/api/identity"
	mazeapi "github.com/beka-birhanu/wallmaze/api/maze"
	"github.com/beka-birhanu/wallmaze/config"
	"github.com/beka-birhanu/wallmaze/infrastruture/snapshot"
	"github.com/beka-birhanu/wallmaze/infrastruture/token"
	"github.com/beka-birhanu/wallmaze/logger"
	"github.com/beka-birhanu/wallmaze/service"
	"github.com/beka-birhanu/wallmaze/service/i"
	"github.com/redis/go-redis/v9"
)

// Global variables for dependencies
var (
	redisClient    *redis.Client
	snapshotStore  i.SnapshotStore
	mazeService    i.MazeService
	mazeController api_i.Controller
	jwtTokenizer   i.Tokenizer
	router         *api.Router
	appLogger      *logger.Logger
)

func newLogger(prefix, color string) *logger.Logger {
	l, err := logger.New(prefix, color, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "creating %s logger: %v\n", prefix, err)
		os.Exit(1)
	}
	return l
}

func initRedis(ctx context.Context) {
	redisClient = redis.NewClient(&redis.Options{
		Addr:     config.Envs.RedisAddr,
		Password: config.Envs.RedisPassword,
		DB:       config.Envs.RedisDB,
	})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		appLogger.Error(fmt.Sprintf("Redis ping failed: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Connected to Redis")
}

func initSnapshotStore(client *redis.Client) {
	var err error
	snapshotStore, err = snapshot.NewRedisStore(client, config.Envs.SnapshotKey)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating snapshot store: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Snapshot store initialized")
}

func initMazeService(ctx context.Context) {
	var err error
	mazeService, err = service.NewMazeService(ctx, service.MazeConfig{
		Rows:   config.Envs.MazeRows,
		Cols:   config.Envs.MazeCols,
		Seed:   config.Envs.MazeSeed,
		Store:  snapshotStore,
		Logger: newLogger("MAZE", config.ColorCyan),
	})
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating maze service: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Maze service initialized")
}

func initMazeController() {
	var err error
	mazeController, err = mazeapi.NewMazeController(mazeService)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating maze controller: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Maze controller initialized")
}

func initJWTTokenizer() {
	jwtTokenizer = token.NewJwtService(config.Envs.JWTSecret, config.Envs.JWTIssuer)
	appLogger.Info("JWT Tokenizer initialized")
}

func initRouter(t i.Tokenizer) {
	router = api.NewRouter(api.Config{
		Addr:                    fmt.Sprintf("%s:%v", config.Envs.HostIP, config.Envs.RESTPort),
		BaseURL:                 "/api",
		Mode:                    config.Envs.GinMode,
		Controllers:             []api_i.Controller{mazeController},
		AuthorizationMiddleware: identity.Authoriz(t, identity.ScopeMazeWrite),
	})
	appLogger.Info("Router initialized")
}

func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	appLogger = newLogger("APP", config.ColorGreen)

	initRedis(ctx)
	defer func() {
		_ = redisClient.Close()
	}()

	initSnapshotStore(redisClient)
	initMazeService(ctx)
	initMazeController()
	initJWTTokenizer()
	initRouter(jwtTokenizer)

	// Run HTTP server
	if err := router.Run(); err != nil {
		appLogger.Error(fmt.Sprintf("Starting server: %v", err))
		os.Exit(1)
	}
}
