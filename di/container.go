package di

import (
	"context"
	"fmt"
	"path/filepath"

	"portal-server/api"
	"portal-server/api/portal"
	"portal-server/config"
	"portal-server/dao/redis"
	"portal-server/db"
	"portal-server/server"
	"portal-server/server/handlers"
	services "portal-server/service"

	goredis "github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// Container holds all application dependencies.
type Container struct {
	Config                 *config.Config
	Logger                 *zap.Logger
	RedisClient            db.RedisClient
	RedisPortalDao         *redis.RedisPortalDAO
	PortalAPI              portal.PortalAPI
	PortalService          *services.PortalService
	PortalHandler          *handlers.PortalHandler
	MuxRouter              *mux.Router
	Router                 *server.Router
	PortalHttpServer       *server.PortalHttpServer
	PortalRefresherService *services.PortalRefresherService
}

// NewContainer initializes and wires up all dependencies.
// Outside prod the backend and Redis are replaced by fixtures and an in-memory store.
func NewContainer(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*Container, error) {
	logger.Info("initializing container", zap.String("env", cfg.Environment))
	prod := cfg.Environment == "prod"

	var redisClient db.RedisClient
	if prod {
		redisInternalClient := goredis.NewClient(&goredis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		client, err := db.NewCacheRedisClient(ctx, redisInternalClient, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to redis: %w", err)
		}
		redisClient = client
	} else {
		logger.Info("using in-memory redis")
		redisClient = db.NewMockRedisClient(ctx)
	}

	redisPortalDao := redis.NewRedisPortalDAO(redisClient, cfg.CacheTTL, logger)

	var portalApi portal.PortalAPI
	if prod {
		logger.Info("using prod portal api", zap.String("base_url", cfg.PortalBaseURL))
		httpClient := api.NewHTTPClient(cfg.PortalBaseURL, logger)
		portalApi = portal.NewPortalApiClient(httpClient, cfg.PortalSession)
	} else {
		logger.Info("using mock portal api")
		portalApi = portal.NewPortalApiClientMock(filepath.Join(config.BaseDir(), config.RESOURCES_PATH_PREFIX))
	}

	portalService := services.NewPortalService(redisPortalDao, portalApi, cfg.Location, logger)
	portalHandler := handlers.NewPortalHandler(portalService, cfg.TuxRooms, logger)

	muxRouter := mux.NewRouter()
	router := server.NewRouter(portalHandler, muxRouter)
	portalHttpServer := server.NewPortalHttpServer(router, muxRouter, cfg.HTTPAddr, logger)

	portalRefresherService := services.NewPortalRefresherService(portalService, redisPortalDao, logger)

	return &Container{
		Config:                 cfg,
		Logger:                 logger,
		RedisClient:            redisClient,
		RedisPortalDao:         redisPortalDao,
		PortalAPI:              portalApi,
		PortalService:          portalService,
		PortalHandler:          portalHandler,
		MuxRouter:              muxRouter,
		Router:                 router,
		PortalHttpServer:       portalHttpServer,
		PortalRefresherService: portalRefresherService,
	}, nil
}
