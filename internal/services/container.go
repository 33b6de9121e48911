package services

import (
	"context"
	"fmt"

	"github.com/nexconsult/nfse-api/internal/config"
	"github.com/nexconsult/nfse-api/internal/dps"
	"github.com/nexconsult/nfse-api/internal/metrics"
	"github.com/nexconsult/nfse-api/internal/store"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// Container holds all service dependencies
type Container struct {
	config      *config.Config
	logger      *logrus.Logger
	redisClient *redis.Client
	mongo       *store.Client
	Metrics     *metrics.Registry

	CacheService    *CacheService
	ProfileService  ProfileServiceInterface
	DPSService      DPSServiceInterface
	DocumentService DocumentServiceInterface
}

// NewContainer creates a new service container
func NewContainer(cfg *config.Config, logger *logrus.Logger) (*Container, error) {
	container := &Container{
		config:  cfg,
		logger:  logger,
		Metrics: metrics.NewRegistry(),
	}

	container.initRedis()
	container.initMongo()

	if err := container.initServices(); err != nil {
		return nil, fmt.Errorf("failed to initialize services: %w", err)
	}

	return container, nil
}

// initRedis initializes Redis client
func (c *Container) initRedis() {
	if !c.config.Redis.Enabled {
		c.logger.Info("Redis disabled, using memory cache")
		return
	}

	c.redisClient = redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", c.config.Redis.Host, c.config.Redis.Port),
		Password:     c.config.Redis.Password,
		DB:           c.config.Redis.DB,
		PoolSize:     c.config.Redis.PoolSize,
		DialTimeout:  c.config.Redis.DialTimeout,
		ReadTimeout:  c.config.Redis.ReadTimeout,
		WriteTimeout: c.config.Redis.WriteTimeout,
	})

	ctx, cancel := context.WithTimeout(context.Background(), c.config.Redis.DialTimeout)
	defer cancel()
	if err := c.redisClient.Ping(ctx).Err(); err != nil {
		c.logger.WithError(err).Warn("Redis connection failed, running without cache")
		_ = c.redisClient.Close()
		c.redisClient = nil
	} else {
		c.logger.Info("Redis connection established")
	}
}

// initMongo connects the profile store
func (c *Container) initMongo() {
	if !c.config.Mongo.Enabled {
		c.logger.Info("MongoDB disabled, company profiles kept in memory")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), c.config.Mongo.ConnectTimeout)
	defer cancel()

	client, err := store.New(ctx, c.config.Mongo.URI, c.config.Mongo.Database)
	if err != nil {
		c.logger.WithError(err).Warn("MongoDB connection failed, company profiles kept in memory")
		return
	}
	c.mongo = client
	c.logger.WithField("database", c.config.Mongo.Database).Info("MongoDB connection established")
}

// initServices initializes all services
func (c *Container) initServices() error {
	loc, err := c.config.DPS.Location()
	if err != nil {
		return fmt.Errorf("failed to load time zone: %w", err)
	}

	c.CacheService = NewCacheService(c.redisClient, c.config.DPS.ProfileTTL, c.logger)

	var profiles ProfileStore = store.NewMemory()
	if c.mongo != nil {
		profiles = c.mongo
	}
	c.ProfileService = NewProfileService(profiles, c.CacheService, c.Metrics, c.logger)

	builder := dps.NewBuilder(
		dps.WithDirectory(dps.DefaultDirectory),
		dps.WithLocation(loc),
		dps.WithLogger(c.logger),
	)
	c.DPSService = NewDPSService(builder, dps.DefaultDirectory, c.ProfileService, c.Metrics, c.logger)
	c.DocumentService = NewDocumentService(c.Metrics)

	return nil
}

// Close closes all service connections
func (c *Container) Close() error {
	var errs []error

	if c.redisClient != nil {
		if err := c.redisClient.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close Redis: %w", err))
		}
	}

	if c.mongo != nil {
		ctx, cancel := context.WithTimeout(context.Background(), c.config.Mongo.ConnectTimeout)
		defer cancel()
		if err := c.mongo.Disconnect(ctx); err != nil {
			errs = append(errs, fmt.Errorf("failed to close MongoDB: %w", err))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("errors during shutdown: %v", errs)
	}

	return nil
}

// Health checks the health of all services
func (c *Container) Health() map[string]interface{} {
	health := c.CacheService.Health()

	if c.mongo != nil {
		health["mongo"] = c.ProfileService.Health()
	} else {
		health["mongo"] = map[string]interface{}{
			"status": "disabled",
		}
	}

	health["dps"] = c.DPSService.Health()

	return health
}
