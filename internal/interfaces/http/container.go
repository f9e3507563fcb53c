package http

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"campus/internal/infrastructure/auth"
	"campus/internal/infrastructure/cache"
	"campus/internal/infrastructure/config"
	"campus/internal/infrastructure/metrics"
	"campus/internal/infrastructure/permission"
	"campus/internal/infrastructure/ratelimit"
	"campus/internal/interfaces/http/middleware"
	"campus/internal/shared/logger"
	"campus/internal/shared/version"
)

// Container holds the infrastructure components, repositories, services,
// handlers and middlewares, wired together once at startup.
type Container struct {
	// Core infrastructure
	engine  *gin.Engine
	db      *gorm.DB
	cfg     *config.Config
	log     logger.Interface
	redis   *redis.Client
	metrics *metrics.Metrics

	repos *repositories
	svcs  *appServices
	hdlrs *allHandlers

	// Middlewares
	jwtService           *auth.JWTService
	authMiddleware       *middleware.AuthMiddleware
	permissionMiddleware *middleware.PermissionMiddleware
	limiter              ratelimit.RateLimiter
}

// NewContainer creates a Container with all dependencies wired together.
// Redis is optional; without it rate limiting stays in process.
func NewContainer(ctx context.Context, db *gorm.DB, cfg *config.Config, log logger.Interface) (*Container, error) {
	c := &Container{
		engine: gin.New(),
		db:     db,
		cfg:    cfg,
		log:    log,
	}

	if err := c.initInfrastructure(ctx); err != nil {
		return nil, err
	}
	c.repos = newRepositories(db, log)
	c.initServices()
	c.initHandlers()
	if err := c.initMiddlewares(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Container) initInfrastructure(ctx context.Context) error {
	info := version.Get()
	c.metrics = metrics.New(info.Version, info.Commit)

	client, err := cache.NewRedisClient(ctx, c.cfg.Redis, c.log)
	if err != nil {
		return err
	}
	c.redis = client

	limits := ratelimit.RateLimitConfig{
		Requests: c.cfg.RateLimit.Requests,
		Window:   c.cfg.RateLimit.Window(),
	}
	if c.redis != nil {
		c.limiter = ratelimit.NewRedisRateLimiter(c.redis, limits)
	} else {
		c.limiter = ratelimit.NewMemoryRateLimiter(limits)
	}
	return nil
}

// initMiddlewares builds the casbin enforcer over the database, seeds the
// default role policies and creates the auth and permission guards.
func (c *Container) initMiddlewares() error {
	enforcer, err := permission.NewEnforcer(c.db, c.log.Named("permission"))
	if err != nil {
		return err
	}
	if err := permission.InitPermissions(enforcer, c.log); err != nil {
		return err
	}

	c.authMiddleware = middleware.NewAuthMiddleware(c.jwtService, c.log.Named("auth"))
	c.permissionMiddleware = middleware.NewPermissionMiddleware(enforcer, c.log.Named("permission"))
	return nil
}

// Engine returns the gin engine. Call SetupRoutes first.
func (c *Container) Engine() *gin.Engine {
	return c.engine
}

// Shutdown releases the redis connection.
func (c *Container) Shutdown() {
	if c.redis == nil {
		return
	}
	if err := c.redis.Close(); err != nil {
		c.log.Warnw("failed to close redis client", "error", err)
	}
}
