package cache

import (
	"context"
	"log/slog"
	"time"

	"tube/config"
	"tube/internal/domain/entity"
	"tube/internal/domain/lifecycle"
	"tube/internal/domain/service"

	"github.com/eko/gocache/lib/v4/cache"
	"github.com/eko/gocache/lib/v4/store"
	go_store "github.com/eko/gocache/store/go_cache/v4"
	redis_store "github.com/eko/gocache/store/redis/v4"
	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// UserCachePrefix namespaces profile entries in a shared store.
const UserCachePrefix = "tube-user-"

// cachedUser is the stored form of entity.User. It has no credential field.
type cachedUser struct {
	ID                 uuid.UUID `json:"id"`
	Username           string    `json:"username"`
	Email              string    `json:"email"`
	Avatar             string    `json:"avatar"`
	Cover              string    `json:"cover"`
	ChannelDescription string    `json:"channelDescription"`
	SubscribersCount   int64     `json:"subscribersCount"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

type profileCache struct {
	users *PrefixedCache[cachedUser]
	ttl   time.Duration
}

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New builds the profile cache selected by configuration. It returns a nil
// cache when caching is disabled; consumers treat that as "always miss".
func New(params Params) (service.ProfileCache, error) {
	cfg := params.Config.Cache
	if cfg == nil || !cfg.Enabled {
		params.Logger.Info("Profile cache disabled")

		return nil, nil
	}

	var backend cache.CacheInterface[any]
	switch cfg.Type {
	case config.CacheTypeRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		params.Append(fx.Hook{
			OnStart: func(startCtx context.Context) error {
				ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
				defer cancel()

				return errors.Wrap(client.Ping(ctx).Err(), "failed to ping redis")
			},
			OnStop: func(_ context.Context) error {
				return client.Close()
			},
		})
		backend = newRedisCache(client)
	case config.CacheTypeMemory, "":
		backend = newMemoryCache(cfg.TTL)
	default:
		return nil, errors.Errorf("unknown cache type %q", cfg.Type)
	}

	params.Logger.Info("Profile cache enabled", slog.String("type", cfg.Type), slog.Duration("ttl", cfg.TTL))

	return NewProfileCache(backend, cfg.TTL), nil
}

// NewInMemory returns a process-local profile cache.
func NewInMemory(ttl time.Duration) service.ProfileCache {
	return NewProfileCache(newMemoryCache(ttl), ttl)
}

// NewProfileCache wraps an existing gocache backend.
func NewProfileCache(backend cache.CacheInterface[any], ttl time.Duration) service.ProfileCache {
	return &profileCache{
		users: NewPrefixedCache[cachedUser](backend, UserCachePrefix),
		ttl:   ttl,
	}
}

func (c *profileCache) GetUser(ctx context.Context, id uuid.UUID) (*entity.User, bool, error) {
	stored, ok, err := c.users.Get(ctx, id)
	if err != nil || !ok {
		return nil, false, err
	}

	return &entity.User{
		ID:                 stored.ID,
		Username:           stored.Username,
		Email:              stored.Email,
		Avatar:             stored.Avatar,
		Cover:              stored.Cover,
		ChannelDescription: stored.ChannelDescription,
		SubscribersCount:   stored.SubscribersCount,
		CreatedAt:          stored.CreatedAt,
		UpdatedAt:          stored.UpdatedAt,
	}, true, nil
}

func (c *profileCache) SetUser(ctx context.Context, user *entity.User) error {
	return c.users.Set(ctx, user.ID, cachedUser{
		ID:                 user.ID,
		Username:           user.Username,
		Email:              user.Email,
		Avatar:             user.Avatar,
		Cover:              user.Cover,
		ChannelDescription: user.ChannelDescription,
		SubscribersCount:   user.SubscribersCount,
		CreatedAt:          user.CreatedAt,
		UpdatedAt:          user.UpdatedAt,
	}, store.WithExpiration(c.ttl))
}

func (c *profileCache) InvalidateUser(ctx context.Context, id uuid.UUID) error {
	return c.users.Delete(ctx, id)
}

func newMemoryCache(ttl time.Duration) *cache.Cache[any] {
	gocacheClient := gocache.New(ttl, 2*ttl)
	gocacheStore := go_store.NewGoCache(gocacheClient)

	return cache.New[any](gocacheStore)
}

func newRedisCache(client *redis.Client) *cache.Cache[any] {
	redisStore := redis_store.NewRedis(client)

	return cache.New[any](redisStore)
}
