package cache

import (
	"context"

	"go.uber.org/fx"

	"github.com/campusworks/journals/internal/config"
)

// Module wires the Redis-backed cache store into the fx graph.
var Module = fx.Options(
	fx.Provide(newRedis),
	fx.Provide(func(r *Redis) Store { return r }),
	fx.Invoke(registerLifecycle),
)

type redisParams struct {
	fx.In

	Config *config.Config
}

func newRedis(p redisParams) (*Redis, error) {
	return NewRedis(p.Config.RedisAddress, p.Config.RedisPassword, p.Config.RedisDB)
}

func registerLifecycle(lc fx.Lifecycle, r *Redis) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return r.Close()
		},
	})
}
