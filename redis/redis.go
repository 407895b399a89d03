package redis

import (
	"context"
	"os"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

var Client *redis.Client

// Init connects to redis if REDIS_ADDR is set. The client stays nil
// otherwise; callers treat a nil client as "no cache".
func Init() {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		log.Info().Msg("REDIS_ADDR not set, running without cache")
		return
	}

	client := redis.NewClient(&redis.Options{
		Addr: addr,
		DB:   0,
	})
	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Warn().Err(err).Msg("redis unreachable, running without cache")
		return
	}

	Client = client
	log.Info().Str("addr", addr).Msg("connected to redis")
}
