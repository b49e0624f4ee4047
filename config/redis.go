package config

import (
	"context"
	"log"

	"github.com/redis/go-redis/v9"
)

// ConnectRedis returns nil when Redis is not configured or unreachable;
// callers then run without cache.
func ConnectRedis(ctx context.Context, c *Config) *redis.Client {
	var opt *redis.Options
	switch {
	case c.RedisURL != "":
		parsed, err := redis.ParseURL(c.RedisURL)
		if err != nil {
			log.Println("Failed to parse Redis URL:", err)
			log.Println("Running without cache")
			return nil
		}
		opt = parsed
	case c.RedisAddr != "":
		opt = &redis.Options{
			Addr:     c.RedisAddr,
			Password: c.RedisPassword,
			DB:       0,
		}
	default:
		return nil
	}

	client := redis.NewClient(opt)
	if _, err := client.Ping(ctx).Result(); err != nil {
		log.Println("Redis connection failed:", err)
		log.Println("Running without cache")
		_ = client.Close()
		return nil
	}

	log.Println("Redis connected")
	return client
}
