package cache

import (
	"context"
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	redisstorage "github.com/gofiber/storage/redis"
	"github.com/redis/go-redis/v9"

	"github.com/ManuelReschke/CoronaDash/internal/pkg/env"
)

// figureCacheDB keeps cached HTTP responses apart from anything else on the server
const figureCacheDB = 1

var (
	client *redis.Client
	ctx    = context.Background()
)

// SetupCache connects to the redis compatible server at CACHE_HOST.
// It reports false when no host is configured or the server is unreachable.
func SetupCache() bool {
	host := env.GetEnv("CACHE_HOST", "")
	if host == "" {
		log.Info("CACHE_HOST not set, caching responses in memory")
		return false
	}
	port := env.GetEnv("CACHE_PORT", "6379")

	c := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", host, port),
		Password: env.GetEnv("CACHE_PASSWORD", ""),
		DB:       0,
	})

	// Test the connection
	pong, err := c.Ping(ctx).Result()
	if err != nil {
		log.Warnf("Could not connect to cache, falling back to memory: %v", err)
		_ = c.Close()
		return false
	}

	log.Infof("Successfully connected to cache: %s", pong)
	client = c
	return true
}

// GetClient returns the redis client, nil when SetupCache did not connect
func GetClient() *redis.Client {
	return client
}

// Storage returns fiber storage on the connected cache server. A nil result
// makes fiber middlewares use their in-memory default.
func Storage() fiber.Storage {
	if client == nil {
		return nil
	}

	opts := client.Options()
	host, port := "127.0.0.1", 6379
	if h, p, err := net.SplitHostPort(opts.Addr); err == nil {
		host = h
		if parsed, e := strconv.Atoi(p); e == nil {
			port = parsed
		}
	}

	return redisstorage.New(redisstorage.Config{
		Host:     host,
		Port:     port,
		Username: opts.Username,
		Password: opts.Password,
		Database: figureCacheDB,
		Reset:    false,
	})
}

// TTL is how long cached responses stay valid
func TTL() time.Duration {
	return time.Duration(env.GetEnvInt("CACHE_TTL_SECONDS", 300)) * time.Second
}

// Close releases the client
func Close() error {
	if client == nil {
		return nil
	}
	err := client.Close()
	client = nil
	return err
}
