// kahootboard/config/redis.go
package config

import (
	"context"
	"log/slog"
	"os"

	"github.com/redis/go-redis/v9"
)

var RDB *redis.Client
var Ctx = context.Background()

// ConnectRedis sets up the optional cache client. When REDIS_ADDR is
// unset or the server is unreachable, RDB stays nil and callers skip
// caching entirely.
func ConnectRedis() {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		slog.Warn("REDIS_ADDR not set, sheet caching disabled")
		return
	}

	RDB = redis.NewClient(&redis.Options{
		Addr: addr,
	})

	if _, err := RDB.Ping(Ctx).Result(); err != nil {
		slog.Error("failed to connect to Redis, caching disabled", "error", err)
		RDB = nil
		return
	}

	slog.Info("connected to Redis", "addr", addr)
}
