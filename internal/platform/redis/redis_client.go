// Package redis provides the Redis client used for chat-session storage.
package redis

import (
	"context"
	"log/slog"
	"net"
	"os"

	"github.com/redis/go-redis/v9"
)

// NewRedisClient はREDIS_HOSTとREDIS_PORTで指定されたRedisへ接続します。
// Redisは必須ではなく、エラー時は呼び出し側がインメモリのセッション
// ストアへフォールバックします。
func NewRedisClient() (*redis.Client, error) {
	addr := net.JoinHostPort(os.Getenv("REDIS_HOST"), os.Getenv("REDIS_PORT"))

	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
	})

	// 起動時に疎通を確認し、使えない場合は早めに切り替えさせる
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		slog.Warn("redis unreachable, sessions will not persist", "addr", addr, "error", err)
		return nil, err
	}

	slog.Info("redis session store ready", "addr", addr)
	return rdb, nil
}
