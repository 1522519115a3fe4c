package redissvc

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// Connect returns a client for addr once the server answers a ping.
func Connect(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("could not connect to redis at %s: %w", addr, err)
	}
	return rdb, nil
}
