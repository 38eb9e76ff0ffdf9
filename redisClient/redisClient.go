package redisClient

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

func RedisConnect(addr, password string, db int) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		fmt.Println("Redis接続失敗")
		return nil, err
	}

	fmt.Println("Redis接続成功")

	return rdb, nil
}
