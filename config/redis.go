package config

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
)

type RedisConfig struct {
	Enabled      bool
	Host         string
	Port         string
	Password     string
	DB           int
	ClusterAddrs []string
}

// NewRedis connects to a cluster when REDIS_CLUSTER_ADDRS is set and to a
// single node otherwise.
func NewRedis(config RedisConfig) (redis.UniversalClient, error) {
	if len(config.ClusterAddrs) > 0 {
		rdb, err := NewRedisCluster(config.ClusterAddrs, config.Password)
		if err != nil {
			return nil, err
		}
		return rdb, nil
	}
	rdb, err := NewRedisClient(config)
	if err != nil {
		return nil, err
	}
	return rdb, nil
}

func NewRedisClient(config RedisConfig) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%s", config.Host, config.Port),
		Password:     config.Password,
		DB:           config.DB,
		PoolSize:     10,
		MinIdleConns: 5,
		MaxRetries:   3,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	pong, err := rdb.Ping(ctx).Result()
	if err != nil {
		rdb.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	log.Printf("Redis connected: %s", pong)

	return rdb, nil
}

func NewRedisCluster(addrs []string, password string) (*redis.ClusterClient, error) {
	rdb := redis.NewClusterClient(&redis.ClusterOptions{
		Addrs:    addrs,
		Password: password,
		PoolSize: 10,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	pong, err := rdb.Ping(ctx).Result()
	if err != nil {
		rdb.Close()
		return nil, fmt.Errorf("failed to connect to Redis Cluster: %w", err)
	}
	log.Printf("Redis Cluster connected: %s", pong)

	return rdb, nil
}
