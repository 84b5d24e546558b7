package db

import (
	"context"
	"fmt"
	"log"

	"github.com/go-redis/redis/v8"
)

// DataRedisClient struct holds the Redis client and context
type DataRedisClient struct {
	client *redis.Client
	ctx    context.Context
}

// NewDataRedisClient initializes a new Redis client with default options
func NewDataRedisClient(ctx context.Context, client *redis.Client) *DataRedisClient {
	// Test the connection
	if _, err := client.Ping(ctx).Result(); err != nil {
		log.Fatalf("Could not connect to Redis: %v", err)
	}
	fmt.Println("Connected to Redis")

	return &DataRedisClient{
		client: client,
		ctx:    ctx,
	}
}

// Set sets a key-value pair in Redis
func (r *DataRedisClient) Set(key, value string) error {
	return r.client.Set(r.ctx, key, value, 0).Err()
}

// Get retrieves the value for a given key from Redis
func (r *DataRedisClient) Get(key string) (string, error) {
	return r.client.Get(r.ctx, key).Result()
}

// Keys lists all keys matching the given pattern
func (r *DataRedisClient) Keys(pattern string) ([]string, error) {
	return r.client.Keys(r.ctx, pattern).Result()
}

// Del removes a key from Redis
func (r *DataRedisClient) Del(key string) error {
	return r.client.Del(r.ctx, key).Err()
}

func (r *DataRedisClient) GetContext() context.Context {
	return r.ctx
}

func (r *DataRedisClient) Ping() error {
	_, err := r.client.Ping(r.ctx).Result()
	return err
}
