package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	redis_utils "Courtside/services/redis/utils"

	"github.com/redis/go-redis/v9"
)

// Hydrated lobby responses are cached for a short window; every membership
// mutation invalidates the entry.
const lobbySummaryTTL = 30 * time.Second

// RedisClient handles Redis operations.
type RedisClient struct {
	client *redis.Client
	ctx    context.Context
}

// NewRedisClient creates a new Redis client instance. Remote deployments
// hand us a full URL, local ones a bare host:port.
func NewRedisClient(addr string, db int) *RedisClient {
	var client *redis.Client
	if opt, err := redis.ParseURL(addr); err == nil {
		client = redis.NewClient(opt)
	} else {
		client = redis.NewClient(&redis.Options{
			Addr: addr,
			DB:   db,
		})
	}
	return &RedisClient{
		client: client,
		ctx:    context.Background(),
	}
}

// InitRedis initializes the Redis connection and verifies it.
func InitRedis(addr string, db int) (*RedisClient, error) {
	rc := NewRedisClient(addr, db)

	if err := rc.client.Ping(rc.ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %v", err)
	}
	log.Println("Successfully connected to Redis")

	return rc, nil
}

// CloseRedis gracefully closes the Redis connection.
func CloseRedis(rc *RedisClient) error {
	if err := rc.client.Close(); err != nil {
		return fmt.Errorf("error closing Redis connection: %v", err)
	}
	return nil
}

// Ping checks the connection, used by the health endpoints.
func (rc *RedisClient) Ping() error {
	return rc.client.Ping(rc.ctx).Err()
}

// SetLobbySummary caches a serialized lobby response by lobby id.
// Key format: "lobby:{id}"
func (rc *RedisClient) SetLobbySummary(lobbyID string, summary any) error {
	key := redis_utils.FormatLobbyKey(lobbyID)
	data, err := json.Marshal(summary)
	if err != nil {
		return fmt.Errorf("error marshaling lobby summary: %v", err)
	}
	return rc.client.Set(rc.ctx, key, data, lobbySummaryTTL).Err()
}

// GetLobbySummary returns the cached lobby response, or nil on a miss.
func (rc *RedisClient) GetLobbySummary(lobbyID string) (map[string]any, error) {
	key := redis_utils.FormatLobbyKey(lobbyID)
	data, err := rc.client.Get(rc.ctx, key).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error getting lobby summary: %v", err)
	}

	var summary map[string]any
	if err := json.Unmarshal(data, &summary); err != nil {
		return nil, fmt.Errorf("error unmarshaling lobby summary: %v", err)
	}
	return summary, nil
}

// InvalidateLobby drops the cached summary after a mutation.
func (rc *RedisClient) InvalidateLobby(lobbyID string) error {
	key := redis_utils.FormatLobbyKey(lobbyID)
	if err := rc.client.Del(rc.ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to invalidate lobby %s: %v", lobbyID, err)
	}
	return nil
}
