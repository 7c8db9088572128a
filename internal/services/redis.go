package services

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

var RedisClient *redis.Client

// BookingUpdatesChannel carries booking lifecycle events for other
// instances and background consumers.
const BookingUpdatesChannel = "booking:updates"

// InitRedis initializes the Redis client
func InitRedis() error {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://redis:6379" // Default Redis address for Docker
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return fmt.Errorf("failed to parse Redis URL: %v", err)
	}

	RedisClient = redis.NewClient(opt)

	// Test the connection
	ctx := context.Background()
	_, err = RedisClient.Ping(ctx).Result()
	if err != nil {
		return fmt.Errorf("failed to connect to Redis: %v", err)
	}

	return nil
}

// SetSpotSummary caches the review summary payload for a spot
func SetSpotSummary(ctx context.Context, spotID uint, summary interface{}) error {
	data, err := json.Marshal(summary)
	if err != nil {
		return err
	}

	key := fmt.Sprintf("spot:summary:%d", spotID)
	return RedisClient.Set(ctx, key, data, time.Hour).Err()
}

// GetSpotSummary retrieves a cached review summary for a spot. The target
// must be a pointer to the summary type.
func GetSpotSummary(ctx context.Context, spotID uint, target interface{}) error {
	key := fmt.Sprintf("spot:summary:%d", spotID)
	data, err := RedisClient.Get(ctx, key).Result()
	if err != nil {
		return err
	}
	return json.Unmarshal([]byte(data), target)
}

// InvalidateSpotSummary drops the cached summary after a new review lands
func InvalidateSpotSummary(ctx context.Context, spotID uint) error {
	key := fmt.Sprintf("spot:summary:%d", spotID)
	return RedisClient.Del(ctx, key).Err()
}

// PublishBookingUpdate publishes a booking lifecycle event to Redis pub/sub
func PublishBookingUpdate(ctx context.Context, bookingID uint, status string, data map[string]interface{}) error {
	updateData := map[string]interface{}{
		"bookingId": bookingID,
		"status":    status,
		"data":      data,
		"timestamp": time.Now().Unix(),
	}

	jsonData, err := json.Marshal(updateData)
	if err != nil {
		return err
	}

	return RedisClient.Publish(ctx, BookingUpdatesChannel, jsonData).Err()
}
