package cache

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// Optional Redis-backed cache for per-schedule seat availability.
// When no client is connected every call degrades to a miss, so the
// app works without Redis.

var (
	client *redis.Client
	mu     sync.Mutex
)

const availabilityTTL = 30 * time.Second

// Connect initializes the shared Redis client (idempotent).
func Connect(addr string) {
	mu.Lock()
	defer mu.Unlock()

	if client != nil {
		return
	}
	c := redis.NewClient(&redis.Options{Addr: addr})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := c.Ping(ctx).Err(); err != nil {
		log.Printf("redis no disponible (%s), cache deshabilitado: %v", addr, err)
		_ = c.Close()
		return
	}
	client = c
	log.Println("Conectado a Redis")
}

func Close() {
	mu.Lock()
	defer mu.Unlock()
	if client != nil {
		_ = client.Close()
		client = nil
	}
}

func seatsKey(scheduleID int64) string {
	return fmt.Sprintf("schedule:%d:seats_available", scheduleID)
}

// GetSeatsAvailable returns the cached remaining-seat count.
// ok=false on miss, error, or disabled cache.
func GetSeatsAvailable(ctx context.Context, scheduleID int64) (int, bool) {
	if client == nil {
		return 0, false
	}
	val, err := client.Get(ctx, seatsKey(scheduleID)).Result()
	if err != nil {
		return 0, false
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return 0, false
	}
	return n, true
}

// SetSeatsAvailable stores the remaining-seat count with a short TTL.
func SetSeatsAvailable(ctx context.Context, scheduleID int64, seats int) {
	if client == nil {
		return
	}
	_ = client.Set(ctx, seatsKey(scheduleID), strconv.Itoa(seats), availabilityTTL).Err()
}

// InvalidateSchedule drops the cached count after an admission or a
// status change mutated the ledger.
func InvalidateSchedule(ctx context.Context, scheduleID int64) {
	if client == nil || scheduleID <= 0 {
		return
	}
	_ = client.Del(ctx, seatsKey(scheduleID)).Err()
}
