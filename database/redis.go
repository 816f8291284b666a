package database

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// ConnectRedis opens the client used for the session cart mirror.
// The mirror is best-effort storage, so a failed ping only warns.
func ConnectRedis(addr string) *redis.Client {
	client := redis.NewClient(&redis.Options{Addr: addr})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Println("Redis not reachable, cart mirror disabled:", err)
		return nil
	}

	log.Println("Connected to Redis")
	return client
}
