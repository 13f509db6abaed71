package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Domenick1991/airport-pps/config"
	"github.com/Domenick1991/airport-pps/internal/domain"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// ErrLockNotHeld is returned by ReleaseBagLock when the lock expired and was
// possibly taken by another registration. The other holder's lock is left intact.
var ErrLockNotHeld = errors.New("bag lock no longer held")

// releaseScript deletes the key only while it still holds the caller's token.
var releaseScript = redis.NewScript(`
	if redis.call('GET', KEYS[1]) == ARGV[1] then
		return redis.call('DEL', KEYS[1])
	end
	return 0
`)

type RedisCache struct {
	client     *redis.Client
	flightsTTL time.Duration
}

func NewRedisCache(cfg config.RedisConfig) *RedisCache {
	return &RedisCache{
		client:     redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}),
		flightsTTL: cfg.FlightsCacheTTL(),
	}
}

// Ping checks the connection with a short timeout.
func (c *RedisCache) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return c.client.Ping(ctx).Err()
}

func (c *RedisCache) Close() error {
	return c.client.Close()
}

// GetFlights returns nil, nil on a cache miss.
func (c *RedisCache) GetFlights(ctx context.Context) ([]domain.Flight, error) {
	data, err := c.client.Get(ctx, flightsKey()).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var flights []domain.Flight
	if err := json.Unmarshal(data, &flights); err != nil {
		return nil, err
	}
	return flights, nil
}

func (c *RedisCache) SetFlights(ctx context.Context, flights []domain.Flight) error {
	payload, err := json.Marshal(flights)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, flightsKey(), payload, c.flightsTTL).Err()
}

func (c *RedisCache) InvalidateFlights(ctx context.Context) error {
	return c.client.Del(ctx, flightsKey()).Err()
}

// AcquireBagLock guards one passenger's count-then-insert bag registration.
// The returned token identifies this holder and must be passed to ReleaseBagLock.
func (c *RedisCache) AcquireBagLock(ctx context.Context, passengerID int64, ttl time.Duration) (string, bool, error) {
	token := uuid.NewString()
	ok, err := c.client.SetNX(ctx, bagLockKey(passengerID), token, ttl).Result()
	if err != nil || !ok {
		return "", ok, err
	}
	return token, true, nil
}

func (c *RedisCache) ReleaseBagLock(ctx context.Context, passengerID int64, token string) error {
	deleted, err := releaseScript.Run(ctx, c.client, []string{bagLockKey(passengerID)}, token).Int()
	if err != nil {
		return err
	}
	if deleted == 0 {
		return ErrLockNotHeld
	}
	return nil
}

func flightsKey() string {
	return "cache:flights"
}

func bagLockKey(passengerID int64) string {
	return fmt.Sprintf("lock:passenger:%d:bags", passengerID)
}
