package schedule

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

var (
	ErrCacheMiss        = errors.New("schedule.cache: key not found")
	ErrCacheUnavailable = errors.New("schedule.cache: redis unavailable")
)

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
}

// Cache кэш собранных расписаний дня поверх Redis.
// Значением хранится сериализованный JSON ответа расписания,
// чтобы чтение из кэша не пересчитывало геометрию.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
	logger Logger
}

// New создает кэш расписаний с заданным TTL записей
func New(client *redis.Client, ttl time.Duration, logger Logger) *Cache {
	return &Cache{
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

// key формирует ключ кэша для пары (ресторан, дата)
func key(restaurantID int64, date time.Time) string {
	return fmt.Sprintf("schedule:%d:%s", restaurantID, date.Format("2006-01-02"))
}

// Get читает расписание дня из кэша и десериализует его в dest.
// Возвращает ErrCacheMiss при отсутствии ключа и ErrCacheUnavailable
// при недоступности Redis - вызывающий код в обоих случаях идет в БД.
func (c *Cache) Get(ctx context.Context, restaurantID int64, date time.Time, dest interface{}) error {
	payload, err := c.client.Get(ctx, key(restaurantID, date)).Bytes()
	if errors.Is(err, redis.Nil) {
		return ErrCacheMiss
	}
	if err != nil {
		c.logger.Warn("[Cache.Get] redis read failed for restaurant %d: %v", restaurantID, err)
		return fmt.Errorf("%w: Get - %v", ErrCacheUnavailable, err)
	}

	if err := json.Unmarshal(payload, dest); err != nil {
		// Битая запись равносильна промаху
		c.logger.Warn("[Cache.Get] corrupted cache entry for restaurant %d: %v", restaurantID, err)
		return ErrCacheMiss
	}

	return nil
}

// Set сохраняет расписание дня в кэш. Ошибки Redis не фатальны.
func (c *Cache) Set(ctx context.Context, restaurantID int64, date time.Time, value interface{}) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("schedule.cache: Set - marshal value: %w", err)
	}

	if err := c.client.Set(ctx, key(restaurantID, date), payload, c.ttl).Err(); err != nil {
		c.logger.Warn("[Cache.Set] redis write failed for restaurant %d: %v", restaurantID, err)
		return fmt.Errorf("%w: Set - %v", ErrCacheUnavailable, err)
	}

	return nil
}

// Invalidate удаляет расписание дня из кэша.
// Вызывается после любой записи, затрагивающей день.
func (c *Cache) Invalidate(ctx context.Context, restaurantID int64, date time.Time) error {
	if err := c.client.Del(ctx, key(restaurantID, date)).Err(); err != nil {
		c.logger.Warn("[Cache.Invalidate] redis delete failed for restaurant %d: %v", restaurantID, err)
		return fmt.Errorf("%w: Invalidate - %v", ErrCacheUnavailable, err)
	}
	return nil
}
