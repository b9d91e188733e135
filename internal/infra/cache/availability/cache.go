package availability

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// Cache кэш свободных окон в Redis с ключом (ресурс, день UTC)
//
// TTL - страховка от пропущенных инвалидаций; основной механизм
// консистентности - явный Evict из write-путей после коммита в БД
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCache создает новый кэш доступности
func NewCache(client *redis.Client, ttl time.Duration) *Cache {
	return &Cache{client: client, ttl: ttl}
}

// Get возвращает закэшированные свободные окна ресурса на день
// ErrCacheMiss, если ключа нет; ErrCacheUnavailable при ошибке Redis
func (c *Cache) Get(ctx context.Context, resourceID int64, date time.Time) ([]domain.TimeWindow, error) {
	data, err := c.client.Get(ctx, Key(resourceID, date)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - %v", ErrCacheUnavailable, err)
	}

	var windows []domain.TimeWindow
	if err := json.Unmarshal([]byte(data), &windows); err != nil {
		// Повреждённая запись равносильна промаху, следующий Set её перезапишет
		return nil, ErrCacheMiss
	}

	return windows, nil
}

// Set сохраняет свободные окна ресурса на день с TTL
// Гонка compute-then-store на одном ключе допустима: побеждает последняя
// запись, результат корректен, т.к. вычислен из состояния журнала броней
func (c *Cache) Set(ctx context.Context, resourceID int64, date time.Time, windows []domain.TimeWindow) error {
	data, err := json.Marshal(windows)
	if err != nil {
		return fmt.Errorf("%w: Set - marshal windows: %v", ErrCacheUnavailable, err)
	}

	if err := c.client.Set(ctx, Key(resourceID, date), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("%w: Set - %v", ErrCacheUnavailable, err)
	}

	return nil
}

// Evict удаляет запись кэша для ресурса и дня
// Идемпотентен: удаление отсутствующего ключа не является ошибкой
func (c *Cache) Evict(ctx context.Context, resourceID int64, date time.Time) error {
	if err := c.client.Del(ctx, Key(resourceID, date)).Err(); err != nil {
		return fmt.Errorf("%w: Evict - %v", ErrCacheUnavailable, err)
	}
	return nil
}

// EvictDays удаляет записи кэша для набора дней (1-2 дня при брони через полночь)
func (c *Cache) EvictDays(ctx context.Context, resourceID int64, days []time.Time) error {
	for _, day := range days {
		if err := c.Evict(ctx, resourceID, day); err != nil {
			return err
		}
	}
	return nil
}
