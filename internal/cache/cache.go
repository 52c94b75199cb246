// Package cache — явный кеш с фиксированным TTL для списков каталога.
// Значения живут ровно окно TTL, ручной инвалидации нет: устаревание
// в пределах окна — осознанный компромисс, а не ошибка.
package cache

import (
	"context"
	"time"
)

// Cache — контракт key/value кеша с TTL на запись.
type Cache interface {
	// Get возвращает значение и признак попадания.
	Get(ctx context.Context, key string) ([]byte, bool)

	// Set кладёт значение на время ttl.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration)
}
