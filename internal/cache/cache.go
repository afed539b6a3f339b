package cache

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"session-service/internal/models"

	"github.com/redis/go-redis/v9"
)

// SessionCache — минимальный контракт кэша списков refresh-сессий по субъекту.
//
// Кэш — ускоритель пути чтения, не источник истины: атомарность ротации и
// детект повторного использования всегда опираются на БД. Любая мутация
// сессий субъекта инвалидирует его ключ целиком.
type SessionCache interface {
	// Get возвращает список сессий субъекта и признак наличия в кэше.
	Get(ctx context.Context, subjectID int64) ([]models.RefreshSession, bool, error)
	// Set сохраняет список с TTL.
	Set(ctx context.Context, subjectID int64, sessions []models.RefreshSession, ttl time.Duration) error
	// Invalidate удаляет ключ субъекта.
	Invalidate(ctx context.Context, subjectID int64) error
	// Close закрывает клиент Redis.
	Close() error
}

type redisCache struct {
	rdb    *redis.Client
	prefix string
}

// NewRedisCache создаёт клиент Redis из URL (например, redis://:pass@host:6379/0).
// Если prefix пустой — используется "sessions:subj:".
func NewRedisCache(redisURL, prefix string) (SessionCache, error) {
	if prefix == "" {
		prefix = "sessions:subj:"
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}

	rdb := redis.NewClient(opt)

	// Fail-fast на старте.
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return nil, err
	}

	return &redisCache{rdb: rdb, prefix: prefix}, nil
}

func (c *redisCache) key(subjectID int64) string {
	return c.prefix + strconv.FormatInt(subjectID, 10)
}

// Храним сериализованный JSON списка сессий; пустой список — тоже валидное
// значение (отрицательный кэш для субъектов без сессий).
func (c *redisCache) Get(ctx context.Context, subjectID int64) ([]models.RefreshSession, bool, error) {
	raw, err := c.rdb.Get(ctx, c.key(subjectID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}

		return nil, false, err
	}

	var sessions []models.RefreshSession
	if err := json.Unmarshal(raw, &sessions); err != nil {
		return nil, false, err
	}

	return sessions, true, nil
}

func (c *redisCache) Set(ctx context.Context, subjectID int64, sessions []models.RefreshSession, ttl time.Duration) error {
	if sessions == nil {
		sessions = []models.RefreshSession{}
	}

	raw, err := json.Marshal(sessions)
	if err != nil {
		return err
	}

	return c.rdb.Set(ctx, c.key(subjectID), raw, ttl).Err()
}

func (c *redisCache) Invalidate(ctx context.Context, subjectID int64) error {
	return c.rdb.Del(ctx, c.key(subjectID)).Err()
}

func (c *redisCache) Close() error { return c.rdb.Close() }
