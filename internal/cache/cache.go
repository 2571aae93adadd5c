package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog/log"

	"github.com/BruksfildServices01/salon-scheduler/internal/config"
)

// Cache guarda apenas leituras consultivas (grade de disponibilidade).
// O resolver de conflito nunca passa por aqui.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

// New devolve nil quando REDIS_ADDR não está configurado; todos os
// métodos aceitam receiver nil e viram no-op.
func New(cfg *config.Config) *Cache {
	if cfg.RedisAddr == "" {
		log.Info().Msg("redis not configured, availability cache disabled")
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Warn().Err(err).Msg("redis unreachable, availability cache disabled")
		return nil
	}

	log.Info().Str("addr", cfg.RedisAddr).Msg("connected to redis")

	return &Cache{
		client: client,
		ttl:    time.Duration(cfg.AvailabilityTTL) * time.Second,
	}
}

func AvailabilityKey(salonID, professionalID uint, date string) string {
	return fmt.Sprintf("avail:%d:%d:%s", salonID, professionalID, date)
}

func AvailabilityPrefix(salonID uint) string {
	return fmt.Sprintf("avail:%d:*", salonID)
}

// GetJSON devolve (false, nil) em cache miss ou cache desligado.
func (c *Cache) GetJSON(ctx context.Context, key string, out any) (bool, error) {
	if c == nil {
		return false, nil
	}

	raw, err := c.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	if err := json.Unmarshal([]byte(raw), out); err != nil {
		return false, err
	}
	return true, nil
}

func (c *Cache) SetJSON(ctx context.Context, key string, value any) {
	if c == nil {
		return
	}

	raw, err := json.Marshal(value)
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("failed to marshal cache value")
		return
	}

	if err := c.client.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("failed to set cache value")
	}
}

// InvalidatePrefix apaga as chaves do prefixo em melhor esforço:
// falhas individuais são contadas e logadas, nunca abortam a operação
// que disparou a invalidação.
func (c *Cache) InvalidatePrefix(ctx context.Context, prefix string) {
	if c == nil {
		return
	}

	iter := c.client.Scan(ctx, 0, prefix, 0).Iterator()

	var failed int
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			failed++
		}
	}

	if err := iter.Err(); err != nil {
		log.Warn().Err(err).Str("prefix", prefix).Msg("cache invalidation scan failed")
		return
	}
	if failed > 0 {
		log.Warn().Int("failed", failed).Str("prefix", prefix).Msg("cache invalidation partially failed")
	}
}
