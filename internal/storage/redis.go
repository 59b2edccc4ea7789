package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	slotKeyPrefix = "workbench:slot:"
	slotIndexKey  = "workbench:slots"
)

// RedisStorage implements Storage using Redis. Each slot is one JSON
// value under workbench:slot:<id>, with a set of ids at workbench:slots
// so listing does not need a SCAN.
type RedisStorage struct {
	client *redis.Client
	logger *slog.Logger
}

var _ Storage = (*RedisStorage)(nil)

// NewRedisStorage creates a new Redis storage instance. redisURL is
// either a host:port address or a redis:// URL.
func NewRedisStorage(redisURL string, logger *slog.Logger) (*RedisStorage, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		// Fall back to treating the value as a bare address.
		opts = &redis.Options{Addr: redisURL}
	}
	return &RedisStorage{
		client: redis.NewClient(opts),
		logger: logger,
	}, nil
}

func (r *RedisStorage) Ping(ctx context.Context) error {
	if err := r.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}
	return nil
}

func (r *RedisStorage) Close() error {
	if err := r.client.Close(); err != nil {
		r.logger.Error("Failed to close Redis connection", "error", err)
		return err
	}
	return nil
}

// WaitForConnection waits for Redis to become available during startup.
func (r *RedisStorage) WaitForConnection(ctx context.Context) error {
	maxRetries := 30
	retryDelay := 2 * time.Second

	for i := 0; i < maxRetries; i++ {
		if err := r.Ping(ctx); err != nil {
			r.logger.Debug("Redis not ready yet", "error", err, "attempt", i+1)

			select {
			case <-ctx.Done():
				return fmt.Errorf("context cancelled while waiting for redis: %w", ctx.Err())
			case <-time.After(retryDelay):
				continue
			}
		}

		r.logger.Info("Redis connection established")
		return nil
	}

	return fmt.Errorf("redis did not become available after %d attempts", maxRetries)
}

func (r *RedisStorage) SaveSlot(ctx context.Context, slot SaveSlot) error {
	if slot.ID == "" {
		return fmt.Errorf("slot id is required")
	}
	data, err := json.Marshal(slot)
	if err != nil {
		return fmt.Errorf("failed to marshal save slot: %w", err)
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, slotKeyPrefix+slot.ID, data, 0)
	pipe.SAdd(ctx, slotIndexKey, slot.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to write save slot: %w", err)
	}

	r.logger.Debug("Saved slot", "id", slot.ID, "name", slot.Name)
	return nil
}

func (r *RedisStorage) GetSlot(ctx context.Context, id string) (*SaveSlot, error) {
	data, err := r.client.Get(ctx, slotKeyPrefix+id).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, &ErrSlotNotFound{ID: id}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read save slot: %w", err)
	}

	var slot SaveSlot
	if err := json.Unmarshal(data, &slot); err != nil {
		return nil, fmt.Errorf("failed to unmarshal save slot: %w", err)
	}
	return &slot, nil
}

func (r *RedisStorage) ListSlots(ctx context.Context) ([]SlotInfo, error) {
	ids, err := r.client.SMembers(ctx, slotIndexKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list save slots: %w", err)
	}

	infos := make([]SlotInfo, 0, len(ids))
	for _, id := range ids {
		slot, err := r.GetSlot(ctx, id)
		if err != nil {
			var notFound *ErrSlotNotFound
			if errors.As(err, &notFound) {
				// Index entry with no value; drop it.
				r.client.SRem(ctx, slotIndexKey, id)
				continue
			}
			return nil, err
		}
		infos = append(infos, SlotInfo{
			ID:           slot.ID,
			Name:         slot.Name,
			LastModified: slot.LastModified,
		})
	}

	sort.Slice(infos, func(i, j int) bool {
		return infos[i].LastModified.After(infos[j].LastModified)
	})
	return infos, nil
}

func (r *RedisStorage) DeleteSlot(ctx context.Context, id string) error {
	removed, err := r.client.Del(ctx, slotKeyPrefix+id).Result()
	if err != nil {
		return fmt.Errorf("failed to delete save slot: %w", err)
	}
	if removed == 0 {
		return &ErrSlotNotFound{ID: id}
	}
	if err := r.client.SRem(ctx, slotIndexKey, id).Err(); err != nil {
		return fmt.Errorf("failed to unindex save slot: %w", err)
	}
	return nil
}
