package repositories

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/Dosada05/tennis-cup/models"
	"github.com/redis/go-redis/v9"
	"github.com/vmihailenco/msgpack/v5"
)

const redisKeyPrefix = "tennis-cup:tournament:"

type redisTournamentRepository struct {
	client *redis.Client
}

// NewRedisTournamentRepository keeps each tournament in a Redis hash with a
// msgpack-encoded "state" field and a numeric "version" field.
func NewRedisTournamentRepository(client *redis.Client) TournamentRepository {
	return &redisTournamentRepository{client: client}
}

func redisKey(key string) string {
	return redisKeyPrefix + key
}

func (r *redisTournamentRepository) Load(ctx context.Context, key string) (*models.Tournament, error) {
	state, err := r.client.HGet(ctx, redisKey(key), "state").Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrTournamentNotFound
		}
		return nil, fmt.Errorf("failed to load tournament %q: %w", key, err)
	}

	var t models.Tournament
	dec := msgpack.NewDecoder(bytes.NewReader(state))
	dec.SetCustomStructTag("json")
	if err := dec.Decode(&t); err != nil {
		return nil, fmt.Errorf("failed to decode tournament %q: %w", key, err)
	}
	return &t, nil
}

func (r *redisTournamentRepository) Save(ctx context.Context, t *models.Tournament) error {
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	enc.SetCustomStructTag("json")
	if err := enc.Encode(t); err != nil {
		return fmt.Errorf("failed to encode tournament %q: %w", t.Key, err)
	}

	k := redisKey(t.Key)
	err := r.client.Watch(ctx, func(tx *redis.Tx) error {
		stored, err := tx.HGet(ctx, k, "version").Int64()
		if err != nil && !errors.Is(err, redis.Nil) {
			return err
		}
		if stored != previousVersion(t.Version) {
			return ErrVersionConflict
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.HSet(ctx, k, "state", buf.Bytes(), "version", t.Version)
			return nil
		})
		return err
	}, k)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrVersionConflict), errors.Is(err, redis.TxFailedErr):
		return ErrVersionConflict
	default:
		return fmt.Errorf("failed to save tournament %q: %w", t.Key, err)
	}
}

func (r *redisTournamentRepository) Delete(ctx context.Context, key string) error {
	removed, err := r.client.Del(ctx, redisKey(key)).Result()
	if err != nil {
		return fmt.Errorf("failed to delete tournament %q: %w", key, err)
	}
	if removed == 0 {
		return ErrTournamentNotFound
	}
	return nil
}
