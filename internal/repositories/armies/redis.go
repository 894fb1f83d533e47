package armies

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/KirkDiggler/army-rater/internal/entities/army"
	"github.com/KirkDiggler/army-rater/internal/errors"
	redisclient "github.com/KirkDiggler/army-rater/internal/redis"
)

const (
	armyKeyPrefix = "army:"
	armyIndexKey  = "army:index"
)

type redisRepository struct {
	client redisclient.Client
}

// RedisConfig contains configuration for the Redis army repository
type RedisConfig struct {
	Client redisclient.Client
}

// Validate validates the RedisConfig
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

// NewRedis creates a Redis-backed army repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &redisRepository{client: cfg.Client}, nil
}

func armyKey(id string) string {
	return armyKeyPrefix + id
}

func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if err := validateArmy(input.Army); err != nil {
		return nil, err
	}

	key := armyKey(input.Army.ID)
	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check existence")
	}
	if exists > 0 {
		return nil, errors.AlreadyExistsf("army with ID %s already exists", input.Army.ID).
			WithMeta("army_id", input.Army.ID)
	}

	data, err := json.Marshal(input.Army)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal army")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, key, data, 0)
	pipe.SAdd(ctx, armyIndexKey, input.Army.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to create army")
	}

	return &CreateOutput{Army: input.Army.Clone()}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errArmyIDEmpty)
	}

	result, err := r.client.Get(ctx, armyKey(input.ID)).Bytes()
	if err != nil {
		if err == redisclient.Nil {
			return nil, errors.NotFoundf("army with ID %s not found", input.ID).
				WithMeta("army_id", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get army")
	}

	var a army.Army
	if err := json.Unmarshal(result, &a); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal army %s", input.ID)
	}

	return &GetOutput{Army: &a}, nil
}

func (r *redisRepository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	if err := validateArmy(input.Army); err != nil {
		return nil, err
	}

	key := armyKey(input.Army.ID)
	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check existence")
	}
	if exists == 0 {
		return nil, errors.NotFoundf("army with ID %s not found", input.Army.ID).
			WithMeta("army_id", input.Army.ID)
	}

	data, err := json.Marshal(input.Army)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal army")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, key, data, 0)
	pipe.SAdd(ctx, armyIndexKey, input.Army.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to update army")
	}

	return &UpdateOutput{Army: input.Army.Clone()}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errArmyIDEmpty)
	}

	pipe := r.client.TxPipeline()
	del := pipe.Del(ctx, armyKey(input.ID))
	pipe.SRem(ctx, armyIndexKey, input.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to delete army")
	}

	if del.Val() == 0 {
		return nil, errors.NotFoundf("army with ID %s not found", input.ID).
			WithMeta("army_id", input.ID)
	}

	return &DeleteOutput{}, nil
}

func (r *redisRepository) List(ctx context.Context, _ ListInput) (*ListOutput, error) {
	ids, err := r.client.SMembers(ctx, armyIndexKey).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read army index")
	}

	armies := make([]*army.Army, 0, len(ids))
	for _, id := range ids {
		out, err := r.Get(ctx, GetInput{ID: id})
		if err != nil {
			if errors.IsNotFound(err) {
				slog.WarnContext(ctx, "army not found, cleaning up index",
					"army_id", id,
					"index_key", armyIndexKey)
				r.client.SRem(ctx, armyIndexKey, id)
				continue
			}
			return nil, errors.Wrapf(err, "failed to get army %s", id)
		}
		armies = append(armies, out.Army)
	}

	sortArmies(armies)
	slog.DebugContext(ctx, "listed armies", "count", len(armies))

	return &ListOutput{Armies: armies}, nil
}

func validateArmy(a *army.Army) error {
	if a == nil {
		return errors.InvalidArgument(errArmyNil)
	}
	if a.ID == "" {
		return errors.InvalidArgument(errArmyIDEmpty)
	}
	return nil
}
