package cache

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"roster/config"
	"roster/internal/domain/entity"
	"roster/internal/domain/repository"
	"roster/internal/errors"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	defaultPrefix = "roster"

	fieldFirstName = "first_name"
	fieldLastName  = "last_name"
	fieldHouse     = "house"
	fieldKnownAs   = "known_as"
	fieldCreatedAt = "created_at"
)

// cachedAntiHeroRepository serves FindByID from Redis and falls back to the
// wrapped store. Redis failures are logged and never surface to callers.
type cachedAntiHeroRepository struct {
	repository.AntiHeroRepository

	client *redis.Client
	prefix string
	ttl    time.Duration
	logger *slog.Logger
}

// NewCachedAntiHeroRepository wraps next with a read-through cache. A nil
// client returns next unchanged.
func NewCachedAntiHeroRepository(
	next repository.AntiHeroRepository,
	client *redis.Client,
	cfg *config.Config,
	logger *slog.Logger,
) repository.AntiHeroRepository {
	if client == nil || cfg.Redis == nil {
		return next
	}

	prefix := strings.TrimSpace(cfg.Redis.Prefix)
	if prefix == "" {
		prefix = defaultPrefix
	}

	return &cachedAntiHeroRepository{
		AntiHeroRepository: next,
		client:             client,
		prefix:             prefix,
		ttl:                cfg.Redis.TTL,
		logger:             logger,
	}
}

func (r *cachedAntiHeroRepository) key(id uuid.UUID) string {
	return r.prefix + ":anti-hero:" + id.String()
}

func (r *cachedAntiHeroRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.AntiHero, error) {
	if hero, ok := r.load(ctx, id); ok {
		return hero, nil
	}

	hero, err := r.AntiHeroRepository.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	r.store(ctx, hero)

	return hero, nil
}

func (r *cachedAntiHeroRepository) Update(ctx context.Context, hero *entity.AntiHero) error {
	if err := r.AntiHeroRepository.Update(ctx, hero); err != nil {
		return err
	}

	r.evict(ctx, hero.ID)

	return nil
}

func (r *cachedAntiHeroRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.AntiHeroRepository.Delete(ctx, id); err != nil {
		return err
	}

	r.evict(ctx, id)

	return nil
}

func (r *cachedAntiHeroRepository) load(ctx context.Context, id uuid.UUID) (*entity.AntiHero, bool) {
	values, err := r.client.HGetAll(ctx, r.key(id)).Result()
	if err != nil {
		r.logger.WarnContext(ctx, "Anti-hero cache read failed",
			slog.String("id", id.String()),
			slog.Any("error", err),
		)

		return nil, false
	}
	if len(values) == 0 {
		return nil, false
	}

	createdAt, err := time.Parse(time.RFC3339Nano, values[fieldCreatedAt])
	if err != nil {
		r.evict(ctx, id)

		return nil, false
	}

	return &entity.AntiHero{
		ID:        id,
		FirstName: values[fieldFirstName],
		LastName:  values[fieldLastName],
		House:     values[fieldHouse],
		KnownAs:   values[fieldKnownAs],
		CreatedAt: createdAt,
	}, true
}

func (r *cachedAntiHeroRepository) store(ctx context.Context, hero *entity.AntiHero) {
	key := r.key(hero.ID)

	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, key,
			fieldFirstName, hero.FirstName,
			fieldLastName, hero.LastName,
			fieldHouse, hero.House,
			fieldKnownAs, hero.KnownAs,
			fieldCreatedAt, hero.CreatedAt.UTC().Format(time.RFC3339Nano),
		)
		if r.ttl > 0 {
			pipe.Expire(ctx, key, r.ttl)
		}

		return nil
	})
	if err != nil {
		r.logger.WarnContext(ctx, "Anti-hero cache write failed",
			slog.String("id", hero.ID.String()),
			slog.Any("error", errors.WithStack(err)),
		)
	}
}

func (r *cachedAntiHeroRepository) evict(ctx context.Context, id uuid.UUID) {
	if err := r.client.Del(ctx, r.key(id)).Err(); err != nil {
		r.logger.WarnContext(ctx, "Anti-hero cache eviction failed",
			slog.String("id", id.String()),
			slog.Any("error", err),
		)
	}
}
