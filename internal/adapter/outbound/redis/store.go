package redis

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/0xsj/overwatch-pkg/log"

	"github.com/0xsj/overwatch-finance/internal/port/outbound/cache"
)

const (
	// reverseIndexKeyPrefix maps a cached key to the index sets it
	// was added to, so Delete can remove the membership without the
	// caller re-supplying the index names.
	reverseIndexKeyPrefix = "finance:keyidx:"
)

// store implements cache.Store on redis.
//
// Failures are absorbed here: a broken connection logs a warning and
// reads as a miss, writes become no-ops. Callers never see transport
// errors.
type store struct {
	client *redis.Client
	logger log.Logger
}

// NewStore creates a new Store.
func NewStore(client *redis.Client, logger log.Logger) cache.Store {
	return &store{
		client: client,
		logger: logger,
	}
}

func (s *store) Set(ctx context.Context, key string, value []byte, ttl time.Duration, indexes ...string) {
	pipe := s.client.TxPipeline()
	pipe.Set(ctx, key, value, ttl)

	for _, idx := range indexes {
		pipe.SAdd(ctx, idx, key)
	}
	if len(indexes) > 0 {
		rev := reverseIndexKey(key)
		for _, idx := range indexes {
			pipe.SAdd(ctx, rev, idx)
		}
		pipe.Expire(ctx, rev, ttl)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		s.logger.Warn("cache set failed",
			log.String("key", key),
			log.String("error", err.Error()))
	}
}

func (s *store) Get(ctx context.Context, key string) ([]byte, bool) {
	data, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			s.logger.Warn("cache get failed",
				log.String("key", key),
				log.String("error", err.Error()))
		}
		return nil, false
	}
	return data, true
}

func (s *store) Delete(ctx context.Context, keys ...string) {
	for _, key := range keys {
		rev := reverseIndexKey(key)

		indexes, err := s.client.SMembers(ctx, rev).Result()
		if err != nil && err != redis.Nil {
			s.logger.Warn("cache delete failed",
				log.String("key", key),
				log.String("error", err.Error()))
			continue
		}

		pipe := s.client.TxPipeline()
		for _, idx := range indexes {
			pipe.SRem(ctx, idx, key)
		}
		pipe.Del(ctx, key, rev)

		if _, err := pipe.Exec(ctx); err != nil {
			s.logger.Warn("cache delete failed",
				log.String("key", key),
				log.String("error", err.Error()))
		}
	}
}

func (s *store) GetIndex(ctx context.Context, indexes ...string) ([][]byte, bool) {
	keys, err := s.client.SUnion(ctx, indexes...).Result()
	if err != nil {
		if err != redis.Nil {
			s.logger.Warn("cache index read failed",
				log.String("error", err.Error()))
		}
		return nil, false
	}
	if len(keys) == 0 {
		return nil, false
	}

	vals, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		s.logger.Warn("cache index read failed",
			log.String("error", err.Error()))
		return nil, false
	}

	out := make([][]byte, 0, len(vals))
	var stale []string
	for i, v := range vals {
		str, ok := v.(string)
		if !ok {
			// Value expired but the index member survived
			stale = append(stale, keys[i])
			continue
		}
		out = append(out, []byte(str))
	}

	if len(stale) > 0 {
		pipe := s.client.TxPipeline()
		for _, idx := range indexes {
			for _, key := range stale {
				pipe.SRem(ctx, idx, key)
			}
		}
		if _, err := pipe.Exec(ctx); err != nil {
			s.logger.Warn("cache index prune failed",
				log.String("error", err.Error()))
		}
	}

	if len(out) == 0 {
		return nil, false
	}
	return out, true
}

func (s *store) DeleteIndexGroup(ctx context.Context, indexes ...string) {
	keys, err := s.client.SUnion(ctx, indexes...).Result()
	if err != nil && err != redis.Nil {
		s.logger.Warn("cache index delete failed",
			log.String("error", err.Error()))
		return
	}

	pipe := s.client.TxPipeline()
	for _, key := range keys {
		pipe.Del(ctx, key, reverseIndexKey(key))
	}
	for _, idx := range indexes {
		pipe.Del(ctx, idx)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		s.logger.Warn("cache index delete failed",
			log.String("error", err.Error()))
	}
}

// Key helper

func reverseIndexKey(key string) string {
	return reverseIndexKeyPrefix + key
}
