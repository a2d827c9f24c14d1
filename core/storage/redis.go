package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// redisScanCount is the COUNT hint passed to SCAN when enumerating a
// namespace. Session namespaces stay small, so one or two round-trips cover
// the common case.
const redisScanCount = 100

// Redis is a Connector backed by a Redis server. Keys are namespaced by
// prefixing "<namespace>:", and TTLs are delegated to Redis native expiry,
// which makes ClearExpired a no-op.
type Redis struct {
	client redis.UniversalClient
}

var _ Connector = (*Redis)(nil)

// NewRedis wraps an existing client. The caller keeps ownership of the
// client lifecycle unless Close is used.
func NewRedis(client redis.UniversalClient) *Redis {
	return &Redis{client: client}
}

// NewRedisFromURL connects using a redis:// connection URL.
func NewRedisFromURL(url string) (*Redis, error) {
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, errors.Join(ErrConnection, err)
	}
	return &Redis{client: redis.NewClient(opt)}, nil
}

func (r *Redis) key(namespace, key string) string {
	return namespace + ":" + key
}

func (r *Redis) Init(ctx context.Context, namespace string) error {
	if !ValidNamespace(namespace) {
		return fmt.Errorf("%w: %q", ErrInvalidNamespace, namespace)
	}
	if err := r.client.Ping(ctx).Err(); err != nil {
		return errors.Join(ErrConnection, err)
	}
	return nil
}

func (r *Redis) Get(ctx context.Context, namespace, key string) ([]byte, bool, error) {
	value, err := r.client.Get(ctx, r.key(namespace, key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errors.Join(ErrConnection, err)
	}
	return value, true, nil
}

func (r *Redis) Set(ctx context.Context, namespace, key string, value []byte, ttl time.Duration) error {
	if ttl < 0 {
		ttl = 0
	}
	if err := r.client.Set(ctx, r.key(namespace, key), value, ttl).Err(); err != nil {
		return errors.Join(ErrConnection, err)
	}
	return nil
}

func (r *Redis) Delete(ctx context.Context, namespace, key string) error {
	if err := r.client.Del(ctx, r.key(namespace, key)).Err(); err != nil {
		return errors.Join(ErrConnection, err)
	}
	return nil
}

// ClearExpired is a no-op: Redis evicts expired keys on its own, and every
// read path already treats them as absent.
func (r *Redis) ClearExpired(context.Context, string) error {
	return nil
}

func (r *Redis) ListValues(ctx context.Context, namespace string) ([][]byte, error) {
	var keys []string
	iter := r.client.Scan(ctx, 0, namespace+":*", redisScanCount).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return nil, errors.Join(ErrConnection, err)
	}
	if len(keys) == 0 {
		return nil, nil
	}

	raw, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, errors.Join(ErrConnection, err)
	}
	values := make([][]byte, 0, len(raw))
	for _, v := range raw {
		// Keys can expire between SCAN and MGET; those come back as nil.
		s, ok := v.(string)
		if !ok {
			continue
		}
		values = append(values, []byte(s))
	}
	return values, nil
}

func (r *Redis) Close(context.Context) error {
	if err := r.client.Close(); err != nil && !errors.Is(err, redis.ErrClosed) {
		return err
	}
	return nil
}
