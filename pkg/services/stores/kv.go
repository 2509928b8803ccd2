package stores

import (
	"context"
	"encoding"
	"errors"

	"github.com/redis/go-redis/v9"
)

// KV owns JSON-serializable values, one per key, in redis. All failure
// modes degrade: a missing or corrupt value reads as absent, a failed
// write becomes a no-op. Callers keep their defaults and never see a
// storage error.
type KV struct {
	rc RedisClient
}

func NewKV(rc RedisClient) *KV {
	return &KV{rc: rc}
}

// ReadValue scans the value under key into out. It reports false on a
// missing key or an undecodable payload, leaving out untouched so the
// caller's default survives.
func (s *KV) ReadValue(ctx context.Context, key string, out encoding.BinaryUnmarshaler) bool {
	b, err := s.rc.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			logger().Infow("kv read fail", "key", key, "err", err)
		}
		return false
	}
	if err = out.UnmarshalBinary(b); err != nil {
		logger().Infow("kv decode fail", "key", key, "err", err)
		return false
	}
	return true
}

// WriteValue stores the value under key, best effort.
func (s *KV) WriteValue(ctx context.Context, key string, in encoding.BinaryMarshaler) {
	b, err := in.MarshalBinary()
	if err != nil {
		logger().Infow("kv encode fail", "key", key, "err", err)
		return
	}
	if err = s.rc.Set(ctx, key, b, 0).Err(); err != nil {
		logger().Infow("kv write fail", "key", key, "err", err)
	}
}

// Delete drops the value under key, best effort.
func (s *KV) Delete(ctx context.Context, key string) {
	if err := s.rc.Del(ctx, key).Err(); err != nil {
		logger().Infow("kv delete fail", "key", key, "err", err)
	}
}
