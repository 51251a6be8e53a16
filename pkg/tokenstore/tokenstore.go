package tokenstore

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"streamhub/pkg/logger"
)

// Store tracks live refresh tokens by JTI. A refresh token is valid only
// while its JTI is present; Consume removes it, making each token single-use.
type Store interface {
	Save(ctx context.Context, jti string, userID int64, ttl time.Duration) error
	Consume(ctx context.Context, jti string) (bool, error)
}

type RedisStore struct {
	client *redis.Client
	logger logger.Logger
	prefix string
}

func NewRedisStore(client *redis.Client, logger logger.Logger, prefix string) Store {
	return &RedisStore{
		client: client,
		logger: logger,
		prefix: prefix,
	}
}

func (s *RedisStore) key(jti string) string {
	return fmt.Sprintf("%s:refresh:%s", s.prefix, jti)
}

func (s *RedisStore) Save(ctx context.Context, jti string, userID int64, ttl time.Duration) error {
	err := s.client.Set(ctx, s.key(jti), strconv.FormatInt(userID, 10), ttl).Err()
	if err != nil {
		s.logger.Error("Refresh token kaydedilemedi", map[string]interface{}{
			"jti":   jti,
			"error": err.Error(),
		})
		return fmt.Errorf("refresh token kaydedilemedi: %w", err)
	}

	return nil
}

func (s *RedisStore) Consume(ctx context.Context, jti string) (bool, error) {
	err := s.client.GetDel(ctx, s.key(jti)).Err()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		s.logger.Error("Refresh token okunamadı", map[string]interface{}{
			"jti":   jti,
			"error": err.Error(),
		})
		return false, fmt.Errorf("refresh token okunamadı: %w", err)
	}

	return true, nil
}
