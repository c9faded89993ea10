package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/farmanet/farmacia-api/internal/application/auth"
	"github.com/farmanet/farmacia-api/pkg/config"
)

const revokedPrefix = "farmacia:revoked:"

var _ auth.TokenStore = (*TokenStore)(nil)

// TokenStore registra tokens revocados en Redis. Cada entrada lleva TTL igual
// a la vida restante del token, así el set no crece sin límite.
type TokenStore struct {
	client *redis.Client
}

// NewTokenStore conecta a Redis y verifica conectividad.
func NewTokenStore(ctx context.Context, cfg config.RedisConfig) (*TokenStore, error) {
	if cfg.Addr == "" {
		return nil, errors.New("redis addr es requerido")
	}
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return &TokenStore{client: client}, nil
}

// Revocar marca el jti como revocado hasta que el token expire por sí solo.
func (s *TokenStore) Revocar(ctx context.Context, jti string, ttl time.Duration) error {
	if err := s.client.Set(ctx, revokedPrefix+jti, "1", ttl).Err(); err != nil {
		return fmt.Errorf("revocar token: %w", err)
	}
	return nil
}

// EstaRevocado consulta si el jti fue revocado.
func (s *TokenStore) EstaRevocado(ctx context.Context, jti string) (bool, error) {
	_, err := s.client.Get(ctx, revokedPrefix+jti).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("consultar token revocado: %w", err)
	}
	return true, nil
}

// Close cierra la conexión.
func (s *TokenStore) Close() error {
	return s.client.Close()
}
