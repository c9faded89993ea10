package auth

import (
	"context"
	"time"
)

// TokenStore lleva el registro de tokens revocados (logout). Cada entrada
// expira sola cuando el token subyacente ya no sería válido.
type TokenStore interface {
	Revocar(ctx context.Context, jti string, ttl time.Duration) error
	EstaRevocado(ctx context.Context, jti string) (bool, error)
}
