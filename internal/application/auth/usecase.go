package auth

import (
	"context"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/farmanet/farmacia-api/internal/application/dto"
	"github.com/farmanet/farmacia-api/internal/application/usecase"
	"github.com/farmanet/farmacia-api/internal/domain"
	"github.com/farmanet/farmacia-api/internal/domain/repository"
	"github.com/farmanet/farmacia-api/pkg/jwt"
)

// UseCase autenticación: login con email y contraseña, logout con revocación
// del token en el TokenStore.
type UseCase struct {
	usuarioRepo repository.UsuarioRepository
	tokenStore  TokenStore
	jwtSecret   string
	jwtIssuer   string
	expMinutes  int
}

// NewUseCase construye el caso de uso de autenticación.
func NewUseCase(usuarioRepo repository.UsuarioRepository, tokenStore TokenStore, jwtSecret, jwtIssuer string, expMinutes int) *UseCase {
	return &UseCase{
		usuarioRepo: usuarioRepo,
		tokenStore:  tokenStore,
		jwtSecret:   jwtSecret,
		jwtIssuer:   jwtIssuer,
		expMinutes:  expMinutes,
	}
}

// Login verifica credenciales y emite un JWT. Las credenciales inválidas y los
// usuarios inactivos responden igual para no filtrar cuáles emails existen.
func (uc *UseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	if in.Email == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	u, err := uc.usuarioRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if u == nil || !u.Activo {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtSecret, u.ID, u.Rol, uc.jwtIssuer, uc.expMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token, Usuario: *usecase.ToUsuarioResponse(u)}, nil
}

// Logout revoca el token recibido. La entrada en el store vive hasta que el
// token habría expirado por sí solo. Sin store (revocación deshabilitada) el
// logout valida el token y no registra nada: queda del lado del cliente.
func (uc *UseCase) Logout(ctx context.Context, tokenString string) error {
	claims, err := jwt.Parse(uc.jwtSecret, tokenString)
	if err != nil {
		return domain.ErrUnauthorized
	}
	if uc.tokenStore == nil {
		return nil
	}
	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl <= 0 {
		return nil
	}
	return uc.tokenStore.Revocar(ctx, claims.ID, ttl)
}
