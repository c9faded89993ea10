package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/farmanet/farmacia-api/internal/domain"
	"github.com/farmanet/farmacia-api/internal/domain/entity"
	"github.com/farmanet/farmacia-api/internal/domain/repository"
)

var _ repository.UsuarioRepository = (*UsuarioRepo)(nil)

// UsuarioRepo implementación de UsuarioRepository sobre PostgreSQL (usable con pool o tx).
type UsuarioRepo struct {
	q Querier
}

// NewUsuarioRepository construye el adaptador de persistencia para usuarios. Pasar pool o tx (Querier).
func NewUsuarioRepository(q Querier) *UsuarioRepo {
	return &UsuarioRepo{q: q}
}

// Crear persiste un usuario y asigna u.ID. Email duplicado devuelve ErrEmailAlreadyExists.
func (r *UsuarioRepo) Crear(u *entity.Usuario) error {
	query := `
		INSERT INTO usuario (email, password_hash, nombre, rol, activo, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		u.Email, u.PasswordHash, u.Nombre, u.Rol, u.Activo, u.CreatedAt, u.UpdatedAt,
	).Scan(&u.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert usuario: %w", err)
	}
	return nil
}

// GetByID obtiene un usuario por ID. (nil, nil) si no existe.
func (r *UsuarioRepo) GetByID(id int64) (*entity.Usuario, error) {
	query := `
		SELECT id, email, password_hash, nombre, rol, activo, created_at, updated_at
		FROM usuario WHERE id = $1`
	return r.scanOne(query, id)
}

// GetByEmail obtiene un usuario por email (para login). (nil, nil) si no existe.
func (r *UsuarioRepo) GetByEmail(email string) (*entity.Usuario, error) {
	query := `
		SELECT id, email, password_hash, nombre, rol, activo, created_at, updated_at
		FROM usuario WHERE email = $1`
	return r.scanOne(query, email)
}

func (r *UsuarioRepo) scanOne(query string, arg any) (*entity.Usuario, error) {
	var u entity.Usuario
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&u.ID, &u.Email, &u.PasswordHash, &u.Nombre, &u.Rol, &u.Activo, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get usuario: %w", err)
	}
	return &u, nil
}

// Actualizar modifica un usuario existente.
func (r *UsuarioRepo) Actualizar(u *entity.Usuario) error {
	query := `
		UPDATE usuario
		SET email = $2, password_hash = $3, nombre = $4, rol = $5, activo = $6, updated_at = now()
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, u.ID, u.Email, u.PasswordHash, u.Nombre, u.Rol, u.Activo)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("update usuario: %w", err)
	}
	return nil
}

// Listar devuelve usuarios paginados ordenados por nombre.
func (r *UsuarioRepo) Listar(limit, offset int) ([]*entity.Usuario, error) {
	query := `
		SELECT id, email, password_hash, nombre, rol, activo, created_at, updated_at
		FROM usuario ORDER BY nombre LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("listar usuarios: %w", err)
	}
	defer rows.Close()

	var out []*entity.Usuario
	for rows.Next() {
		var u entity.Usuario
		if err := rows.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Nombre, &u.Rol, &u.Activo, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, fmt.Errorf("listar usuarios: scan: %w", err)
		}
		out = append(out, &u)
	}
	return out, rows.Err()
}
