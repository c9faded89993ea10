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

var _ repository.ClienteRepository = (*ClienteRepo)(nil)

// ClienteRepo implementación de ClienteRepository sobre PostgreSQL (usable con pool o tx).
type ClienteRepo struct {
	q Querier
}

// NewClienteRepository construye el adaptador de persistencia para clientes. Pasar pool o tx (Querier).
func NewClienteRepository(q Querier) *ClienteRepo {
	return &ClienteRepo{q: q}
}

// Crear persiste un cliente y asigna c.ID. Documento duplicado devuelve ErrDuplicate.
func (r *ClienteRepo) Crear(c *entity.Cliente) error {
	query := `
		INSERT INTO cliente (nombre, documento, email, telefono, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		c.Nombre, c.Documento, c.Email, c.Telefono, c.CreatedAt, c.UpdatedAt,
	).Scan(&c.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert cliente: %w", err)
	}
	return nil
}

// GetByID obtiene un cliente por ID. (nil, nil) si no existe.
func (r *ClienteRepo) GetByID(id int64) (*entity.Cliente, error) {
	query := `
		SELECT id, nombre, documento, email, telefono, created_at, updated_at
		FROM cliente WHERE id = $1`
	var c entity.Cliente
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&c.ID, &c.Nombre, &c.Documento, &c.Email, &c.Telefono, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cliente: %w", err)
	}
	return &c, nil
}

// Actualizar modifica un cliente existente.
func (r *ClienteRepo) Actualizar(c *entity.Cliente) error {
	query := `
		UPDATE cliente
		SET nombre = $2, documento = $3, email = $4, telefono = $5, updated_at = now()
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, c.ID, c.Nombre, c.Documento, c.Email, c.Telefono)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update cliente: %w", err)
	}
	return nil
}

// Listar devuelve clientes paginados ordenados por nombre.
func (r *ClienteRepo) Listar(limit, offset int) ([]*entity.Cliente, error) {
	query := `
		SELECT id, nombre, documento, email, telefono, created_at, updated_at
		FROM cliente ORDER BY nombre LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("listar clientes: %w", err)
	}
	defer rows.Close()

	var out []*entity.Cliente
	for rows.Next() {
		var c entity.Cliente
		if err := rows.Scan(&c.ID, &c.Nombre, &c.Documento, &c.Email, &c.Telefono, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("listar clientes: scan: %w", err)
		}
		out = append(out, &c)
	}
	return out, rows.Err()
}

// Eliminar borra un cliente por ID.
func (r *ClienteRepo) Eliminar(id int64) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM cliente WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete cliente: %w", err)
	}
	return nil
}
