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

var _ repository.CategoriaRepository = (*CategoriaRepo)(nil)

// CategoriaRepo implementación de CategoriaRepository sobre PostgreSQL (usable con pool o tx).
type CategoriaRepo struct {
	q Querier
}

// NewCategoriaRepository construye el adaptador de persistencia para categorías. Pasar pool o tx (Querier).
func NewCategoriaRepository(q Querier) *CategoriaRepo {
	return &CategoriaRepo{q: q}
}

// Crear persiste una categoría y asigna c.ID. Nombre duplicado devuelve ErrDuplicate.
func (r *CategoriaRepo) Crear(c *entity.Categoria) error {
	query := `
		INSERT INTO categoria (nombre, descripcion, created_at, updated_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query, c.Nombre, c.Descripcion, c.CreatedAt, c.UpdatedAt).Scan(&c.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert categoria: %w", err)
	}
	return nil
}

// GetByID obtiene una categoría por ID. (nil, nil) si no existe.
func (r *CategoriaRepo) GetByID(id int64) (*entity.Categoria, error) {
	query := `SELECT id, nombre, descripcion, created_at, updated_at FROM categoria WHERE id = $1`
	var c entity.Categoria
	err := r.q.QueryRow(context.Background(), query, id).Scan(&c.ID, &c.Nombre, &c.Descripcion, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get categoria: %w", err)
	}
	return &c, nil
}

// Actualizar modifica una categoría existente.
func (r *CategoriaRepo) Actualizar(c *entity.Categoria) error {
	query := `UPDATE categoria SET nombre = $2, descripcion = $3, updated_at = now() WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, c.ID, c.Nombre, c.Descripcion)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update categoria: %w", err)
	}
	return nil
}

// Listar devuelve todas las categorías ordenadas por nombre.
func (r *CategoriaRepo) Listar() ([]*entity.Categoria, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, nombre, descripcion, created_at, updated_at FROM categoria ORDER BY nombre`)
	if err != nil {
		return nil, fmt.Errorf("listar categorias: %w", err)
	}
	defer rows.Close()

	var out []*entity.Categoria
	for rows.Next() {
		var c entity.Categoria
		if err := rows.Scan(&c.ID, &c.Nombre, &c.Descripcion, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("listar categorias: scan: %w", err)
		}
		out = append(out, &c)
	}
	return out, rows.Err()
}

// Eliminar borra una categoría por ID.
func (r *CategoriaRepo) Eliminar(id int64) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM categoria WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete categoria: %w", err)
	}
	return nil
}
