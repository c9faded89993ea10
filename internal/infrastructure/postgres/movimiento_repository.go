package postgres

import (
	"context"
	"fmt"

	"github.com/farmanet/farmacia-api/internal/domain/entity"
	"github.com/farmanet/farmacia-api/internal/domain/repository"
)

var _ repository.MovimientoRepository = (*MovimientoRepo)(nil)

// MovimientoRepo implementación de MovimientoRepository sobre PostgreSQL
// (usable con pool o tx). La bitácora es de solo inserción.
type MovimientoRepo struct {
	q Querier
}

// NewMovimientoRepository construye el adaptador de la bitácora. Pasar pool o tx (Querier).
func NewMovimientoRepository(q Querier) *MovimientoRepo {
	return &MovimientoRepo{q: q}
}

// Crear persiste un movimiento con timestamp del servidor y asigna mov.ID y mov.Fecha.
func (r *MovimientoRepo) Crear(mov *entity.MovimientoStock) error {
	query := `
		INSERT INTO movimiento_stock (producto_id, tipo, cantidad, descripcion, grupo_id, fecha)
		VALUES ($1, $2, $3, $4, $5, now())
		RETURNING id, fecha`
	err := r.q.QueryRow(context.Background(), query,
		mov.ProductoID, mov.Tipo, mov.Cantidad, mov.Descripcion, mov.GrupoID,
	).Scan(&mov.ID, &mov.Fecha)
	if err != nil {
		return fmt.Errorf("insert movimiento: %w", err)
	}
	return nil
}

// ListarPorProducto devuelve los movimientos de un producto, el más reciente primero.
func (r *MovimientoRepo) ListarPorProducto(productoID int64, limit, offset int) ([]*entity.MovimientoStock, error) {
	query := `
		SELECT id, producto_id, tipo, cantidad, descripcion, grupo_id, fecha
		FROM movimiento_stock
		WHERE producto_id = $1
		ORDER BY fecha DESC, id DESC
		LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, productoID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("listar movimientos: %w", err)
	}
	defer rows.Close()

	var out []*entity.MovimientoStock
	for rows.Next() {
		var m entity.MovimientoStock
		if err := rows.Scan(&m.ID, &m.ProductoID, &m.Tipo, &m.Cantidad, &m.Descripcion, &m.GrupoID, &m.Fecha); err != nil {
			return nil, fmt.Errorf("listar movimientos: scan: %w", err)
		}
		out = append(out, &m)
	}
	return out, rows.Err()
}

// ListarTodos devuelve la bitácora global con nombre de producto, el más reciente primero.
func (r *MovimientoRepo) ListarTodos(limit, offset int) ([]*entity.MovimientoConProducto, error) {
	query := `
		SELECT m.id, m.producto_id, m.tipo, m.cantidad, m.descripcion, m.grupo_id, m.fecha, p.nombre
		FROM movimiento_stock m
		JOIN producto p ON p.id = m.producto_id
		ORDER BY m.fecha DESC, m.id DESC
		LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("listar movimientos: %w", err)
	}
	defer rows.Close()

	var out []*entity.MovimientoConProducto
	for rows.Next() {
		var m entity.MovimientoConProducto
		if err := rows.Scan(&m.ID, &m.ProductoID, &m.Tipo, &m.Cantidad, &m.Descripcion, &m.GrupoID, &m.Fecha, &m.ProductoNombre); err != nil {
			return nil, fmt.Errorf("listar movimientos: scan: %w", err)
		}
		out = append(out, &m)
	}
	return out, rows.Err()
}
