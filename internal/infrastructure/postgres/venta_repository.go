package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/farmanet/farmacia-api/internal/domain/entity"
	"github.com/farmanet/farmacia-api/internal/domain/repository"
)

var _ repository.VentaRepository = (*VentaRepo)(nil)

// VentaRepo implementación de VentaRepository sobre PostgreSQL (usable con pool o tx).
type VentaRepo struct {
	q Querier
}

// NewVentaRepository construye el adaptador de persistencia para ventas. Pasar pool o tx (Querier).
func NewVentaRepository(q Querier) *VentaRepo {
	return &VentaRepo{q: q}
}

// Crear persiste la cabecera de la venta y asigna venta.ID.
func (r *VentaRepo) Crear(venta *entity.Venta) error {
	query := `
		INSERT INTO venta (cliente_id, usuario_id, fecha, total, metodo_pago, estado)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		venta.ClienteID, venta.UsuarioID, venta.Fecha, venta.Total, venta.MetodoPago, venta.Estado,
	).Scan(&venta.ID)
	if err != nil {
		return fmt.Errorf("insert venta: %w", err)
	}
	return nil
}

// CrearDetalle persiste una línea de venta. El subtotal lo calcula la DB
// (columna generada), por eso no se envía.
func (r *VentaRepo) CrearDetalle(detalle *entity.DetalleVenta) error {
	query := `
		INSERT INTO detalle_venta (venta_id, producto_id, cantidad, precio_unitario)
		VALUES ($1, $2, $3, $4)
		RETURNING id, subtotal`
	err := r.q.QueryRow(context.Background(), query,
		detalle.VentaID, detalle.ProductoID, detalle.Cantidad, detalle.PrecioUnitario,
	).Scan(&detalle.ID, &detalle.Subtotal)
	if err != nil {
		return fmt.Errorf("insert detalle_venta: %w", err)
	}
	return nil
}

// GetByID devuelve solo la cabecera de la venta. (nil, nil) si no existe.
func (r *VentaRepo) GetByID(id int64) (*entity.Venta, error) {
	query := `
		SELECT id, cliente_id, usuario_id, fecha, total, metodo_pago, estado
		FROM venta WHERE id = $1`
	var v entity.Venta
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&v.ID, &v.ClienteID, &v.UsuarioID, &v.Fecha, &v.Total, &v.MetodoPago, &v.Estado,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get venta: %w", err)
	}
	return &v, nil
}

// ListarDetalles devuelve las líneas de una venta en orden de inserción.
func (r *VentaRepo) ListarDetalles(ventaID int64) ([]*entity.DetalleVenta, error) {
	query := `
		SELECT id, venta_id, producto_id, cantidad, precio_unitario, subtotal
		FROM detalle_venta WHERE venta_id = $1 ORDER BY id`
	rows, err := r.q.Query(context.Background(), query, ventaID)
	if err != nil {
		return nil, fmt.Errorf("listar detalles: %w", err)
	}
	defer rows.Close()

	var out []*entity.DetalleVenta
	for rows.Next() {
		var d entity.DetalleVenta
		if err := rows.Scan(&d.ID, &d.VentaID, &d.ProductoID, &d.Cantidad, &d.PrecioUnitario, &d.Subtotal); err != nil {
			return nil, fmt.Errorf("listar detalles: scan: %w", err)
		}
		out = append(out, &d)
	}
	return out, rows.Err()
}

// Listar devuelve cabeceras de venta paginadas, la más reciente primero.
func (r *VentaRepo) Listar(limit, offset int) ([]*entity.Venta, error) {
	query := `
		SELECT id, cliente_id, usuario_id, fecha, total, metodo_pago, estado
		FROM venta ORDER BY fecha DESC, id DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("listar ventas: %w", err)
	}
	defer rows.Close()

	var out []*entity.Venta
	for rows.Next() {
		var v entity.Venta
		if err := rows.Scan(&v.ID, &v.ClienteID, &v.UsuarioID, &v.Fecha, &v.Total, &v.MetodoPago, &v.Estado); err != nil {
			return nil, fmt.Errorf("listar ventas: scan: %w", err)
		}
		out = append(out, &v)
	}
	return out, rows.Err()
}
