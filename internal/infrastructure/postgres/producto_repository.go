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

var _ repository.ProductoRepository = (*ProductoRepo)(nil)

const productoColumns = `id, categoria_id, nombre, descripcion, precio_compra, precio_venta,
		stock, stock_minimo, fecha_vencimiento, estado, created_at, updated_at`

// ProductoRepo implementación del puerto ProductoRepository sobre PostgreSQL (usable con pool o tx).
type ProductoRepo struct {
	q Querier
}

// NewProductoRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductoRepository(q Querier) *ProductoRepo {
	return &ProductoRepo{q: q}
}

// Crear persiste un nuevo producto y asigna p.ID.
func (r *ProductoRepo) Crear(p *entity.Producto) error {
	query := `
		INSERT INTO producto (categoria_id, nombre, descripcion, precio_compra, precio_venta,
			stock, stock_minimo, fecha_vencimiento, estado, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		p.CategoriaID, p.Nombre, p.Descripcion, p.PrecioCompra, p.PrecioVenta,
		p.Stock, p.StockMinimo, p.FechaVencimiento, p.Estado, p.CreatedAt, p.UpdatedAt,
	).Scan(&p.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert producto: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID. Devuelve (nil, nil) si no existe.
func (r *ProductoRepo) GetByID(id int64) (*entity.Producto, error) {
	query := `SELECT ` + productoColumns + ` FROM producto WHERE id = $1`
	return r.scanOne(query, id, "get producto")
}

// GetForUpdate obtiene el producto y bloquea la fila (SELECT FOR UPDATE).
// Solo tiene sentido dentro de una transacción.
func (r *ProductoRepo) GetForUpdate(id int64) (*entity.Producto, error) {
	query := `SELECT ` + productoColumns + ` FROM producto WHERE id = $1 FOR UPDATE`
	return r.scanOne(query, id, "get producto for update")
}

func (r *ProductoRepo) scanOne(query string, id int64, op string) (*entity.Producto, error) {
	var p entity.Producto
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.CategoriaID, &p.Nombre, &p.Descripcion, &p.PrecioCompra, &p.PrecioVenta,
		&p.Stock, &p.StockMinimo, &p.FechaVencimiento, &p.Estado, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &p, nil
}

// Actualizar modifica los datos de catálogo de un producto (no el stock).
func (r *ProductoRepo) Actualizar(p *entity.Producto) error {
	query := `
		UPDATE producto
		SET categoria_id = $2, nombre = $3, descripcion = $4, precio_compra = $5,
			precio_venta = $6, stock_minimo = $7, fecha_vencimiento = $8, estado = $9,
			updated_at = now()
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.CategoriaID, p.Nombre, p.Descripcion, p.PrecioCompra,
		p.PrecioVenta, p.StockMinimo, p.FechaVencimiento, p.Estado,
	)
	if err != nil {
		return fmt.Errorf("update producto: %w", err)
	}
	return nil
}

// AjustarStock aplica stock = max(0, stock + delta) en un solo UPDATE y
// recalcula el estado en la misma sentencia. Devuelve filas afectadas (0 si el
// producto no existe).
func (r *ProductoRepo) AjustarStock(id int64, delta int) (int64, error) {
	query := `
		UPDATE producto
		SET stock = GREATEST(0, stock + $2),
			estado = CASE
				WHEN GREATEST(0, stock + $2) = 0 THEN 'out_of_stock'
				WHEN fecha_vencimiento IS NOT NULL
					AND fecha_vencimiento <= now() + make_interval(days => $3) THEN 'near_expiry'
				ELSE 'available'
			END,
			updated_at = now()
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query, id, delta, entity.DiasAlertaVencimiento)
	if err != nil {
		return 0, fmt.Errorf("ajustar stock: %w", err)
	}
	return tag.RowsAffected(), nil
}

// Listar devuelve productos paginados ordenados por nombre.
func (r *ProductoRepo) Listar(limit, offset int) ([]*entity.Producto, error) {
	query := `SELECT ` + productoColumns + ` FROM producto ORDER BY nombre LIMIT $1 OFFSET $2`
	return r.scanMany(query, "listar productos", limit, offset)
}

// ListarBajoStock devuelve los productos con stock en o bajo su mínimo.
func (r *ProductoRepo) ListarBajoStock() ([]*entity.Producto, error) {
	query := `SELECT ` + productoColumns + ` FROM producto WHERE stock <= stock_minimo ORDER BY nombre`
	return r.scanMany(query, "listar bajo stock")
}

func (r *ProductoRepo) scanMany(query, op string, args ...any) ([]*entity.Producto, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var out []*entity.Producto
	for rows.Next() {
		var p entity.Producto
		if err := rows.Scan(
			&p.ID, &p.CategoriaID, &p.Nombre, &p.Descripcion, &p.PrecioCompra, &p.PrecioVenta,
			&p.Stock, &p.StockMinimo, &p.FechaVencimiento, &p.Estado, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		out = append(out, &p)
	}
	return out, rows.Err()
}

// Eliminar borra un producto por ID.
func (r *ProductoRepo) Eliminar(id int64) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM producto WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete producto: %w", err)
	}
	return nil
}
