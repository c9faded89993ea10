package repository

import "github.com/farmanet/farmacia-api/internal/domain/entity"

// ProductoRepository puerto de persistencia para productos.
// Las implementaciones devuelven (nil, nil) cuando el producto no existe.
type ProductoRepository interface {
	Crear(p *entity.Producto) error
	GetByID(id int64) (*entity.Producto, error)
	// GetForUpdate obtiene el producto bloqueando la fila (SELECT FOR UPDATE).
	// Solo tiene sentido dentro de una transacción.
	GetForUpdate(id int64) (*entity.Producto, error)
	Actualizar(p *entity.Producto) error
	// AjustarStock aplica stock = max(0, stock + delta) en un solo UPDATE atómico
	// y recalcula el estado. Devuelve las filas afectadas: 0 si el producto no
	// existe (no-op, no error).
	AjustarStock(id int64, delta int) (int64, error)
	Listar(limit, offset int) ([]*entity.Producto, error)
	ListarBajoStock() ([]*entity.Producto, error)
	Eliminar(id int64) error
}
