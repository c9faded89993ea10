package repository

import "github.com/farmanet/farmacia-api/internal/domain/entity"

// MovimientoRepository puerto de la bitácora de movimientos de stock.
// Solo inserta y lee: los movimientos nunca se actualizan ni se borran.
type MovimientoRepository interface {
	// Crear persiste un movimiento con timestamp del servidor y asigna mov.ID.
	Crear(mov *entity.MovimientoStock) error
	// ListarPorProducto devuelve los movimientos de un producto, el más reciente primero.
	ListarPorProducto(productoID int64, limit, offset int) ([]*entity.MovimientoStock, error)
	// ListarTodos devuelve los movimientos con nombre de producto, el más reciente primero.
	ListarTodos(limit, offset int) ([]*entity.MovimientoConProducto, error)
}
