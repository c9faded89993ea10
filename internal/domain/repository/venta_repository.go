package repository

import "github.com/farmanet/farmacia-api/internal/domain/entity"

// VentaRepository puerto de persistencia para ventas y sus detalles.
// Solo el coordinador de ventas escribe en estas tablas.
type VentaRepository interface {
	// Crear persiste la cabecera y asigna venta.ID.
	Crear(venta *entity.Venta) error
	CrearDetalle(detalle *entity.DetalleVenta) error
	// GetByID devuelve solo la cabecera; (nil, nil) si no existe.
	GetByID(id int64) (*entity.Venta, error)
	// ListarDetalles devuelve las líneas de una venta en orden de inserción.
	ListarDetalles(ventaID int64) ([]*entity.DetalleVenta, error)
	Listar(limit, offset int) ([]*entity.Venta, error)
}
