package ventas

import (
	"context"

	"github.com/farmanet/farmacia-api/internal/domain/entity"
	"github.com/farmanet/farmacia-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza atomicidad de la venta: cabecera,
// detalles, descuento de stock y movimientos se confirman o revierten juntos.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		ventaRepo repository.VentaRepository,
		productoRepo repository.ProductoRepository,
		movRepo repository.MovimientoRepository,
	) error) error
}

// Notificador recibe los productos cuyo stock quedó en o bajo el mínimo
// después de una operación confirmada. Se invoca fuera de la transacción.
type Notificador interface {
	NotificarBajoStock(ctx context.Context, productos []*entity.Producto)
}
