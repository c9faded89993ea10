package inventario

import (
	"context"

	"github.com/farmanet/farmacia-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD. Todo ajuste
// manual de stock se confirma junto con su movimiento o no se confirma nada:
// misma unidad transaccional que usan las ventas.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		ventaRepo repository.VentaRepository,
		productoRepo repository.ProductoRepository,
		movRepo repository.MovimientoRepository,
	) error) error
}
