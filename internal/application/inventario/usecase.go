package inventario

import (
	"context"

	"github.com/google/uuid"

	"github.com/farmanet/farmacia-api/internal/application/dto"
	"github.com/farmanet/farmacia-api/internal/application/ventas"
	"github.com/farmanet/farmacia-api/internal/domain"
	"github.com/farmanet/farmacia-api/internal/domain/entity"
	"github.com/farmanet/farmacia-api/internal/domain/repository"
)

// AjusteStockUseCase registra ajustes manuales de stock (entrada o salida) de
// forma transaccional con su movimiento, y lista la bitácora.
type AjusteStockUseCase struct {
	txRunner    TxRunner
	movRepo     repository.MovimientoRepository
	notificador ventas.Notificador // opcional
}

// NewAjusteStockUseCase construye el caso de uso.
func NewAjusteStockUseCase(txRunner TxRunner, movRepo repository.MovimientoRepository, notificador ventas.Notificador) *AjusteStockUseCase {
	return &AjusteStockUseCase{txRunner: txRunner, movRepo: movRepo, notificador: notificador}
}

// Ajustar aplica una entrada o salida manual. Bloquea la fila del producto,
// verifica suficiencia en salidas y persiste el cambio de stock junto con su
// movimiento en una sola transacción.
func (uc *AjusteStockUseCase) Ajustar(ctx context.Context, in dto.AjusteStockRequest) error {
	if in.ProductoID <= 0 || in.Cantidad <= 0 || in.Motivo == "" {
		return domain.ErrInvalidInput
	}
	if in.Tipo != entity.TipoEntrada && in.Tipo != entity.TipoSalida {
		return domain.ErrInvalidInput
	}

	var bajoStock []*entity.Producto
	err := uc.txRunner.Run(ctx, func(
		_ repository.VentaRepository,
		productoRepo repository.ProductoRepository,
		movRepo repository.MovimientoRepository,
	) error {
		p, err := productoRepo.GetForUpdate(in.ProductoID)
		if err != nil {
			return err
		}
		if p == nil {
			return domain.ErrProductoNotFound
		}
		delta := in.Cantidad
		if in.Tipo == entity.TipoSalida {
			if in.Cantidad > p.Stock {
				return domain.ErrInsufficientStock
			}
			delta = -in.Cantidad
		}
		if _, err := productoRepo.AjustarStock(in.ProductoID, delta); err != nil {
			return err
		}
		mov := &entity.MovimientoStock{
			ProductoID:  in.ProductoID,
			Tipo:        in.Tipo,
			Cantidad:    in.Cantidad,
			Descripcion: in.Motivo,
			GrupoID:     uuid.New().String(),
		}
		if err := movRepo.Crear(mov); err != nil {
			return err
		}
		restante := p.Stock + delta
		if restante <= p.StockMinimo {
			quedo := *p
			quedo.Stock = restante
			bajoStock = append(bajoStock, &quedo)
		}
		return nil
	})
	if err != nil {
		return err
	}

	if uc.notificador != nil && len(bajoStock) > 0 {
		uc.notificador.NotificarBajoStock(ctx, bajoStock)
	}
	return nil
}

// ListarPorProducto devuelve los movimientos de un producto, el más reciente primero.
func (uc *AjusteStockUseCase) ListarPorProducto(ctx context.Context, productoID int64, limit, offset int) ([]*dto.MovimientoResponse, error) {
	limit, offset = sanearPaginacion(limit, offset)
	movs, err := uc.movRepo.ListarPorProducto(productoID, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.MovimientoResponse, 0, len(movs))
	for _, m := range movs {
		out = append(out, &dto.MovimientoResponse{
			ID:          m.ID,
			ProductoID:  m.ProductoID,
			Tipo:        m.Tipo,
			Cantidad:    m.Cantidad,
			Descripcion: m.Descripcion,
			Fecha:       m.Fecha,
		})
	}
	return out, nil
}

// ListarTodos devuelve la bitácora global con nombre de producto, el más reciente primero.
func (uc *AjusteStockUseCase) ListarTodos(ctx context.Context, limit, offset int) ([]*dto.MovimientoResponse, error) {
	limit, offset = sanearPaginacion(limit, offset)
	movs, err := uc.movRepo.ListarTodos(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.MovimientoResponse, 0, len(movs))
	for _, m := range movs {
		out = append(out, &dto.MovimientoResponse{
			ID:             m.ID,
			ProductoID:     m.ProductoID,
			ProductoNombre: m.ProductoNombre,
			Tipo:           m.Tipo,
			Cantidad:       m.Cantidad,
			Descripcion:    m.Descripcion,
			Fecha:          m.Fecha,
		})
	}
	return out, nil
}

func sanearPaginacion(limit, offset int) (int, int) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
