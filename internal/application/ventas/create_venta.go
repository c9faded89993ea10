package ventas

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/farmanet/farmacia-api/internal/application/dto"
	"github.com/farmanet/farmacia-api/internal/domain"
	"github.com/farmanet/farmacia-api/internal/domain/entity"
	"github.com/farmanet/farmacia-api/internal/domain/repository"
)

// CreateVentaUseCase registra una venta de forma transaccional: cabecera,
// detalles, descuento de stock y movimientos de salida en una sola unidad.
type CreateVentaUseCase struct {
	txRunner    TxRunner
	notificador Notificador // opcional; nil desactiva las alertas
}

// NewCreateVentaUseCase construye el caso de uso.
func NewCreateVentaUseCase(txRunner TxRunner, notificador Notificador) *CreateVentaUseCase {
	return &CreateVentaUseCase{txRunner: txRunner, notificador: notificador}
}

// CreateVenta valida la entrada, verifica stock suficiente bloqueando cada fila
// de producto (SELECT FOR UPDATE) y persiste todo dentro de una transacción.
// Cualquier fallo revierte la unidad completa: nunca queda una venta a medias.
//
// Errores: ErrInvalidInput (items vacíos, cantidades no positivas, precio con
// más de 2 decimales, total que no cuadra, método de pago desconocido),
// ErrProductoNotFound, ErrInsufficientStock, o error de persistencia.
func (uc *CreateVentaUseCase) CreateVenta(ctx context.Context, in dto.CreateVentaRequest) (int64, error) {
	if len(in.Items) == 0 {
		return 0, domain.ErrInvalidInput
	}
	metodo := in.MetodoPago
	if metodo == "" {
		metodo = entity.MetodoEfectivo
	}
	if !entity.MetodoPagoValido(metodo) {
		return 0, domain.ErrInvalidInput
	}

	// Validar líneas y recalcular el total: el total del caller no se confía,
	// debe coincidir con la suma de los subtotales.
	var totalCalculado decimal.Decimal
	for _, item := range in.Items {
		if item.ProductoID <= 0 || item.Cantidad <= 0 {
			return 0, domain.ErrInvalidInput
		}
		if item.PrecioUnitario.IsNegative() {
			return 0, domain.ErrInvalidInput
		}
		if !item.PrecioUnitario.Round(2).Equal(item.PrecioUnitario) {
			return 0, domain.ErrInvalidInput
		}
		subtotal := item.PrecioUnitario.Mul(decimal.NewFromInt(int64(item.Cantidad)))
		totalCalculado = totalCalculado.Add(subtotal)
	}
	if !totalCalculado.Equal(in.Total) {
		return 0, domain.ErrInvalidInput
	}

	now := time.Now()
	grupoID := uuid.New().String()
	var ventaID int64
	var bajoStock []*entity.Producto

	err := uc.txRunner.Run(ctx, func(
		ventaRepo repository.VentaRepository,
		productoRepo repository.ProductoRepository,
		movRepo repository.MovimientoRepository,
	) error {
		// 1) Pre-chequeo de suficiencia antes de cualquier mutación: bloquear
		// cada producto en el orden recibido y verificar existencia y stock.
		// El bloqueo de fila serializa decrementos concurrentes por producto.
		productos := make(map[int64]*entity.Producto, len(in.Items))
		for _, item := range in.Items {
			if _, ya := productos[item.ProductoID]; ya {
				// Producto repetido en la venta: acumular la cantidad pedida
				continue
			}
			p, err := productoRepo.GetForUpdate(item.ProductoID)
			if err != nil {
				return err
			}
			if p == nil {
				return domain.ErrProductoNotFound
			}
			productos[item.ProductoID] = p
		}
		pedido := make(map[int64]int, len(productos))
		for _, item := range in.Items {
			pedido[item.ProductoID] += item.Cantidad
		}
		for id, cantidad := range pedido {
			if cantidad > productos[id].Stock {
				return domain.ErrInsufficientStock
			}
		}

		// 2) Cabecera de la venta
		venta := &entity.Venta{
			ClienteID:  in.ClienteID,
			UsuarioID:  in.UsuarioID,
			Fecha:      now,
			Total:      totalCalculado,
			MetodoPago: metodo,
			Estado:     entity.VentaCompletada,
		}
		if err := ventaRepo.Crear(venta); err != nil {
			return err
		}
		ventaID = venta.ID

		// 3) Por cada línea, en orden: detalle, descuento de stock (piso en
		// cero en el UPDATE) y movimiento de salida referenciando la venta.
		for _, item := range in.Items {
			detalle := &entity.DetalleVenta{
				VentaID:        venta.ID,
				ProductoID:     item.ProductoID,
				Cantidad:       item.Cantidad,
				PrecioUnitario: item.PrecioUnitario,
			}
			if err := ventaRepo.CrearDetalle(detalle); err != nil {
				return err
			}
			if _, err := productoRepo.AjustarStock(item.ProductoID, -item.Cantidad); err != nil {
				return err
			}
			mov := &entity.MovimientoStock{
				ProductoID:  item.ProductoID,
				Tipo:        entity.TipoSalida,
				Cantidad:    item.Cantidad,
				Descripcion: fmt.Sprintf("Venta #%d", venta.ID),
				GrupoID:     grupoID,
			}
			if err := movRepo.Crear(mov); err != nil {
				return err
			}
		}

		// 4) Detectar productos que quedaron en o bajo su mínimo (para alertar
		// después del commit).
		for id, p := range productos {
			restante := p.Stock - pedido[id]
			if restante <= p.StockMinimo {
				quedo := *p
				quedo.Stock = restante
				bajoStock = append(bajoStock, &quedo)
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	if uc.notificador != nil && len(bajoStock) > 0 {
		uc.notificador.NotificarBajoStock(ctx, bajoStock)
	}
	return ventaID, nil
}
