package ventas

import (
	"context"

	"github.com/farmanet/farmacia-api/internal/application/dto"
	"github.com/farmanet/farmacia-api/internal/domain"
	"github.com/farmanet/farmacia-api/internal/domain/entity"
	"github.com/farmanet/farmacia-api/internal/domain/repository"
)

// GetVentaUseCase lectura de ventas con sus líneas (recibo e historial).
type GetVentaUseCase struct {
	ventaRepo repository.VentaRepository
}

// NewGetVentaUseCase construye el caso de uso de consulta.
func NewGetVentaUseCase(ventaRepo repository.VentaRepository) *GetVentaUseCase {
	return &GetVentaUseCase{ventaRepo: ventaRepo}
}

// GetByID devuelve la venta con sus líneas en orden de inserción.
func (uc *GetVentaUseCase) GetByID(ctx context.Context, id int64) (*dto.VentaResponse, error) {
	venta, err := uc.ventaRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if venta == nil {
		return nil, domain.ErrNotFound
	}
	detalles, err := uc.ventaRepo.ListarDetalles(id)
	if err != nil {
		return nil, err
	}
	venta.Detalles = detalles
	return toVentaResponse(venta), nil
}

// Listar devuelve las ventas más recientes (solo cabeceras).
func (uc *GetVentaUseCase) Listar(ctx context.Context, limit, offset int) ([]*dto.VentaResponse, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	ventas, err := uc.ventaRepo.Listar(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.VentaResponse, 0, len(ventas))
	for _, v := range ventas {
		out = append(out, toVentaResponse(v))
	}
	return out, nil
}

func toVentaResponse(v *entity.Venta) *dto.VentaResponse {
	resp := &dto.VentaResponse{
		ID:         v.ID,
		ClienteID:  v.ClienteID,
		UsuarioID:  v.UsuarioID,
		Fecha:      v.Fecha,
		Total:      v.Total,
		MetodoPago: v.MetodoPago,
		Estado:     v.Estado,
		Items:      make([]dto.VentaItemResponse, 0, len(v.Detalles)),
	}
	for _, d := range v.Detalles {
		resp.Items = append(resp.Items, dto.VentaItemResponse{
			ID:             d.ID,
			ProductoID:     d.ProductoID,
			Cantidad:       d.Cantidad,
			PrecioUnitario: d.PrecioUnitario,
			Subtotal:       d.Subtotal,
		})
	}
	return resp
}
