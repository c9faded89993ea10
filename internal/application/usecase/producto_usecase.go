package usecase

import (
	"context"
	"time"

	"github.com/farmanet/farmacia-api/internal/application/dto"
	"github.com/farmanet/farmacia-api/internal/domain"
	"github.com/farmanet/farmacia-api/internal/domain/entity"
	"github.com/farmanet/farmacia-api/internal/domain/repository"
)

// ProductoUseCase CRUD de productos del catálogo. El stock no se modifica por
// aquí: eso pasa por el coordinador de ventas o por ajustes de inventario.
type ProductoUseCase struct {
	productoRepo repository.ProductoRepository
}

// NewProductoUseCase construye el caso de uso.
func NewProductoUseCase(productoRepo repository.ProductoRepository) *ProductoUseCase {
	return &ProductoUseCase{productoRepo: productoRepo}
}

// Crear registra un producto nuevo con su stock inicial y estado derivado.
func (uc *ProductoUseCase) Crear(ctx context.Context, in dto.CreateProductoRequest) (*dto.ProductoResponse, error) {
	if in.Nombre == "" || in.Stock < 0 || in.StockMinimo < 0 {
		return nil, domain.ErrInvalidInput
	}
	if in.PrecioCompra.IsNegative() || in.PrecioVenta.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	p := &entity.Producto{
		CategoriaID:      in.CategoriaID,
		Nombre:           in.Nombre,
		Descripcion:      in.Descripcion,
		PrecioCompra:     in.PrecioCompra,
		PrecioVenta:      in.PrecioVenta,
		Stock:            in.Stock,
		StockMinimo:      in.StockMinimo,
		FechaVencimiento: in.FechaVencimiento,
		Estado:           entity.CalcularEstado(in.Stock, in.FechaVencimiento, now),
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := uc.productoRepo.Crear(p); err != nil {
		return nil, err
	}
	return toProductoResponse(p), nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductoUseCase) GetByID(ctx context.Context, id int64) (*dto.ProductoResponse, error) {
	p, err := uc.productoRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrProductoNotFound
	}
	return toProductoResponse(p), nil
}

// Actualizar modifica los datos del catálogo (no el stock) y rederiva el estado.
func (uc *ProductoUseCase) Actualizar(ctx context.Context, id int64, in dto.UpdateProductoRequest) (*dto.ProductoResponse, error) {
	if in.Nombre == "" || in.StockMinimo < 0 {
		return nil, domain.ErrInvalidInput
	}
	p, err := uc.productoRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrProductoNotFound
	}
	p.CategoriaID = in.CategoriaID
	p.Nombre = in.Nombre
	p.Descripcion = in.Descripcion
	p.PrecioCompra = in.PrecioCompra
	p.PrecioVenta = in.PrecioVenta
	p.StockMinimo = in.StockMinimo
	p.FechaVencimiento = in.FechaVencimiento
	p.Estado = entity.CalcularEstado(p.Stock, p.FechaVencimiento, time.Now())
	p.UpdatedAt = time.Now()
	if err := uc.productoRepo.Actualizar(p); err != nil {
		return nil, err
	}
	return toProductoResponse(p), nil
}

// Listar devuelve productos paginados.
func (uc *ProductoUseCase) Listar(ctx context.Context, limit, offset int) ([]*dto.ProductoResponse, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	list, err := uc.productoRepo.Listar(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ProductoResponse, 0, len(list))
	for _, p := range list {
		out = append(out, toProductoResponse(p))
	}
	return out, nil
}

// ListarBajoStock devuelve los productos en o bajo su stock mínimo.
func (uc *ProductoUseCase) ListarBajoStock(ctx context.Context) ([]*dto.ProductoResponse, error) {
	list, err := uc.productoRepo.ListarBajoStock()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ProductoResponse, 0, len(list))
	for _, p := range list {
		out = append(out, toProductoResponse(p))
	}
	return out, nil
}

// Eliminar borra un producto del catálogo.
func (uc *ProductoUseCase) Eliminar(ctx context.Context, id int64) error {
	p, err := uc.productoRepo.GetByID(id)
	if err != nil {
		return err
	}
	if p == nil {
		return domain.ErrProductoNotFound
	}
	return uc.productoRepo.Eliminar(id)
}

func toProductoResponse(p *entity.Producto) *dto.ProductoResponse {
	return &dto.ProductoResponse{
		ID:               p.ID,
		CategoriaID:      p.CategoriaID,
		Nombre:           p.Nombre,
		Descripcion:      p.Descripcion,
		PrecioCompra:     p.PrecioCompra,
		PrecioVenta:      p.PrecioVenta,
		Stock:            p.Stock,
		StockMinimo:      p.StockMinimo,
		FechaVencimiento: p.FechaVencimiento,
		Estado:           p.Estado,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
}
