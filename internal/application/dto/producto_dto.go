package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductoRequest cuerpo de POST /api/productos.
type CreateProductoRequest struct {
	Nombre           string          `json:"nombre" validate:"required"`
	Descripcion      string          `json:"descripcion"`
	CategoriaID      *int64          `json:"id_categoria"`
	PrecioCompra     decimal.Decimal `json:"precio_compra"`
	PrecioVenta      decimal.Decimal `json:"precio_venta"`
	Stock            int             `json:"stock" validate:"gte=0"`
	StockMinimo      int             `json:"stock_minimo" validate:"gte=0"`
	FechaVencimiento *time.Time      `json:"fecha_vencimiento"`
}

// UpdateProductoRequest cuerpo de PUT /api/productos/:id.
// No permite modificar el stock: eso pasa por movimientos o ventas.
type UpdateProductoRequest struct {
	Nombre           string          `json:"nombre" validate:"required"`
	Descripcion      string          `json:"descripcion"`
	CategoriaID      *int64          `json:"id_categoria"`
	PrecioCompra     decimal.Decimal `json:"precio_compra"`
	PrecioVenta      decimal.Decimal `json:"precio_venta"`
	StockMinimo      int             `json:"stock_minimo" validate:"gte=0"`
	FechaVencimiento *time.Time      `json:"fecha_vencimiento"`
}

// ProductoResponse producto para la API.
type ProductoResponse struct {
	ID               int64           `json:"id_producto"`
	CategoriaID      *int64          `json:"id_categoria,omitempty"`
	Nombre           string          `json:"nombre"`
	Descripcion      string          `json:"descripcion,omitempty"`
	PrecioCompra     decimal.Decimal `json:"precio_compra"`
	PrecioVenta      decimal.Decimal `json:"precio_venta"`
	Stock            int             `json:"stock"`
	StockMinimo      int             `json:"stock_minimo"`
	FechaVencimiento *time.Time      `json:"fecha_vencimiento,omitempty"`
	Estado           string          `json:"estado"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}
