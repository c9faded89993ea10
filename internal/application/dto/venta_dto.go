package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// VentaItemRequest línea de venta tal como llega del POS.
type VentaItemRequest struct {
	ProductoID     int64           `json:"id_producto" validate:"required,gt=0"`
	Cantidad       int             `json:"cantidad" validate:"required,gt=0"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario"`
}

// CreateVentaRequest cuerpo de POST /api/ventas.
type CreateVentaRequest struct {
	Total      decimal.Decimal    `json:"total"`
	MetodoPago string             `json:"metodo_pago" validate:"omitempty,oneof=efectivo tarjeta nequi daviplata"`
	ClienteID  *int64             `json:"id_cliente"`
	UsuarioID  *int64             `json:"id_usuario"`
	Items      []VentaItemRequest `json:"items" validate:"required,min=1,dive"`
}

// CreateVentaResponse respuesta de creación de venta.
type CreateVentaResponse struct {
	IDVenta int64 `json:"id_venta"`
}

// VentaItemResponse línea de venta persistida.
type VentaItemResponse struct {
	ID             int64           `json:"id"`
	ProductoID     int64           `json:"id_producto"`
	Cantidad       int             `json:"cantidad"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario"`
	Subtotal       decimal.Decimal `json:"subtotal"`
}

// VentaResponse venta con sus líneas, para recibo e historial.
type VentaResponse struct {
	ID         int64               `json:"id_venta"`
	ClienteID  *int64              `json:"id_cliente,omitempty"`
	UsuarioID  *int64              `json:"id_usuario,omitempty"`
	Fecha      time.Time           `json:"fecha"`
	Total      decimal.Decimal     `json:"total"`
	MetodoPago string              `json:"metodo_pago"`
	Estado     string              `json:"estado"`
	Items      []VentaItemResponse `json:"items"`
}
