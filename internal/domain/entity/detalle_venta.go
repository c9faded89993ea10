package entity

import "github.com/shopspring/decimal"

// DetalleVenta representa una línea de una venta. PrecioUnitario se captura al
// momento de la venta; el subtotal es columna generada (cantidad × precio).
type DetalleVenta struct {
	ID             int64
	VentaID        int64
	ProductoID     int64
	Cantidad       int
	PrecioUnitario decimal.Decimal
	Subtotal       decimal.Decimal
}
