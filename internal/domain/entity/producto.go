package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de ciclo de vida de un producto. Derivados del stock y la proximidad
// de la fecha de vencimiento; se recalculan en cada mutación de stock.
const (
	EstadoDisponible = "available"
	EstadoAgotado    = "out_of_stock"
	EstadoPorVencer  = "near_expiry"
)

// DiasAlertaVencimiento ventana para marcar un producto como por vencer.
const DiasAlertaVencimiento = 30

// Producto representa un producto del catálogo de la farmacia.
// Stock nunca es negativo: el decremento en persistencia aplica piso en cero.
type Producto struct {
	ID               int64
	CategoriaID      *int64
	Nombre           string
	Descripcion      string
	PrecioCompra     decimal.Decimal // costo unitario de compra
	PrecioVenta      decimal.Decimal // precio unitario de venta
	Stock            int
	StockMinimo      int
	FechaVencimiento *time.Time
	Estado           string // available, out_of_stock, near_expiry
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// CalcularEstado deriva el estado a partir del stock y la fecha de vencimiento.
func CalcularEstado(stock int, vencimiento *time.Time, ahora time.Time) string {
	if stock <= 0 {
		return EstadoAgotado
	}
	if vencimiento != nil && !vencimiento.After(ahora.AddDate(0, 0, DiasAlertaVencimiento)) {
		return EstadoPorVencer
	}
	return EstadoDisponible
}

// BajoStock indica si el producto está en o por debajo de su mínimo.
func (p *Producto) BajoStock() bool {
	return p.Stock <= p.StockMinimo
}
