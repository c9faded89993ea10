package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una venta. La anulación no está implementada; la columna admite
// ambos valores para no requerir migración cuando se agregue.
const (
	VentaCompletada = "completada"
	VentaAnulada    = "anulada"
)

// Métodos de pago aceptados en el punto de venta.
const (
	MetodoEfectivo  = "efectivo"
	MetodoTarjeta   = "tarjeta"
	MetodoNequi     = "nequi"
	MetodoDaviplata = "daviplata"
)

// MetodoPagoValido verifica pertenencia a la enumeración de métodos de pago.
func MetodoPagoValido(m string) bool {
	switch m {
	case MetodoEfectivo, MetodoTarjeta, MetodoNequi, MetodoDaviplata:
		return true
	}
	return false
}

// Venta representa la cabecera de una venta. Se crea una sola vez, de forma
// atómica junto con todos sus detalles; nunca queda persistida a medias.
type Venta struct {
	ID         int64
	ClienteID  *int64
	UsuarioID  *int64
	Fecha      time.Time
	Total      decimal.Decimal
	MetodoPago string
	Estado     string // completada, anulada
	Detalles   []*DetalleVenta
}
