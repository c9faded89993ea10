package entity

import "time"

// Tipos de movimiento de stock. La dirección codifica el signo: la cantidad
// almacenada siempre es positiva.
const (
	TipoEntrada = "entrada"
	TipoSalida  = "salida"
)

// MovimientoStock registra cada cambio de stock de un producto. Bitácora
// inmutable: nunca se actualiza ni se borra una fila escrita.
type MovimientoStock struct {
	ID          int64
	ProductoID  int64
	Tipo        string // entrada, salida
	Cantidad    int    // siempre positiva
	Descripcion string // motivo libre; en ventas referencia "Venta #<id>"
	GrupoID     string // agrupa los movimientos de una misma operación (uuid)
	Fecha       time.Time
}

// MovimientoConProducto movimiento junto con el nombre del producto (listado global).
type MovimientoConProducto struct {
	MovimientoStock
	ProductoNombre string
}
