package dto

import "time"

// AjusteStockRequest cuerpo de POST /api/inventario/movimientos (ajuste manual).
type AjusteStockRequest struct {
	ProductoID int64  `json:"id_producto" validate:"required,gt=0"`
	Tipo       string `json:"tipo" validate:"required,oneof=entrada salida"`
	Cantidad   int    `json:"cantidad" validate:"required,gt=0"`
	Motivo     string `json:"motivo" validate:"required"`
}

// MovimientoResponse movimiento de stock para la API.
type MovimientoResponse struct {
	ID             int64     `json:"id_movimiento"`
	ProductoID     int64     `json:"id_producto"`
	ProductoNombre string    `json:"producto,omitempty"`
	Tipo           string    `json:"tipo"`
	Cantidad       int       `json:"cantidad"`
	Descripcion    string    `json:"descripcion"`
	Fecha          time.Time `json:"fecha"`
}
