package entity

import "time"

// Cliente representa un cliente de la farmacia.
type Cliente struct {
	ID        int64
	Nombre    string
	Documento string // cédula o NIT
	Email     string
	Telefono  string
	CreatedAt time.Time
	UpdatedAt time.Time
}
