package dto

import "time"

// ClienteRequest cuerpo de creación/actualización de cliente.
type ClienteRequest struct {
	Nombre    string `json:"nombre" validate:"required"`
	Documento string `json:"documento"`
	Email     string `json:"email" validate:"omitempty,email"`
	Telefono  string `json:"telefono"`
}

// ClienteResponse cliente para la API.
type ClienteResponse struct {
	ID        int64     `json:"id_cliente"`
	Nombre    string    `json:"nombre"`
	Documento string    `json:"documento,omitempty"`
	Email     string    `json:"email,omitempty"`
	Telefono  string    `json:"telefono,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
