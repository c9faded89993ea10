package dto

import "time"

// CreateUsuarioRequest cuerpo de creación de usuario.
type CreateUsuarioRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Nombre   string `json:"nombre" validate:"required"`
	Rol      string `json:"rol" validate:"omitempty,oneof=admin farmaceutico vendedor"`
}

// UsuarioResponse usuario para la API (sin hash de contraseña).
type UsuarioResponse struct {
	ID        int64     `json:"id_usuario"`
	Email     string    `json:"email"`
	Nombre    string    `json:"nombre"`
	Rol       string    `json:"rol"`
	Activo    bool      `json:"activo"`
	CreatedAt time.Time `json:"created_at"`
}
