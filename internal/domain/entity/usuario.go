package entity

import "time"

// Roles válidos para Usuario.
const (
	RolAdmin        = "admin"
	RolFarmaceutico = "farmaceutico"
	RolVendedor     = "vendedor"
)

// Usuario representa un operador del sistema.
type Usuario struct {
	ID           int64
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Nombre       string
	Rol          string // admin, farmaceutico, vendedor
	Activo       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
