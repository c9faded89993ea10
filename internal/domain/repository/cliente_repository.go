package repository

import "github.com/farmanet/farmacia-api/internal/domain/entity"

// ClienteRepository puerto de persistencia para clientes.
type ClienteRepository interface {
	Crear(c *entity.Cliente) error
	GetByID(id int64) (*entity.Cliente, error)
	Actualizar(c *entity.Cliente) error
	Listar(limit, offset int) ([]*entity.Cliente, error)
	Eliminar(id int64) error
}
