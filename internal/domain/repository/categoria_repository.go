package repository

import "github.com/farmanet/farmacia-api/internal/domain/entity"

// CategoriaRepository puerto de persistencia para categorías.
type CategoriaRepository interface {
	Crear(c *entity.Categoria) error
	GetByID(id int64) (*entity.Categoria, error)
	Actualizar(c *entity.Categoria) error
	Listar() ([]*entity.Categoria, error)
	Eliminar(id int64) error
}
