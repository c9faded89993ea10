package repository

import "github.com/farmanet/farmacia-api/internal/domain/entity"

// UsuarioRepository puerto de persistencia para usuarios.
type UsuarioRepository interface {
	Crear(u *entity.Usuario) error
	GetByID(id int64) (*entity.Usuario, error)
	GetByEmail(email string) (*entity.Usuario, error)
	Actualizar(u *entity.Usuario) error
	Listar(limit, offset int) ([]*entity.Usuario, error)
}
