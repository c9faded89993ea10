package usecase

import (
	"context"
	"time"

	"github.com/farmanet/farmacia-api/internal/application/dto"
	"github.com/farmanet/farmacia-api/internal/domain"
	"github.com/farmanet/farmacia-api/internal/domain/entity"
	"github.com/farmanet/farmacia-api/internal/domain/repository"
)

// CategoriaUseCase CRUD de categorías.
type CategoriaUseCase struct {
	categoriaRepo repository.CategoriaRepository
}

// NewCategoriaUseCase construye el caso de uso.
func NewCategoriaUseCase(categoriaRepo repository.CategoriaRepository) *CategoriaUseCase {
	return &CategoriaUseCase{categoriaRepo: categoriaRepo}
}

// Crear registra una categoría.
func (uc *CategoriaUseCase) Crear(ctx context.Context, in dto.CategoriaRequest) (*dto.CategoriaResponse, error) {
	if in.Nombre == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	c := &entity.Categoria{Nombre: in.Nombre, Descripcion: in.Descripcion, CreatedAt: now, UpdatedAt: now}
	if err := uc.categoriaRepo.Crear(c); err != nil {
		return nil, err
	}
	return toCategoriaResponse(c), nil
}

// Actualizar modifica una categoría existente.
func (uc *CategoriaUseCase) Actualizar(ctx context.Context, id int64, in dto.CategoriaRequest) (*dto.CategoriaResponse, error) {
	if in.Nombre == "" {
		return nil, domain.ErrInvalidInput
	}
	c, err := uc.categoriaRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	c.Nombre = in.Nombre
	c.Descripcion = in.Descripcion
	c.UpdatedAt = time.Now()
	if err := uc.categoriaRepo.Actualizar(c); err != nil {
		return nil, err
	}
	return toCategoriaResponse(c), nil
}

// Listar devuelve todas las categorías.
func (uc *CategoriaUseCase) Listar(ctx context.Context) ([]*dto.CategoriaResponse, error) {
	list, err := uc.categoriaRepo.Listar()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.CategoriaResponse, 0, len(list))
	for _, c := range list {
		out = append(out, toCategoriaResponse(c))
	}
	return out, nil
}

// Eliminar borra una categoría.
func (uc *CategoriaUseCase) Eliminar(ctx context.Context, id int64) error {
	c, err := uc.categoriaRepo.GetByID(id)
	if err != nil {
		return err
	}
	if c == nil {
		return domain.ErrNotFound
	}
	return uc.categoriaRepo.Eliminar(id)
}

func toCategoriaResponse(c *entity.Categoria) *dto.CategoriaResponse {
	return &dto.CategoriaResponse{ID: c.ID, Nombre: c.Nombre, Descripcion: c.Descripcion}
}
