package usecase

import (
	"context"
	"time"

	"github.com/farmanet/farmacia-api/internal/application/dto"
	"github.com/farmanet/farmacia-api/internal/domain"
	"github.com/farmanet/farmacia-api/internal/domain/entity"
	"github.com/farmanet/farmacia-api/internal/domain/repository"
)

// ClienteUseCase CRUD de clientes.
type ClienteUseCase struct {
	clienteRepo repository.ClienteRepository
}

// NewClienteUseCase construye el caso de uso.
func NewClienteUseCase(clienteRepo repository.ClienteRepository) *ClienteUseCase {
	return &ClienteUseCase{clienteRepo: clienteRepo}
}

// Crear registra un cliente.
func (uc *ClienteUseCase) Crear(ctx context.Context, in dto.ClienteRequest) (*dto.ClienteResponse, error) {
	if in.Nombre == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	c := &entity.Cliente{
		Nombre:    in.Nombre,
		Documento: in.Documento,
		Email:     in.Email,
		Telefono:  in.Telefono,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.clienteRepo.Crear(c); err != nil {
		return nil, err
	}
	return toClienteResponse(c), nil
}

// GetByID obtiene un cliente por ID.
func (uc *ClienteUseCase) GetByID(ctx context.Context, id int64) (*dto.ClienteResponse, error) {
	c, err := uc.clienteRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	return toClienteResponse(c), nil
}

// Actualizar modifica un cliente existente.
func (uc *ClienteUseCase) Actualizar(ctx context.Context, id int64, in dto.ClienteRequest) (*dto.ClienteResponse, error) {
	if in.Nombre == "" {
		return nil, domain.ErrInvalidInput
	}
	c, err := uc.clienteRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	c.Nombre = in.Nombre
	c.Documento = in.Documento
	c.Email = in.Email
	c.Telefono = in.Telefono
	c.UpdatedAt = time.Now()
	if err := uc.clienteRepo.Actualizar(c); err != nil {
		return nil, err
	}
	return toClienteResponse(c), nil
}

// Listar devuelve clientes paginados.
func (uc *ClienteUseCase) Listar(ctx context.Context, limit, offset int) ([]*dto.ClienteResponse, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	list, err := uc.clienteRepo.Listar(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ClienteResponse, 0, len(list))
	for _, c := range list {
		out = append(out, toClienteResponse(c))
	}
	return out, nil
}

// Eliminar borra un cliente.
func (uc *ClienteUseCase) Eliminar(ctx context.Context, id int64) error {
	c, err := uc.clienteRepo.GetByID(id)
	if err != nil {
		return err
	}
	if c == nil {
		return domain.ErrNotFound
	}
	return uc.clienteRepo.Eliminar(id)
}

func toClienteResponse(c *entity.Cliente) *dto.ClienteResponse {
	return &dto.ClienteResponse{
		ID:        c.ID,
		Nombre:    c.Nombre,
		Documento: c.Documento,
		Email:     c.Email,
		Telefono:  c.Telefono,
		CreatedAt: c.CreatedAt,
	}
}
