package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/farmanet/farmacia-api/internal/application/dto"
	"github.com/farmanet/farmacia-api/internal/domain"
)

type clienteService interface {
	Crear(ctx context.Context, in dto.ClienteRequest) (*dto.ClienteResponse, error)
	GetByID(ctx context.Context, id int64) (*dto.ClienteResponse, error)
	Actualizar(ctx context.Context, id int64, in dto.ClienteRequest) (*dto.ClienteResponse, error)
	Listar(ctx context.Context, limit, offset int) ([]*dto.ClienteResponse, error)
	Eliminar(ctx context.Context, id int64) error
}

// ClienteHandler maneja las peticiones HTTP de clientes (protegido).
type ClienteHandler struct {
	svc clienteService
}

// NewClienteHandler construye el handler.
func NewClienteHandler(svc clienteService) *ClienteHandler {
	return &ClienteHandler{svc: svc}
}

// Create registra un cliente.
// POST /api/clientes
func (h *ClienteHandler) Create(c *fiber.Ctx) error {
	var in dto.ClienteRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	cliente, err := h.svc.Crear(c.Context(), in)
	if err != nil {
		return mapClienteError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.DataResponse{Data: cliente})
}

// GetByID obtiene un cliente.
// GET /api/clientes/:id
func (h *ClienteHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id inválido"})
	}
	cliente, err := h.svc.GetByID(c.Context(), id)
	if err != nil {
		return mapClienteError(c, err)
	}
	return c.JSON(dto.DataResponse{Data: cliente})
}

// Update modifica un cliente.
// PUT /api/clientes/:id
func (h *ClienteHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id inválido"})
	}
	var in dto.ClienteRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	cliente, err := h.svc.Actualizar(c.Context(), id, in)
	if err != nil {
		return mapClienteError(c, err)
	}
	return c.JSON(dto.DataResponse{Data: cliente})
}

// List devuelve clientes paginados.
// GET /api/clientes
func (h *ClienteHandler) List(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 20)
	offset := c.QueryInt("offset", 0)
	list, err := h.svc.Listar(c.Context(), limit, offset)
	if err != nil {
		return mapClienteError(c, err)
	}
	return c.JSON(dto.ListResponse{Data: list, Limit: limit, Offset: offset})
}

// Delete borra un cliente.
// DELETE /api/clientes/:id
func (h *ClienteHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id inválido"})
	}
	if err := h.svc.Eliminar(c.Context(), id); err != nil {
		return mapClienteError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func mapClienteError(c *fiber.Ctx, err error) error {
	if err == domain.ErrInvalidInput {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
	}
	if err == domain.ErrNotFound {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "cliente no encontrado"})
	}
	if err == domain.ErrDuplicate {
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "documento ya registrado"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
