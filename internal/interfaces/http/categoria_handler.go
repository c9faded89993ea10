package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/farmanet/farmacia-api/internal/application/dto"
	"github.com/farmanet/farmacia-api/internal/domain"
)

type categoriaService interface {
	Crear(ctx context.Context, in dto.CategoriaRequest) (*dto.CategoriaResponse, error)
	Actualizar(ctx context.Context, id int64, in dto.CategoriaRequest) (*dto.CategoriaResponse, error)
	Listar(ctx context.Context) ([]*dto.CategoriaResponse, error)
	Eliminar(ctx context.Context, id int64) error
}

// CategoriaHandler maneja las peticiones HTTP de categorías (protegido).
type CategoriaHandler struct {
	svc categoriaService
}

// NewCategoriaHandler construye el handler.
func NewCategoriaHandler(svc categoriaService) *CategoriaHandler {
	return &CategoriaHandler{svc: svc}
}

// Create registra una categoría.
// POST /api/categorias
func (h *CategoriaHandler) Create(c *fiber.Ctx) error {
	var in dto.CategoriaRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	cat, err := h.svc.Crear(c.Context(), in)
	if err != nil {
		return mapCategoriaError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.DataResponse{Data: cat})
}

// Update modifica una categoría.
// PUT /api/categorias/:id
func (h *CategoriaHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id inválido"})
	}
	var in dto.CategoriaRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	cat, err := h.svc.Actualizar(c.Context(), id, in)
	if err != nil {
		return mapCategoriaError(c, err)
	}
	return c.JSON(dto.DataResponse{Data: cat})
}

// List devuelve todas las categorías.
// GET /api/categorias
func (h *CategoriaHandler) List(c *fiber.Ctx) error {
	list, err := h.svc.Listar(c.Context())
	if err != nil {
		return mapCategoriaError(c, err)
	}
	return c.JSON(dto.DataResponse{Data: list})
}

// Delete borra una categoría.
// DELETE /api/categorias/:id
func (h *CategoriaHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id inválido"})
	}
	if err := h.svc.Eliminar(c.Context(), id); err != nil {
		return mapCategoriaError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func mapCategoriaError(c *fiber.Ctx, err error) error {
	if err == domain.ErrInvalidInput {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
	}
	if err == domain.ErrNotFound {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "categoría no encontrada"})
	}
	if err == domain.ErrDuplicate {
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "nombre de categoría ya registrado"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
