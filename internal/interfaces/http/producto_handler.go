package http

import (
	"context"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/farmanet/farmacia-api/internal/application/dto"
	"github.com/farmanet/farmacia-api/internal/domain"
)

type productoService interface {
	Crear(ctx context.Context, in dto.CreateProductoRequest) (*dto.ProductoResponse, error)
	GetByID(ctx context.Context, id int64) (*dto.ProductoResponse, error)
	Actualizar(ctx context.Context, id int64, in dto.UpdateProductoRequest) (*dto.ProductoResponse, error)
	Listar(ctx context.Context, limit, offset int) ([]*dto.ProductoResponse, error)
	ListarBajoStock(ctx context.Context) ([]*dto.ProductoResponse, error)
	Eliminar(ctx context.Context, id int64) error
}

// ProductoHandler maneja las peticiones HTTP del catálogo de productos (protegido).
type ProductoHandler struct {
	svc productoService
}

// NewProductoHandler construye el handler.
func NewProductoHandler(svc productoService) *ProductoHandler {
	return &ProductoHandler{svc: svc}
}

// Create registra un producto.
// POST /api/productos
func (h *ProductoHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductoRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	p, err := h.svc.Crear(c.Context(), in)
	if err != nil {
		return mapProductoError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.DataResponse{Data: p})
}

// GetByID obtiene un producto.
// GET /api/productos/:id
func (h *ProductoHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id inválido"})
	}
	p, err := h.svc.GetByID(c.Context(), id)
	if err != nil {
		return mapProductoError(c, err)
	}
	return c.JSON(dto.DataResponse{Data: p})
}

// Update modifica los datos de catálogo de un producto (no el stock).
// PUT /api/productos/:id
func (h *ProductoHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id inválido"})
	}
	var in dto.UpdateProductoRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	p, err := h.svc.Actualizar(c.Context(), id, in)
	if err != nil {
		return mapProductoError(c, err)
	}
	return c.JSON(dto.DataResponse{Data: p})
}

// List devuelve productos paginados.
// GET /api/productos
func (h *ProductoHandler) List(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 20)
	offset := c.QueryInt("offset", 0)
	list, err := h.svc.Listar(c.Context(), limit, offset)
	if err != nil {
		return mapProductoError(c, err)
	}
	return c.JSON(dto.ListResponse{Data: list, Limit: limit, Offset: offset})
}

// ListLowStock devuelve los productos en o bajo su stock mínimo.
// GET /api/productos/bajo-stock
func (h *ProductoHandler) ListLowStock(c *fiber.Ctx) error {
	list, err := h.svc.ListarBajoStock(c.Context())
	if err != nil {
		return mapProductoError(c, err)
	}
	return c.JSON(dto.DataResponse{Data: list})
}

// Delete borra un producto.
// DELETE /api/productos/:id
func (h *ProductoHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id inválido"})
	}
	if err := h.svc.Eliminar(c.Context(), id); err != nil {
		return mapProductoError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func mapProductoError(c *fiber.Ctx, err error) error {
	if err == domain.ErrInvalidInput {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
	}
	if err == domain.ErrProductoNotFound {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
	}
	if err == domain.ErrDuplicate {
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "producto duplicado"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}

// parseID lee el path param :id como int64 positivo.
func parseID(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.ErrInvalidInput
	}
	return id, nil
}
