package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/farmanet/farmacia-api/internal/application/dto"
	"github.com/farmanet/farmacia-api/internal/domain"
)

type ajusteService interface {
	Ajustar(ctx context.Context, in dto.AjusteStockRequest) error
	ListarPorProducto(ctx context.Context, productoID int64, limit, offset int) ([]*dto.MovimientoResponse, error)
	ListarTodos(ctx context.Context, limit, offset int) ([]*dto.MovimientoResponse, error)
}

// InventarioHandler maneja ajustes manuales de stock y la bitácora de movimientos (protegido).
type InventarioHandler struct {
	svc ajusteService
}

// NewInventarioHandler construye el handler.
func NewInventarioHandler(svc ajusteService) *InventarioHandler {
	return &InventarioHandler{svc: svc}
}

// RegisterMovement aplica un ajuste manual de stock (entrada o salida).
// POST /api/inventario/movimientos
func (h *InventarioHandler) RegisterMovement(c *fiber.Ctx) error {
	var in dto.AjusteStockRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	if err := h.svc.Ajustar(c.Context(), in); err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "ajuste inválido"})
		}
		if err == domain.ErrProductoNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
		}
		if err == domain.ErrInsufficientStock {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: "stock insuficiente"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusCreated)
}

// ListMovements devuelve la bitácora global de movimientos, o la de un producto
// si llega ?id_producto.
// GET /api/inventario/movimientos
func (h *InventarioHandler) ListMovements(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 50)
	offset := c.QueryInt("offset", 0)
	productoID := int64(c.QueryInt("id_producto", 0))

	var (
		movs []*dto.MovimientoResponse
		err  error
	)
	if productoID > 0 {
		movs, err = h.svc.ListarPorProducto(c.Context(), productoID, limit, offset)
	} else {
		movs, err = h.svc.ListarTodos(c.Context(), limit, offset)
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.ListResponse{Data: movs, Limit: limit, Offset: offset})
}
