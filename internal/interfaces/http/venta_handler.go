package http

import (
	"context"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/farmanet/farmacia-api/internal/application/dto"
	"github.com/farmanet/farmacia-api/internal/domain"
)

// ventaCreator y ventaReader son los contratos mínimos del handler; los
// implementan los casos de uso de ventas. La interfaz facilita el testeo.
type ventaCreator interface {
	CreateVenta(ctx context.Context, in dto.CreateVentaRequest) (int64, error)
}

type ventaReader interface {
	GetByID(ctx context.Context, id int64) (*dto.VentaResponse, error)
	Listar(ctx context.Context, limit, offset int) ([]*dto.VentaResponse, error)
}

// VentaHandler maneja las peticiones HTTP de ventas (protegido).
type VentaHandler struct {
	creator ventaCreator
	reader  ventaReader
}

// NewVentaHandler construye el handler.
func NewVentaHandler(creator ventaCreator, reader ventaReader) *VentaHandler {
	return &VentaHandler{creator: creator, reader: reader}
}

// Create registra una venta y descuenta stock de forma atómica.
// POST /api/ventas
func (h *VentaHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateVentaRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	if in.UsuarioID == nil {
		if userID := GetUserID(c); userID != 0 {
			in.UsuarioID = &userID
		}
	}
	id, err := h.creator.CreateVenta(c.Context(), in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos de venta inválidos"})
		}
		if err == domain.ErrProductoNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
		}
		if err == domain.ErrInsufficientStock {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: "stock insuficiente"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(dto.CreateVentaResponse{IDVenta: id})
}

// GetByID devuelve una venta con sus líneas.
// GET /api/ventas/:id
func (h *VentaHandler) GetByID(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id inválido"})
	}
	venta, err := h.reader.GetByID(c.Context(), id)
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "venta no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.DataResponse{Data: venta})
}

// List devuelve el historial de ventas paginado.
// GET /api/ventas
func (h *VentaHandler) List(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 20)
	offset := c.QueryInt("offset", 0)
	ventas, err := h.reader.Listar(c.Context(), limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.ListResponse{Data: ventas, Limit: limit, Offset: offset})
}
