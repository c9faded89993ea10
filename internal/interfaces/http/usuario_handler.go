package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/farmanet/farmacia-api/internal/application/dto"
	"github.com/farmanet/farmacia-api/internal/domain"
)

type usuarioService interface {
	Crear(ctx context.Context, in dto.CreateUsuarioRequest) (*dto.UsuarioResponse, error)
	Listar(ctx context.Context, limit, offset int) ([]*dto.UsuarioResponse, error)
}

// UsuarioHandler administración de usuarios (solo admin).
type UsuarioHandler struct {
	svc usuarioService
}

// NewUsuarioHandler construye el handler.
func NewUsuarioHandler(svc usuarioService) *UsuarioHandler {
	return &UsuarioHandler{svc: svc}
}

// Create registra un usuario del sistema.
// POST /api/usuarios
func (h *UsuarioHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateUsuarioRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	u, err := h.svc.Crear(c.Context(), in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
		}
		if err == domain.ErrEmailAlreadyExists {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "EMAIL_EXISTS", Message: "el email ya está registrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(dto.DataResponse{Data: u})
}

// List devuelve usuarios paginados.
// GET /api/usuarios
func (h *UsuarioHandler) List(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 20)
	offset := c.QueryInt("offset", 0)
	list, err := h.svc.Listar(c.Context(), limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.ListResponse{Data: list, Limit: limit, Offset: offset})
}
