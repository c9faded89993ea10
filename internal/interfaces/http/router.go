package http

import (
	"github.com/gofiber/fiber/v2"

	authuc "github.com/farmanet/farmacia-api/internal/application/auth"
	"github.com/farmanet/farmacia-api/internal/application/inventario"
	"github.com/farmanet/farmacia-api/internal/application/usecase"
	"github.com/farmanet/farmacia-api/internal/application/ventas"
	"github.com/farmanet/farmacia-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CreateVenta *ventas.CreateVentaUseCase
	GetVenta    *ventas.GetVentaUseCase
	AjusteStock *inventario.AjusteStockUseCase
	ProductoUC  *usecase.ProductoUseCase
	ClienteUC   *usecase.ClienteUseCase
	CategoriaUC *usecase.CategoriaUseCase
	UsuarioUC   *usecase.UsuarioUseCase
	AuthUC      *authuc.UseCase
	TokenStore  authuc.TokenStore // nil = revocación deshabilitada
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (login público, logout requiere token en el header)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/logout", authHandler.Logout)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret, deps.TokenStore))

	// Ventas (protegido, cualquier rol autenticado)
	ventasGroup := protected.Group("/ventas")
	ventaHandler := NewVentaHandler(deps.CreateVenta, deps.GetVenta)
	ventasGroup.Post("/", ventaHandler.Create)
	ventasGroup.Get("/", ventaHandler.List)
	ventasGroup.Get("/:id", ventaHandler.GetByID)

	// Productos (protegido; escritura solo admin y farmaceutico)
	productos := protected.Group("/productos")
	productoHandler := NewProductoHandler(deps.ProductoUC)
	productos.Get("/", productoHandler.List)
	productos.Get("/bajo-stock", productoHandler.ListLowStock)
	productos.Get("/:id", productoHandler.GetByID)
	escrituraCatalogo := RequireRole(entity.RolAdmin, entity.RolFarmaceutico)
	productos.Post("/", escrituraCatalogo, productoHandler.Create)
	productos.Put("/:id", escrituraCatalogo, productoHandler.Update)
	productos.Delete("/:id", RequireRole(entity.RolAdmin), productoHandler.Delete)

	// Inventario (protegido; ajustes solo admin y farmaceutico)
	invGroup := protected.Group("/inventario")
	inventarioHandler := NewInventarioHandler(deps.AjusteStock)
	invGroup.Post("/movimientos", escrituraCatalogo, inventarioHandler.RegisterMovement)
	invGroup.Get("/movimientos", inventarioHandler.ListMovements)

	// Clientes (protegido)
	clientes := protected.Group("/clientes")
	clienteHandler := NewClienteHandler(deps.ClienteUC)
	clientes.Post("/", clienteHandler.Create)
	clientes.Get("/", clienteHandler.List)
	clientes.Get("/:id", clienteHandler.GetByID)
	clientes.Put("/:id", clienteHandler.Update)
	clientes.Delete("/:id", RequireRole(entity.RolAdmin), clienteHandler.Delete)

	// Categorías (protegido; escritura solo admin y farmaceutico)
	categorias := protected.Group("/categorias")
	categoriaHandler := NewCategoriaHandler(deps.CategoriaUC)
	categorias.Get("/", categoriaHandler.List)
	categorias.Post("/", escrituraCatalogo, categoriaHandler.Create)
	categorias.Put("/:id", escrituraCatalogo, categoriaHandler.Update)
	categorias.Delete("/:id", RequireRole(entity.RolAdmin), categoriaHandler.Delete)

	// Usuarios (solo admin)
	usuarios := protected.Group("/usuarios", RequireRole(entity.RolAdmin))
	usuarioHandler := NewUsuarioHandler(deps.UsuarioUC)
	usuarios.Post("/", usuarioHandler.Create)
	usuarios.Get("/", usuarioHandler.List)
}
