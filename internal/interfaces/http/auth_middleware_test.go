package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/farmanet/farmacia-api/internal/domain/entity"
	apphttp "github.com/farmanet/farmacia-api/internal/interfaces/http"
	pkgjwt "github.com/farmanet/farmacia-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testIssuer    = "farmacia-api-test"
	testExpMin    = 60
)

// memTokenStore implementa auth.TokenStore en memoria para los tests.
type memTokenStore struct {
	revocados map[string]bool
	fallar    bool
}

func newMemTokenStore() *memTokenStore {
	return &memTokenStore{revocados: make(map[string]bool)}
}

func (s *memTokenStore) Revocar(ctx context.Context, jti string, ttl time.Duration) error {
	s.revocados[jti] = true
	return nil
}

func (s *memTokenStore) EstaRevocado(ctx context.Context, jti string) (bool, error) {
	if s.fallar {
		return false, assert.AnError
	}
	return s.revocados[jti], nil
}

// buildTestApp construye una aplicación Fiber mínima con:
//   - AuthMiddleware para parsear el JWT, verificar revocación y cargar locals
//   - RequireRole para autorizar el acceso
//   - Un handler dummy que devuelve 200 si pasa los middlewares
func buildTestApp(store *memTokenStore, allowedRoles ...string) *fiber.App {
	app := fiber.New()
	app.Get("/protected",
		apphttp.AuthMiddleware(testJWTSecret, store),
		apphttp.RequireRole(allowedRoles...),
		func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusOK).JSON(fiber.Map{
				"ok":  true,
				"rol": apphttp.GetRol(c),
			})
		},
	)
	return app
}

// tokenForRole genera un JWT con el rol indicado.
func tokenForRole(t *testing.T, rol string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, 1, rol, testIssuer, testExpMin)
	require.NoError(t, err, "debe generarse un token JWT válido")
	return "Bearer " + tok
}

func doRequest(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// AuthMiddleware
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthMiddleware_SinHeaderDevuelve401(t *testing.T) {
	app := buildTestApp(newMemTokenStore(), entity.RolAdmin)
	resp := doRequest(t, app, "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_FormatoInvalidoDevuelve401(t *testing.T) {
	app := buildTestApp(newMemTokenStore(), entity.RolAdmin)
	resp := doRequest(t, app, "Basic abc123")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_TokenInvalidoDevuelve401(t *testing.T) {
	app := buildTestApp(newMemTokenStore(), entity.RolAdmin)
	resp := doRequest(t, app, "Bearer token-que-no-es-jwt")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_TokenRevocadoDevuelve401(t *testing.T) {
	store := newMemTokenStore()
	app := buildTestApp(store, entity.RolAdmin)

	tok, err := pkgjwt.Generate(testJWTSecret, 1, entity.RolAdmin, testIssuer, testExpMin)
	require.NoError(t, err)
	claims, err := pkgjwt.Parse(testJWTSecret, tok)
	require.NoError(t, err)
	require.NoError(t, store.Revocar(context.Background(), claims.ID, time.Minute))

	resp := doRequest(t, app, "Bearer "+tok)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_StoreCaidoDevuelve503(t *testing.T) {
	store := newMemTokenStore()
	store.fallar = true
	app := buildTestApp(store, entity.RolAdmin)

	resp := doRequest(t, app, tokenForRole(t, entity.RolAdmin))
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}

func TestAuthMiddleware_SinStoreOmiteLaVerificacion(t *testing.T) {
	app := fiber.New()
	app.Get("/protected",
		apphttp.AuthMiddleware(testJWTSecret, nil),
		func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) },
	)
	resp := doRequest(t, app, tokenForRole(t, entity.RolVendedor))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// RequireRole (RBAC)
// ──────────────────────────────────────────────────────────────────────────────

func TestRequireRole_AdminAccedeRutaAdmin(t *testing.T) {
	app := buildTestApp(newMemTokenStore(), entity.RolAdmin)
	resp := doRequest(t, app, tokenForRole(t, entity.RolAdmin))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRequireRole_VendedorNoAccedeRutaAdmin(t *testing.T) {
	app := buildTestApp(newMemTokenStore(), entity.RolAdmin)
	resp := doRequest(t, app, tokenForRole(t, entity.RolVendedor))
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestRequireRole_VariosRolesPermitidos(t *testing.T) {
	app := buildTestApp(newMemTokenStore(), entity.RolAdmin, entity.RolFarmaceutico)

	resp := doRequest(t, app, tokenForRole(t, entity.RolFarmaceutico))
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doRequest(t, app, tokenForRole(t, entity.RolVendedor))
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}
