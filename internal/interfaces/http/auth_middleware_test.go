package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jbglogistica/logistica-api/internal/domain/entity"
	apphttp "github.com/jbglogistica/logistica-api/internal/interfaces/http"
	"github.com/jbglogistica/logistica-api/pkg/jwt"
)

const testJWTSecret = "secreto-de-test"

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

// buildTestApp levanta una app mínima con las rutas protegidas típicas.
func buildTestApp() *fiber.App {
	app := fiber.New()

	protected := app.Group("/api", apphttp.AuthMiddleware(testJWTSecret))
	protected.Get("/whoami", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"user_id":     apphttp.GetUserID(c),
			"store_id":    apphttp.GetStoreID(c),
			"role":        apphttp.GetRole(c),
			"permissions": apphttp.GetPermissions(c),
		})
	})
	protected.Get("/users",
		apphttp.RequirePermission(entity.PermCanManageUsers),
		func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })
	protected.Get("/customers",
		apphttp.RequirePermission(entity.PermCanManageCustomers, entity.PermCanSell),
		func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })
	protected.Get("/admin",
		apphttp.RequireRole(entity.RoleAdmin),
		func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })

	return app
}

// tokenFor genera un token firmado con el secret de test.
func tokenFor(t *testing.T, role string, permissions []string) string {
	t.Helper()
	token, err := jwt.Generate(testJWTSecret, "u-1", "s-1", role, permissions, "test", 60)
	require.NoError(t, err)
	return token
}

// doRequest ejecuta la request contra la app, opcionalmente con Bearer token.
func doRequest(t *testing.T, app *fiber.App, method, path, token string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests AuthMiddleware
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthMiddleware_SinHeader_Retorna401(t *testing.T) {
	app := buildTestApp()
	resp := doRequest(t, app, "GET", "/api/whoami", "")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_TokenMalformado_Retorna401(t *testing.T) {
	app := buildTestApp()
	resp := doRequest(t, app, "GET", "/api/whoami", "no-es-un-jwt")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_FirmaIncorrecta_Retorna401(t *testing.T) {
	app := buildTestApp()
	token, err := jwt.Generate("otro-secret", "u-1", "", entity.RoleAdmin,
		[]string{"CAN_MANAGE_USERS"}, "test", 60)
	require.NoError(t, err)

	resp := doRequest(t, app, "GET", "/api/whoami", token)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_TokenExpirado_Retorna401(t *testing.T) {
	app := buildTestApp()
	token, err := jwt.Generate(testJWTSecret, "u-1", "", entity.RoleAdmin,
		[]string{"CAN_MANAGE_USERS"}, "test", -1)
	require.NoError(t, err)

	resp := doRequest(t, app, "GET", "/api/whoami", token)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

// Un token con tags de permiso fuera de la enumeración es un token corrupto
// y se rechaza igual que uno con firma inválida.
func TestAuthMiddleware_PermisoDesconocidoEnToken_Retorna401(t *testing.T) {
	app := buildTestApp()
	token := tokenFor(t, entity.RoleAdmin, []string{"CAN_SELL", "CAN_HACK"})

	resp := doRequest(t, app, "GET", "/api/whoami", token)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_TokenValido_ExponeClaimsEnLocals(t *testing.T) {
	app := buildTestApp()
	token := tokenFor(t, entity.RoleVendedor, []string{"CAN_SELL", "CAN_MANAGE_CUSTOMERS"})

	resp := doRequest(t, app, "GET", "/api/whoami", token)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var got struct {
		UserID      string   `json:"user_id"`
		StoreID     string   `json:"store_id"`
		Role        string   `json:"role"`
		Permissions []string `json:"permissions"`
	}
	require.NoError(t, json.Unmarshal(body, &got))
	assert.Equal(t, "u-1", got.UserID)
	assert.Equal(t, "s-1", got.StoreID)
	assert.Equal(t, entity.RoleVendedor, got.Role)
	assert.ElementsMatch(t, []string{"CAN_SELL", "CAN_MANAGE_CUSTOMERS"}, got.Permissions)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RequirePermission — semántica OR
// ──────────────────────────────────────────────────────────────────────────────

func TestRequirePermission_PermisoPresente_Accede(t *testing.T) {
	app := buildTestApp()
	token := tokenFor(t, entity.RoleAdmin, []string{"CAN_MANAGE_USERS"})

	resp := doRequest(t, app, "GET", "/api/users", token)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestRequirePermission_BastaUnoDeVarios(t *testing.T) {
	app := buildTestApp()
	// La ruta exige CAN_MANAGE_CUSTOMERS o CAN_SELL; el vendedor solo tiene CAN_SELL.
	token := tokenFor(t, entity.RoleVendedor, []string{"CAN_SELL"})

	resp := doRequest(t, app, "GET", "/api/customers", token)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestRequirePermission_SinPermiso_Retorna403(t *testing.T) {
	app := buildTestApp()
	token := tokenFor(t, entity.RoleVendedor, []string{"CAN_SELL"})

	resp := doRequest(t, app, "GET", "/api/users", token)
	require.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "FORBIDDEN")
}

func TestRequirePermission_SinNingunPermiso_Retorna403(t *testing.T) {
	app := buildTestApp()
	token := tokenFor(t, entity.RoleOperador, nil)

	resp := doRequest(t, app, "GET", "/api/customers", token)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RequireRole
// ──────────────────────────────────────────────────────────────────────────────

func TestRequireRole_AdminAccedeRutaAdmin(t *testing.T) {
	app := buildTestApp()
	token := tokenFor(t, entity.RoleAdmin, []string{"CAN_MANAGE_USERS"})

	resp := doRequest(t, app, "GET", "/api/admin", token)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestRequireRole_VendedorNoAccedeRutaAdmin(t *testing.T) {
	app := buildTestApp()
	token := tokenFor(t, entity.RoleVendedor, []string{"CAN_SELL"})

	resp := doRequest(t, app, "GET", "/api/admin", token)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}
