package http_test

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jbglogistica/logistica-api/internal/application/auth"
	"github.com/jbglogistica/logistica-api/internal/domain/entity"
	"github.com/jbglogistica/logistica-api/internal/domain/repository"
	apphttp "github.com/jbglogistica/logistica-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Repositorio de usuarios en memoria
// ──────────────────────────────────────────────────────────────────────────────

type memUserRepo struct {
	users map[string]*entity.User // por email
}

var _ repository.UserRepository = (*memUserRepo)(nil)

func newMemUserRepo(users ...*entity.User) *memUserRepo {
	repo := &memUserRepo{users: make(map[string]*entity.User)}
	for _, u := range users {
		repo.users[u.Email] = u
	}
	return repo
}

func (r *memUserRepo) Create(user *entity.User) error {
	r.users[user.Email] = user
	return nil
}

func (r *memUserRepo) GetByID(id string) (*entity.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) FindByEmail(email string) (*entity.User, error) {
	return r.users[email], nil
}

func (r *memUserRepo) List(limit, offset int) ([]*entity.User, error) {
	out := make([]*entity.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, u)
	}
	return out, nil
}

func (r *memUserRepo) Update(user *entity.User) error { return nil }

func (r *memUserRepo) SetActive(id string, active bool) error { return nil }

func (r *memUserRepo) Count() (int, error) { return len(r.users), nil }

func seedUser(t *testing.T, id, email, password, roleName string, perms ...entity.Permission) *entity.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	now := time.Now()
	return &entity.User{
		ID:           id,
		Email:        email,
		PasswordHash: string(hash),
		Name:         "Usuario de prueba",
		Role:         entity.Role{Name: roleName, Permissions: entity.NewPermissionSet(perms...)},
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// buildAuthApp arma la app con login real y una ruta protegida por permiso,
// el mismo cableado que usa el router de producción.
func buildAuthApp(users ...*entity.User) *fiber.App {
	uc := auth.NewAuthUseCase(newMemUserRepo(users...), auth.JWTConfig{
		Secret:     testJWTSecret,
		ExpMinutes: 60,
		Issuer:     "jbg-logistica-test",
	})
	handler := apphttp.NewAuthHandler(uc)

	app := fiber.New()
	app.Post("/api/auth/login", handler.Login)
	app.Post("/api/auth/logout", apphttp.AuthMiddleware(testJWTSecret), handler.Logout)

	protected := app.Group("/api", apphttp.AuthMiddleware(testJWTSecret))
	protected.Get("/auth/me", handler.CurrentUser)
	protected.Get("/users",
		apphttp.RequirePermission(entity.PermCanManageUsers),
		func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })

	return app
}

func postLogin(t *testing.T, app *fiber.App, email, password string) (int, string) {
	t.Helper()
	body := `{"email":"` + email + `","password":"` + password + `"}`
	req := httptest.NewRequest("POST", "/api/auth/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(raw)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests login end-to-end
// ──────────────────────────────────────────────────────────────────────────────

// Flujo completo: login del administrador sembrado, token con permisos dentro,
// y acceso a una ruta guardada por CAN_MANAGE_USERS.
func TestLogin_AdminCompletoHastaRutaProtegida(t *testing.T) {
	admin := seedUser(t, "u-admin", "admin@jbg.com", "123456", entity.RoleAdmin, entity.AllPermissions...)
	app := buildAuthApp(admin)

	status, raw := postLogin(t, app, "admin@jbg.com", "123456")
	require.Equal(t, fiber.StatusOK, status, "body: %s", raw)

	var out struct {
		Token string `json:"token"`
		User  struct {
			Email string      `json:"email"`
			Role  entity.Role `json:"role"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal([]byte(raw), &out))
	require.NotEmpty(t, out.Token)
	assert.Equal(t, "admin@jbg.com", out.User.Email)
	assert.True(t, out.User.Role.HasPermission(entity.PermCanManageUsers),
		"la respuesta de login incluye el rol con sus permisos")

	resp := doRequest(t, app, "GET", "/api/users", out.Token)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp = doRequest(t, app, "GET", "/api/auth/me", out.Token)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestLogin_VendedorNoPasaElGuardDeUsuarios(t *testing.T) {
	vendedor := seedUser(t, "u-vend", "vendedor@jbg.com", "123456",
		entity.RoleVendedor, entity.PermCanSell, entity.PermCanManageCustomers)
	app := buildAuthApp(vendedor)

	status, raw := postLogin(t, app, "vendedor@jbg.com", "123456")
	require.Equal(t, fiber.StatusOK, status)

	var out struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal([]byte(raw), &out))

	resp := doRequest(t, app, "GET", "/api/users", out.Token)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode,
		"login válido no implica acceso: falta CAN_MANAGE_USERS")
}

func TestLogin_PasswordIncorrecta_Retorna401(t *testing.T) {
	admin := seedUser(t, "u-admin", "admin@jbg.com", "123456", entity.RoleAdmin, entity.AllPermissions...)
	app := buildAuthApp(admin)

	status, raw := postLogin(t, app, "admin@jbg.com", "incorrecta")
	assert.Equal(t, fiber.StatusUnauthorized, status)
	assert.Contains(t, raw, "UNAUTHORIZED")
}

func TestLogin_EmailInexistente_Retorna401(t *testing.T) {
	app := buildAuthApp()

	status, raw := postLogin(t, app, "nadie@jbg.com", "123456")
	assert.Equal(t, fiber.StatusUnauthorized, status)
	// El mensaje no distingue "no existe" de "password mal": no filtra qué emails hay.
	assert.Contains(t, raw, "credenciales inválidas")
}

func TestLogin_CuentaInactiva_Retorna403(t *testing.T) {
	inactivo := seedUser(t, "u-ina", "inactivo@jbg.com", "123456", entity.RoleVendedor, entity.PermCanSell)
	inactivo.IsActive = false
	app := buildAuthApp(inactivo)

	status, raw := postLogin(t, app, "inactivo@jbg.com", "123456")
	assert.Equal(t, fiber.StatusForbidden, status)
	assert.Contains(t, raw, "cuenta inactiva")
}

func TestLogout_ConTokenValido_Retorna204(t *testing.T) {
	admin := seedUser(t, "u-admin", "admin@jbg.com", "123456", entity.RoleAdmin, entity.AllPermissions...)
	app := buildAuthApp(admin)

	_, raw := postLogin(t, app, "admin@jbg.com", "123456")
	var out struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal([]byte(raw), &out))

	resp := doRequest(t, app, "POST", "/api/auth/logout", out.Token)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
}
