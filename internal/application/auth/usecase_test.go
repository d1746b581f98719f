package auth_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jbglogistica/logistica-api/internal/application/auth"
	"github.com/jbglogistica/logistica-api/internal/application/dto"
	"github.com/jbglogistica/logistica-api/internal/domain"
	"github.com/jbglogistica/logistica-api/internal/domain/entity"
	"github.com/jbglogistica/logistica-api/pkg/jwt"
)

const testSecret = "secreto-de-test"

// fakeUserRepo repositorio en memoria indexado por email.
type fakeUserRepo struct {
	users map[string]*entity.User
}

func (r *fakeUserRepo) Create(user *entity.User) error { return nil }

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) FindByEmail(email string) (*entity.User, error) {
	return r.users[email], nil
}

func (r *fakeUserRepo) List(limit, offset int) ([]*entity.User, error) { return nil, nil }
func (r *fakeUserRepo) Update(user *entity.User) error                 { return nil }
func (r *fakeUserRepo) SetActive(id string, active bool) error         { return nil }
func (r *fakeUserRepo) Count() (int, error)                            { return len(r.users), nil }

func buildUseCase(t *testing.T, users ...*entity.User) *auth.AuthUseCase {
	t.Helper()
	repo := &fakeUserRepo{users: make(map[string]*entity.User)}
	for _, u := range users {
		repo.users[u.Email] = u
	}
	return auth.NewAuthUseCase(repo, auth.JWTConfig{
		Secret:     testSecret,
		ExpMinutes: 60,
		Issuer:     "jbg-logistica-test",
	})
}

func testUser(t *testing.T, email, password string, active bool) *entity.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return &entity.User{
		ID:           "u-1",
		Email:        email,
		PasswordHash: string(hash),
		Name:         "Usuario de prueba",
		Role: entity.Role{
			Name:        entity.RoleVendedor,
			Permissions: entity.NewPermissionSet(entity.PermCanSell),
		},
		IsActive: active,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Login
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_Exitoso_TokenConRolYPermisos(t *testing.T) {
	uc := buildUseCase(t, testUser(t, "vendedor@jbg.com", "123456", true))

	out, err := uc.Login(dto.LoginRequest{Email: "vendedor@jbg.com", Password: "123456"})
	require.NoError(t, err)
	require.NotEmpty(t, out.Token)
	assert.Equal(t, "vendedor@jbg.com", out.User.Email)

	claims, err := jwt.Parse(testSecret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleVendedor, claims.Role)
	assert.Equal(t, []string{"CAN_SELL"}, claims.Permissions)
}

func TestLogin_PasswordIncorrecta(t *testing.T) {
	uc := buildUseCase(t, testUser(t, "vendedor@jbg.com", "123456", true))

	_, err := uc.Login(dto.LoginRequest{Email: "vendedor@jbg.com", Password: "otra"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_CuentaInactiva(t *testing.T) {
	uc := buildUseCase(t, testUser(t, "inactivo@jbg.com", "123456", false))

	_, err := uc.Login(dto.LoginRequest{Email: "inactivo@jbg.com", Password: "123456"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestLogin_EmailInexistente(t *testing.T) {
	uc := buildUseCase(t)

	_, err := uc.Login(dto.LoginRequest{Email: "nadie@jbg.com", Password: "123456"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

// La rama de email inexistente compara contra un hash dummy con el costo
// default de bcrypt, así el tiempo de respuesta no revela qué emails existen.
// Una comparación con costo 10 tarda decenas de milisegundos; un retorno
// temprano sin hash tardaría microsegundos.
func TestLogin_EmailInexistente_PagaElCostoDelHash(t *testing.T) {
	uc := buildUseCase(t)

	start := time.Now()
	_, err := uc.Login(dto.LoginRequest{Email: "nadie@jbg.com", Password: "123456"})
	elapsed := time.Since(start)

	require.ErrorIs(t, err, domain.ErrUserNotFound)
	assert.GreaterOrEqual(t, elapsed, 5*time.Millisecond,
		"la rama de email inexistente debe pagar una comparación bcrypt real")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests CurrentUser
// ──────────────────────────────────────────────────────────────────────────────

func TestCurrentUser_UsuarioActivo(t *testing.T) {
	uc := buildUseCase(t, testUser(t, "vendedor@jbg.com", "123456", true))

	out, err := uc.CurrentUser("u-1")
	require.NoError(t, err)
	assert.Equal(t, "vendedor@jbg.com", out.Email)
}

func TestCurrentUser_InexistenteOInactivo(t *testing.T) {
	uc := buildUseCase(t, testUser(t, "inactivo@jbg.com", "123456", false))

	_, err := uc.CurrentUser("u-desconocido")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = uc.CurrentUser("u-1")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
