package session_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jbglogistica/logistica-api/internal/domain"
	"github.com/jbglogistica/logistica-api/internal/domain/entity"
	"github.com/jbglogistica/logistica-api/internal/session"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fake de la API remota
// ──────────────────────────────────────────────────────────────────────────────

// fakeAPI implementa session.API contando llamadas y con respuestas programables.
type fakeAPI struct {
	loginToken string
	loginUser  *entity.User
	loginErr   error

	currentUser *entity.User
	currentErr  error

	logoutErr error

	loginCalls   int
	currentCalls int
	logoutCalls  int
}

func (f *fakeAPI) Login(_ context.Context, _, _ string) (string, *entity.User, error) {
	f.loginCalls++
	return f.loginToken, f.loginUser, f.loginErr
}

func (f *fakeAPI) Logout(_ context.Context, _ string) error {
	f.logoutCalls++
	return f.logoutErr
}

func (f *fakeAPI) CurrentUser(_ context.Context, _ string) (*entity.User, error) {
	f.currentCalls++
	return f.currentUser, f.currentErr
}

func adminUser() *entity.User {
	return &entity.User{
		ID:    "u-1",
		Email: "admin@jbg.com",
		Name:  "Administrador",
		Role: entity.Role{
			Name:        entity.RoleAdmin,
			Permissions: entity.NewPermissionSet(entity.AllPermissions...),
		},
		IsActive: true,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Initialize — restauración al arranque
// ──────────────────────────────────────────────────────────────────────────────

// Sin token persistido la restauración resuelve logged-out de inmediato,
// sin tocar la red.
func TestInitialize_SinToken_NoLlamaLaRed(t *testing.T) {
	api := &fakeAPI{}
	store := session.NewStore(api, session.NewMemoryStorage(""), 0)

	snap := store.Initialize(context.Background())

	assert.Equal(t, session.StateUnauthenticated, snap.State)
	assert.Nil(t, snap.User)
	assert.Zero(t, api.currentCalls, "sin credencial no hay ninguna llamada remota")
}

func TestInitialize_TokenValido_RestauraSesion(t *testing.T) {
	api := &fakeAPI{currentUser: adminUser()}
	store := session.NewStore(api, session.NewMemoryStorage("tok-1"), 0)

	snap := store.Initialize(context.Background())

	require.Equal(t, session.StateAuthenticated, snap.State)
	assert.Equal(t, "admin@jbg.com", snap.User.Email)
	assert.Equal(t, 1, api.currentCalls)
}

// Un token rechazado por el backend limpia la credencial persistida y degrada
// a no autenticado; Initialize jamás propaga el error.
func TestInitialize_TokenRechazado_LimpiaCredencial(t *testing.T) {
	api := &fakeAPI{currentErr: domain.ErrUnauthorized}
	storage := session.NewMemoryStorage("tok-vencido")
	store := session.NewStore(api, storage, 0)

	snap := store.Initialize(context.Background())

	assert.Equal(t, session.StateUnauthenticated, snap.State)
	assert.Nil(t, snap.User)
	_, ok := storage.Token()
	assert.False(t, ok, "el token rechazado debe eliminarse del storage")
}

func TestInitialize_BackendCaido_DegradaSinPanico(t *testing.T) {
	api := &fakeAPI{currentErr: errors.New("connection refused")}
	store := session.NewStore(api, session.NewMemoryStorage("tok-1"), 0)

	assert.NotPanics(t, func() {
		snap := store.Initialize(context.Background())
		assert.Equal(t, session.StateUnauthenticated, snap.State)
	})
}

func TestSnapshot_AntesDeInitialize_EsPending(t *testing.T) {
	store := session.NewStore(&fakeAPI{}, session.NewMemoryStorage(""), 0)
	assert.Equal(t, session.StatePending, store.Snapshot().State)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Login
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_Exitoso_PersisteTokenYCacheaUsuario(t *testing.T) {
	api := &fakeAPI{loginToken: "tok-nuevo", loginUser: adminUser()}
	storage := session.NewMemoryStorage("")
	store := session.NewStore(api, storage, 0)

	user, err := store.Login(context.Background(), "admin@jbg.com", "123456")
	require.NoError(t, err)
	assert.Equal(t, "admin@jbg.com", user.Email)

	token, ok := storage.Token()
	require.True(t, ok)
	assert.Equal(t, "tok-nuevo", token)
	assert.Equal(t, session.StateAuthenticated, store.Snapshot().State)
}

// La validación local de forma corta el flujo antes de tocar la red.
func TestLogin_EntradaInvalida_NoLlamaLaRed(t *testing.T) {
	api := &fakeAPI{}
	store := session.NewStore(api, session.NewMemoryStorage(""), 0)

	casos := []struct{ email, password string }{
		{"", "123456"},
		{"sin-arroba", "123456"},
		{"@empieza.com", "123456"},
		{"termina@", "123456"},
		{"admin@jbg.com", ""},
	}
	for _, c := range casos {
		_, err := store.Login(context.Background(), c.email, c.password)
		require.Error(t, err, "email=%q password=%q", c.email, c.password)
		_, ok := domain.AsValidationError(err)
		assert.True(t, ok)
	}
	assert.Zero(t, api.loginCalls, "entrada malformada nunca llega al backend")
}

func TestLogin_CredencialesInvalidas_EstadoPrevioIntacto(t *testing.T) {
	api := &fakeAPI{loginErr: domain.ErrUnauthorized}
	store := session.NewStore(api, session.NewMemoryStorage(""), 0)
	store.Initialize(context.Background())

	_, err := store.Login(context.Background(), "admin@jbg.com", "incorrecta")
	require.ErrorIs(t, err, domain.ErrUnauthorized)
	assert.Equal(t, session.StateUnauthenticated, store.Snapshot().State)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Logout
// ──────────────────────────────────────────────────────────────────────────────

// El logout remoto es best-effort: aunque falle, el estado local SIEMPRE queda limpio.
func TestLogout_FallaRemota_LimpiaIgualElEstadoLocal(t *testing.T) {
	api := &fakeAPI{
		loginToken: "tok-1", loginUser: adminUser(),
		logoutErr: errors.New("backend caído"),
	}
	storage := session.NewMemoryStorage("")
	store := session.NewStore(api, storage, 0)

	_, err := store.Login(context.Background(), "admin@jbg.com", "123456")
	require.NoError(t, err)

	store.Logout(context.Background())

	assert.Equal(t, 1, api.logoutCalls, "se intenta notificar al backend")
	assert.Equal(t, session.StateUnauthenticated, store.Snapshot().State)
	assert.Nil(t, store.CurrentUser())
	_, ok := storage.Token()
	assert.False(t, ok, "la credencial local se elimina aunque el remoto falle")
}

func TestLogout_SinToken_NoLlamaLaRed(t *testing.T) {
	api := &fakeAPI{}
	store := session.NewStore(api, session.NewMemoryStorage(""), 0)

	store.Logout(context.Background())

	assert.Zero(t, api.logoutCalls)
	assert.Equal(t, session.StateUnauthenticated, store.Snapshot().State)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Subscribe — observadores y generaciones
// ──────────────────────────────────────────────────────────────────────────────

func TestSubscribe_NotificaCadaMutacion(t *testing.T) {
	api := &fakeAPI{loginToken: "tok-1", loginUser: adminUser()}
	store := session.NewStore(api, session.NewMemoryStorage(""), 0)

	var estados []session.State
	unsubscribe := store.Subscribe(func(snap session.Snapshot) {
		estados = append(estados, snap.State)
	})

	store.Initialize(context.Background())
	_, err := store.Login(context.Background(), "admin@jbg.com", "123456")
	require.NoError(t, err)
	store.Logout(context.Background())

	assert.Equal(t, []session.State{
		session.StateUnauthenticated,
		session.StateAuthenticated,
		session.StateUnauthenticated,
	}, estados)

	// Tras desuscribirse no llegan más notificaciones.
	unsubscribe()
	store.Logout(context.Background())
	assert.Len(t, estados, 3)
}

// Una restauración lenta que resuelve después de un login no debe pisar la
// sesión nueva: su generación ya es vieja, el commit se descarta y la
// credencial recién guardada sigue en el storage.
func TestInitialize_RespuestaVieja_NoPisaLoginPosterior(t *testing.T) {
	blocker := make(chan struct{})
	api := &slowAPI{
		fakeAPI: fakeAPI{
			loginToken: "tok-nuevo",
			loginUser:  adminUser(),
			currentErr: domain.ErrUnauthorized,
		},
		block: blocker,
	}
	storage := session.NewMemoryStorage("tok-viejo")
	store := session.NewStore(api, storage, time.Second)

	done := make(chan session.Snapshot, 1)
	go func() {
		done <- store.Initialize(context.Background())
	}()

	// El login gana la carrera mientras la restauración sigue bloqueada.
	time.Sleep(10 * time.Millisecond)
	_, err := store.Login(context.Background(), "admin@jbg.com", "123456")
	require.NoError(t, err)

	close(blocker)
	<-done

	snap := store.Snapshot()
	assert.Equal(t, session.StateAuthenticated, snap.State,
		"la respuesta vieja de la restauración no debe degradar la sesión nueva")
	require.NotNil(t, snap.User)
	assert.Equal(t, "admin@jbg.com", snap.User.Email)

	// La restauración rechazada limpia credenciales, pero solo las de su propia
	// generación: el token del login debe sobrevivir para el próximo arranque.
	token, ok := storage.Token()
	require.True(t, ok, "la credencial nueva no debe borrarse por la restauración vieja")
	assert.Equal(t, "tok-nuevo", token)
}

// slowAPI retrasa CurrentUser hasta que se cierre el canal block.
type slowAPI struct {
	fakeAPI
	block chan struct{}
}

func (s *slowAPI) CurrentUser(ctx context.Context, token string) (*entity.User, error) {
	<-s.block
	return s.fakeAPI.CurrentUser(ctx, token)
}
