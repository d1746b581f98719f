// Package session implementa el SDK de sesión del dashboard: restauración al
// arranque, login/logout y el guard de navegación. Hay exactamente un escritor
// (el propio store) y muchos lectores vía Snapshot/Subscribe.
package session

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/jbglogistica/logistica-api/internal/domain"
	"github.com/jbglogistica/logistica-api/internal/domain/entity"
)

// State estado de autenticación de la sesión.
type State int

const (
	StatePending State = iota // inicialización en curso
	StateUnauthenticated
	StateAuthenticated
)

// Snapshot vista inmutable del estado de sesión para lectores.
type Snapshot struct {
	State State
	User  *entity.User
}

// IsAuthenticated azúcar para los lectores.
func (s Snapshot) IsAuthenticated() bool { return s.State == StateAuthenticated }

// DefaultRestoreTimeout timeout de la restauración si no se configura otro.
// Un "who am I" colgado no puede dejar la app en PENDING para siempre.
const DefaultRestoreTimeout = 10 * time.Second

// Store única fuente de verdad de "quién está logueado".
type Store struct {
	mu             sync.Mutex
	api            API
	storage        CredentialStorage
	restoreTimeout time.Duration

	state State
	user  *entity.User
	gen   uint64 // contador de generación: una respuesta vieja no pisa estado nuevo

	subs   map[int]func(Snapshot)
	nextID int
}

// NewStore construye el store. restoreTimeout <= 0 usa DefaultRestoreTimeout.
func NewStore(api API, storage CredentialStorage, restoreTimeout time.Duration) *Store {
	if restoreTimeout <= 0 {
		restoreTimeout = DefaultRestoreTimeout
	}
	return &Store{
		api:            api,
		storage:        storage,
		restoreTimeout: restoreTimeout,
		state:          StatePending,
		subs:           make(map[int]func(Snapshot)),
	}
}

// Snapshot lectura sin efectos del estado actual.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot{State: s.state, User: s.user}
}

// CurrentUser devuelve el usuario cacheado o nil.
func (s *Store) CurrentUser() *entity.User {
	return s.Snapshot().User
}

// Subscribe registra un observador; devuelve la función para desuscribirse.
// El observador recibe el snapshot en cada mutación (init, login, logout).
func (s *Store) Subscribe(fn func(Snapshot)) func() {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	s.mu.Unlock()
	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

// Initialize restaura la sesión desde el token persistido. Nunca devuelve
// error: un token ausente, inválido o un backend caído degradan a
// "no autenticado" (el dashboard siempre debe renderizar alguna pantalla).
func (s *Store) Initialize(ctx context.Context) Snapshot {
	token, ok := s.storage.Token()
	if !ok {
		// Sin credencial: logged-out inmediato, sin tocar la red.
		return s.commit(s.currentGen(), StateUnauthenticated, nil)
	}

	gen := s.currentGen()

	ctx, cancel := context.WithTimeout(ctx, s.restoreTimeout)
	defer cancel()

	user, err := s.api.CurrentUser(ctx, token)
	if err != nil || user == nil {
		// Token vencido o backend inalcanzable: limpiar credencial y degradar.
		// El borrado respeta la generación igual que commit: una restauración
		// que resuelve tarde no borra el token que un login más nuevo guardó.
		s.clearIfCurrent(gen)
		return s.commit(gen, StateUnauthenticated, nil)
	}
	return s.commit(gen, StateAuthenticated, user)
}

// Login valida la forma localmente, llama al backend y, si tiene éxito,
// persiste la credencial y cachea el usuario. Ante error el estado previo
// queda intacto.
func (s *Store) Login(ctx context.Context, email, password string) (*entity.User, error) {
	if err := validateLoginInput(email, password); err != nil {
		return nil, err
	}

	token, user, err := s.api.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}

	// Avanzar la generación antes de persistir: desde este punto ninguna
	// restauración en vuelo puede limpiar la credencial nueva.
	s.mu.Lock()
	s.gen++
	gen := s.gen
	s.mu.Unlock()

	if err := s.storage.Save(token); err != nil {
		return nil, err
	}
	s.commit(gen, StateAuthenticated, user)
	return user, nil
}

// Logout notifica al backend best-effort y limpia SIEMPRE el estado local,
// aunque la llamada remota falle.
func (s *Store) Logout(ctx context.Context) {
	token, ok := s.storage.Token()
	if ok {
		_ = s.api.Logout(ctx, token) // best-effort: el fallo de red no bloquea el logout local
	}
	_ = s.storage.Clear()

	s.mu.Lock()
	s.gen++
	gen := s.gen
	s.mu.Unlock()
	s.commit(gen, StateUnauthenticated, nil)
}

// clearIfCurrent elimina la credencial persistida salvo que una mutación más
// nueva haya avanzado la generación: en ese caso el token en storage ya
// pertenece a la sesión nueva y no se toca.
func (s *Store) clearIfCurrent(gen uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen < s.gen {
		return
	}
	_ = s.storage.Clear()
}

// currentGen lee la generación vigente.
func (s *Store) currentGen() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.gen
}

// commit aplica la mutación solo si la generación sigue vigente (una respuesta
// en vuelo de una generación anterior se descarta) y notifica observadores.
func (s *Store) commit(gen uint64, state State, user *entity.User) Snapshot {
	s.mu.Lock()
	if gen < s.gen {
		snap := Snapshot{State: s.state, User: s.user}
		s.mu.Unlock()
		return snap
	}
	s.state = state
	s.user = user
	snap := Snapshot{State: state, User: user}
	subs := make([]func(Snapshot), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	s.mu.Unlock()

	for _, fn := range subs {
		fn(snap)
	}
	return snap
}

// validateLoginInput chequeo local de forma antes de tocar la red.
func validateLoginInput(email, password string) error {
	ve := &domain.ValidationError{}
	if email == "" {
		ve.Add("email", "el email es requerido")
	} else if !strings.Contains(email, "@") || strings.HasPrefix(email, "@") || strings.HasSuffix(email, "@") {
		ve.Add("email", "formato de email inválido")
	}
	if password == "" {
		ve.Add("password", "el password es requerido")
	}
	if ve.HasErrors() {
		return ve
	}
	return nil
}
