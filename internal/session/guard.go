package session

import "github.com/jbglogistica/logistica-api/internal/domain/entity"

// Action resultado de evaluar una navegación protegida.
type Action int

const (
	ActionShowLoading      Action = iota // sesión inicializando: placeholder, sin redirect
	ActionRedirectLogin                  // no autenticado
	ActionRedirectFallback               // autenticado pero sin rol/permiso requerido
	ActionRender                         // autorizado
)

// Rutas por defecto del guard.
const (
	LoginPath           = "/login"
	DefaultFallbackPath = "/"
)

// Rule requisitos de un destino de navegación. Ambos predicados son opcionales
// y se consideran satisfechos si están ausentes. Los permisos son OR: basta
// con uno.
type Rule struct {
	Roles       []string
	Permissions []entity.Permission
	Fallback    string // ruta ante autorización fallida; vacío = DefaultFallbackPath
}

// Decision veredicto del guard. RequestedPath conserva la ruta pedida para que
// un caller pueda implementar "volver después de login" si algún día se decide
// (hoy se descarta, ver DESIGN.md).
type Decision struct {
	Action        Action
	Target        string // ruta destino cuando la acción es un redirect
	RequestedPath string
}

// Evaluate decide qué hacer con una navegación dado el estado de sesión.
//
//	PENDING         → placeholder de carga, nunca redirige.
//	UNAUTHENTICATED → redirect a login, descartando la ruta pedida.
//	AUTHENTICATED   → evalúa predicados de rol y permiso; si alguno falla,
//	                  redirect al fallback; si ambos pasan, renderiza.
func Evaluate(snap Snapshot, path string, rule Rule) Decision {
	switch snap.State {
	case StatePending:
		return Decision{Action: ActionShowLoading, RequestedPath: path}
	case StateUnauthenticated:
		return Decision{Action: ActionRedirectLogin, Target: LoginPath, RequestedPath: path}
	}

	fallback := rule.Fallback
	if fallback == "" {
		fallback = DefaultFallbackPath
	}

	if snap.User == nil {
		// Autenticado sin usuario cacheado no debería ocurrir; tratar como no autorizado.
		return Decision{Action: ActionRedirectFallback, Target: fallback, RequestedPath: path}
	}

	if len(rule.Roles) > 0 && !roleAllowed(snap.User.Role.Name, rule.Roles) {
		return Decision{Action: ActionRedirectFallback, Target: fallback, RequestedPath: path}
	}
	if len(rule.Permissions) > 0 && !snap.User.Permissions().Intersects(rule.Permissions) {
		return Decision{Action: ActionRedirectFallback, Target: fallback, RequestedPath: path}
	}
	return Decision{Action: ActionRender, RequestedPath: path}
}

func roleAllowed(role string, allowed []string) bool {
	for _, r := range allowed {
		if r == role {
			return true
		}
	}
	return false
}
