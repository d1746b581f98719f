package session_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jbglogistica/logistica-api/internal/domain/entity"
	"github.com/jbglogistica/logistica-api/internal/session"
)

func snapshotFor(user *entity.User) session.Snapshot {
	return session.Snapshot{State: session.StateAuthenticated, User: user}
}

func userWith(perms ...entity.Permission) *entity.User {
	return &entity.User{
		ID:    "u-2",
		Email: "vendedor@jbg.com",
		Role: entity.Role{
			Name:        entity.RoleVendedor,
			Permissions: entity.NewPermissionSet(perms...),
		},
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Evaluate — por estado de sesión
// ──────────────────────────────────────────────────────────────────────────────

// Mientras la sesión inicializa el guard nunca redirige: mostrar un placeholder
// evita el parpadeo "login → dashboard" en cada arranque.
func TestEvaluate_Pending_MuestraCarga(t *testing.T) {
	snap := session.Snapshot{State: session.StatePending}
	d := session.Evaluate(snap, "/users", session.Rule{})

	assert.Equal(t, session.ActionShowLoading, d.Action)
	assert.Equal(t, "/users", d.RequestedPath)
}

func TestEvaluate_NoAutenticado_RedirigeALogin(t *testing.T) {
	snap := session.Snapshot{State: session.StateUnauthenticated}
	d := session.Evaluate(snap, "/orders", session.Rule{
		Permissions: []entity.Permission{entity.PermCanSell},
	})

	assert.Equal(t, session.ActionRedirectLogin, d.Action)
	assert.Equal(t, session.LoginPath, d.Target)
	assert.Equal(t, "/orders", d.RequestedPath, "la ruta pedida se conserva en la decisión")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Evaluate — predicados de permiso (OR) y rol
// ──────────────────────────────────────────────────────────────────────────────

func TestEvaluate_SinRequisitos_Renderiza(t *testing.T) {
	d := session.Evaluate(snapshotFor(userWith()), "/", session.Rule{})
	assert.Equal(t, session.ActionRender, d.Action)
}

func TestEvaluate_PermisoPresente_Renderiza(t *testing.T) {
	snap := snapshotFor(userWith(entity.PermCanManageUsers))
	d := session.Evaluate(snap, "/users", session.Rule{
		Permissions: []entity.Permission{entity.PermCanManageUsers},
	})
	assert.Equal(t, session.ActionRender, d.Action)
}

func TestEvaluate_VariosPermisos_BastaUno(t *testing.T) {
	snap := snapshotFor(userWith(entity.PermCanSell))
	d := session.Evaluate(snap, "/customers", session.Rule{
		Permissions: []entity.Permission{entity.PermCanManageCustomers, entity.PermCanSell},
	})
	assert.Equal(t, session.ActionRender, d.Action, "los permisos del rule son OR, no AND")
}

func TestEvaluate_SinPermiso_RedirigeAlFallback(t *testing.T) {
	snap := snapshotFor(userWith(entity.PermCanSell))
	d := session.Evaluate(snap, "/users", session.Rule{
		Permissions: []entity.Permission{entity.PermCanManageUsers},
	})

	assert.Equal(t, session.ActionRedirectFallback, d.Action)
	assert.Equal(t, session.DefaultFallbackPath, d.Target)
}

func TestEvaluate_FallbackPersonalizado(t *testing.T) {
	snap := snapshotFor(userWith(entity.PermCanSell))
	d := session.Evaluate(snap, "/reports", session.Rule{
		Permissions: []entity.Permission{entity.PermCanViewReports},
		Fallback:    "/sin-acceso",
	})

	assert.Equal(t, session.ActionRedirectFallback, d.Action)
	assert.Equal(t, "/sin-acceso", d.Target)
}

func TestEvaluate_PredicadoDeRol(t *testing.T) {
	snap := snapshotFor(userWith(entity.PermCanSell))

	d := session.Evaluate(snap, "/admin", session.Rule{Roles: []string{entity.RoleAdmin}})
	assert.Equal(t, session.ActionRedirectFallback, d.Action)

	d = session.Evaluate(snap, "/ventas", session.Rule{
		Roles: []string{entity.RoleAdmin, entity.RoleVendedor},
	})
	assert.Equal(t, session.ActionRender, d.Action, "basta con uno de los roles permitidos")
}

func TestEvaluate_RolYPermiso_AmbosDebenPasar(t *testing.T) {
	snap := snapshotFor(userWith(entity.PermCanSell))

	// Rol correcto pero permiso ausente: no autorizado.
	d := session.Evaluate(snap, "/users", session.Rule{
		Roles:       []string{entity.RoleVendedor},
		Permissions: []entity.Permission{entity.PermCanManageUsers},
	})
	assert.Equal(t, session.ActionRedirectFallback, d.Action)
}

func TestEvaluate_AutenticadoSinUsuario_NoAutorizado(t *testing.T) {
	snap := session.Snapshot{State: session.StateAuthenticated}
	d := session.Evaluate(snap, "/users", session.Rule{
		Permissions: []entity.Permission{entity.PermCanManageUsers},
	})

	assert.Equal(t, session.ActionRedirectFallback, d.Action)
	assert.Equal(t, session.DefaultFallbackPath, d.Target)
}
