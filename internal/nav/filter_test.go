package nav_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jbglogistica/logistica-api/internal/domain/entity"
	"github.com/jbglogistica/logistica-api/internal/nav"
)

// menú de prueba con las tres variantes: sin permisos, un permiso, varios (OR).
var testMenu = []nav.Section{
	{
		Label: "General",
		Items: []nav.Item{
			{Label: "Inicio", Path: "/"},
		},
	},
	{
		Label: "Ventas",
		Items: []nav.Item{
			{Label: "Pedidos", Path: "/orders", Permissions: []entity.Permission{entity.PermCanSell}},
			{Label: "Clientes", Path: "/customers", Permissions: []entity.Permission{entity.PermCanManageCustomers, entity.PermCanSell}},
		},
	},
	{
		Label: "Administración",
		Items: []nav.Item{
			{Label: "Usuarios", Path: "/users", Permissions: []entity.Permission{entity.PermCanManageUsers}},
		},
	},
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Visible — visibilidad de un item individual
// ──────────────────────────────────────────────────────────────────────────────

func TestVisible_ItemSinPermisos_SiempreVisible(t *testing.T) {
	item := nav.Item{Label: "Inicio", Path: "/"}
	assert.True(t, nav.Visible(item, nil),
		"un item sin permisos requeridos es visible incluso sin permisos")
	assert.True(t, nav.Visible(item, entity.NewPermissionSet(entity.PermCanShip)))
}

func TestVisible_ConVariosPermisos_BastaUno(t *testing.T) {
	item := nav.Item{
		Label:       "Clientes",
		Permissions: []entity.Permission{entity.PermCanManageCustomers, entity.PermCanSell},
	}
	// Tiene solo CAN_SELL, uno de los dos requeridos: visible.
	assert.True(t, nav.Visible(item, entity.NewPermissionSet(entity.PermCanSell)))
	// No tiene ninguno: oculto.
	assert.False(t, nav.Visible(item, entity.NewPermissionSet(entity.PermCanShip)))
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Filter — filtrado del árbol completo
// ──────────────────────────────────────────────────────────────────────────────

func TestFilter_VendedorSoloVeVentasEInicio(t *testing.T) {
	perms := entity.NewPermissionSet(entity.PermCanSell)
	out := nav.Filter(testMenu, perms)

	require.Len(t, out, 2)
	assert.Equal(t, "General", out[0].Label)
	assert.Equal(t, "Ventas", out[1].Label)
	// Dentro de Ventas ve ambos items: Pedidos por CAN_SELL directo y
	// Clientes por la semántica OR.
	assert.Len(t, out[1].Items, 2)
}

func TestFilter_SeccionVaciaDesaparece(t *testing.T) {
	perms := entity.NewPermissionSet(entity.PermCanManageUsers)
	out := nav.Filter(testMenu, perms)

	require.Len(t, out, 2)
	assert.Equal(t, "General", out[0].Label)
	assert.Equal(t, "Administración", out[1].Label,
		"Ventas queda sin items visibles y no debe aparecer como sección vacía")
}

func TestFilter_SinPermisos_SoloItemsLibres(t *testing.T) {
	out := nav.Filter(testMenu, entity.NewPermissionSet())

	require.Len(t, out, 1)
	assert.Equal(t, "General", out[0].Label)
	assert.Equal(t, "/", out[0].Items[0].Path)
}

func TestFilter_PreservaOrdenDeConfiguracion(t *testing.T) {
	perms := entity.NewPermissionSet(entity.AllPermissions...)
	out := nav.Filter(testMenu, perms)

	require.Len(t, out, len(testMenu))
	for i, section := range testMenu {
		assert.Equal(t, section.Label, out[i].Label)
		require.Len(t, out[i].Items, len(section.Items))
		for j, item := range section.Items {
			assert.Equal(t, item.Path, out[i].Items[j].Path)
		}
	}
}

func TestFilter_EsPura_NoMutaElMenu(t *testing.T) {
	perms := entity.NewPermissionSet(entity.PermCanSell)
	_ = nav.Filter(testMenu, perms)

	// El árbol de configuración queda intacto tras filtrar.
	assert.Len(t, testMenu[1].Items, 2)
	assert.Len(t, testMenu[2].Items, 1)
}

func TestFilter_MenuPorDefecto_AdminVeTodo(t *testing.T) {
	perms := entity.NewPermissionSet(entity.AllPermissions...)
	out := nav.Filter(nav.DefaultMenu, perms)
	assert.Len(t, out, len(nav.DefaultMenu))
}
