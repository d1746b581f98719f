// Package nav define el árbol de navegación del dashboard y su filtrado por
// permisos. La configuración es estática; la visibilidad se deriva en cada
// render a partir de la sesión actual.
package nav

import "github.com/jbglogistica/logistica-api/internal/domain/entity"

// Item entrada de menú. Un item sin permisos requeridos es visible para
// cualquier usuario autenticado; con permisos, basta que el usuario tenga
// uno de ellos (OR, no AND).
type Item struct {
	Label       string              `json:"label"`
	Path        string              `json:"path"`
	Permissions []entity.Permission `json:"permissions,omitempty"`
}

// Section agrupa items bajo un encabezado.
type Section struct {
	Label string `json:"label"`
	Items []Item `json:"items"`
}

// DefaultMenu árbol de navegación completo del dashboard.
var DefaultMenu = []Section{
	{
		Label: "Inicio",
		Items: []Item{
			{Label: "Resumen", Path: "/"},
		},
	},
	{
		Label: "Ventas",
		Items: []Item{
			{Label: "Pedidos", Path: "/orders", Permissions: []entity.Permission{entity.PermCanSell}},
			{Label: "Clientes", Path: "/customers", Permissions: []entity.Permission{entity.PermCanManageCustomers, entity.PermCanSell}},
		},
	},
	{
		Label: "Operación",
		Items: []Item{
			{Label: "Envíos", Path: "/shipments", Permissions: []entity.Permission{entity.PermCanShip}},
			{Label: "Conductores", Path: "/drivers", Permissions: []entity.Permission{entity.PermCanShip}},
		},
	},
	{
		Label: "Catálogo",
		Items: []Item{
			{Label: "Cajas", Path: "/boxes", Permissions: []entity.Permission{entity.PermCanManageInventory}},
			{Label: "Tiendas", Path: "/stores", Permissions: []entity.Permission{entity.PermCanManageStores}},
			{Label: "Zonas", Path: "/zones", Permissions: []entity.Permission{entity.PermCanManageZones}},
			{Label: "Tarifas", Path: "/tariffs", Permissions: []entity.Permission{entity.PermCanManageTariffs}},
		},
	},
	{
		Label: "Administración",
		Items: []Item{
			{Label: "Usuarios", Path: "/users", Permissions: []entity.Permission{entity.PermCanManageUsers}},
			{Label: "Reportes", Path: "/reports", Permissions: []entity.Permission{entity.PermCanViewReports}},
		},
	},
}
