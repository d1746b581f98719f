package nav

import "github.com/jbglogistica/logistica-api/internal/domain/entity"

// Filter devuelve el subconjunto visible del menú para el set de permisos dado.
// Función pura: no cachea nada, el orden de inserción se preserva y las
// secciones que quedan sin items desaparecen.
func Filter(menu []Section, perms entity.PermissionSet) []Section {
	out := make([]Section, 0, len(menu))
	for _, section := range menu {
		items := make([]Item, 0, len(section.Items))
		for _, item := range section.Items {
			if Visible(item, perms) {
				items = append(items, item)
			}
		}
		if len(items) > 0 {
			out = append(out, Section{Label: section.Label, Items: items})
		}
	}
	return out
}

// Visible decide la visibilidad de un item: sin permisos requeridos es
// visible para cualquier autenticado; con permisos requiere intersección
// no vacía con los del usuario.
func Visible(item Item, perms entity.PermissionSet) bool {
	if len(item.Permissions) == 0 {
		return true
	}
	return perms.Intersects(item.Permissions)
}
