package entity

import "github.com/jbglogistica/logistica-api/internal/domain"

// Nombres de roles predefinidos (se pueden crear más desde administración).
const (
	RoleAdmin    = "ADMIN"
	RoleVendedor = "VENDEDOR"
	RoleOperador = "OPERADOR"
)

// Role bundle reutilizable de permisos asignado a un usuario.
// El set de permisos se reemplaza al completo en cada actualización, nunca se parcha.
type Role struct {
	Name        string        `json:"name"`
	Permissions PermissionSet `json:"permissions"`
}

// Validate verifica que el rol esté bien formado: nombre y al menos un permiso.
func (r Role) Validate() error {
	ve := &domain.ValidationError{}
	if r.Name == "" {
		ve.Add("name", "el nombre del rol es requerido")
	}
	if len(r.Permissions) == 0 {
		ve.Add("permissions", "el rol debe tener al menos un permiso")
	}
	if ve.HasErrors() {
		return ve
	}
	return nil
}

// HasPermission indica si el rol otorga el permiso.
func (r Role) HasPermission(p Permission) bool {
	return r.Permissions.Has(p)
}
