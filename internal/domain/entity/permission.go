package entity

import (
	"encoding/json"
	"sort"

	"github.com/jbglogistica/logistica-api/internal/domain"
)

// Permission capacidad atómica que controla visibilidad de rutas y features.
// Enumeración cerrada: cualquier tag fuera de esta lista es un error de datos.
type Permission string

const (
	PermCanSell            Permission = "CAN_SELL"
	PermCanManageInventory Permission = "CAN_MANAGE_INVENTORY"
	PermCanManageUsers     Permission = "CAN_MANAGE_USERS"
	PermCanViewReports     Permission = "CAN_VIEW_REPORTS"
	PermCanManageCustomers Permission = "CAN_MANAGE_CUSTOMERS"
	PermCanManageStores    Permission = "CAN_MANAGE_STORES"
	PermCanManageZones     Permission = "CAN_MANAGE_ZONES"
	PermCanManageTariffs   Permission = "CAN_MANAGE_TARIFFS"
	PermCanShip            Permission = "CAN_SHIP"
)

// AllPermissions lista completa de permisos válidos, en orden estable.
var AllPermissions = []Permission{
	PermCanSell,
	PermCanManageInventory,
	PermCanManageUsers,
	PermCanViewReports,
	PermCanManageCustomers,
	PermCanManageStores,
	PermCanManageZones,
	PermCanManageTariffs,
	PermCanShip,
}

var validPermissions = func() map[Permission]struct{} {
	m := make(map[Permission]struct{}, len(AllPermissions))
	for _, p := range AllPermissions {
		m[p] = struct{}{}
	}
	return m
}()

// ParsePermission valida que el tag pertenezca a la enumeración cerrada.
// Datos de la API remota con tags desconocidos fallan aquí con ValidationError.
func ParsePermission(s string) (Permission, error) {
	p := Permission(s)
	if _, ok := validPermissions[p]; !ok {
		return "", domain.NewValidationError("permission", "permiso desconocido: "+s)
	}
	return p, nil
}

// PermissionSet conjunto de permisos con pertenencia O(1).
type PermissionSet map[Permission]struct{}

// NewPermissionSet construye un set a partir de permisos ya validados.
func NewPermissionSet(perms ...Permission) PermissionSet {
	s := make(PermissionSet, len(perms))
	for _, p := range perms {
		s[p] = struct{}{}
	}
	return s
}

// ParsePermissionSet valida y deduplica una lista de tags.
// Reporta todos los tags desconocidos, no solo el primero.
func ParsePermissionSet(tags []string) (PermissionSet, error) {
	s := make(PermissionSet, len(tags))
	var ve *domain.ValidationError
	for _, t := range tags {
		p, err := ParsePermission(t)
		if err != nil {
			if ve == nil {
				ve = &domain.ValidationError{}
			}
			ve.Add("permissions", "permiso desconocido: "+t)
			continue
		}
		s[p] = struct{}{}
	}
	if ve.HasErrors() {
		return nil, ve
	}
	return s, nil
}

// Has indica si el permiso pertenece al conjunto.
func (s PermissionSet) Has(p Permission) bool {
	_, ok := s[p]
	return ok
}

// Intersects indica si el conjunto comparte al menos un permiso con la lista
// requerida (semántica OR: uno que coincida es suficiente).
func (s PermissionSet) Intersects(required []Permission) bool {
	for _, p := range required {
		if s.Has(p) {
			return true
		}
	}
	return false
}

// Equal compara por igualdad de conjunto, sin importar orden de construcción.
func (s PermissionSet) Equal(other PermissionSet) bool {
	if len(s) != len(other) {
		return false
	}
	for p := range s {
		if !other.Has(p) {
			return false
		}
	}
	return true
}

// Slice devuelve los permisos ordenados alfabéticamente (salida estable).
func (s PermissionSet) Slice() []Permission {
	out := make([]Permission, 0, len(s))
	for p := range s {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Strings devuelve los tags como strings ordenados.
func (s PermissionSet) Strings() []string {
	perms := s.Slice()
	out := make([]string, len(perms))
	for i, p := range perms {
		out[i] = string(p)
	}
	return out
}

// MarshalJSON serializa como array ordenado. El orden es solo presentación;
// la igualdad es de conjunto.
func (s PermissionSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Slice())
}

// UnmarshalJSON valida cada tag contra la enumeración cerrada y deduplica.
func (s *PermissionSet) UnmarshalJSON(data []byte) error {
	var tags []string
	if err := json.Unmarshal(data, &tags); err != nil {
		return err
	}
	parsed, err := ParsePermissionSet(tags)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
