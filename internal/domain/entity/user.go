package entity

import "time"

// User usuario del sistema. El rol va embebido (no referenciado): el usuario
// posee exactamente los permisos de su rol.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // bcrypt, nunca plano después de persistir
	Name         string    `json:"name"`
	Role         Role      `json:"role"`
	StoreID      string    `json:"store_id,omitempty"` // tienda asignada, opcional
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Permissions devuelve el set de permisos efectivo del usuario.
func (u *User) Permissions() PermissionSet {
	if u == nil {
		return nil
	}
	return u.Role.Permissions
}
