package dto

// CreateUserRequest entrada para crear un usuario (password en texto, se hashea en use case).
type CreateUserRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Name     string `json:"name" validate:"required,min=1,max=200"`
	Role     string `json:"role" validate:"required"`
	StoreID  string `json:"store_id" validate:"omitempty,uuid"`
}

// UpdateUserRequest entrada para actualizar nombre, rol o tienda.
type UpdateUserRequest struct {
	Name    string `json:"name" validate:"omitempty,max=200"`
	Role    string `json:"role" validate:"omitempty"`
	StoreID string `json:"store_id" validate:"omitempty,uuid"`
}

// SetUserActiveRequest activar/desactivar un usuario.
type SetUserActiveRequest struct {
	IsActive bool `json:"is_active"`
}

// UpsertRoleRequest crear o reemplazar un rol. El set de permisos reemplaza
// por completo al anterior.
type UpsertRoleRequest struct {
	Name        string   `json:"name" validate:"required"`
	Permissions []string `json:"permissions" validate:"required,min=1"`
}
