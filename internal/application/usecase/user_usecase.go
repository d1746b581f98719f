package usecase

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jbglogistica/logistica-api/internal/application/auth"
	"github.com/jbglogistica/logistica-api/internal/application/dto"
	"github.com/jbglogistica/logistica-api/internal/domain"
	"github.com/jbglogistica/logistica-api/internal/domain/entity"
	"github.com/jbglogistica/logistica-api/internal/domain/repository"
)

// UserUseCase administración de usuarios y roles (CAN_MANAGE_USERS).
type UserUseCase struct {
	userRepo repository.UserRepository
	roleRepo repository.RoleRepository
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(userRepo repository.UserRepository, roleRepo repository.RoleRepository) *UserUseCase {
	return &UserUseCase{userRepo: userRepo, roleRepo: roleRepo}
}

// Create crea un usuario con el rol indicado embebido.
func (uc *UserUseCase) Create(in dto.CreateUserRequest) (*dto.UserResponse, error) {
	existing, err := uc.userRepo.FindByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	role, err := uc.roleRepo.GetByName(in.Role)
	if err != nil {
		return nil, err
	}
	if role == nil {
		return nil, domain.NewValidationError("role", "rol desconocido: "+in.Role)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Email:        in.Email,
		PasswordHash: string(hash),
		Name:         in.Name,
		Role:         *role,
		StoreID:      in.StoreID,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	return auth.ToUserResponse(user), nil
}

// Update actualiza nombre, rol o tienda del usuario.
func (uc *UserUseCase) Update(id string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if in.Name != "" {
		user.Name = in.Name
	}
	if in.StoreID != "" {
		user.StoreID = in.StoreID
	}
	if in.Role != "" {
		role, err := uc.roleRepo.GetByName(in.Role)
		if err != nil {
			return nil, err
		}
		if role == nil {
			return nil, domain.NewValidationError("role", "rol desconocido: "+in.Role)
		}
		user.Role = *role
	}
	user.UpdatedAt = time.Now()
	if err := uc.userRepo.Update(user); err != nil {
		return nil, err
	}
	return auth.ToUserResponse(user), nil
}

// SetActive activa o desactiva un usuario.
func (uc *UserUseCase) SetActive(id string, active bool) error {
	user, err := uc.userRepo.GetByID(id)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	return uc.userRepo.SetActive(id, active)
}

// List lista usuarios con paginación.
func (uc *UserUseCase) List(limit, offset int) ([]*dto.UserResponse, error) {
	users, err := uc.userRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, auth.ToUserResponse(u))
	}
	return out, nil
}

// UpsertRole crea o reemplaza un rol. El set de permisos del rol se valida
// contra la enumeración cerrada y reemplaza al anterior por completo.
func (uc *UserUseCase) UpsertRole(in dto.UpsertRoleRequest) (*entity.Role, error) {
	perms, err := entity.ParsePermissionSet(in.Permissions)
	if err != nil {
		return nil, err
	}
	role := &entity.Role{Name: in.Name, Permissions: perms}
	if err := role.Validate(); err != nil {
		return nil, err
	}
	existing, err := uc.roleRepo.GetByName(in.Name)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		if err := uc.roleRepo.Create(role); err != nil {
			return nil, err
		}
	} else {
		if err := uc.roleRepo.Update(role); err != nil {
			return nil, err
		}
	}
	return role, nil
}

// ListRoles devuelve el catálogo de roles.
func (uc *UserUseCase) ListRoles() ([]*entity.Role, error) {
	return uc.roleRepo.List()
}

// Permissions devuelve la enumeración completa de permisos válidos.
func (uc *UserUseCase) Permissions() []entity.Permission {
	return entity.AllPermissions
}
