package service

import (
	"errors"

	"go-printpos-ws/internal/model"
	"go-printpos-ws/internal/repository"
	"go-printpos-ws/internal/ws"

	"github.com/google/uuid"
)

var (
	ErrUsernameExists = errors.New("username already taken")
	ErrRoleNotFound   = errors.New("role not found")
)

type UserService interface {
	CreateUser(req *CreateUserRequest, actor Actor) (*model.UserResponse, error)
	UpdateUser(id uuid.UUID, req *UpdateUserRequest, actor Actor) (*model.UserResponse, error)
	DeleteUser(id uuid.UUID) error
	UpdateUserPrivileges(id uuid.UUID, codes []string) (*model.UserResponse, error)
	GetAllUsers() ([]model.UserResponse, error)
	GetUserByID(id uuid.UUID) (*model.UserResponse, error)
}

type CreateUserRequest struct {
	Username string `json:"username" validate:"required,min=3"`
	Password string `json:"password" validate:"required,min=6"`
	FullName string `json:"full_name" validate:"required"`
	RoleCode string `json:"role_code" validate:"required,oneof=CASHIER DESIGNER SUPERVISOR OWNER"`
}

type UpdateUserRequest struct {
	FullName *string `json:"full_name"`
	RoleCode *string `json:"role_code"`
	Password *string `json:"password"`
	IsActive *bool   `json:"is_active"`
}

type userService struct {
	userRepo      repository.UserRepository
	roleRepo      repository.RoleRepository
	privilegeRepo repository.PrivilegeRepository
	wsHub         *ws.Hub
	appID         string
}

func NewUserService(userRepo repository.UserRepository, roleRepo repository.RoleRepository, privilegeRepo repository.PrivilegeRepository, hub *ws.Hub, appID string) UserService {
	return &userService{
		userRepo:      userRepo,
		roleRepo:      roleRepo,
		privilegeRepo: privilegeRepo,
		wsHub:         hub,
		appID:         appID,
	}
}

// rolePrivileges resolves the default privilege set for a role code from
// the static capability table.
func (s *userService) rolePrivileges(roleCode string) ([]model.Privilege, error) {
	codes, ok := model.RolePrivileges[roleCode]
	if !ok {
		return nil, ErrRoleNotFound
	}
	return s.privilegeRepo.FindByCodes(codes)
}

func (s *userService) CreateUser(req *CreateUserRequest, actor Actor) (*model.UserResponse, error) {
	if _, err := s.userRepo.FindByUsername(req.Username); err == nil {
		return nil, ErrUsernameExists
	}

	role, err := s.roleRepo.FindByCode(req.RoleCode)
	if err != nil {
		return nil, ErrRoleNotFound
	}

	privileges, err := s.rolePrivileges(req.RoleCode)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Username:   req.Username,
		FullName:   req.FullName,
		RoleID:     &role.ID,
		Role:       role,
		IsActive:   true,
		Privileges: privileges,
	}
	if err := user.SetPassword(req.Password); err != nil {
		return nil, errors.New("failed to hash password")
	}
	user.CreatedBy = actor.UserID
	user.UpdatedBy = actor.UserID

	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}

	go s.wsHub.NotifyCollection(s.appID, "users", "user_created", user.ToResponse())

	resp := user.ToResponse()
	return &resp, nil
}

func (s *userService) UpdateUser(id uuid.UUID, req *UpdateUserRequest, actor Actor) (*model.UserResponse, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		return nil, ErrUserNotFound
	}

	if req.FullName != nil {
		user.FullName = *req.FullName
	}
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}
	if req.Password != nil && *req.Password != "" {
		if err := user.SetPassword(*req.Password); err != nil {
			return nil, errors.New("failed to hash password")
		}
	}
	if req.RoleCode != nil {
		role, err := s.roleRepo.FindByCode(*req.RoleCode)
		if err != nil {
			return nil, ErrRoleNotFound
		}
		user.RoleID = &role.ID
		user.Role = role

		// Changing the role resets privileges to the role's defaults
		privileges, err := s.rolePrivileges(*req.RoleCode)
		if err != nil {
			return nil, err
		}
		if err := s.userRepo.UpdatePrivileges(user.ID, privileges); err != nil {
			return nil, err
		}
		user.Privileges = privileges
	}
	user.UpdatedBy = actor.UserID

	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}

	go s.wsHub.NotifyCollection(s.appID, "users", "user_updated", user.ToResponse())

	resp := user.ToResponse()
	return &resp, nil
}

func (s *userService) DeleteUser(id uuid.UUID) error {
	if _, err := s.userRepo.FindByID(id); err != nil {
		return ErrUserNotFound
	}

	if err := s.userRepo.Delete(id); err != nil {
		return err
	}

	go s.wsHub.NotifyCollection(s.appID, "users", "user_deleted", map[string]interface{}{
		"id": id.String(),
	})

	return nil
}

// UpdateUserPrivileges replaces the user's privilege set with the given
// codes, independent of their role defaults.
func (s *userService) UpdateUserPrivileges(id uuid.UUID, codes []string) (*model.UserResponse, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		return nil, ErrUserNotFound
	}

	privileges, err := s.privilegeRepo.FindByCodes(codes)
	if err != nil {
		return nil, err
	}

	if err := s.userRepo.UpdatePrivileges(user.ID, privileges); err != nil {
		return nil, err
	}
	user.Privileges = privileges

	go s.wsHub.NotifyCollection(s.appID, "users", "user_updated", user.ToResponse())

	resp := user.ToResponse()
	return &resp, nil
}

func (s *userService) GetAllUsers() ([]model.UserResponse, error) {
	users, err := s.userRepo.FindAll()
	if err != nil {
		return nil, err
	}

	responses := make([]model.UserResponse, len(users))
	for i, u := range users {
		responses[i] = u.ToResponse()
	}
	return responses, nil
}

func (s *userService) GetUserByID(id uuid.UUID) (*model.UserResponse, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		return nil, ErrUserNotFound
	}
	resp := user.ToResponse()
	return &resp, nil
}
