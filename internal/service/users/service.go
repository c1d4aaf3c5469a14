package users

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/m04kA/CMG-AppointmentService/internal/domain"
	userRepo "github.com/m04kA/CMG-AppointmentService/internal/infra/storage/user"
	"github.com/m04kA/CMG-AppointmentService/internal/service/users/models"
)

// Минимальная длина пароля оператора
const minPasswordLength = 8

// Service сервис управления учётными записями операторов.
// Доступен только администраторам.
type Service struct {
	userRepo UserRepository
	logger   Logger
}

// NewService создает новый экземпляр сервиса операторов
func NewService(userRepo UserRepository, logger Logger) *Service {
	return &Service{
		userRepo: userRepo,
		logger:   logger,
	}
}

// Create создает нового оператора с хешированным паролем
func (s *Service) Create(ctx context.Context, req *models.CreateUserRequest) (*models.UserResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	s.logger.Info("Create: creating user email=%s, role=%s", email, req.Role)

	if err := validateCreateRequest(email, req); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("Create: failed to hash password: %v", err)
		return nil, fmt.Errorf("%w: Create - failed to hash password: %v", ErrInternal, err)
	}

	user, err := s.userRepo.Create(ctx, &domain.User{
		Email:        email,
		Name:         strings.TrimSpace(req.Name),
		PasswordHash: string(hash),
		Role:         domain.UserRole(req.Role),
	})
	if err != nil {
		if errors.Is(err, userRepo.ErrEmailExists) {
			s.logger.Warn("Create: email=%s already exists", email)
			return nil, ErrEmailExists
		}
		s.logger.Error("Create: repository error for email=%s: %v", email, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created user id=%s", user.ID)
	return models.FromDomainUser(user), nil
}

// ListAll получает всех операторов
func (s *Service) ListAll(ctx context.Context) (*models.UserListResponse, error) {
	users, err := s.userRepo.ListAll(ctx)
	if err != nil {
		s.logger.Error("ListAll: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListAll - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainUserList(users), nil
}

// Delete удаляет учётную запись оператора.
// Последний администратор не удаляется, иначе панель станет неуправляемой.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	s.logger.Info("Delete: deleting user id=%s", id)

	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("Delete: user id=%s not found", id)
			return ErrUserNotFound
		}
		s.logger.Error("Delete: repository error for id=%s: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	if user.Role == domain.RoleAdmin {
		admins, err := s.userRepo.CountByRole(ctx, domain.RoleAdmin)
		if err != nil {
			s.logger.Error("Delete: failed to count admins: %v", err)
			return fmt.Errorf("%w: Delete - failed to count admins: %v", ErrInternal, err)
		}
		if admins <= 1 {
			s.logger.Warn("Delete: refusing to delete the last admin id=%s", id)
			return ErrLastAdmin
		}
	}

	if err := s.userRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			return ErrUserNotFound
		}
		s.logger.Error("Delete: repository error for id=%s: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted user id=%s", id)
	return nil
}

// validateCreateRequest проверяет поля запроса на создание оператора
func validateCreateRequest(email string, req *models.CreateUserRequest) error {
	missing := make([]string, 0)

	if email == "" {
		missing = append(missing, "email")
	}
	if strings.TrimSpace(req.Name) == "" {
		missing = append(missing, "name")
	}
	if req.Password == "" {
		missing = append(missing, "password")
	}
	if req.Role == "" {
		missing = append(missing, "role")
	}

	if len(missing) > 0 {
		return fmt.Errorf("%w: missing required fields: %s", ErrInvalidInput, strings.Join(missing, ", "))
	}

	if len(req.Password) < minPasswordLength {
		return fmt.Errorf("%w: password must be at least %d characters", ErrInvalidInput, minPasswordLength)
	}

	if !domain.IsValidRole(domain.UserRole(req.Role)) {
		return fmt.Errorf("%w: unknown role %q", ErrInvalidInput, req.Role)
	}

	return nil
}
