package providers

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/m04kA/CMG-AppointmentService/internal/domain"
	providerRepo "github.com/m04kA/CMG-AppointmentService/internal/infra/storage/provider"
	"github.com/m04kA/CMG-AppointmentService/internal/service/providers/models"
)

// Service сервис справочника страховых (obras sociales).
// Справочник наполняет выпадающий список публичной формы записи.
type Service struct {
	providerRepo ProviderRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса справочника страховых
func NewService(providerRepo ProviderRepository, logger Logger) *Service {
	return &Service{
		providerRepo: providerRepo,
		logger:       logger,
	}
}

// Create создает новую страховую
func (s *Service) Create(ctx context.Context, req *models.CreateProviderRequest) (*models.ProviderResponse, error) {
	name := strings.TrimSpace(req.Name)
	s.logger.Info("Create: creating provider name=%q", name)

	if name == "" {
		return nil, fmt.Errorf("%w: missing name", ErrInvalidInput)
	}

	provider, err := s.providerRepo.Create(ctx, &domain.InsuranceProvider{Name: name})
	if err != nil {
		if errors.Is(err, providerRepo.ErrProviderExists) {
			s.logger.Warn("Create: provider name=%q already exists", name)
			return nil, ErrProviderExists
		}
		s.logger.Error("Create: repository error for name=%q: %v", name, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created provider id=%s", provider.ID)
	return models.FromDomainProvider(provider), nil
}

// ListAll получает все страховые по алфавиту
func (s *Service) ListAll(ctx context.Context) (*models.ProviderListResponse, error) {
	providers, err := s.providerRepo.ListAll(ctx)
	if err != nil {
		s.logger.Error("ListAll: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListAll - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainProviderList(providers), nil
}

// UpdateName переименовывает страховую
func (s *Service) UpdateName(ctx context.Context, id uuid.UUID, req *models.UpdateProviderRequest) (*models.ProviderResponse, error) {
	name := strings.TrimSpace(req.Name)
	s.logger.Info("UpdateName: provider id=%s, new name=%q", id, name)

	if name == "" {
		return nil, fmt.Errorf("%w: missing name", ErrInvalidInput)
	}

	if err := s.providerRepo.UpdateName(ctx, id, name); err != nil {
		switch {
		case errors.Is(err, providerRepo.ErrProviderNotFound):
			s.logger.Warn("UpdateName: provider id=%s not found", id)
			return nil, ErrProviderNotFound
		case errors.Is(err, providerRepo.ErrProviderExists):
			s.logger.Warn("UpdateName: provider name=%q already exists", name)
			return nil, ErrProviderExists
		default:
			s.logger.Error("UpdateName: repository error for id=%s: %v", id, err)
			return nil, fmt.Errorf("%w: UpdateName - repository error: %v", ErrInternal, err)
		}
	}

	provider, err := s.providerRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("UpdateName: failed to reload provider id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateName - failed to reload provider: %v", ErrInternal, err)
	}

	return models.FromDomainProvider(provider), nil
}

// Delete удаляет страховую из справочника.
// Существующие записи на приём хранят название текстом и не затрагиваются.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	s.logger.Info("Delete: deleting provider id=%s", id)

	if err := s.providerRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, providerRepo.ErrProviderNotFound) {
			s.logger.Warn("Delete: provider id=%s not found", id)
			return ErrProviderNotFound
		}
		s.logger.Error("Delete: repository error for id=%s: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	return nil
}
